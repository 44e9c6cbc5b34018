package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// WordCount pairs a word with how often it was used.
type WordCount struct {
	Word  string
	Count int
}

// TopOpeners returns the n most frequent opening words.
func TopOpeners(openers []string, n int) []WordCount {
	if n <= 0 || len(openers) == 0 {
		return nil
	}
	counts := map[string]int{}
	for _, w := range openers {
		counts[strings.ToUpper(w)]++
	}
	items := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		items = append(items, WordCount{Word: w, Count: c})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Word < items[j].Word
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// RenderOpeners prints the favourite opening words.
func RenderOpeners(w io.Writer, top []WordCount) error {
	if len(top) == 0 {
		return nil
	}
	rows := make([][]string, len(top))
	for i, wc := range top {
		rows[i] = []string{wc.Word, fmt.Sprintf("%d", wc.Count)}
	}
	if _, err := fmt.Fprintln(w, "Favourite Openers"); err != nil {
		return err
	}
	for _, line := range formatTable([]string{"Word", "Games"}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
