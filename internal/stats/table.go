package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuidle/internal/model"
)

// HistoryRows converts games to table cells, newest first.
func HistoryRows(games []model.GameAggregate) [][]string {
	rows := make([][]string, 0, len(games))
	for i := len(games) - 1; i >= 0; i-- {
		g := games[i]
		puzzle := "-"
		if g.PuzzleNumber != model.NoPuzzle {
			puzzle = fmt.Sprintf("%d", g.PuzzleNumber)
		}
		result := "X/6"
		if g.Won {
			result = fmt.Sprintf("%d/6", g.GuessCount)
		}
		rows = append(rows, []string{
			g.EndedAt.Format("2006-01-02 15:04"),
			g.Mode,
			puzzle,
			g.Target,
			result,
		})
	}
	return rows
}

// HistoryHeaders names the HistoryRows columns.
var HistoryHeaders = []string{"Date", "Mode", "Puzzle", "Word", "Result"}

// RenderHistory prints an aligned table of games, newest first.
func RenderHistory(w io.Writer, games []model.GameAggregate) error {
	if len(games) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "History"); err != nil {
		return err
	}
	for _, line := range formatTable(HistoryHeaders, HistoryRows(games), map[int]bool{2: true, 4: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	cells := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if rightAlignCols[i] {
			cells[i] = runewidth.FillLeft(cell, widths[i])
		} else {
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}
