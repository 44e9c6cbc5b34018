package game

import (
	"fmt"
	"strings"
)

var shareTiles = map[Clue]string{
	ClueDefault: "⬛",
	ClueWrong:   "⬛",
	CluePresent: "🟨",
	ClueCorrect: "🟩",
}

// ShareGrid renders one emoji row per guess without revealing letters.
func ShareGrid(history []Guess) string {
	var b strings.Builder
	for i, g := range history {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, c := range g.Clues {
			b.WriteString(shareTiles[c])
		}
	}
	return b.String()
}

// ShareHeader formats the first line of a shared result, e.g. "Tuidle 412 4/6".
// Random games pass a negative puzzle and the number is omitted.
func ShareHeader(label string, puzzle int, history []Guess, won bool) string {
	score := "X"
	if won {
		score = fmt.Sprintf("%d", len(history))
	}
	if puzzle < 0 {
		return fmt.Sprintf("%s %s/%d", label, score, MaxGuesses)
	}
	return fmt.Sprintf("%s %d %s/%d", label, puzzle, score, MaxGuesses)
}
