package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuidle/internal/game"
)

const (
	title     = "TUIDLE"
	subtitle  = "Wordle in your terminal"
	tileGap   = " "
	cursorRow = "_"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

var (
	tileBase = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Bold(true)
	headerTileStyle = tileBase.
			BorderForeground(lipgloss.Color("#3B82F6")).
			Foreground(lipgloss.Color("#3B82F6")).
			Italic(true)
	subtitleStyle = lipgloss.NewStyle().Bold(true)

	clueTileStyles = map[game.Clue]lipgloss.Style{
		game.ClueDefault: tileBase.BorderForeground(lipgloss.Color("#3A3A3C")).Foreground(lipgloss.Color("#F0F0F0")),
		game.ClueWrong:   tileBase.BorderForeground(lipgloss.Color("#3A3A3C")).Background(lipgloss.Color("#3A3A3C")).Foreground(lipgloss.Color("#F0F0F0")),
		game.CluePresent: tileBase.BorderForeground(lipgloss.Color("#B59F3B")).Background(lipgloss.Color("#B59F3B")).Foreground(lipgloss.Color("#121213")),
		game.ClueCorrect: tileBase.BorderForeground(lipgloss.Color("#538D4E")).Background(lipgloss.Color("#538D4E")).Foreground(lipgloss.Color("#121213")),
	}

	keyBase     = lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
	keyUnknown  = keyBase.Background(lipgloss.Color("#818384")).Foreground(lipgloss.Color("#121213"))
	keyWrong    = keyBase.Background(lipgloss.Color("#202020")).Foreground(lipgloss.Color("#5A5A5A"))
	keyPresent  = keyBase.Background(lipgloss.Color("#B59F3B")).Foreground(lipgloss.Color("#121213")).Bold(true)
	keyCorrect  = keyBase.Background(lipgloss.Color("#538D4E")).Foreground(lipgloss.Color("#121213")).Bold(true)
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#538D4E")).Bold(true)
	loseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

func renderHeader() string {
	tiles := make([]string, 0, len(title))
	for _, r := range title {
		tiles = append(tiles, headerTileStyle.Render(string(r)), tileGap)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tiles[:len(tiles)-1]...)
	return lipgloss.JoinVertical(lipgloss.Center, row, subtitleStyle.Render(subtitle))
}

func renderWordRow(word string, clues game.Clues) string {
	letters := []rune(padWord(word))
	tiles := make([]string, 0, 2*game.WordLength-1)
	for i := 0; i < game.WordLength; i++ {
		if i > 0 {
			tiles = append(tiles, tileGap)
		}
		tiles = append(tiles, clueTileStyles[clues[i]].Render(string(letters[i])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

// padWord fills a partial entry to five cells.
func padWord(word string) string {
	return runewidth.FillRight(runewidth.Truncate(word, game.WordLength, ""), game.WordLength)
}

func renderBoard(s *game.Session) string {
	rows := make([]string, 0, game.MaxGuesses)
	var empty game.Clues
	for _, g := range s.History() {
		rows = append(rows, renderWordRow(g.Word, g.Clues))
	}
	if !s.IsOver() {
		entry := s.Entry()
		if len(entry) < game.WordLength {
			entry += cursorRow
		}
		rows = append(rows, renderWordRow(entry, empty))
	}
	for len(rows) < game.MaxGuesses {
		rows = append(rows, renderWordRow("", empty))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func keyStyle(c game.Clue, seen bool) lipgloss.Style {
	if !seen {
		return keyUnknown
	}
	switch c {
	case game.ClueCorrect:
		return keyCorrect
	case game.CluePresent:
		return keyPresent
	default:
		return keyWrong
	}
}

func renderKeyboard(s *game.Session) string {
	clues := s.Clues()
	lines := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		var b strings.Builder
		for _, r := range row {
			c, seen := clues[r]
			b.WriteString(keyStyle(c, seen).Render(string(r)))
		}
		lines = append(lines, b.String())
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func renderMessage(s *game.Session) string {
	switch {
	case s.IsWin():
		return winStyle.Render("Winner!")
	case s.IsOver():
		return loseStyle.Render("Loser! The word was " + s.Target())
	case s.LastError() != "":
		return errorStyle.Render(s.LastError())
	default:
		return ""
	}
}
