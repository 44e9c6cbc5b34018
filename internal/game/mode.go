package game

import (
	"fmt"
	"strings"
)

// Mode selects how the target word is chosen.
type Mode uint8

const (
	ModeWordle Mode = iota
	ModeRandomWord
)

func (m Mode) String() string {
	switch m {
	case ModeRandomWord:
		return "random-word"
	default:
		return "wordle"
	}
}

// ParseMode accepts "wordle" or "random-word". The empty string is wordle.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "wordle":
		return ModeWordle, nil
	case "random-word":
		return ModeRandomWord, nil
	default:
		return ModeWordle, fmt.Errorf("unknown mode %q (want wordle or random-word)", value)
	}
}
