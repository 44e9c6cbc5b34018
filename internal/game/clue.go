// Package game implements guess evaluation and the per-session state machine.
package game

import "fmt"

const (
	// WordLength is the number of letters in every word.
	WordLength = 5
	// MaxGuesses bounds the history of a session.
	MaxGuesses = 6
)

// Clue is the feedback for one letter of a guess. The numeric order
// Default < Wrong < Present < Correct is the merge order for cumulative clues.
type Clue uint8

const (
	ClueDefault Clue = iota
	ClueWrong
	CluePresent
	ClueCorrect
)

// Clues holds the per-position feedback of one guess.
type Clues [WordLength]Clue

// AllCorrect is the result of a winning guess.
var AllCorrect = Clues{ClueCorrect, ClueCorrect, ClueCorrect, ClueCorrect, ClueCorrect}

func (c Clue) String() string {
	switch c {
	case ClueDefault:
		return "default"
	case ClueWrong:
		return "wrong"
	case CluePresent:
		return "present"
	case ClueCorrect:
		return "correct"
	default:
		return fmt.Sprintf("clue(%d)", uint8(c))
	}
}

// Symbol returns the compact code: '!' correct, '?' present, 'x' wrong, ' ' default.
func (c Clue) Symbol() byte {
	switch c {
	case ClueWrong:
		return 'x'
	case CluePresent:
		return '?'
	case ClueCorrect:
		return '!'
	default:
		return ' '
	}
}

// String renders the clues as symbols, e.g. "x!!xx".
func (cs Clues) String() string {
	b := make([]byte, WordLength)
	for i, c := range cs {
		b[i] = c.Symbol()
	}
	return string(b)
}

// ParseClues decodes a five-symbol code produced by Clues.String.
func ParseClues(code string) (Clues, error) {
	var out Clues
	if len(code) != WordLength {
		return out, fmt.Errorf("clue code %q must have %d symbols", code, WordLength)
	}
	for i := 0; i < WordLength; i++ {
		switch code[i] {
		case '!':
			out[i] = ClueCorrect
		case '?':
			out[i] = CluePresent
		case 'x':
			out[i] = ClueWrong
		case ' ':
			out[i] = ClueDefault
		default:
			return out, fmt.Errorf("unknown clue symbol %q in %q", code[i], code)
		}
	}
	return out, nil
}
