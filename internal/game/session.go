package game

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/tuidle/internal/corpus"
)

// Guess is one scored attempt.
type Guess struct {
	Word  string
	Clues Clues
}

// Session is a single game. It is not safe for concurrent use; the corpus
// it reads from may be shared.
type Session struct {
	corpus    *corpus.Corpus
	mode      Mode
	target    string
	entry     []rune
	history   []Guess
	clues     map[rune]Clue
	lastError string
}

// NewSession starts a game whose target comes from the daily or random pick.
func NewSession(c *corpus.Corpus, mode Mode) *Session {
	var target string
	switch mode {
	case ModeRandomWord:
		target = c.RandomWord()
	default:
		target = c.WordOfTheDay()
	}
	s := NewSessionWithTarget(c, target)
	s.mode = mode
	return s
}

// NewSessionWithTarget starts a random-word game with a fixed target. It
// panics if target is not accepted by the corpus.
func NewSessionWithTarget(c *corpus.Corpus, target string) *Session {
	if !c.IsValid(target) {
		panic(fmt.Sprintf("game: target %q is not in the corpus", target))
	}
	return &Session{
		corpus:  c,
		mode:    ModeRandomWord,
		target:  strings.ToUpper(target),
		entry:   make([]rune, 0, WordLength),
		history: make([]Guess, 0, MaxGuesses),
		clues:   make(map[rune]Clue),
	}
}

// HandleInput advances the session. Events that do not apply are ignored.
func (s *Session) HandleInput(in Input) {
	if s.IsOver() {
		return
	}
	switch in.Kind {
	case InputChar:
		if len(s.entry) >= WordLength {
			return
		}
		r := in.Char
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r < 'A' || r > 'Z' {
			return
		}
		s.entry = append(s.entry, r)
	case InputDelete:
		if len(s.entry) > 0 {
			s.entry = s.entry[:len(s.entry)-1]
		}
	case InputSubmit:
		if len(s.entry) == WordLength {
			s.submit()
		}
	}
}

func (s *Session) submit() {
	word := string(s.entry)
	if !s.corpus.IsValid(word) {
		s.lastError = fmt.Sprintf("Word '%s' is not valid.", word)
		return
	}
	s.lastError = ""
	clues := Evaluate(s.target, word)
	for i, r := range word {
		if prev, ok := s.clues[r]; !ok || clues[i] > prev {
			s.clues[r] = clues[i]
		}
	}
	s.history = append(s.history, Guess{Word: word, Clues: clues})
	s.entry = s.entry[:0]
}

// Target returns the hidden word in uppercase.
func (s *Session) Target() string { return s.target }

// Mode reports how the target was chosen.
func (s *Session) Mode() Mode { return s.mode }

// Entry returns the letters typed so far.
func (s *Session) Entry() string { return string(s.entry) }

// History returns a copy of the scored guesses, oldest first.
func (s *Session) History() []Guess {
	out := make([]Guess, len(s.history))
	copy(out, s.history)
	return out
}

// Clues returns a copy of the best clue seen for each guessed letter.
func (s *Session) Clues() map[rune]Clue {
	out := make(map[rune]Clue, len(s.clues))
	for r, c := range s.clues {
		out[r] = c
	}
	return out
}

// Clue returns the best clue seen for letter r, or ClueDefault.
func (s *Session) Clue(r rune) Clue {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return s.clues[r]
}

// LastError is the message of the last rejected submit, empty if none.
func (s *Session) LastError() string { return s.lastError }

// IsWin reports whether the latest guess matched the target.
func (s *Session) IsWin() bool {
	if len(s.history) == 0 {
		return false
	}
	return s.history[len(s.history)-1].Clues == AllCorrect
}

// IsOver reports whether no further guesses are accepted.
func (s *Session) IsOver() bool {
	return s.IsWin() || len(s.history) >= MaxGuesses
}
