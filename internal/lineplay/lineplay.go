// Package lineplay runs a game over plain line-oriented input and output.
package lineplay

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/tuidle/internal/game"
)

// Run reads one guess per line from r and reports each result on w until the
// game ends, input runs out, or ctx is cancelled. Running out of input is not
// an error.
func Run(ctx context.Context, r io.Reader, w io.Writer, s *game.Session) error {
	scanner := bufio.NewScanner(r)
	for !s.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read guess: %w", err)
			}
			log.Debug().Int("guesses", len(s.History())).Msg("input closed before the game ended")
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := play(w, s, line); err != nil {
			return err
		}
	}

	var err error
	if s.IsWin() {
		_, err = fmt.Fprintln(w, "Winner!")
	} else {
		_, err = fmt.Fprintf(w, "Loser! The word was %s\n", s.Target())
	}
	return err
}

func play(w io.Writer, s *game.Session, line string) error {
	for s.Entry() != "" {
		s.HandleInput(game.Delete())
	}
	for _, ch := range line {
		s.HandleInput(game.Char(ch))
	}
	entry := s.Entry()
	if len([]rune(line)) != game.WordLength || len(entry) != game.WordLength {
		_, err := fmt.Fprintf(w, "Guess must be %d letters A-Z.\n", game.WordLength)
		return err
	}

	before := len(s.History())
	s.HandleInput(game.Submit())
	if len(s.History()) == before {
		_, err := fmt.Fprintln(w, s.LastError())
		return err
	}
	last := s.History()[len(s.History())-1]
	_, err := fmt.Fprintf(w, "%s  %s\n", last.Word, last.Clues)
	return err
}
