package game

import (
	"time"

	"github.com/verte-zerg/tuidle/internal/model"
)

// Record converts the session into a storable game record. Puzzle is the
// daily number, or model.NoPuzzle for random games.
func (s *Session) Record(puzzle int, startedAt, endedAt time.Time) model.GameRecord {
	if s.mode != ModeWordle {
		puzzle = model.NoPuzzle
	}
	rec := model.GameRecord{
		StartedAt:    startedAt,
		EndedAt:      endedAt,
		Mode:         s.mode.String(),
		PuzzleNumber: puzzle,
		Target:       s.target,
		Won:          s.IsWin(),
		Guesses:      make([]model.GuessRecord, 0, len(s.history)),
	}
	for _, g := range s.history {
		rec.Guesses = append(rec.Guesses, model.GuessRecord{Word: g.Word, Clues: g.Clues.String()})
	}
	return rec
}
