// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/tuidle/internal/model"
)

// MaxGuesses is the number of rows in the guess distribution.
const MaxGuesses = 6

const sparkChars = " .:-=+*#%@"

// Summary aggregates a sequence of games ordered by end time.
type Summary struct {
	Played        int
	Wins          int
	WinRate       float64
	CurrentStreak int
	MaxStreak     int
	AvgGuesses    float64
	// Distribution[i] counts wins in i+1 guesses.
	Distribution [MaxGuesses]int
}

// Summarize computes totals, streaks and the guess distribution.
func Summarize(games []model.GameAggregate) Summary {
	var s Summary
	s.Played = len(games)
	streak := 0
	guessSum := 0
	for _, g := range games {
		if !g.Won {
			streak = 0
			continue
		}
		s.Wins++
		streak++
		if streak > s.MaxStreak {
			s.MaxStreak = streak
		}
		guessSum += g.GuessCount
		if g.GuessCount >= 1 && g.GuessCount <= MaxGuesses {
			s.Distribution[g.GuessCount-1]++
		}
	}
	s.CurrentStreak = streak
	if s.Played > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Played)
	}
	if s.Wins > 0 {
		s.AvgGuesses = float64(guessSum) / float64(s.Wins)
	}
	return s
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		den := float64(i + 1)
		if i >= window {
			sum -= values[i-window]
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for values in [0, 1].
func Sparkline(values []float64) string {
	var b strings.Builder
	top := float64(len(sparkChars) - 1)
	for _, v := range values {
		idx := int(math.Round(math.Max(0, math.Min(1, v)) * top))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// WinSeries returns 1 for each win and 0 for each loss.
func WinSeries(games []model.GameAggregate) []float64 {
	out := make([]float64, len(games))
	for i, g := range games {
		if g.Won {
			out[i] = 1
		}
	}
	return out
}

// RenderSummary prints the headline numbers.
func RenderSummary(w io.Writer, s Summary) error {
	if s.Played == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Played: %d", s.Played),
		fmt.Sprintf("Win %%: %.0f", s.WinRate*100),
		fmt.Sprintf("Current Streak: %d", s.CurrentStreak),
		fmt.Sprintf("Max Streak: %d", s.MaxStreak),
		fmt.Sprintf("Avg Guesses: %.2f", s.AvgGuesses),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderForm prints a sparkline of the rolling win rate.
func RenderForm(w io.Writer, games []model.GameAggregate, window int) error {
	if len(games) == 0 {
		return nil
	}
	line := Sparkline(MovingAverage(WinSeries(games), window))
	_, err := fmt.Fprintf(w, "Form (last %d, rolling %d): [%s]\n\n", len(games), window, line)
	return err
}
