package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuidle/internal/model"
)

func games(results ...int) []model.GameAggregate {
	out := make([]model.GameAggregate, len(results))
	for i, n := range results {
		out[i] = model.GameAggregate{Won: n > 0, GuessCount: n, Target: "NOOBS", Mode: "wordle"}
		if n <= 0 {
			out[i].GuessCount = MaxGuesses
		}
	}
	return out
}

func TestSummarize(t *testing.T) {
	s := Summarize(games(3, 4, 0, 2, 2, 5))
	assert.Equal(t, 6, s.Played)
	assert.Equal(t, 5, s.Wins)
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.MaxStreak)
	assert.Equal(t, [MaxGuesses]int{0, 2, 1, 1, 1, 0}, s.Distribution)
	assert.InDelta(t, 3.2, s.AvgGuesses, 1e-9)
	assert.InDelta(t, 5.0/6.0, s.WinRate, 1e-9)
}

func TestSummarizeLossResetsCurrentStreak(t *testing.T) {
	s := Summarize(games(1, 2, 3, 4, 0))
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 4, s.MaxStreak)

	empty := Summarize(nil)
	assert.Zero(t, empty.Played)
	assert.Zero(t, empty.WinRate)
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{1, 0, 1, 1}, 2)
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.5, 1}, got, 1e-9)
}

func TestSparklineClampsToRange(t *testing.T) {
	assert.Equal(t, " +@@ ", Sparkline([]float64{0, 0.5, 1, 2, -1}))
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, Summarize(games(3, 0))))
	for _, want := range []string{"Played: 2", "Win %: 50", "Max Streak: 1", "Avg Guesses: 3.00"} {
		assert.Contains(t, buf.String(), want)
	}

	buf.Reset()
	require.NoError(t, RenderSummary(&buf, Summary{}))
	assert.Contains(t, buf.String(), "No games found.")
}
