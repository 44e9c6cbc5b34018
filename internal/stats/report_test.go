package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuidle/internal/model"
	"github.com/verte-zerg/tuidle/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "tuidle.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, st.Close())
	})

	ctx := context.Background()
	for i, opener := range []string{"CRANE", "SLATE", "CRANE"} {
		end := time.Unix(0, 0).Add(time.Duration(i) * time.Hour)
		rec := model.GameRecord{
			StartedAt:    end.Add(-time.Minute),
			EndedAt:      end,
			Mode:         "wordle",
			PuzzleNumber: i,
			Target:       "NOOBS",
			Won:          true,
			Guesses: []model.GuessRecord{
				{Word: opener, Clues: "xxxxx"},
				{Word: "NOOBS", Clues: "!!!!!"},
			},
		}
		_, err := st.InsertGame(ctx, rec)
		require.NoError(t, err)
	}

	report, err := BuildReport(ctx, st, model.StatsConfig{Mode: "wordle", Last: 2})
	require.NoError(t, err)
	require.Len(t, report.Games, 2)
	assert.Equal(t, 1, report.Games[0].PuzzleNumber)
	assert.Equal(t, 2, report.Games[1].PuzzleNumber)
	assert.Equal(t, 2, report.Summary.Distribution[1])
	assert.Equal(t, 2, report.Summary.CurrentStreak)
	assert.Len(t, report.Openers, 2, "openers come from the last two games")

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, report, 20, false))
	for _, want := range []string{"Summary", "Guess Distribution", "Form", "Favourite Openers", "History"} {
		assert.Contains(t, buf.String(), want)
	}
}
