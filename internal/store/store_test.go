package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuidle/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "data", "tuidle.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, st.Close())
	})
	return st
}

func record(mode string, puzzle int, ended time.Time, won bool, words ...string) model.GameRecord {
	rec := model.GameRecord{
		StartedAt:    ended.Add(-2 * time.Minute),
		EndedAt:      ended,
		Mode:         mode,
		PuzzleNumber: puzzle,
		Target:       "noobs",
		Won:          won,
	}
	for _, w := range words {
		rec.Guesses = append(rec.Guesses, model.GuessRecord{Word: w, Clues: "x!!xx"})
	}
	return rec
}

func TestInsertGameRoundTrip(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	ended := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	id, err := st.InsertGame(ctx, record("wordle", 986, ended, true, "ROOTY", "NOOBS"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	games, err := st.ListGames(ctx, model.StatsConfig{})
	require.NoError(t, err)
	require.Len(t, games, 1)
	g := games[0]
	assert.Equal(t, id, g.ID)
	assert.Equal(t, "NOOBS", g.Target)
	assert.True(t, g.Won)
	assert.Equal(t, 2, g.GuessCount)
	assert.Equal(t, 986, g.PuzzleNumber)
	assert.True(t, g.EndedAt.Equal(ended), "ended_at %v, want %v", g.EndedAt, ended)

	guesses, err := st.ListGuesses(ctx, id)
	require.NoError(t, err)
	require.Len(t, guesses, 2)
	assert.Equal(t, "ROOTY", guesses[0].Word)
	assert.Equal(t, "NOOBS", guesses[1].Word)
}

func TestInsertGameKeepsExplicitID(t *testing.T) {
	st := openTestStore(t)
	rec := record("random-word", model.NoPuzzle, time.Now(), false)
	rec.ID = "fixed-id"

	id, err := st.InsertGame(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)

	_, err = st.InsertGame(context.Background(), rec)
	assert.Error(t, err, "duplicate id must fail")
}

func TestListGamesFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 4; i++ {
		mode := "wordle"
		if i%2 == 1 {
			mode = "random-word"
		}
		_, err := st.InsertGame(ctx, record(mode, i, base.AddDate(0, 0, i), true, "NOOBS"))
		require.NoError(t, err)
	}

	daily, err := st.ListGames(ctx, model.StatsConfig{Mode: "wordle"})
	require.NoError(t, err)
	assert.Len(t, daily, 2)

	since := base.AddDate(0, 0, 2)
	recent, err := st.ListGames(ctx, model.StatsConfig{Since: &since})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 2, recent[0].PuzzleNumber)

	last, err := st.ListGames(ctx, model.StatsConfig{Last: 1})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, 3, last[0].PuzzleNumber)
}

func TestListOpeners(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	a, err := st.InsertGame(ctx, record("wordle", 1, time.Now(), true, "CRANE", "NOOBS"))
	require.NoError(t, err)
	b, err := st.InsertGame(ctx, record("wordle", 2, time.Now(), true, "SLATE"))
	require.NoError(t, err)

	openers, err := st.ListOpeners(ctx, []string{a, b})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"CRANE", "SLATE"}, openers)

	none, err := st.ListOpeners(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestHasPlayedPuzzle(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	_, err := st.InsertGame(ctx, record("wordle", 100, time.Now(), false, "CRANE"))
	require.NoError(t, err)
	_, err = st.InsertGame(ctx, record("random-word", 101, time.Now(), false, "CRANE"))
	require.NoError(t, err)

	played, err := st.HasPlayedPuzzle(ctx, 100)
	require.NoError(t, err)
	assert.True(t, played)

	played, err = st.HasPlayedPuzzle(ctx, 101)
	require.NoError(t, err)
	assert.False(t, played, "random games do not count as puzzles")
}
