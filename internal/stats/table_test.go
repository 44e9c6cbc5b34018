package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuidle/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Word", "Games", "Note"}
	rows := [][]string{
		{"CRANE", "12", "ok"},
		{"SLATE", "3", "🟩🟩"},
	}
	rightAlign := map[int]bool{1: true}

	assert.Equal(t, []string{
		"Word  Games Note",
		"CRANE    12 ok",
		"SLATE     3 🟩🟩",
	}, formatTable(headers, rows, rightAlign))
}

func TestRenderHistoryNewestFirst(t *testing.T) {
	day := time.Date(2024, 5, 1, 8, 30, 0, 0, time.Local)
	games := []model.GameAggregate{
		{EndedAt: day, Mode: "wordle", PuzzleNumber: 1047, Target: "CRANE", Won: true, GuessCount: 4},
		{EndedAt: day.Add(time.Hour), Mode: "random-word", PuzzleNumber: model.NoPuzzle, Target: "SLATE", Won: false, GuessCount: 6},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderHistory(&buf, games))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4, buf.String())
	assert.Contains(t, lines[2], "SLATE")
	assert.True(t, strings.HasSuffix(lines[2], "X/6"), "newest loss first: %q", lines[2])
	assert.Contains(t, lines[2], " - ", "random games have no puzzle number")
	assert.Contains(t, lines[3], "1047")
	assert.True(t, strings.HasSuffix(lines[3], "4/6"), "daily win last: %q", lines[3])
}
