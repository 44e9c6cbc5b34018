package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuidle/internal/corpus"
	"github.com/verte-zerg/tuidle/internal/model"
)

func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	c, err := corpus.New(
		[]string{"match", "noobs", "frame", "abbey"},
		[]string{"rooty", "igloo", "elide", "babes", "crane", "slate", "adieu", "stomp"},
	)
	require.NoError(t, err)
	return c
}

func typeWord(s *Session, word string) {
	for _, r := range word {
		s.HandleInput(Char(r))
	}
}

func guess(s *Session, word string) {
	typeWord(s, word)
	s.HandleInput(Submit())
}

func TestNewSessionPicksTargetByMode(t *testing.T) {
	c := testCorpus(t)

	daily := NewSession(c, ModeWordle)
	assert.Equal(t, ModeWordle, daily.Mode())
	assert.Equal(t, c.WordOfTheDay(), daily.Target())

	random := NewSession(c, ModeRandomWord)
	assert.Equal(t, ModeRandomWord, random.Mode())
	assert.True(t, c.IsSolution(random.Target()))
}

func TestNewSessionWithTargetPanicsOutsideCorpus(t *testing.T) {
	c := testCorpus(t)
	assert.Panics(t, func() { NewSessionWithTarget(c, "zzzzz") })
	assert.NotPanics(t, func() { NewSessionWithTarget(c, "noobs") })
}

func TestEntryEditing(t *testing.T) {
	s := NewSessionWithTarget(testCorpus(t), "match")

	typeWord(s, "ab1-c")
	assert.Equal(t, "ABC", s.Entry())

	typeWord(s, "dEfg")
	assert.Equal(t, "ABCDE", s.Entry(), "entry is capped at five letters")

	s.HandleInput(Delete())
	assert.Equal(t, "ABCD", s.Entry())

	for i := 0; i < 10; i++ {
		s.HandleInput(Delete())
	}
	assert.Equal(t, "", s.Entry())

	s.HandleInput(Char('é'))
	assert.Equal(t, "", s.Entry())
}

func TestSubmitRequiresFullEntry(t *testing.T) {
	s := NewSessionWithTarget(testCorpus(t), "match")
	typeWord(s, "mat")
	s.HandleInput(Submit())

	assert.Empty(t, s.History())
	assert.Empty(t, s.LastError())
	assert.Equal(t, "MAT", s.Entry())
}

func TestInvalidGuessIsRecoverable(t *testing.T) {
	s := NewSessionWithTarget(testCorpus(t), "noobs")

	guess(s, "xxxxx")
	assert.Empty(t, s.History())
	assert.Equal(t, "Word 'XXXXX' is not valid.", s.LastError())
	assert.Equal(t, "XXXXX", s.Entry(), "entry is kept after a rejected submit")

	for i := 0; i < WordLength; i++ {
		s.HandleInput(Delete())
	}
	guess(s, "rooty")
	require.Len(t, s.History(), 1)
	assert.Empty(t, s.LastError())
	assert.Empty(t, s.Entry())
	assert.Equal(t, "x!!xx", s.History()[0].Clues.String())
}

func TestWinningGuessEndsGame(t *testing.T) {
	s := NewSessionWithTarget(testCorpus(t), "match")
	guess(s, "match")

	assert.True(t, s.IsWin())
	assert.True(t, s.IsOver())

	typeWord(s, "crane")
	s.HandleInput(Submit())
	assert.Empty(t, s.Entry(), "input is ignored once the game is over")
	assert.Len(t, s.History(), 1)
}

func TestSixMissesLose(t *testing.T) {
	s := NewSessionWithTarget(testCorpus(t), "match")
	words := []string{"crane", "slate", "adieu", "stomp", "rooty", "igloo", "elide"}
	for _, w := range words {
		guess(s, w)
		assert.LessOrEqual(t, len(s.History()), MaxGuesses)
	}

	assert.Len(t, s.History(), MaxGuesses)
	assert.True(t, s.IsOver())
	assert.False(t, s.IsWin())
}

func TestCluesNeverDecrease(t *testing.T) {
	s := NewSessionWithTarget(testCorpus(t), "noobs")
	prev := s.Clues()
	for _, w := range []string{"rooty", "igloo", "stomp", "babes", "noobs"} {
		guess(s, w)
		cur := s.Clues()
		for r, c := range prev {
			assert.GreaterOrEqual(t, cur[r], c, "clue for %c dropped after %s", r, w)
		}
		prev = cur
	}

	assert.Equal(t, ClueCorrect, s.Clue('o'))
	assert.Equal(t, ClueCorrect, s.Clue('S'))
	assert.Equal(t, ClueWrong, s.Clue('R'))
	assert.Equal(t, ClueDefault, s.Clue('Z'))
}

func TestCorrectClueSurvivesMisplacedRepeat(t *testing.T) {
	s := NewSessionWithTarget(testCorpus(t), "noobs")
	guess(s, "rooty")
	assert.Equal(t, ClueCorrect, s.Clue('O'))

	guess(s, "igloo")
	assert.Equal(t, ClueCorrect, s.Clue('O'))
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := NewSessionWithTarget(testCorpus(t), "noobs")
	guess(s, "rooty")

	h := s.History()
	h[0].Word = "MUTED"
	assert.Equal(t, "ROOTY", s.History()[0].Word)

	cl := s.Clues()
	cl['R'] = ClueCorrect
	assert.Equal(t, ClueWrong, s.Clue('R'))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("random-word")
	require.NoError(t, err)
	assert.Equal(t, ModeRandomWord, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeWordle, m)
	assert.Equal(t, "wordle", m.String())

	_, err = ParseMode("hard")
	assert.Error(t, err)
}

func TestRecord(t *testing.T) {
	c := testCorpus(t)
	start := time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC)

	daily := NewSession(c, ModeWordle)
	guess(daily, daily.Target())
	rec := daily.Record(42, start, start.Add(time.Minute))
	assert.Equal(t, "wordle", rec.Mode)
	assert.Equal(t, 42, rec.PuzzleNumber)
	assert.True(t, rec.Won)
	require.Len(t, rec.Guesses, 1)
	assert.Equal(t, "!!!!!", rec.Guesses[0].Clues)

	random := NewSessionWithTarget(c, "noobs")
	guess(random, "rooty")
	rec = random.Record(42, start, start)
	assert.Equal(t, "random-word", rec.Mode)
	assert.Equal(t, model.NoPuzzle, rec.PuzzleNumber)
	assert.False(t, rec.Won)
	assert.Equal(t, "NOOBS", rec.Target)
	assert.Equal(t, model.GuessRecord{Word: "ROOTY", Clues: "x!!xx"}, rec.Guesses[0])
}

func TestShareGridAndHeader(t *testing.T) {
	s := NewSessionWithTarget(testCorpus(t), "noobs")
	guess(s, "rooty")
	guess(s, "noobs")

	assert.Equal(t, "⬛🟩🟩⬛⬛\n🟩🟩🟩🟩🟩", ShareGrid(s.History()))
	assert.Equal(t, "Tuidle 12 2/6", ShareHeader("Tuidle", 12, s.History(), true))
	assert.Equal(t, "Tuidle X/6", ShareHeader("Tuidle", -1, s.History(), false))
}
