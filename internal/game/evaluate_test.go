package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		target string
		guess  string
		want   string
	}{
		{target: "MATCH", guess: "MATCH", want: "!!!!!"},
		{target: "NOOBS", guess: "ROOTY", want: "x!!xx"},
		{target: "NOOBS", guess: "IGLOO", want: "xxx??"},
		{target: "FRAME", guess: "ELIDE", want: "xxxx!"},
		{target: "ABBEY", guess: "BABES", want: "??!!x"},
		{target: "CRANE", guess: "NNNNN", want: "xxx!x"},
		{target: "EERIE", guess: "EEEEE", want: "!!xx!"},
		{target: "SPEED", guess: "ERASE", want: "?xx??"},
	}

	for _, tt := range tests {
		t.Run(tt.target+"_"+tt.guess, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.target, tt.guess).String())
		})
	}
}

// randomWord draws from a small alphabet so duplicate letters are common.
func randomWord(rnd *rand.Rand) string {
	const alphabet = "ABEOS"
	b := make([]byte, WordLength)
	for i := range b {
		b[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(b)
}

func TestEvaluateProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for n := 0; n < 2000; n++ {
		target, guess := randomWord(rnd), randomWord(rnd)
		got := Evaluate(target, guess)

		require.Equal(t, got, Evaluate(target, guess), "purity %s/%s", target, guess)
		require.Equal(t, AllCorrect, Evaluate(target, target), "self match %s", target)

		for i := 0; i < WordLength; i++ {
			if target[i] == guess[i] {
				require.Equal(t, ClueCorrect, got[i], "primacy %s/%s at %d", target, guess, i)
			} else {
				require.NotEqual(t, ClueCorrect, got[i])
			}
		}

		for ch := byte('A'); ch <= 'Z'; ch++ {
			inGuess, inTarget, scored := 0, 0, 0
			for i := 0; i < WordLength; i++ {
				if guess[i] == ch {
					inGuess++
					if got[i] == ClueCorrect || got[i] == CluePresent {
						scored++
					}
				}
				if target[i] == ch {
					inTarget++
				}
			}
			require.Equal(t, min(inGuess, inTarget), scored, "letter %c in %s/%s", ch, target, guess)
		}
	}
}

func TestEvaluateDoesNotMutateArguments(t *testing.T) {
	target, guess := "ABBEY", "BABES"
	Evaluate(target, guess)
	assert.Equal(t, "ABBEY", target)
	assert.Equal(t, "BABES", guess)
}

func TestClueOrderAndSymbols(t *testing.T) {
	assert.Less(t, ClueDefault, ClueWrong)
	assert.Less(t, ClueWrong, CluePresent)
	assert.Less(t, CluePresent, ClueCorrect)

	assert.Equal(t, byte(' '), ClueDefault.Symbol())
	assert.Equal(t, "correct", ClueCorrect.String())
}

func TestParseClues(t *testing.T) {
	got, err := ParseClues("x!? x")
	require.NoError(t, err)
	assert.Equal(t, Clues{ClueWrong, ClueCorrect, CluePresent, ClueDefault, ClueWrong}, got)
	assert.Equal(t, "x!? x", got.String())

	_, err = ParseClues("x!")
	assert.Error(t, err)
	_, err = ParseClues("x!!x#")
	assert.Error(t, err)
}
