package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFiveLetters(t *testing.T) {
	assert.True(t, FilterFiveLetters("hello"))
	for _, word := range []string{"", "hi", "hellos", "héllo", "co-op", "Hello", "he1lo"} {
		assert.False(t, FilterFiveLetters(word), "expected %q to be rejected", word)
	}
}

func TestNormalizeLowercasesAndDedupes(t *testing.T) {
	got := Normalize([]string{"Crane", " slate ", "CRANE", "toolong", "adieu"}, FilterFiveLetters)
	assert.Equal(t, []string{"crane", "slate", "adieu"}, got)
}

func TestReadWordsSkipsBlankLines(t *testing.T) {
	words, err := ReadWords(strings.NewReader("crane\n\n  slate  \n\t\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, words)
}

func TestReadWordsRejectsEmptyInput(t *testing.T) {
	_, err := ReadWords(strings.NewReader("\n \n"))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadWordsMissingFile(t *testing.T) {
	_, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadWordsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\n"), 0o644))

	words, err := LoadWords(path)
	require.NoError(t, err)
	assert.Len(t, words, 2)
}
