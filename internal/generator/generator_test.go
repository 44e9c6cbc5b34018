package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickReturnsListMember(t *testing.T) {
	gen := New()
	words := []string{"crane", "slate", "adieu"}
	for i := 0; i < 50; i++ {
		require.Contains(t, words, gen.Pick(words))
	}
}

func TestSeededGeneratorsAgree(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Index(1000), b.Index(1000), "step %d", i)
	}
}

func TestIndexCoversRange(t *testing.T) {
	gen := NewSeeded(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		idx := gen.Index(4)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 4)
		seen[idx] = true
	}
	assert.Len(t, seen, 4)
}
