// Package generator picks random target words.
package generator

import (
	"math/rand"
	"sync"
	"time"
)

// Generator produces random picks from word lists. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Index returns a uniform index in [0, n). n must be positive.
func (g *Generator) Index(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Intn(n)
}

// Pick selects a word uniformly. words must not be empty.
func (g *Generator) Pick(words []string) string {
	return words[g.Index(len(words))]
}
