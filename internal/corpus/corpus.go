// Package corpus holds the solution and extra word lists and selects targets.
package corpus

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/verte-zerg/tuidle/internal/generator"
	"github.com/verte-zerg/tuidle/internal/wordlist"
)

//go:embed data/solutions.txt
var embeddedSolutions string

//go:embed data/extras.txt
var embeddedExtras string

// Puzzle zero is local midnight of 2021-06-19. Changing it renumbers every puzzle.
const (
	epochYear     = 2021
	epochMonth    = time.June
	epochDay      = 19
	secondsPerDay = 86400
)

// LoadError reports a word list source that could not be used.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load word list %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Corpus is an immutable pair of word sets. It is safe to share between sessions.
type Corpus struct {
	solutions   []string
	solutionSet mapset.Set[string]
	extras      mapset.Set[string]
	gen         *generator.Generator
}

// Load builds a corpus from word list files. An empty path selects the embedded list.
func Load(solutionsPath, extrasPath string) (*Corpus, error) {
	solutions, err := readSource(solutionsPath, embeddedSolutions, "solutions")
	if err != nil {
		return nil, err
	}
	extras, err := readSource(extrasPath, embeddedExtras, "extras")
	if err != nil {
		return nil, err
	}
	return newCorpus(solutions, extras), nil
}

// New builds a corpus from in-memory lists.
func New(solutions, extras []string) (*Corpus, error) {
	s := wordlist.Normalize(solutions, wordlist.FilterFiveLetters)
	if len(s) == 0 {
		return nil, &LoadError{Source: "solutions", Err: errors.New("no five-letter words")}
	}
	e := wordlist.Normalize(extras, wordlist.FilterFiveLetters)
	if len(e) == 0 {
		return nil, &LoadError{Source: "extras", Err: errors.New("no five-letter words")}
	}
	return newCorpus(s, e), nil
}

func newCorpus(solutions, extras []string) *Corpus {
	return &Corpus{
		solutions:   solutions,
		solutionSet: mapset.NewThreadUnsafeSet(solutions...),
		extras:      mapset.NewThreadUnsafeSet(extras...),
		gen:         generator.New(),
	}
}

func readSource(path, embedded, label string) ([]string, error) {
	source := "embedded " + label
	var (
		raw []string
		err error
	)
	if path == "" {
		raw, err = wordlist.ReadWords(strings.NewReader(embedded))
	} else {
		source = path
		raw, err = wordlist.LoadWords(path)
	}
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	words := wordlist.Normalize(raw, wordlist.FilterFiveLetters)
	if len(words) == 0 {
		return nil, &LoadError{Source: source, Err: errors.New("no five-letter words")}
	}
	return words, nil
}

// IsValid reports whether word is an accepted guess, ignoring case.
func (c *Corpus) IsValid(word string) bool {
	needle := strings.ToLower(word)
	return c.solutionSet.Contains(needle) || c.extras.Contains(needle)
}

// IsSolution reports whether word can be chosen as a target, ignoring case.
func (c *Corpus) IsSolution(word string) bool {
	return c.solutionSet.Contains(strings.ToLower(word))
}

// Solutions returns the number of candidate targets.
func (c *Corpus) Solutions() int {
	return len(c.solutions)
}

// Extras returns the number of extra accepted guesses.
func (c *Corpus) Extras() int {
	return c.extras.Cardinality()
}

// WordOfTheDay returns today's target in uppercase.
func (c *Corpus) WordOfTheDay() string {
	return c.WordOfTheDayAt(time.Now())
}

// WordOfTheDayAt returns the target for the local calendar date of t.
func (c *Corpus) WordOfTheDayAt(t time.Time) string {
	n := len(c.solutions)
	idx := DayIndex(t) % n
	if idx < 0 {
		idx += n
	}
	return strings.ToUpper(c.solutions[idx])
}

// RandomWord returns a uniformly chosen target in uppercase.
func (c *Corpus) RandomWord() string {
	return strings.ToUpper(c.gen.Pick(c.solutions))
}

// DayIndex returns the number of whole days between the epoch and the local
// date of t, both taken at midnight in t's location.
func DayIndex(t time.Time) int {
	loc := t.Location()
	y, m, d := t.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	start := time.Date(epochYear, epochMonth, epochDay, 0, 0, 0, 0, loc)
	return int(floorDiv(today.Unix()-start.Unix(), secondsPerDay))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
