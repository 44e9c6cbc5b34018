// Package model defines shared data structures.
package model

import "time"

// NoPuzzle marks a game whose target was not the daily word.
const NoPuzzle = -1

// Config defines play settings after merging flags and the config file.
type Config struct {
	Mode           string
	WordListPath   string
	DictionaryPath string
	Record         bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Mode  string
	Since *time.Time
	Last  int
}

// GameRecord captures a finished game.
type GameRecord struct {
	ID           string
	StartedAt    time.Time
	EndedAt      time.Time
	Mode         string
	PuzzleNumber int
	Target       string
	Won          bool
	Guesses      []GuessRecord
}

// GuessRecord stores one scored guess; Clues uses the symbol code ("x!?..").
type GuessRecord struct {
	Word  string
	Clues string
}

// GameAggregate summarizes a game for reporting.
type GameAggregate struct {
	ID           string
	EndedAt      time.Time
	Mode         string
	PuzzleNumber int
	Target       string
	Won          bool
	GuessCount   int
}
