// Package store handles SQLite persistence of finished games.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/verte-zerg/tuidle/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for game history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		closeQuietly(db, "database")
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			mode TEXT NOT NULL,
			puzzle_number INTEGER NOT NULL,
			target TEXT NOT NULL,
			won INTEGER NOT NULL,
			guess_count INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS game_guesses (
			game_id TEXT NOT NULL,
			idx INTEGER NOT NULL,
			word TEXT NOT NULL,
			clues TEXT NOT NULL,
			PRIMARY KEY (game_id, idx)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_games_puzzle ON games(mode, puzzle_number);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertGame stores a finished game and its guesses in one transaction and
// returns the game ID, generating one when rec.ID is empty.
func (s *Store) InsertGame(ctx context.Context, rec model.GameRecord) (id string, err error) {
	id = rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
				log.Warn().Err(rerr).Str("game", id).Msg("rollback failed")
			}
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO games (id, started_at, ended_at, mode, puzzle_number, target, won, guess_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.EndedAt.UTC().Format(time.RFC3339Nano),
		rec.Mode,
		rec.PuzzleNumber,
		strings.ToUpper(rec.Target),
		rec.Won,
		len(rec.Guesses),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert game: %w", err)
	}

	for i, g := range rec.Guesses {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO game_guesses (game_id, idx, word, clues) VALUES (?, ?, ?, ?)`,
			id, i, g.Word, g.Clues,
		); err != nil {
			return "", fmt.Errorf("failed to insert guess %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit game: %w", err)
	}
	return id, nil
}

// ListGames returns games filtered by the stats config, oldest first. Last
// keeps only the most recent games.
func (s *Store) ListGames(ctx context.Context, cfg model.StatsConfig) ([]model.GameAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, cfg.Mode)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.UTC().Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, mode, puzzle_number, target, won, guess_count
		FROM games
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer closeQuietly(rows, "rows")

	var games []model.GameAggregate
	for rows.Next() {
		var agg model.GameAggregate
		var endedAt string
		if err := rows.Scan(&agg.ID, &endedAt, &agg.Mode, &agg.PuzzleNumber, &agg.Target, &agg.Won, &agg.GuessCount); err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ended_at for %s: %w", agg.ID, err)
		}
		agg.EndedAt = parsed.Local()
		games = append(games, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(games) > cfg.Last {
		games = games[len(games)-cfg.Last:]
	}
	return games, nil
}

// ListGuesses returns the guesses of one game in play order.
func (s *Store) ListGuesses(ctx context.Context, gameID string) ([]model.GuessRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, clues FROM game_guesses WHERE game_id = ? ORDER BY idx ASC`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guesses: %w", err)
	}
	defer closeQuietly(rows, "rows")

	var guesses []model.GuessRecord
	for rows.Next() {
		var g model.GuessRecord
		if err := rows.Scan(&g.Word, &g.Clues); err != nil {
			return nil, fmt.Errorf("failed to scan guess: %w", err)
		}
		guesses = append(guesses, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return guesses, nil
}

// ListOpeners returns the first guess of each of the given games.
func (s *Store) ListOpeners(ctx context.Context, gameIDs []string) ([]string, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(gameIDs))
	args := make([]any, len(gameIDs))
	for i, id := range gameIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT word FROM game_guesses
		WHERE idx = 0 AND game_id IN (%s)`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query openers: %w", err)
	}
	defer closeQuietly(rows, "rows")

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("failed to scan opener: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// HasPlayedPuzzle reports whether a daily game with this number was recorded.
func (s *Store) HasPlayedPuzzle(ctx context.Context, puzzle int) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM games WHERE mode = 'wordle' AND puzzle_number = ?`, puzzle,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to look up puzzle %d: %w", puzzle, err)
	}
	return n > 0, nil
}

type closer interface {
	Close() error
}

func closeQuietly(c closer, what string) {
	if err := c.Close(); err != nil {
		log.Warn().Err(err).Str("resource", what).Msg("close failed")
	}
}
