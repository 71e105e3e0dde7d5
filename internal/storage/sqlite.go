// Package storage provides SQLite-based persistence for run results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single finished run.
type RunEntry struct {
	ID        int64
	Seed      int64
	Score     int
	Distance  float64
	Level     int
	Gems      int
	Letters   int
	Won       bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			distance REAL NOT NULL,
			level INTEGER NOT NULL,
			gems INTEGER NOT NULL DEFAULT 0,
			letters INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun records a finished run and returns its row ID.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (seed, score, distance, level, gems, letters, won)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Seed, run.Score, run.Distance, run.Level, run.Gems, run.Letters, run.Won,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return res.LastInsertId()
}

// TopRuns returns up to limit runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, seed, score, distance, level, gems, letters, won, created_at
		 FROM runs ORDER BY score DESC, created_at ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// RecentRuns returns up to limit runs ordered by recency.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, seed, score, distance, level, gems, letters, won, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestScore returns the highest recorded score, or 0 with no rows.
func (s *Store) BestScore() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(score) FROM runs`).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return int(best.Int64), nil
}

func scanRuns(rows *sql.Rows) ([]RunEntry, error) {
	var runs []RunEntry
	for rows.Next() {
		var r RunEntry
		if err := rows.Scan(&r.ID, &r.Seed, &r.Score, &r.Distance, &r.Level,
			&r.Gems, &r.Letters, &r.Won, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
