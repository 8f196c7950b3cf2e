// Package storage keeps the run history in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Run outcomes as stored in the outcome column.
const (
	OutcomeGameOver = "game_over"
	OutcomeRestart  = "restart"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished session.
type RunRecord struct {
	ID        int64
	Outcome   string // OutcomeGameOver or OutcomeRestart
	FinalSize int
	Eaten     int
	Hits      int
	Seed      int64
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Runs       int
	Wins       int // Runs that ended by restarting after a win
	BestSize   int
	AvgSize    float64
	TotalEaten int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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
			outcome TEXT NOT NULL,
			final_size INTEGER NOT NULL,
			eaten INTEGER NOT NULL DEFAULT 0,
			hits INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_size ON runs(final_size DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished session and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.Outcome == "" {
		return 0, errors.New("storage: run has no outcome")
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (outcome, final_size, eaten, hits, seed, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Outcome, r.FinalSize, r.Eaten, r.Hits, r.Seed, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns returns the limit largest runs, biggest dragon first.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, final_size, eaten, hits, seed, duration_ms, created_at
		 FROM runs
		 ORDER BY final_size DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// AllRuns returns every run, newest first.
func (s *Store) AllRuns() ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, outcome, final_size, eaten, hits, seed, duration_ms, created_at
		 FROM runs
		 ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]RunRecord, error) {
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Outcome, &r.FinalSize, &r.Eaten, &r.Hits, &r.Seed, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestSize returns the largest final size ever recorded, or 0.
func (s *Store) BestSize() (int, error) {
	var size sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(final_size) FROM runs").Scan(&size)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best size: %w", err)
	}

	if !size.Valid {
		return 0, nil
	}
	return int(size.Int64), nil
}

// Stats aggregates every recorded run.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(final_size), 0),
		        COALESCE(AVG(final_size), 0),
		        COALESCE(SUM(eaten), 0),
		        MAX(created_at)
		 FROM runs`,
		OutcomeRestart,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestSize, &stats.AvgSize, &stats.TotalEaten, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string values of a DATETIME column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
