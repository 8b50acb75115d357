package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lexandes/agent/internal/domain"
)

// SQLiteStore implements Store using SQLite. Runs are stored as opaque JSON
// values keyed by run ID, with status and timestamps denormalized into
// columns for listing. Law texts live in their own table, keyed by law ID.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			state TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at)`,
		`CREATE TABLE IF NOT EXISTS law_texts (
			law_id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			cached_at DATETIME NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveRun upserts the full run state under its ID. UpdatedAt is refreshed on
// every write; there is no optimistic concurrency check because each run has
// a single writer (the executor).
func (s *SQLiteStore) SaveRun(ctx context.Context, run *domain.Run) error {
	run.UpdatedAt = time.Now()

	state, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to serialize run %s: %w", run.RunID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, status, created_at, updated_at, state) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at, state = excluded.state`,
		run.RunID, run.Status, run.CreatedAt, run.UpdatedAt, string(state))
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.RunID, err)
	}
	return nil
}

// GetRun retrieves a run by ID, returning (nil, nil) when absent.
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	var state string
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM runs WHERE run_id = ?`, runID).Scan(&state)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	var run domain.Run
	if err := json.Unmarshal([]byte(state), &run); err != nil {
		return nil, fmt.Errorf("corrupted state for run %s: %w", runID, err)
	}
	return &run, nil
}

// ListRuns returns up to limit runs, most recently created first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*domain.Run, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT state FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		var state string
		if err := rows.Scan(&state); err != nil {
			return nil, err
		}
		var run domain.Run
		if err := json.Unmarshal([]byte(state), &run); err != nil {
			return nil, fmt.Errorf("corrupted run state: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// GetLawText returns the cached text for a law, or "" if not cached.
func (s *SQLiteStore) GetLawText(ctx context.Context, lawID string) (string, error) {
	var text string
	err := s.db.QueryRowContext(ctx,
		`SELECT text FROM law_texts WHERE law_id = ?`, lawID).Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load law text %s: %w", lawID, err)
	}
	return text, nil
}

// PutLawText caches the text for a law.
func (s *SQLiteStore) PutLawText(ctx context.Context, lawID, text string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO law_texts (law_id, text, cached_at) VALUES (?, ?, ?)
		 ON CONFLICT(law_id) DO UPDATE SET text = excluded.text, cached_at = excluded.cached_at`,
		lawID, text, time.Now())
	if err != nil {
		return fmt.Errorf("failed to cache law text %s: %w", lawID, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
