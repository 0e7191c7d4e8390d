// Package storage provides SQLite persistence for solved queries.
//
// Information Hiding:
// - SQLite connection management hidden behind interface
// - Schema details encapsulated
// - Thread-safe via sql.DB's built-in connection pooling

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteStorage implements AnswerStore using SQLite.
type SqliteStorage struct {
	db *sql.DB
}

// OpenSqlite opens or creates a SQLite database at the given path.
// Creates parent directories if they don't exist.
func OpenSqlite(path string) (*SqliteStorage, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	storage := &SqliteStorage{db: db}
	if err := storage.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

// NewSqliteInMemory creates an in-memory database (useful for testing).
func NewSqliteInMemory() (*SqliteStorage, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	storage := &SqliteStorage{db: db}
	if err := storage.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

// Close closes the database connection.
func (s *SqliteStorage) Close() error {
	return s.db.Close()
}

func (s *SqliteStorage) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			finished_at INTEGER,
			total INTEGER NOT NULL DEFAULT 0,
			failed INTEGER NOT NULL DEFAULT 0,
			cached INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_runs_started
		ON runs(started_at DESC);

		CREATE TABLE IF NOT EXISTS answers (
			word_hash TEXT NOT NULL,
			word TEXT NOT NULL,
			k INTEGER NOT NULL,
			mode TEXT NOT NULL,
			answer INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			hits INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (word_hash, k, mode, word)
		);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// BeginRun records the start of a batch run.
func (s *SqliteStorage) BeginRun(ctx context.Context, mode string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (run_id, mode, started_at) VALUES (?, ?, ?)",
		id, mode, time.Now().UnixNano())
	if err != nil {
		return "", fmt.Errorf("failed to begin run: %w", err)
	}
	return id, nil
}

// FinishRun records the outcome of a batch run.
func (s *SqliteStorage) FinishRun(ctx context.Context, runID string, total, failed, cached int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE runs SET finished_at = ?, total = ?, failed = ?, cached = ? WHERE run_id = ?",
		time.Now().UnixNano(), total, failed, cached, runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to finish run: unknown run %q", runID)
	}
	return nil
}

// StoreAnswer saves a solved query, replacing any previous entry.
func (s *SqliteStorage) StoreAnswer(ctx context.Context, a Answer) error {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO answers
		(word_hash, word, k, mode, answer, created_at, hits)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		WordHash(a.Word),
		a.Word,
		a.K,
		a.Mode,
		int(a.Char),
		createdAt.Unix(),
		a.Hits,
	)
	if err != nil {
		return fmt.Errorf("failed to store answer: %w", err)
	}
	return nil
}

// LookupAnswer returns the cached answer for (word, k, mode) and bumps its
// hit count. Returns nil, nil if not found.
func (s *SqliteStorage) LookupAnswer(ctx context.Context, word string, k int64, mode string) (*Answer, error) {
	hash := WordHash(word)

	var answer int
	var createdAt int64
	var hits int
	err := s.db.QueryRowContext(ctx, `
		SELECT answer, created_at, hits FROM answers
		WHERE word_hash = ? AND k = ? AND mode = ? AND word = ?`,
		hash, k, mode, word).Scan(&answer, &createdAt, &hits)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up answer: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"UPDATE answers SET hits = hits + 1 WHERE word_hash = ? AND k = ? AND mode = ? AND word = ?",
		hash, k, mode, word)
	if err != nil {
		return nil, fmt.Errorf("failed to update hit count: %w", err)
	}

	return &Answer{
		Word:      word,
		K:         k,
		Mode:      mode,
		Char:      byte(answer),
		CreatedAt: time.Unix(createdAt, 0),
		Hits:      hits + 1,
	}, nil
}

// ListRuns returns up to limit runs, most recent first.
func (s *SqliteStorage) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, mode, started_at, finished_at, total, failed, cached
		FROM runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{} // Start with empty slice, not nil
	for rows.Next() {
		var r Run
		var startedAt int64
		var finishedAt sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Mode, &startedAt, &finishedAt, &r.Total, &r.Failed, &r.Cached); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.StartedAt = time.Unix(0, startedAt)
		if finishedAt.Valid {
			r.FinishedAt = time.Unix(0, finishedAt.Int64)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// Verify SqliteStorage implements AnswerStore
var _ AnswerStore = (*SqliteStorage)(nil)
