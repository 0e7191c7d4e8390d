// Record types for the answer cache and run log.
//
// Information Hiding:
// - SQLite schema hidden behind AnswerStore
// - Word fingerprinting handled internally
package storage

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Answer is a solved query.
type Answer struct {
	Word      string
	K         int64
	Mode      string
	Char      byte
	CreatedAt time.Time
	Hits      int
}

// Run summarizes one batch invocation.
type Run struct {
	ID         string
	Mode       string
	StartedAt  time.Time
	FinishedAt time.Time // zero while the run is in progress
	Total      int
	Failed     int
	Cached     int
}

// AnswerStore persists answers and batch runs.
type AnswerStore interface {
	// BeginRun records the start of a batch and returns its ID.
	BeginRun(ctx context.Context, mode string) (string, error)

	// FinishRun records the outcome of a batch.
	FinishRun(ctx context.Context, runID string, total, failed, cached int) error

	// StoreAnswer saves a solved query.
	StoreAnswer(ctx context.Context, a Answer) error

	// LookupAnswer returns a cached answer, or nil if none is stored.
	LookupAnswer(ctx context.Context, word string, k int64, mode string) (*Answer, error)

	// ListRuns returns the most recent runs first.
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// Close releases resources.
	Close() error
}

// WordHash fingerprints a word for the answer index.
// See: https://github.com/cespare/xxhash
func WordHash(word string) string {
	h := xxhash.Sum64String(word)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], h)
	return hex.EncodeToString(buf[:])
}
