package substr

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when K is below 1 or past the end of the
	// concatenated sequence.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvariant signals an internal inconsistency: the merge frontier ran
	// dry or a cursor was advanced past the word.
	ErrInvariant = errors.New("invariant violation")

	// ErrEmptyWord is returned for zero-length words.
	ErrEmptyWord = errors.New("word must not be empty")
)

// QueryError describes a failed query.
type QueryError struct {
	WordLen int
	K       int64
	Err     error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query (len=%d, k=%d): %v", e.WordLen, e.K, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Kind returns a short machine-readable tag for err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, ErrInvariant):
		return "invariant_violation"
	case errors.Is(err, ErrEmptyWord):
		return "empty_word"
	default:
		return "error"
	}
}
