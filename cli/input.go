// Batch input parsing.
//
// Format: a query count T followed by T (word, K) pairs. Tokens are
// whitespace separated, so words cannot contain spaces.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Query is one (word, K) pair.
type Query struct {
	Word string
	K    int64
}

// ErrMalformedInput is returned when the batch input cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

// ReadQueries parses a batch of queries from r. maxWordLen bounds the token
// size the scanner accepts.
func ReadQueries(r io.Reader, maxWordLen int) ([]Query, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxWordLen+64)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if scanner.Scan() {
			return scanner.Text(), nil
		}
		if err := scanner.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", fmt.Errorf("%w: %s longer than %d bytes", ErrMalformedInput, what, maxWordLen)
			}
			return "", fmt.Errorf("reading %s: %w", what, err)
		}
		return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedInput, what)
	}

	tok, err := next("query count")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(tok)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: invalid query count %q", ErrMalformedInput, tok)
	}

	queries := make([]Query, 0, count)
	for i := 1; i <= count; i++ {
		word, err := next(fmt.Sprintf("word of query %d", i))
		if err != nil {
			return nil, err
		}
		tok, err := next(fmt.Sprintf("K of query %d", i))
		if err != nil {
			return nil, err
		}
		k, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: query %d: invalid K %q", ErrMalformedInput, i, tok)
		}
		queries = append(queries, Query{Word: word, K: k})
	}
	return queries, nil
}
