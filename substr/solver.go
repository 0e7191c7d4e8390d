package substr

import "fmt"

// Solver answers K-th character queries. It keeps its occurrence index
// between queries, so a Solver must not be shared across goroutines.
type Solver struct {
	mode BlockMode
	occ  Occurrences
}

// NewSolver creates a solver using mode for block lengths.
func NewSolver(mode BlockMode) *Solver {
	return &Solver{mode: mode}
}

// Mode returns the block mode of s.
func (s *Solver) Mode() BlockMode {
	return s.mode
}

// Solve returns the k-th (1-based) character of the ordered, deduplicated
// concatenation of all substrings of word.
func (s *Solver) Solve(word string, k int64) (byte, error) {
	if len(word) == 0 {
		return 0, &QueryError{WordLen: 0, K: k, Err: ErrEmptyWord}
	}
	if k < 1 {
		return 0, &QueryError{WordLen: len(word), K: k, Err: ErrOutOfRange}
	}

	s.occ.Reset(word)
	lens := blockLens(s.mode, word, &s.occ)

	c, residual, err := Locate(&s.occ, &lens, k)
	if err != nil {
		return 0, &QueryError{WordLen: len(word), K: k, Err: err}
	}

	ch, err := Merge(word, s.occ.Positions(c), residual)
	if err != nil {
		return 0, &QueryError{WordLen: len(word), K: k, Err: fmt.Errorf("block %q: %w", c, err)}
	}
	return ch, nil
}

// Total returns the length of the concatenated sequence as seen by the
// locator under the solver's mode.
func (s *Solver) Total(word string) int64 {
	s.occ.Reset(word)
	lens := blockLens(s.mode, word, &s.occ)
	var total int64
	for _, l := range lens {
		total += l
	}
	return total
}

// KthChar solves a single query in Distinct mode.
func KthChar(word string, k int64) (byte, error) {
	return NewSolver(Distinct).Solve(word, k)
}

// SequenceLength returns the length of the concatenation of all distinct
// substrings of word.
func SequenceLength(word string) int64 {
	return NewSolver(Distinct).Total(word)
}
