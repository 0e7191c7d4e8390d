// Brute-force verification against the oracle.

package cli

import (
	"fmt"
	"io"

	"github.com/richinex/substrseq/internal/oracle"
	"github.com/richinex/substrseq/substr"
)

// MaxVerifyWordLen bounds words accepted by Verify; the oracle materializes
// every substring.
const MaxVerifyWordLen = 40

// Divergence is a K where the solver disagrees with the oracle.
type Divergence struct {
	K       int64
	Want    byte
	PastEnd bool // K is beyond the oracle's sequence
	Got     byte
	Err     error
}

// Verify compares the solver with the oracle for every K from 1 to the
// larger of the two sequence lengths.
func Verify(word string, mode substr.BlockMode) ([]Divergence, error) {
	if len(word) == 0 {
		return nil, substr.ErrEmptyWord
	}
	if len(word) > MaxVerifyWordLen {
		return nil, fmt.Errorf("word too long to verify: %d > %d", len(word), MaxVerifyWordLen)
	}

	concat := oracle.Concat(word)
	solver := substr.NewSolver(mode)
	limit := solver.Total(word)
	if int64(len(concat)) > limit {
		limit = int64(len(concat))
	}

	var out []Divergence
	for k := int64(1); k <= limit; k++ {
		got, err := solver.Solve(word, k)
		if k > int64(len(concat)) {
			// Past the oracle's end only an out-of-range error agrees.
			if substr.Kind(err) != "out_of_range" {
				out = append(out, Divergence{K: k, PastEnd: true, Got: got, Err: err})
			}
			continue
		}
		want := concat[k-1]
		if err != nil || got != want {
			out = append(out, Divergence{K: k, Want: want, Got: got, Err: err})
		}
	}
	return out, nil
}

// PrintDivergences writes a human-readable verification report.
func PrintDivergences(w io.Writer, word string, mode substr.BlockMode, divs []Divergence) {
	total := substr.SequenceLength(word)
	if len(divs) == 0 {
		fmt.Fprintf(w, "%s mode agrees with brute force for all %d positions\n", mode, total)
		return
	}
	fmt.Fprintf(w, "%s mode diverges at %d positions (sequence length %d):\n", mode, len(divs), total)
	for _, d := range divs {
		want := "past end"
		if !d.PastEnd {
			want = fmt.Sprintf("%q", d.Want)
		}
		if d.Err != nil {
			fmt.Fprintf(w, "  k=%d want %s, got error: %v\n", d.K, want, d.Err)
		} else {
			fmt.Fprintf(w, "  k=%d want %s, got %q\n", d.K, want, d.Got)
		}
	}
}
