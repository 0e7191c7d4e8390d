package substr

import (
	"fmt"
	"strings"

	"github.com/richinex/substrseq/internal/dsa"
)

// BlockMode selects how block lengths are computed by the locator.
type BlockMode int

const (
	// Distinct counts each distinct substring value once, matching what the
	// merge phase walks.
	Distinct BlockMode = iota

	// ClosedForm uses Σ (n-p)(n-p+1)/2 over the occurrences of a byte. It
	// counts repeated substring values once per start position, so for words
	// with repeats it overstates block lengths: K can land in the wrong
	// block or past the end of the deduplicated block (ErrInvariant).
	ClosedForm
)

func (m BlockMode) String() string {
	switch m {
	case Distinct:
		return "distinct"
	case ClosedForm:
		return "closed-form"
	default:
		return fmt.Sprintf("BlockMode(%d)", int(m))
	}
}

// ParseBlockMode converts a mode name to a BlockMode.
func ParseBlockMode(s string) (BlockMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "distinct":
		return Distinct, nil
	case "closed-form", "closedform", "closed":
		return ClosedForm, nil
	default:
		return 0, fmt.Errorf("unknown block mode: %q", s)
	}
}

// ClosedFormBlockLen returns 1+2+...+(n-p) summed over positions, i.e. the
// characters of every substring starting at those positions before
// deduplication.
func ClosedFormBlockLen(n int, positions []int) int64 {
	var total int64
	for _, p := range positions {
		l := int64(n - p)
		total += l * (l + 1) / 2
	}
	return total
}

// DistinctBlockLens returns, per leading byte, the length of the block of
// distinct substrings of word starting with that byte.
func DistinctBlockLens(word string) [256]int64 {
	return dsa.BuildSuffixArray(word).DistinctPrefixChars()
}

// blockLens computes the length of every block of word under mode.
func blockLens(mode BlockMode, word string, occ *Occurrences) [256]int64 {
	if mode == Distinct {
		return DistinctBlockLens(word)
	}
	var lens [256]int64
	for _, c := range occ.Chars() {
		lens[c] = ClosedFormBlockLen(occ.WordLen(), occ.Positions(c))
	}
	return lens
}
