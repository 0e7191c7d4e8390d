package substr

import "fmt"

// Merge resolves position residual (1-based) inside the block of substrings
// starting at positions, all of which hold the same byte of word. Equal
// substring values coming from different positions are counted once.
func Merge(word string, positions []int, residual int64) (byte, error) {
	if residual < 1 {
		return 0, ErrOutOfRange
	}
	if len(positions) == 0 {
		return 0, fmt.Errorf("%w: empty block", ErrInvariant)
	}

	n := len(word)
	f := newFrontier(word, positions)

	var running int64
	prev := ""
	nextLen := int64(f.head().len())
	for running+nextLen < residual {
		s := f.pop()
		if cur := s.substring(word); cur != prev {
			running += nextLen
			prev = cur
		}
		if s.advance(n) {
			f.push(s)
		}
		if f.Len() == 0 {
			return 0, fmt.Errorf("%w: frontier exhausted at %d of %d", ErrInvariant, running, residual)
		}
		nextLen = int64(f.head().len())
	}

	offset := residual - running - 1
	return f.head().substring(word)[offset], nil
}
