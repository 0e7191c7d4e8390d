package substr

// Locate walks the blocks of the word in ascending byte order and returns the
// byte c of the block holding position k along with k re-based to the start
// of that block.
func Locate(occ *Occurrences, lens *[256]int64, k int64) (byte, int64, error) {
	if k < 1 {
		return 0, 0, ErrOutOfRange
	}
	var running int64
	for _, c := range occ.Chars() {
		blockLen := lens[c]
		if running+blockLen >= k {
			return c, k - running, nil
		}
		running += blockLen
	}
	return 0, 0, ErrOutOfRange
}
