package substr

// cursor yields the substrings word[start:end] for end = start+1 .. n in
// increasing length.
type cursor struct {
	start int
	end   int // exclusive
}

func newCursor(start int) *cursor {
	return &cursor{start: start, end: start + 1}
}

func (c *cursor) substring(word string) string {
	return word[c.start:c.end]
}

func (c *cursor) len() int {
	return c.end - c.start
}

// advance moves to the next longer substring. It reports whether the cursor
// still points inside a word of length n.
func (c *cursor) advance(n int) bool {
	c.end++
	return c.end <= n
}
