package substr

import (
	"container/heap"
)

// frontier is a min-heap of cursors ordered by the content of their current
// substring. Substrings are slices of word, so comparisons do not copy.
type frontier struct {
	word    string
	cursors []*cursor
}

func newFrontier(word string, positions []int) *frontier {
	f := &frontier{
		word:    word,
		cursors: make([]*cursor, 0, len(positions)),
	}
	for _, p := range positions {
		f.cursors = append(f.cursors, newCursor(p))
	}
	heap.Init(f)
	return f
}

func (f *frontier) Len() int { return len(f.cursors) }

func (f *frontier) Less(i, j int) bool {
	return f.cursors[i].substring(f.word) < f.cursors[j].substring(f.word)
}

func (f *frontier) Swap(i, j int) { f.cursors[i], f.cursors[j] = f.cursors[j], f.cursors[i] }

func (f *frontier) Push(x any) { f.cursors = append(f.cursors, x.(*cursor)) }

func (f *frontier) Pop() any {
	old := f.cursors
	last := len(old) - 1
	c := old[last]
	old[last] = nil
	f.cursors = old[:last]
	return c
}

func (f *frontier) head() *cursor {
	return f.cursors[0]
}

func (f *frontier) pop() *cursor {
	return heap.Pop(f).(*cursor)
}

func (f *frontier) push(c *cursor) {
	heap.Push(f, c)
}
