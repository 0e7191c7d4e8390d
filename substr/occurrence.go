package substr

// Occurrences maps every byte value of a word to its positions in the word.
// Positions per byte are strictly increasing. Reset reuses the backing
// slices so one Occurrences can serve many queries.
type Occurrences struct {
	positions [256][]int
	present   [256]bool
	n         int
}

// Reset rebuilds the index for word in a single left-to-right pass.
func (o *Occurrences) Reset(word string) {
	for c := range o.positions {
		o.positions[c] = o.positions[c][:0]
		o.present[c] = false
	}
	o.n = len(word)
	for i := 0; i < len(word); i++ {
		c := word[i]
		o.positions[c] = append(o.positions[c], i)
		o.present[c] = true
	}
}

// WordLen returns the length of the indexed word.
func (o *Occurrences) WordLen() int {
	return o.n
}

// Positions returns the positions of c. The slice is owned by o and is
// only valid until the next Reset.
func (o *Occurrences) Positions(c byte) []int {
	return o.positions[c]
}

// Chars returns the distinct bytes of the word in ascending order.
func (o *Occurrences) Chars() []byte {
	var out []byte
	for c := 0; c < len(o.present); c++ {
		if o.present[c] {
			out = append(out, byte(c))
		}
	}
	return out
}
