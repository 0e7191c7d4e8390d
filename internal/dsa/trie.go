// Package dsa provides the string data structures behind substrseq.
// SubstringSet uses go-radix for an ordered, deduplicated key set.
package dsa

import (
	"github.com/armon/go-radix"
)

// SubstringSet is a radix tree used as a sorted set of strings.
// Inserting the same value twice keeps one entry, and Walk visits the
// entries in lexicographic byte order.
//
// Time Complexity: O(k) per insert where k is key length
type SubstringSet struct {
	tree *radix.Tree
}

// NewSubstringSet creates an empty set.
func NewSubstringSet() *SubstringSet {
	return &SubstringSet{tree: radix.New()}
}

// Insert adds s to the set. It reports whether s was not already present.
func (t *SubstringSet) Insert(s string) bool {
	_, updated := t.tree.Insert(s, struct{}{})
	return !updated
}

// Contains reports whether s is in the set.
func (t *SubstringSet) Contains(s string) bool {
	_, found := t.tree.Get(s)
	return found
}

// Len returns the number of distinct entries.
func (t *SubstringSet) Len() int {
	return t.tree.Len()
}

// Walk calls fn for each entry in ascending order until fn returns false.
func (t *SubstringSet) Walk(fn func(s string) bool) {
	t.tree.Walk(func(k string, _ interface{}) bool {
		return !fn(k)
	})
}

// WithPrefix returns the entries starting with prefix, ascending.
func (t *SubstringSet) WithPrefix(prefix string) []string {
	var out []string
	t.tree.WalkPrefix(prefix, func(k string, _ interface{}) bool {
		out = append(out, k)
		return false
	})
	return out
}
