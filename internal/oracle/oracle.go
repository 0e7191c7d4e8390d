// Package oracle builds the ordered, deduplicated substring sequence of a
// word by brute force. It materializes O(n²) substrings and is only meant
// for small words in tests and the verify command.
package oracle

import (
	"strings"

	"github.com/richinex/substrseq/internal/dsa"
)

// Set returns every distinct substring of word.
func Set(word string) *dsa.SubstringSet {
	set := dsa.NewSubstringSet()
	for i := 0; i < len(word); i++ {
		for j := i + 1; j <= len(word); j++ {
			set.Insert(word[i:j])
		}
	}
	return set
}

// Sequence returns the distinct substrings of word in lexicographic order.
func Sequence(word string) []string {
	set := Set(word)
	out := make([]string, 0, set.Len())
	set.Walk(func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

// Concat returns the concatenation of Sequence(word).
func Concat(word string) string {
	var b strings.Builder
	for _, s := range Sequence(word) {
		b.WriteString(s)
	}
	return b.String()
}

// CharAt returns the 1-based k-th character of Concat(word).
func CharAt(word string, k int64) (byte, bool) {
	concat := Concat(word)
	if k < 1 || k > int64(len(concat)) {
		return 0, false
	}
	return concat[k-1], true
}

// BlockLens returns the total length of the distinct substrings per leading
// byte.
func BlockLens(word string) map[byte]int64 {
	out := make(map[byte]int64)
	for _, s := range Sequence(word) {
		out[s[0]] += int64(len(s))
	}
	return out
}
