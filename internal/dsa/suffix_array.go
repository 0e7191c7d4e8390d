// Suffix array over a word, used to count distinct substrings per leading byte.
package dsa

import (
	"sort"
)

// SuffixArray holds the sorted suffixes of Text together with their LCP.
type SuffixArray struct {
	Text string // Indexed word
	SA   []int  // SA[i] = start of the i-th smallest suffix
	LCP  []int  // LCP[i] = common prefix length of SA[i] and SA[i-1]; LCP[0] = 0
	Rank []int  // Rank[p] = index of suffix p in SA
}

// BuildSuffixArray sorts the suffixes of text by prefix doubling and fills
// the LCP array.
// Time Complexity: O(n log² n)
func BuildSuffixArray(text string) *SuffixArray {
	n := len(text)
	sa := &SuffixArray{
		Text: text,
		SA:   make([]int, n),
		Rank: make([]int, n),
	}
	if n == 0 {
		sa.LCP = []int{}
		return sa
	}

	for i := 0; i < n; i++ {
		sa.SA[i] = i
		sa.Rank[i] = int(text[i])
	}

	// rankAt returns -1 past the end so shorter suffixes sort first.
	rankAt := func(p, k int) int {
		if p+k < n {
			return sa.Rank[p+k]
		}
		return -1
	}

	next := make([]int, n)
	for k := 1; ; k *= 2 {
		sort.Slice(sa.SA, func(i, j int) bool {
			a, b := sa.SA[i], sa.SA[j]
			if sa.Rank[a] != sa.Rank[b] {
				return sa.Rank[a] < sa.Rank[b]
			}
			return rankAt(a, k) < rankAt(b, k)
		})

		next[sa.SA[0]] = 0
		for i := 1; i < n; i++ {
			prev, curr := sa.SA[i-1], sa.SA[i]
			next[curr] = next[prev]
			if sa.Rank[prev] != sa.Rank[curr] || rankAt(prev, k) != rankAt(curr, k) {
				next[curr]++
			}
		}
		copy(sa.Rank, next)

		if sa.Rank[sa.SA[n-1]] == n-1 || k >= n {
			break
		}
	}

	sa.buildLCP()
	return sa
}

// buildLCP runs Kasai's algorithm.
// Time Complexity: O(n)
func (sa *SuffixArray) buildLCP() {
	n := len(sa.Text)
	sa.LCP = make([]int, n)
	h := 0
	for i := 0; i < n; i++ {
		r := sa.Rank[i]
		if r == 0 {
			h = 0
			continue
		}
		j := sa.SA[r-1]
		for i+h < n && j+h < n && sa.Text[i+h] == sa.Text[j+h] {
			h++
		}
		sa.LCP[r] = h
		if h > 0 {
			h--
		}
	}
}

// Suffix returns the i-th smallest suffix.
func (sa *SuffixArray) Suffix(i int) string {
	if i < 0 || i >= len(sa.SA) {
		return ""
	}
	return sa.Text[sa.SA[i]:]
}

// DistinctPrefixChars returns, per leading byte, the total number of
// characters contributed by the distinct substrings starting with that byte.
//
// Each suffix of length L whose LCP with its predecessor is h introduces the
// new prefixes of lengths h+1..L, i.e. L(L+1)/2 - h(h+1)/2 characters.
func (sa *SuffixArray) DistinctPrefixChars() [256]int64 {
	var out [256]int64
	n := len(sa.Text)
	for i, p := range sa.SA {
		l := int64(n - p)
		h := int64(sa.LCP[i])
		out[sa.Text[p]] += l*(l+1)/2 - h*(h+1)/2
	}
	return out
}

// DistinctSubstrings returns the number of distinct non-empty substrings.
func (sa *SuffixArray) DistinctSubstrings() int64 {
	var total int64
	n := len(sa.Text)
	for i, p := range sa.SA {
		total += int64(n-p) - int64(sa.LCP[i])
	}
	return total
}
