// Package substr finds the K-th character of the concatenation of all
// distinct substrings of a word, ordered lexicographically, without building
// the concatenation.
//
// A query runs in two phases:
//
//   - Block location: substrings are grouped by their first byte. Block
//     lengths are computed in closed form and subtracted from K until the
//     block holding K is found.
//   - Block merge: inside that block one cursor per occurrence of the
//     leading byte walks its substrings by increasing length. A min-heap
//     merges the cursors in lexicographic order, collapsing equal values,
//     until the running length reaches K.
package substr
