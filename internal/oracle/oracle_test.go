package oracle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSequenceDbac(t *testing.T) {
	want := []string{"a", "ac", "b", "ba", "bac", "c", "d", "db", "dba", "dbac"}
	if diff := cmp.Diff(want, Sequence("dbac")); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
	if got := Concat("dbac"); got != "aacbbabaccddbdbadbac" {
		t.Errorf("Concat = %q", got)
	}
}

func TestSequenceRepeated(t *testing.T) {
	if diff := cmp.Diff([]string{"a", "aa", "aaa"}, Sequence("aaa")); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[byte]int64{'a': 6}, BlockLens("aaa")); diff != "" {
		t.Errorf("block lens mismatch (-want +got):\n%s", diff)
	}
}

func TestCharAt(t *testing.T) {
	tests := []struct {
		k    int64
		want byte
		ok   bool
	}{
		{0, 0, false},
		{1, 'a', true},
		{3, 'c', true},
		{20, 'c', true},
		{21, 0, false},
	}
	for _, tt := range tests {
		got, ok := CharAt("dbac", tt.k)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CharAt(dbac, %d) = %q, %v; want %q, %v", tt.k, got, ok, tt.want, tt.ok)
		}
	}
}
