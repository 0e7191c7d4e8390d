package substr

import (
	"testing"

	"github.com/richinex/substrseq/internal/oracle"
)

func TestClosedFormBlockLen(t *testing.T) {
	tests := []struct {
		n         int
		positions []int
		want      int64
	}{
		{4, []int{0}, 10},
		{4, []int{3}, 1},
		{3, []int{0, 1, 2}, 10},
		{3, nil, 0},
	}
	for _, tt := range tests {
		if got := ClosedFormBlockLen(tt.n, tt.positions); got != tt.want {
			t.Errorf("ClosedFormBlockLen(%d, %v) = %d, want %d", tt.n, tt.positions, got, tt.want)
		}
	}
}

func TestDistinctBlockLensMatchOracle(t *testing.T) {
	for _, word := range append(wordsOver("ab", 7), "dbac", "mississippi", "abracadabra") {
		got := DistinctBlockLens(word)
		want := oracle.BlockLens(word)
		for c := 0; c < 256; c++ {
			if got[c] != want[byte(c)] {
				t.Fatalf("%q block %q = %d, want %d", word, rune(c), got[c], want[byte(c)])
			}
		}
	}
}

func TestParseBlockMode(t *testing.T) {
	tests := []struct {
		in      string
		want    BlockMode
		wantErr bool
	}{
		{"", Distinct, false},
		{"distinct", Distinct, false},
		{"Closed-Form", ClosedForm, false},
		{"closed", ClosedForm, false},
		{"bogus", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseBlockMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBlockMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBlockMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if ClosedForm.String() != "closed-form" || Distinct.String() != "distinct" {
		t.Error("String() mismatch")
	}
}
