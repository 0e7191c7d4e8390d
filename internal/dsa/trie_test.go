package dsa

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubstringSetOrderAndDedup(t *testing.T) {
	set := NewSubstringSet()
	for _, s := range []string{"ba", "a", "b", "ab", "a", "ba", "aab"} {
		set.Insert(s)
	}

	if set.Len() != 5 {
		t.Errorf("expected 5 entries, got %d", set.Len())
	}

	var got []string
	set.Walk(func(s string) bool {
		got = append(got, s)
		return true
	})
	want := []string{"a", "aab", "ab", "b", "ba"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstringSetInsertReportsNew(t *testing.T) {
	set := NewSubstringSet()
	if !set.Insert("x") {
		t.Error("first insert should report new entry")
	}
	if set.Insert("x") {
		t.Error("second insert should report existing entry")
	}
	if !set.Contains("x") || set.Contains("y") {
		t.Error("Contains mismatch")
	}
}

func TestSubstringSetWalkStops(t *testing.T) {
	set := NewSubstringSet()
	for _, s := range []string{"c", "a", "b"} {
		set.Insert(s)
	}
	var got []string
	set.Walk(func(s string) bool {
		got = append(got, s)
		return len(got) < 2
	})
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("early stop mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstringSetWithPrefix(t *testing.T) {
	set := NewSubstringSet()
	for _, s := range []string{"ba", "bac", "b", "a", "c"} {
		set.Insert(s)
	}
	if diff := cmp.Diff([]string{"b", "ba", "bac"}, set.WithPrefix("b")); diff != "" {
		t.Errorf("prefix mismatch (-want +got):\n%s", diff)
	}
}
