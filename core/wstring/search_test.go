// File: search_test.go
// Title: Comparison and Search Tests
// Description: Tests for ordering, equality, prefix/suffix checks and
//              forward/backward search.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-11
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-11 v0.1.0: Initial test implementation

package wstring

import (
	"testing"
)

func TestCompareTo(t *testing.T) {
	tests := []struct {
		name string
		a, b *String
		want int
	}{
		{"equal", FromString("abc"), FromString("abc"), 0},
		{"less", FromString("abc"), FromString("abd"), -1},
		{"greater", FromString("b"), FromString("abc"), 1},
		{"prefix is less", FromString("ab"), FromString("abc"), -1},
		{"unsigned bytes", FromString("\xff"), FromString("a"), 1},
		{"null equals empty", New(), FromString(""), 0},
		{"null less than content", New(), FromString("a"), -1},
		{"nil operand", FromString("a"), nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.CompareTo(tt.b); got != tt.want {
				t.Errorf("CompareTo = %d, want %d", got, tt.want)
			}
			if got := tt.b.CompareTo(tt.a); got != -tt.want {
				t.Errorf("reversed CompareTo = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestCompareReflexive(t *testing.T) {
	for _, in := range []string{"", "a", "hello", "a longer string on the heap"} {
		s := FromString(in)
		if s.CompareTo(s) != 0 {
			t.Errorf("CompareTo(self) != 0 for %q", in)
		}
	}
}

func TestEquals(t *testing.T) {
	a, b, c := FromString("same"), FromString("same"), FromString("same")
	if !a.Equals(b) || !b.Equals(a) {
		t.Error("Equals is not symmetric")
	}
	if a.Equals(b) && b.Equals(c) && !a.Equals(c) {
		t.Error("Equals is not transitive")
	}
	if a.Equals(FromString("sam")) {
		t.Error("different lengths compared equal")
	}
	if !FromString("hello").EqualsString("hello") {
		t.Error("EqualsString failed")
	}
}

func TestEqualsIgnoreCase(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"HeLLo", "hello", true},
		{"hello", "HELLO", true},
		{"hello", "hell", false},
		{"\xc4", "\xe4", false},
		{"a1_B", "A1_b", true},
		{"[", "{", false},
	}
	for _, tt := range tests {
		if got := FromString(tt.a).EqualsIgnoreCase(FromString(tt.b)); got != tt.want {
			t.Errorf("EqualsIgnoreCase(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPrefixSuffix(t *testing.T) {
	s := FromString("hello")

	checks := []struct {
		name string
		got  bool
		want bool
	}{
		{"StartsWith he", s.StartsWith("he"), true},
		{"StartsWith empty", s.StartsWith(""), true},
		{"StartsWith longer", s.StartsWith("hello!"), false},
		{"StartsWithAt llo 2", s.StartsWithAt("llo", 2), true},
		{"StartsWithAt llo 3", s.StartsWithAt("llo", 3), false},
		{"StartsWithAt past end", s.StartsWithAt("", 6), false},
		{"StartsWithAt negative", s.StartsWithAt("h", -1), false},
		{"EndsWith lo", s.EndsWith("lo"), true},
		{"EndsWith empty", s.EndsWith(""), true},
		{"EndsWith mismatch", s.EndsWith("he"), false},
		{"EndsWith longer", s.EndsWith("ohello"), false},
		{"EndsWithByte o", s.EndsWithByte('o'), true},
		{"EndsWithByte l", s.EndsWithByte('l'), false},
		{"EndsWithByte empty", FromString("").EndsWithByte(0), false},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestIndexOf(t *testing.T) {
	s := FromString("hello")

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"IndexOfByte l", s.IndexOfByte('l'), 2},
		{"IndexOfByte l from 3", s.IndexOfByte('l', 3), 3},
		{"IndexOfByte missing", s.IndexOfByte('z'), -1},
		{"IndexOfByte from past end", s.IndexOfByte('h', 5), -1},
		{"IndexOf l", s.IndexOf("l"), 2},
		{"IndexOf ll", s.IndexOf("ll"), 2},
		{"IndexOf l from 3", s.IndexOf("l", 3), 3},
		{"IndexOf lo from 10", s.IndexOf("lo", 10), -1},
		{"IndexOf missing", s.IndexOf("world"), -1},
		{"IndexOf negative from", s.IndexOf("h", -1), -1},
		{"LastIndexOfByte l", s.LastIndexOfByte('l'), 3},
		{"LastIndexOfByte l from 2", s.LastIndexOfByte('l', 2), 2},
		{"LastIndexOfByte o from 3", s.LastIndexOfByte('o', 3), -1},
		{"LastIndexOfByte from past end", s.LastIndexOfByte('h', 10), -1},
		{"LastIndexOf l", s.LastIndexOf("l"), 3},
		{"LastIndexOf l from 2", s.LastIndexOf("l", 2), 2},
		{"LastIndexOf ll from 1", s.LastIndexOf("ll", 1), -1},
		{"LastIndexOf ll from 2", s.LastIndexOf("ll", 2), 2},
		{"LastIndexOf he from 0", s.LastIndexOf("he", 0), 0},
		{"LastIndexOf from past end", s.LastIndexOf("lo", 99), 3},
		{"LastIndexOf longer needle", s.LastIndexOf("hello world"), -1},
		{"LastIndexOf empty needle", s.LastIndexOf(""), -1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestSearchNull(t *testing.T) {
	var s String
	if s.IndexOf("a") != -1 || s.IndexOfByte('a') != -1 || s.LastIndexOf("a") != -1 || s.LastIndexOfByte('a') != -1 {
		t.Error("searching a null string should miss")
	}
	if s.StartsWith("a") || s.EndsWith("a") {
		t.Error("null string has no prefix or suffix")
	}
}

func TestSingleByteSearchAgreesWithString(t *testing.T) {
	s := FromString("abracadabra")
	for c := byte('a'); c <= 'e'; c++ {
		needle := string([]byte{c})
		for from := 0; from < s.Len(); from++ {
			if a, b := s.IndexOfByte(c, from), s.IndexOf(needle, from); a != b {
				t.Errorf("IndexOf %q from %d: byte=%d string=%d", needle, from, a, b)
			}
			if a, b := s.LastIndexOfByte(c, from), s.LastIndexOf(needle, from); a != b {
				t.Errorf("LastIndexOf %q from %d: byte=%d string=%d", needle, from, a, b)
			}
		}
	}
}
