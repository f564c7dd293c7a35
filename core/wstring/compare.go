// File: compare.go
// Title: Comparison
// Description: Byte-wise ordering, equality and prefix/suffix tests. Null
//              operands compare as the empty sequence.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-11
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-11 v0.1.0: Initial implementation

package wstring

import (
	"bytes"
)

// CompareTo orders s and other by unsigned byte value and returns -1, 0 or +1
func (s *String) CompareTo(other *String) int {
	return bytes.Compare(s.Bytes(), other.Bytes())
}

// Equals reports whether s and other hold the same bytes
func (s *String) Equals(other *String) bool {
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// EqualsString reports whether s holds exactly str
func (s *String) EqualsString(str string) bool {
	return string(s.Bytes()) == str
}

// EqualsIgnoreCase compares with ASCII letters folded
func (s *String) EqualsIgnoreCase(other *String) bool {
	a, b := s.Bytes(), other.Bytes()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// StartsWith reports whether s begins with prefix
func (s *String) StartsWith(prefix string) bool {
	return s.StartsWithAt(prefix, 0)
}

// StartsWithAt reports whether prefix occurs at offset
func (s *String) StartsWithAt(prefix string, offset int) bool {
	n := s.Len()
	if offset < 0 || offset > n || len(prefix) > n-offset {
		return false
	}
	return string(s.buffer()[offset:offset+len(prefix)]) == prefix
}

// EndsWith reports whether s ends with suffix
func (s *String) EndsWith(suffix string) bool {
	content := s.Bytes()
	if len(suffix) > len(content) {
		return false
	}
	return string(content[len(content)-len(suffix):]) == suffix
}

// EndsWithByte reports whether the last byte is c
func (s *String) EndsWithByte(c byte) bool {
	n := s.Len()
	return n > 0 && s.buffer()[n-1] == c
}
