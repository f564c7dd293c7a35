// File: search.go
// Title: Search
// Description: Forward and backward search for bytes and byte runs. Misses
//              return -1.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-11
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-11 v0.1.0: Initial implementation

package wstring

import (
	"bytes"
)

func fromIndex(from []int, def int) (int, bool) {
	if len(from) > 0 {
		return from[0], true
	}
	return def, false
}

// IndexOfByte returns the first index of c at or after from (default 0)
func (s *String) IndexOfByte(c byte, from ...int) int {
	start, _ := fromIndex(from, 0)
	content := s.Bytes()
	if start < 0 || start >= len(content) {
		return -1
	}
	if i := bytes.IndexByte(content[start:], c); i >= 0 {
		return start + i
	}
	return -1
}

// IndexOf returns the first index of needle at or after from (default 0)
func (s *String) IndexOf(needle string, from ...int) int {
	start, _ := fromIndex(from, 0)
	content := s.Bytes()
	if start < 0 || start >= len(content) {
		return -1
	}
	if len(needle) == 1 {
		return s.IndexOfByte(needle[0], start)
	}
	if i := bytes.Index(content[start:], []byte(needle)); i >= 0 {
		return start + i
	}
	return -1
}

// LastIndexOfByte returns the last index of c at or before from. Without
// from the whole content is searched.
func (s *String) LastIndexOfByte(c byte, from ...int) int {
	content := s.Bytes()
	start, given := fromIndex(from, len(content)-1)
	if start < 0 || (given && start >= len(content)) {
		return -1
	}
	return bytes.LastIndexByte(content[:start+1], c)
}

// LastIndexOf returns the start of the last occurrence of needle that begins
// at or before from. Without from, or with from past the end, the whole
// content is searched.
func (s *String) LastIndexOf(needle string, from ...int) int {
	content := s.Bytes()
	n := len(content)
	if len(needle) == 0 || n == 0 || len(needle) > n {
		return -1
	}
	start, _ := fromIndex(from, n-1)
	if start < 0 {
		return -1
	}
	if start >= n {
		start = n - 1
	}
	if len(needle) == 1 {
		return bytes.LastIndexByte(content[:start+1], needle[0])
	}
	end := min(start+len(needle), n)
	return bytes.LastIndex(content[:end], []byte(needle))
}
