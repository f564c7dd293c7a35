// File: replace.go
// Title: Substring Replacement
// Description: Replaces every non-overlapping occurrence of one byte run
//              with another, scanning left to right and never rescanning
//              inserted text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-11
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-11 v0.1.0: Initial implementation

package wstring

import (
	"bytes"
)

// Replace replaces all occurrences of find with repl. It returns false,
// leaving s unchanged, when the result needs a buffer the allocator refuses.
// An empty find replaces nothing and succeeds.
func (s *String) Replace(find, repl string) bool {
	return s.ReplaceBytes([]byte(find), []byte(repl))
}

// ReplaceBytes is Replace for byte slices. Neither argument may alias the
// content of s.
func (s *String) ReplaceBytes(find, repl []byte) bool {
	n := s.Len()
	if len(find) == 0 || n == 0 {
		return true
	}
	buf := s.buffer()
	diff := len(repl) - len(find)

	if diff <= 0 {
		w := rebuild(buf, buf, 0, n, find, repl)
		s.setlen(w)
		return true
	}

	count := bytes.Count(buf[:n], find)
	if count == 0 {
		return true
	}
	total := n + count*diff

	if total <= s.Cap() {
		// slide the content to the end so the rebuild never overtakes it
		copy(buf[total-n:total], buf[:n])
		rebuild(buf, buf, total-n, total, find, repl)
		s.setlen(total)
		return true
	}

	staging, owner, ok := allocate("replace", total)
	if !ok {
		s.logGrowFailure(total)
		return false
	}
	rebuild(staging, buf, 0, n, find, repl)
	s.adopt(staging, total, owner)
	return true
}

// rebuild copies src[r:end] into dst from offset 0, substituting repl for
// each occurrence of find, and returns the number of bytes written
func rebuild(dst, src []byte, r, end int, find, repl []byte) int {
	w := 0
	for {
		i := bytes.Index(src[r:end], find)
		if i < 0 {
			break
		}
		w += copy(dst[w:], src[r:r+i])
		w += copy(dst[w:], repl)
		r += i + len(find)
	}
	w += copy(dst[w:], src[r:end])
	return w
}
