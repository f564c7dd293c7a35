// File: ownership.go
// Title: Copy, Move and Release
// Description: Deep copy, representation transfer and release of String
//              values. Copies never share a heap buffer with their source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-09
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-09 v0.1.0: Initial implementation

package wstring

// Clone returns a deep copy of s. The copy is null when s is null or the
// allocation fails.
func (s *String) Clone() *String {
	c := &String{}
	c.Assign(s)
	return c
}

// Assign makes s a deep copy of src. A null src makes s null. When the
// allocation fails s becomes null and false is returned.
func (s *String) Assign(src *String) bool {
	if s == src {
		return true
	}
	if src.IsNull() {
		s.Release()
		return true
	}
	return copyFrom(s, src.Bytes())
}

// SetBytes replaces the content with a copy of b. A nil b makes s null.
func (s *String) SetBytes(b []byte) bool {
	if b == nil {
		s.Release()
		return true
	}
	return copyFrom(s, b)
}

// SetString replaces the content with a copy of str
func (s *String) SetString(str string) bool {
	return copyFrom(s, str)
}

// byteRun is a run of bytes given as a slice or a string
type byteRun interface {
	~[]byte | ~string
}

func copyFrom[T byteRun](s *String, b T) bool {
	n := len(b)
	if !s.IsNull() && n > s.Cap() {
		if !s.inline() {
			// a promoted value stays on the heap; the old content is not copied
			return replaceHeap(s, b)
		}
		s.Release()
	}
	if !s.Reserve(n) {
		s.Release()
		return false
	}
	copy(s.buffer(), b)
	s.setlen(n)
	return true
}

// replaceHeap swaps the heap buffer of s for a new one holding b. On
// failure s becomes null, like any failed copy.
func replaceHeap[T byteRun](s *String, b T) bool {
	buf, owner, ok := allocate("assign", len(b))
	if !ok {
		s.logGrowFailure(len(b))
		s.Release()
		return false
	}
	copy(buf, b)
	s.adopt(buf, len(b), owner)
	return true
}

// Move transfers the storage of src to s and leaves src null. Any storage
// held by s is released first. Moving a value onto itself does nothing.
func (s *String) Move(src *String) {
	if src == nil || s == src {
		return
	}
	s.Release()
	*s = *src
	src.reset()
}

// Release frees any heap buffer and makes s null
func (s *String) Release() {
	if s == nil {
		return
	}
	s.freeHeap()
	s.reset()
}
