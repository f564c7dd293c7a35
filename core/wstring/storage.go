// File: storage.go
// Title: String Storage Representation
// Description: The two-mode representation behind String. Inline mode keeps
//              content in a fixed array; heap mode keeps it in an allocator
//              buffer. All other files reach content only through the
//              accessors defined here.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-09
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-09 v0.1.0: Initial implementation

package wstring

import (
	"github.com/msto63/wstring/core/alloc"
)

const (
	inlineFlag = 0x80
	lengthMask = 0x7f
)

// the inline length has to fit next to the mode flag
var _ [lengthMask - SSOCapacity]struct{}

// String is a mutable byte string. The zero value is null.
type String struct {
	_ [0]func() // not comparable

	sso  [SSOCapacity + 1]byte
	meta uint8 // inlineFlag | inline length

	heap  []byte // capacity+1 bytes, nil when null
	hlen  int
	owner alloc.Allocator // allocator heap came from, nil for foreign buffers
}

func (s *String) inline() bool {
	return s.meta&inlineFlag != 0
}

// IsNull reports whether s holds no storage at all
func (s *String) IsNull() bool {
	return s == nil || (!s.inline() && s.heap == nil)
}

// Valid reports whether s is usable; an empty string is valid
func (s *String) Valid() bool {
	return !s.IsNull()
}

// IsInline reports whether the content is stored inside the value
func (s *String) IsInline() bool {
	return s != nil && s.inline()
}

// Len returns the content length in bytes
func (s *String) Len() int {
	switch {
	case s == nil:
		return 0
	case s.inline():
		return int(s.meta & lengthMask)
	default:
		return s.hlen
	}
}

// Cap returns the number of content bytes s can hold without growing
func (s *String) Cap() int {
	switch {
	case s == nil:
		return 0
	case s.inline():
		return SSOCapacity
	case s.heap == nil:
		return 0
	default:
		return len(s.heap) - 1
	}
}

// buffer returns the whole active buffer including the terminator slot
func (s *String) buffer() []byte {
	if s.inline() {
		return s.sso[:]
	}
	return s.heap
}

// setlen sets the length and writes the terminator; n must be <= Cap()
func (s *String) setlen(n int) {
	if s.inline() {
		s.meta = inlineFlag | uint8(n)
		s.sso[n] = 0
		return
	}
	s.hlen = n
	s.heap[n] = 0
}

// Bytes returns the content. The slice aliases s until the next mutation.
func (s *String) Bytes() []byte {
	if s.IsNull() {
		return nil
	}
	return s.buffer()[:s.Len()]
}

// CString returns the content followed by its terminating 0 byte. A null
// value yields a new one-byte slice holding only the terminator.
func (s *String) CString() []byte {
	if s.IsNull() {
		return []byte{0}
	}
	return s.buffer()[:s.Len()+1]
}

// String returns a copy of the content
func (s *String) String() string {
	return string(s.Bytes())
}

// setInlineEmpty turns a null value into a valid empty inline string
func (s *String) setInlineEmpty() {
	s.meta = inlineFlag
	s.sso[0] = 0
}

// reset forgets the storage without freeing it
func (s *String) reset() {
	*s = String{}
}

// adopt installs buf as heap storage holding n content bytes, freeing any
// previous heap buffer first
func (s *String) adopt(buf []byte, n int, owner alloc.Allocator) {
	s.freeHeap()
	s.meta = 0
	s.heap = buf
	s.hlen = n
	s.owner = owner
	s.heap[n] = 0
}

func (s *String) freeHeap() {
	if s.inline() || s.heap == nil {
		return
	}
	if s.owner != nil {
		s.owner.Free(s.heap)
	}
	s.heap = nil
	s.hlen = 0
	s.owner = nil
}
