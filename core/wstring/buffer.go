// File: buffer.go
// Title: Buffer Hand-Off
// Description: Transfers ownership of a heap buffer into or out of a
//              String without copying the content.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation

package wstring

import (
	"github.com/msto63/wstring/core/alloc"
)

// Buffer describes a heap buffer passed across a String boundary.
//
// Data is the whole allocation, Length the number of content bytes at its
// start. Allocator is the allocator Data must be returned to; nil means the
// Go runtime owns it.
type Buffer struct {
	Data      []byte
	Length    int
	Allocator alloc.Allocator
}

// Size returns the allocation size
func (b Buffer) Size() int {
	return len(b.Data)
}

// Bytes returns the content part of the buffer
func (b Buffer) Bytes() []byte {
	if b.Length < 0 || b.Length > len(b.Data) {
		return nil
	}
	return b.Data[:b.Length]
}

// Release returns Data to its allocator
func (b Buffer) Release() {
	if b.Allocator != nil && b.Data != nil {
		b.Allocator.Free(b.Data)
	}
}

// SetBuffer takes ownership of buf. Length must be below Size so the
// terminator fits; it is written at Data[Length]. The value is always kept
// in heap mode, even when the content would fit inline. A buffer with nil
// Data makes s null. An invalid Length leaves s unchanged and returns false.
func (s *String) SetBuffer(buf Buffer) bool {
	if buf.Data == nil {
		s.Release()
		return true
	}
	if buf.Length < 0 || buf.Length >= len(buf.Data) {
		return false
	}
	s.Release()
	s.adopt(buf.Data, buf.Length, buf.Allocator)
	return true
}

// GetBuffer hands the heap buffer to the caller and leaves s null. Inline
// content is first copied into a new heap buffer; if that allocation fails
// s is unchanged and the zero Buffer is returned. A null s also yields the
// zero Buffer.
func (s *String) GetBuffer() Buffer {
	if s.IsNull() {
		return Buffer{}
	}
	if s.inline() && !s.grow(s.Len()) {
		return Buffer{}
	}
	buf := Buffer{Data: s.heap, Length: s.hlen, Allocator: s.owner}
	s.reset()
	return buf
}
