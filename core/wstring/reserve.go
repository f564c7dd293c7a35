// File: reserve.go
// Title: Allocation Policy
// Description: Capacity reservation and length changes. Growth allocates a
//              new buffer, copies and only then releases the old one, so a
//              refused allocation leaves the value untouched.
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
	mdwlog "github.com/msto63/wstring/core/log"
)

// Reserve makes room for size content bytes. A null value becomes a valid
// empty string, so Reserve(0) validates it. Capacity never shrinks.
// On failure s is unchanged and false is returned.
func (s *String) Reserve(size int) bool {
	if size < 0 {
		return false
	}
	if s.IsNull() {
		if size <= SSOCapacity {
			s.setInlineEmpty()
			return true
		}
	} else if size <= s.Cap() {
		return true
	}
	return s.grow(size)
}

// SetLength changes the content length. Bytes exposed by lengthening are
// zero. On failure s is unchanged and false is returned.
func (s *String) SetLength(n int) bool {
	if !s.Reserve(n) {
		return false
	}
	old := s.Len()
	buf := s.buffer()
	if n > old {
		clear(buf[old:n])
	}
	s.setlen(n)
	return true
}

// grow moves the content into a heap buffer able to hold size bytes
func (s *String) grow(size int) bool {
	buf, owner, ok := allocate("grow", size)
	if !ok {
		s.logGrowFailure(size)
		return false
	}
	n := s.Len()
	if n > 0 {
		copy(buf, s.buffer()[:n])
	}
	s.adopt(buf, n, owner)
	return true
}

// allocate requests a buffer for size content bytes from the package allocator
func allocate(op string, size int) ([]byte, alloc.Allocator, bool) {
	cfg := load()
	buf, err := cfg.allocator.Allocate(cfg.policy.AllocationSize(size))
	if err != nil {
		logger().DebugWithErr("allocation failed", err, mdwlog.Fields{
			"operation": op,
			"content":   size,
		})
		return nil, nil, false
	}
	return buf, cfg.allocator, true
}

func (s *String) logGrowFailure(size int) {
	l := logger()
	if !l.IsLevelEnabled(mdwlog.LevelTrace) {
		return
	}
	l.Trace("string left unchanged", mdwlog.Fields{
		"requested": size,
		"length":    s.Len(),
		"capacity":  s.Cap(),
		"inline":    s.IsInline(),
		"null":      s.IsNull(),
	})
}
