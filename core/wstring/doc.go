// Package wstring provides a mutable byte string for memory-constrained
// programs.
//
// Package: wstring
// Title: Small-Footprint Mutable Byte Strings
// Description: String keeps short content inline inside the value and moves
//              to an allocator-backed heap buffer once it outgrows the inline
//              capacity. Every growing operation is all-or-nothing: when the
//              allocator refuses a request the value is left exactly as it
//              was and the operation reports false. A null value (the zero
//              value) is distinct from a valid empty string.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-09
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-09 v0.1.0: Initial implementation
//
// Storage:
//
// Content of up to SSOCapacity bytes lives in an inline array; the mode flag
// and the inline length share one byte. Longer content lives in a buffer
// obtained from the package allocator (see SetAllocator), sized by the growth
// policy. A value promoted to heap mode stays there for its lifetime. The
// byte after the content is always 0, so CString can hand the content to
// code that expects a terminated run.
//
// Null and empty:
//
//	var s wstring.String   // null: s.Valid() == false
//	s.Reserve(0)           // now a valid empty string
//	s.Release()            // null again
//
// Ownership:
//
// Clone and Assign copy bytes. Move transfers the representation and leaves
// the source null. SetBuffer and GetBuffer hand a heap buffer in and out of
// a value. Values must not be copied by assignment (t := *s); use Clone.
//
// Concatenation:
//
//	s := wstring.FromString("id=")
//	s.ConcatInt(255, wstring.Format{Base: 16, Width: 4})   // "id=00ff"
//
//	total := wstring.FromInt(1).Plus(wstring.FromInt(2)).Add(wstring.FromInt(3)).Result()
//	// "123"
//
// A String is not safe for concurrent use. The allocator, growth policy and
// logger are package settings that should be configured once at start-up.
package wstring
