// File: writer.go
// Title: io Interfaces
// Description: Lets a String act as an io.Writer, io.StringWriter and
//              io.ByteWriter so fmt.Fprintf and friends can append to it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package wstring

import (
	"io"

	mdwerror "github.com/msto63/wstring/core/error"
)

var (
	_ io.Writer       = (*String)(nil)
	_ io.StringWriter = (*String)(nil)
	_ io.ByteWriter   = (*String)(nil)
)

// Write appends p. Nothing is written when the buffer cannot grow.
func (s *String) Write(p []byte) (int, error) {
	if !concat(s, p) {
		return 0, growError("wstring.String.Write", s, len(p))
	}
	return len(p), nil
}

// WriteString appends str
func (s *String) WriteString(str string) (int, error) {
	if !concat(s, str) {
		return 0, growError("wstring.String.WriteString", s, len(str))
	}
	return len(str), nil
}

// WriteByte appends c
func (s *String) WriteByte(c byte) error {
	if !s.ConcatByte(c) {
		return growError("wstring.String.WriteByte", s, 1)
	}
	return nil
}

func growError(op string, s *String, n int) error {
	return mdwerror.Newf("cannot append %d bytes to a string of length %d", n, s.Len()).
		WithCode(mdwerror.CodeAllocationFailed).
		WithOperation(op).
		WithDetail("length", s.Len()).
		WithDetail("capacity", s.Cap())
}
