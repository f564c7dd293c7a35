// File: concat.go
// Title: Concatenation
// Description: Append operations. Each either appends everything or, when
//              the allocator refuses to grow the buffer, nothing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation

package wstring

// Concat appends the content of src. A nil or null src appends nothing.
func (s *String) Concat(src *String) bool {
	return concat(s, src.Bytes())
}

// ConcatBytes appends b
func (s *String) ConcatBytes(b []byte) bool {
	return concat(s, b)
}

// ConcatString appends str
func (s *String) ConcatString(str string) bool {
	return concat(s, str)
}

// ConcatByte appends a single byte
func (s *String) ConcatByte(c byte) bool {
	one := [1]byte{c}
	return concat(s, one[:])
}

// ConcatInt appends the rendering of v, see Format
func (s *String) ConcatInt(v int64, f ...Format) bool {
	var scratch [72]byte
	return concat(s, AppendInt(scratch[:0], v, formatOf(f)))
}

// ConcatUint appends the rendering of v, see Format
func (s *String) ConcatUint(v uint64, f ...Format) bool {
	var scratch [72]byte
	return concat(s, AppendUint(scratch[:0], v, formatOf(f)))
}

// ConcatFloat appends v with places decimals (DefaultDecimalPlaces if omitted)
func (s *String) ConcatFloat(v float64, places ...int) bool {
	var scratch [72]byte
	return concat(s, AppendFloat(scratch[:0], v, placesOf(places)))
}

// concat appends b; b may alias the content of s
func concat[T byteRun](s *String, b T) bool {
	if len(b) == 0 {
		return true
	}
	n := s.Len()
	if !s.Reserve(n + len(b)) {
		return false
	}
	copy(s.buffer()[n:], b)
	s.setlen(n + len(b))
	return true
}
