// File: convert.go
// Title: Constructors and Parsing
// Description: Builds String values from byte runs and numbers, and parses
//              numbers back out of the content.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation
// - 2026-10-13 v0.1.1: ToFloat accepts exponents

package wstring

import (
	"strconv"
)

// Signed covers every signed integer type
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned covers every unsigned integer type
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// New returns a null String
func New() *String {
	return &String{}
}

// FromBytes returns a copy of b; nil gives a null String. The result is
// also null when the allocation fails.
func FromBytes(b []byte) *String {
	s := &String{}
	s.SetBytes(b)
	return s
}

// FromString returns a copy of str
func FromString(str string) *String {
	s := &String{}
	s.SetString(str)
	return s
}

// FromByte returns a one-byte String holding c
func FromByte(c byte) *String {
	s := &String{}
	s.ConcatByte(c)
	return s
}

// FromInt renders v as text, see Format
func FromInt[T Signed](v T, f ...Format) *String {
	s := &String{}
	if !s.Reserve(0) || !s.ConcatInt(int64(v), f...) {
		s.Release()
	}
	return s
}

// FromUint renders v as text, see Format
func FromUint[T Unsigned](v T, f ...Format) *String {
	s := &String{}
	if !s.Reserve(0) || !s.ConcatUint(uint64(v), f...) {
		s.Release()
	}
	return s
}

// FromFloat renders v with places decimals (DefaultDecimalPlaces if omitted)
func FromFloat(v float64, places ...int) *String {
	s := &String{}
	if !s.Reserve(0) || !s.ConcatFloat(v, places...) {
		s.Release()
	}
	return s
}

// ToInt parses a leading decimal integer, skipping leading whitespace.
// It returns 0 when there is none and saturates on overflow.
func (s *String) ToInt() int64 {
	content := s.Bytes()
	i := skipSpace(content, 0)
	start := i
	if i < len(content) && (content[i] == '+' || content[i] == '-') {
		i++
	}
	digits := i
	i = skipDigits(content, i)
	if i == digits {
		return 0
	}
	// ParseInt returns the saturated value alongside a range error
	v, _ := strconv.ParseInt(string(content[start:i]), 10, 64)
	return v
}

// ToFloat parses the longest leading decimal float, skipping leading
// whitespace. It returns 0 when there is none.
func (s *String) ToFloat() float64 {
	content := s.Bytes()
	i := skipSpace(content, 0)
	start := i
	if i < len(content) && (content[i] == '+' || content[i] == '-') {
		i++
	}
	mant := i
	i = skipDigits(content, i)
	intDigits := i - mant
	if i < len(content) && content[i] == '.' {
		j := skipDigits(content, i+1)
		if intDigits > 0 || j > i+1 {
			i = j
		}
	}
	if i == mant || (i == mant+1 && content[mant] == '.') {
		return 0
	}
	if i < len(content) && (content[i] == 'e' || content[i] == 'E') {
		j := i + 1
		if j < len(content) && (content[j] == '+' || content[j] == '-') {
			j++
		}
		if k := skipDigits(content, j); k > j {
			i = k
		}
	}
	v, _ := strconv.ParseFloat(string(content[start:i]), 64)
	return v
}

func skipSpace(b []byte, i int) int {
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	return i
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipDigits(b []byte, i int) int {
	for i < len(b) && '0' <= b[i] && b[i] <= '9' {
		i++
	}
	return i
}
