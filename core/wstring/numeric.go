// File: numeric.go
// Title: Numeric Rendering
// Description: Renders integers and floats as text using a radix, a
//              minimum field width and a pad byte. The same rules apply to
//              the numeric constructors, Concat and the accumulator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-10
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-10 v0.1.0: Initial implementation

package wstring

import (
	"math"
	"strconv"
)

// Numeric bases
const (
	BIN = 2
	OCT = 8
	DEC = 10
	HEX = 16
)

// DefaultDecimalPlaces is used for floats when no precision is given
const DefaultDecimalPlaces = 2

// Format controls how a number is rendered.
//
// Base is the radix in [2, 36]; 0 or any other value means 10. Digits above
// 9 are lowercase. Width is the minimum field width and Pad the fill byte,
// '0' when zero. Negative numbers carry a leading '-' in every base. With a
// '0' pad the sign comes before the fill (-0042), otherwise after it (  -42).
type Format struct {
	Base  int
	Width int
	Pad   byte
}

func (f Format) normalize() Format {
	if f.Base < 2 || f.Base > 36 {
		f.Base = DEC
	}
	if f.Width < 0 {
		f.Width = 0
	}
	if f.Pad == 0 {
		f.Pad = '0'
	}
	return f
}

func formatOf(f []Format) Format {
	if len(f) > 0 {
		return f[0].normalize()
	}
	return Format{}.normalize()
}

// AppendInt appends the rendering of v to dst
func AppendInt(dst []byte, v int64, f Format) []byte {
	u := uint64(v)
	neg := v < 0
	if neg {
		u = -u
	}
	return appendNumber(dst, neg, u, f.normalize())
}

// AppendUint appends the rendering of v to dst
func AppendUint(dst []byte, v uint64, f Format) []byte {
	return appendNumber(dst, false, v, f.normalize())
}

func appendNumber(dst []byte, neg bool, u uint64, f Format) []byte {
	var digits [64]byte
	d := strconv.AppendUint(digits[:0], u, f.Base)

	n := len(d)
	if neg {
		n++
	}
	fill := f.Width - n

	if neg && f.Pad == '0' {
		dst = append(dst, '-')
	}
	for ; fill > 0; fill-- {
		dst = append(dst, f.Pad)
	}
	if neg && f.Pad != '0' {
		dst = append(dst, '-')
	}
	return append(dst, d...)
}

// AppendFloat appends v in fixed notation with the given decimal places
func AppendFloat(dst []byte, v float64, places int) []byte {
	switch {
	case math.IsNaN(v):
		return append(dst, "nan"...)
	case math.IsInf(v, 1):
		return append(dst, "inf"...)
	case math.IsInf(v, -1):
		return append(dst, "-inf"...)
	}
	if places < 0 {
		places = 0
	}
	return strconv.AppendFloat(dst, v, 'f', places, 64)
}

func placesOf(places []int) int {
	if len(places) > 0 {
		return places[0]
	}
	return DefaultDecimalPlaces
}
