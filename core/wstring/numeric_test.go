// File: numeric_test.go
// Title: Numeric Rendering and Parsing Tests
// Description: Tests for the base/width/pad rendering contract across
//              constructors and Concat, and for ToInt/ToFloat.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation

package wstring

import (
	"math"
	"testing"
)

func TestFromInt(t *testing.T) {
	tests := []struct {
		name string
		got  *String
		want string
	}{
		{"zero", FromInt(0), "0"},
		{"negative", FromInt(-42), "-42"},
		{"hex", FromInt(255, Format{Base: HEX}), "ff"},
		{"hex width", FromInt(255, Format{Base: HEX, Width: 4}), "00ff"},
		{"binary", FromInt(5, Format{Base: BIN}), "101"},
		{"octal", FromInt(8, Format{Base: OCT}), "10"},
		{"base 36", FromInt(35, Format{Base: 36}), "z"},
		{"invalid base high", FromInt(7, Format{Base: 99}), "7"},
		{"invalid base low", FromInt(100, Format{Base: 1}), "100"},
		{"zero pad sign first", FromInt(-42, Format{Width: 5}), "-0042"},
		{"space pad sign last", FromInt(-42, Format{Width: 5, Pad: ' '}), "  -42"},
		{"width smaller than digits", FromInt(123, Format{Width: 2}), "123"},
		{"custom pad", FromInt(7, Format{Width: 3, Pad: '*'}), "**7"},
		{"negative hex", FromInt(-255, Format{Base: HEX}), "-ff"},
		{"int8 min", FromInt(int8(math.MinInt8)), "-128"},
		{"int16", FromInt(int16(-300)), "-300"},
		{"int64 min", FromInt(int64(math.MinInt64)), "-9223372036854775808"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %q, want %q", tt.got.String(), tt.want)
			}
			checkInvariants(t, tt.got)
		})
	}
}

func TestFromUint(t *testing.T) {
	tests := []struct {
		name string
		got  *String
		want string
	}{
		{"uint8 is a number", FromUint(uint8(200)), "200"},
		{"max uint64 hex", FromUint(uint64(math.MaxUint64), Format{Base: HEX}), "ffffffffffffffff"},
		{"max uint64", FromUint(uint64(math.MaxUint64)), "18446744073709551615"},
		{"binary width", FromUint(uint(5), Format{Base: BIN, Width: 8}), "00000101"},
		{"uintptr", FromUint(uintptr(10)), "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %q, want %q", tt.got.String(), tt.want)
			}
		})
	}
	if got := FromByte('A').String(); got != "A" {
		t.Errorf("FromByte('A') = %q", got)
	}
}

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name string
		got  *String
		want string
	}{
		{"default places", FromFloat(3.14159), "3.14"},
		{"three places", FromFloat(-0.5, 3), "-0.500"},
		{"no places", FromFloat(10, 0), "10"},
		{"negative places", FromFloat(10, -1), "10"},
		{"nan", FromFloat(math.NaN()), "nan"},
		{"inf", FromFloat(math.Inf(1)), "inf"},
		{"negative inf", FromFloat(math.Inf(-1)), "-inf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %q, want %q", tt.got.String(), tt.want)
			}
		})
	}
}

func TestConcatNumbersMatchConstructors(t *testing.T) {
	formats := []Format{{}, {Base: HEX, Width: 6}, {Width: 8, Pad: ' '}, {Base: BIN}}
	for _, f := range formats {
		for _, v := range []int64{0, 1, -1, 4711, -65535} {
			s := FromString("")
			s.ConcatInt(v, f)
			if want := FromInt(v, f).String(); s.String() != want {
				t.Errorf("ConcatInt(%d, %+v) = %q, constructor gives %q", v, f, s.String(), want)
			}
		}
		s := FromString("")
		s.ConcatUint(4711, f)
		if want := FromUint(uint64(4711), f).String(); s.String() != want {
			t.Errorf("ConcatUint(4711, %+v) = %q, constructor gives %q", f, s.String(), want)
		}
	}

	s := FromString("pi=")
	s.ConcatFloat(3.14159)
	if s.String() != "pi=3.14" {
		t.Errorf("ConcatFloat = %q", s.String())
	}
}

func TestAppendHelpers(t *testing.T) {
	buf := AppendInt([]byte("x="), -7, Format{Width: 3})
	buf = append(buf, ',')
	buf = AppendUint(buf, 10, Format{Base: HEX})
	if string(buf) != "x=-07,a" {
		t.Errorf("got %q", buf)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"42", 42},
		{"  -17abc", -17},
		{"+8", 8},
		{"\t\n12 34", 12},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"99999999999999999999", math.MaxInt64},
		{"-99999999999999999999", math.MinInt64},
	}
	for _, tt := range tests {
		if got := FromString(tt.input).ToInt(); got != tt.want {
			t.Errorf("ToInt(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
	if New().ToInt() != 0 {
		t.Error("ToInt of null should be 0")
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"3.5", 3.5},
		{" -2.25x", -2.25},
		{"1e3", 1000},
		{"1e", 1},
		{"2.5e-1", 0.25},
		{".5", 0.5},
		{"7.", 7},
		{".", 0},
		{"-", 0},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := FromString(tt.input).ToFloat(); got != tt.want {
			t.Errorf("ToFloat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
