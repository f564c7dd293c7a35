// File: sum.go
// Title: Chained Concatenation
// Description: Sum accumulates a chain of appends into one growing buffer,
//              so a + b + c costs one copy of a plus the appends.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-11
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-11 v0.1.0: Initial implementation
// - 2026-10-13 v0.1.1: A failed step nulls the sum and skips later steps

package wstring

// Sum is the running value of a chained concatenation.
//
// Every step is all-or-nothing for the whole chain: once a step fails the
// sum becomes null, Failed reports true and later steps do nothing.
type Sum struct {
	s      String
	failed bool
}

// NewSum starts a chain with a copy of first
func NewSum(first *String) *Sum {
	sum := &Sum{}
	if !sum.s.Assign(first) {
		sum.fail()
	}
	return sum
}

// Plus starts a chain with a copy of s followed by rhs
func (s *String) Plus(rhs *String) *Sum {
	return NewSum(s).Add(rhs)
}

// PlusString starts a chain with a copy of s followed by str
func (s *String) PlusString(str string) *Sum {
	return NewSum(s).AddString(str)
}

func (sum *Sum) step(ok bool) *Sum {
	if !ok {
		sum.fail()
	}
	return sum
}

func (sum *Sum) fail() {
	sum.failed = true
	sum.s.Release()
}

// Add appends rhs
func (sum *Sum) Add(rhs *String) *Sum {
	if sum.failed {
		return sum
	}
	return sum.step(sum.s.Concat(rhs))
}

// AddString appends str
func (sum *Sum) AddString(str string) *Sum {
	if sum.failed {
		return sum
	}
	return sum.step(sum.s.ConcatString(str))
}

// AddBytes appends b
func (sum *Sum) AddBytes(b []byte) *Sum {
	if sum.failed {
		return sum
	}
	return sum.step(sum.s.ConcatBytes(b))
}

// AddByte appends c
func (sum *Sum) AddByte(c byte) *Sum {
	if sum.failed {
		return sum
	}
	return sum.step(sum.s.ConcatByte(c))
}

// AddInt appends the rendering of v
func (sum *Sum) AddInt(v int64, f ...Format) *Sum {
	if sum.failed {
		return sum
	}
	return sum.step(sum.s.ConcatInt(v, f...))
}

// AddUint appends the rendering of v
func (sum *Sum) AddUint(v uint64, f ...Format) *Sum {
	if sum.failed {
		return sum
	}
	return sum.step(sum.s.ConcatUint(v, f...))
}

// AddFloat appends the rendering of v
func (sum *Sum) AddFloat(v float64, places ...int) *Sum {
	if sum.failed {
		return sum
	}
	return sum.step(sum.s.ConcatFloat(v, places...))
}

// Failed reports whether any step failed
func (sum *Sum) Failed() bool {
	return sum.failed
}

// Len returns the length accumulated so far
func (sum *Sum) Len() int {
	return sum.s.Len()
}

// String returns a copy of the accumulated content
func (sum *Sum) String() string {
	return sum.s.String()
}

// Result moves the accumulated value out of the sum. The result is null
// if a step failed; the sum itself is null afterwards.
func (sum *Sum) Result() *String {
	out := &String{}
	out.Move(&sum.s)
	return out
}
