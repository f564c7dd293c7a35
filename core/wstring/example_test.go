// File: example_test.go
// Title: Example Tests for the wstring Package
// Description: Executable examples that document typical usage.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial example implementation

package wstring_test

import (
	"fmt"
	"strings"

	"github.com/msto63/wstring/core/alloc"
	"github.com/msto63/wstring/core/wstring"
)

func ExampleString_Reserve() {
	var s wstring.String
	fmt.Println(s.Valid())
	s.Reserve(0)
	fmt.Println(s.Valid(), s.Len())
	// Output:
	// false
	// true 0
}

func ExampleString_Replace() {
	s := wstring.FromString("hello")
	s.Replace("l", "LL")
	fmt.Println(s)
	// Output: heLLLLo
}

func ExampleString_PadLeft() {
	fmt.Println(wstring.FromInt(42).PadLeft(5, '0'))
	fmt.Println(wstring.FromString("abc").PadRight(6, '.'))
	// Output:
	// 00042
	// abc...
}

func ExampleFromInt() {
	fmt.Println(wstring.FromInt(255, wstring.Format{Base: wstring.HEX, Width: 4}))
	fmt.Println(wstring.FromInt(-42, wstring.Format{Width: 6, Pad: ' '}))
	// Output:
	// 00ff
	//    -42
}

func ExampleSum() {
	total := wstring.FromString("v").
		Plus(wstring.FromInt(1)).
		AddByte('.').
		AddInt(2).
		Result()
	fmt.Println(total)
	// Output: v1.2
}

func ExampleString_Move() {
	src := wstring.FromString("payload")
	var dst wstring.String
	dst.Move(src)
	fmt.Println(dst.String(), src.IsNull())
	// Output: payload true
}

func ExampleSetAllocator() {
	budget := alloc.NewBudget(64)
	prev := wstring.SetAllocator(budget)
	defer wstring.SetAllocator(prev)

	s := wstring.FromString("short")
	ok := s.ConcatString(strings.Repeat("x", 100))
	fmt.Println(ok, s)
	fmt.Println(budget.Stats().Failures)
	// Output:
	// false short
	// 1
}
