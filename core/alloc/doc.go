// Package alloc provides the allocators behind wstring heap buffers.
//
// Package: alloc
// Title: Allocators and Growth Policy
// Description: An Allocator interface with an unbounded Heap implementation
//              and a bounded Budget implementation that models a small
//              embedded heap. Policy rounds allocation sizes to a fixed
//              granularity.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation
//
// Usage:
//
//	budget := alloc.NewBudget(2048)
//	wstring.SetAllocator(budget)
//
//	s := wstring.FromString("hello")
//	if !s.Reserve(4096) {
//		// budget exhausted, s still holds "hello"
//	}
//	fmt.Println(budget.Stats().Failures) // 1
package alloc
