// File: heap.go
// Title: Unbounded Heap Allocator
// Description: Allocator backed by the Go runtime. It only fails for
//              invalid or absurdly large sizes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package alloc

import (
	"sync/atomic"

	mdwerror "github.com/msto63/wstring/core/error"
)

// MaxAllocation is the largest single request the Heap allocator accepts
const MaxAllocation = 1<<31 - 1

// Heap allocates from the Go runtime
type Heap struct {
	allocations atomic.Int64
	frees       atomic.Int64
	failures    atomic.Int64
	inUse       atomic.Int64
	peak        atomic.Int64
}

// NewHeap creates a heap allocator
func NewHeap() *Heap {
	return &Heap{}
}

// Allocate returns a zeroed buffer of size bytes
func (h *Heap) Allocate(size int) ([]byte, error) {
	if size <= 0 {
		h.failures.Add(1)
		return nil, invalidSize("alloc.Heap.Allocate", size)
	}
	if size > MaxAllocation {
		h.failures.Add(1)
		return nil, mdwerror.Newf("allocation of %d bytes exceeds the %d byte limit", size, MaxAllocation).
			WithCode(mdwerror.CodeAllocationFailed).
			WithOperation("alloc.Heap.Allocate").
			WithDetail("requested", size)
	}

	buf := make([]byte, size)
	h.allocations.Add(1)
	inUse := h.inUse.Add(int64(size))
	for {
		peak := h.peak.Load()
		if inUse <= peak || h.peak.CompareAndSwap(peak, inUse) {
			break
		}
	}
	return buf, nil
}

// Free records the release; the runtime reclaims the memory
func (h *Heap) Free(buf []byte) {
	if buf == nil {
		return
	}
	h.frees.Add(1)
	if h.inUse.Add(-int64(len(buf))) < 0 {
		h.inUse.Store(0)
	}
}

// Stats returns a snapshot of the counters
func (h *Heap) Stats() Stats {
	return Stats{
		Allocations: int(h.allocations.Load()),
		Frees:       int(h.frees.Load()),
		Failures:    int(h.failures.Load()),
		InUse:       int(h.inUse.Load()),
		Peak:        int(h.peak.Load()),
	}
}
