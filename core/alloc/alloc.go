// File: alloc.go
// Title: Allocator Interface
// Description: Makes the ambient heap explicit. Strings obtain and return
//              their heap buffers through an Allocator so that allocation
//              can fail, be bounded and be accounted for.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-07
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation

package alloc

import (
	mdwerror "github.com/msto63/wstring/core/error"
)

// Allocator hands out and takes back byte buffers.
//
// Allocate returns a zeroed buffer with len(buf) == size, or an error carrying
// CodeAllocationFailed. Free returns a buffer previously obtained from the
// same allocator; freeing nil is a no-op.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Free(buf []byte)
}

// Stats is a snapshot of allocator activity
type Stats struct {
	Allocations int // successful Allocate calls
	Frees       int // Free calls with a non-nil buffer
	Failures    int // rejected Allocate calls
	InUse       int // bytes currently handed out
	Peak        int // highest InUse observed
	Limit       int // budget, 0 when unbounded
}

// Reporter is implemented by allocators that keep statistics
type Reporter interface {
	Stats() Stats
}

// ErrAllocationFailed matches any allocation failure with errors.Is
var ErrAllocationFailed = mdwerror.New("allocation failed").WithCode(mdwerror.CodeAllocationFailed)

func invalidSize(op string, size int) error {
	return mdwerror.Newf("invalid allocation size %d", size).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(op).
		WithDetail("requested", size)
}
