// File: budget.go
// Title: Budget Allocator
// Description: A bounded allocator modelling a fixed embedded heap. Requests
//              that would exceed the budget fail with a coded error and are
//              logged at debug level with the allocator id.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation
// - 2026-10-09 v0.1.1: uuid identity for log correlation

package alloc

import (
	"sync"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/wstring/core/error"
	mdwlog "github.com/msto63/wstring/core/log"
)

// Budget allocates from a fixed number of bytes
type Budget struct {
	mu     sync.Mutex
	id     uuid.UUID
	limit  int
	stats  Stats
	logger *mdwlog.Logger
}

// NewBudget creates an allocator that never hands out more than limit bytes at once
func NewBudget(limit int) *Budget {
	if limit < 0 {
		limit = 0
	}
	id := uuid.New()
	return &Budget{
		id:     id,
		limit:  limit,
		stats:  Stats{Limit: limit},
		logger: mdwlog.GetDefault().WithName("alloc").WithField("allocator", id.String()),
	}
}

// WithLogger replaces the logger; the allocator id field is kept
func (b *Budget) WithLogger(logger *mdwlog.Logger) *Budget {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.logger = logger.WithField("allocator", b.id.String())
	return b
}

// ID returns the allocator identity used in logs and error details
func (b *Budget) ID() uuid.UUID {
	return b.id
}

// Limit returns the budget in bytes
func (b *Budget) Limit() int {
	return b.limit
}

// Available returns the number of bytes that can still be allocated
func (b *Budget) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.limit - b.stats.InUse
}

// Allocate returns a zeroed buffer of size bytes if the budget allows it
func (b *Budget) Allocate(size int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if size <= 0 {
		b.stats.Failures++
		return nil, invalidSize("alloc.Budget.Allocate", size)
	}

	available := b.limit - b.stats.InUse
	if size > available {
		b.stats.Failures++
		cause := mdwerror.Newf("budget exhausted: %d bytes requested, %d available", size, available).
			WithCode(mdwerror.CodeBudgetExceeded)
		err := mdwerror.Wrap(cause, "allocation failed").
			WithCode(mdwerror.CodeAllocationFailed).
			WithOperation("alloc.Budget.Allocate").
			WithDetail("requested", size).
			WithDetail("available", available).
			WithDetail("allocator", b.id.String())
		b.logger.DebugWithErr("allocation rejected", err, mdwlog.Fields{
			"requested": size,
			"available": available,
			"in_use":    b.stats.InUse,
		})
		return nil, err
	}

	b.stats.Allocations++
	b.stats.InUse += size
	if b.stats.InUse > b.stats.Peak {
		b.stats.Peak = b.stats.InUse
	}
	return make([]byte, size), nil
}

// Free returns a buffer's bytes to the budget
func (b *Budget) Free(buf []byte) {
	if buf == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stats.Frees++
	b.stats.InUse -= len(buf)
	if b.stats.InUse < 0 {
		b.logger.Warn("free of foreign buffer", mdwlog.Int("size", len(buf)))
		b.stats.InUse = 0
	}
}

// Stats returns a snapshot of the counters
func (b *Budget) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.stats
}
