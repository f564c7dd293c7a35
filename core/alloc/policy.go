// File: policy.go
// Title: Capacity Growth Policy
// Description: Rounds heap allocation sizes up to a fixed granularity so
//              that repeated small appends reuse slack instead of
//              reallocating on every byte.
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

// DefaultGranularity is the allocation rounding used when none is configured
const DefaultGranularity = 16

// Policy decides how many bytes to request for a given content capacity
type Policy struct {
	Granularity int
}

// DefaultPolicy returns the policy with DefaultGranularity
func DefaultPolicy() Policy {
	return Policy{Granularity: DefaultGranularity}
}

// Validate checks the policy settings
func (p Policy) Validate() error {
	if p.Granularity < 1 {
		return mdwerror.Newf("granularity must be at least 1, got %d", p.Granularity).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("alloc.Policy.Validate").
			WithDetail("granularity", p.Granularity)
	}
	return nil
}

// AllocationSize returns the buffer size to request for content bytes.
// One byte is reserved for the terminator and the total is rounded up to
// the granularity, e.g. 11 content bytes with granularity 16 give 16.
func (p Policy) AllocationSize(content int) int {
	g := p.Granularity
	if g < 1 {
		g = 1
	}
	n := content + 1
	return (n + g - 1) / g * g
}
