// File: config.go
// Title: Allocator Configuration
// Description: Builds an allocator and growth policy from the alloc.* keys
//              of a loaded configuration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-08
// Modified: 2026-10-08
//
// Change History:
// - 2026-10-08 v0.1.0: Initial implementation

package alloc

import (
	"strings"

	"github.com/msto63/wstring/core/config"
	mdwerror "github.com/msto63/wstring/core/error"
)

// Configuration keys and defaults
const (
	KeyKind        = "alloc.kind"
	KeyBudget      = "alloc.budget"
	KeyGranularity = "alloc.granularity"

	KindHeap   = "heap"
	KindBudget = "budget"

	DefaultBudget = 4096
)

// Rules returns the validation rules for the alloc.* keys
func Rules() config.ValidationRules {
	return config.ValidationRules{
		KeyKind:        {Type: "string", OneOf: []string{KindHeap, KindBudget}},
		KeyBudget:      {Type: "int", Min: config.IntPtr(1), Max: config.IntPtr(MaxAllocation)},
		KeyGranularity: {Type: "int", Min: config.IntPtr(1), Max: config.IntPtr(4096)},
	}
}

// FromConfig builds the allocator and policy described by cfg.
// Missing keys fall back to a heap allocator with DefaultGranularity.
func FromConfig(cfg *config.Config) (Allocator, Policy, error) {
	if cfg == nil {
		return NewHeap(), DefaultPolicy(), nil
	}

	if err := cfg.Validate(Rules()).Err(); err != nil {
		return nil, Policy{}, mdwerror.Wrap(err, "invalid allocator configuration").
			WithOperation("alloc.FromConfig")
	}

	policy := Policy{Granularity: cfg.GetInt(KeyGranularity, DefaultGranularity)}

	switch strings.ToLower(cfg.GetString(KeyKind, KindHeap)) {
	case KindBudget:
		return NewBudget(cfg.GetInt(KeyBudget, DefaultBudget)), policy, nil
	default:
		return NewHeap(), policy, nil
	}
}
