// File: settings.go
// Title: Package Allocator, Policy and Logger
// Description: Package-wide settings used by every String: the allocator
//              that backs heap buffers, the growth policy and the logger
//              that reports failed growth.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-09
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-09 v0.1.0: Initial implementation
// - 2026-10-12 v0.1.1: Added Configure

package wstring

import (
	"sync/atomic"

	"github.com/msto63/wstring/core/alloc"
	"github.com/msto63/wstring/core/config"
	mdwerror "github.com/msto63/wstring/core/error"
	mdwlog "github.com/msto63/wstring/core/log"
)

type settings struct {
	allocator alloc.Allocator
	policy    alloc.Policy
	logger    *mdwlog.Logger // nil means the default logger
}

var current atomic.Pointer[settings]

func init() {
	current.Store(&settings{
		allocator: alloc.NewHeap(),
		policy:    alloc.DefaultPolicy(),
	})
}

func load() *settings {
	return current.Load()
}

func update(fn func(*settings)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetAllocator installs the allocator for new heap buffers and returns the
// previous one. Existing values keep freeing to the allocator they came from.
func SetAllocator(a alloc.Allocator) alloc.Allocator {
	if a == nil {
		a = alloc.NewHeap()
	}
	var prev alloc.Allocator
	update(func(s *settings) {
		prev = s.allocator
		s.allocator = a
	})
	return prev
}

// Allocator returns the current package allocator
func Allocator() alloc.Allocator {
	return load().allocator
}

// SetPolicy installs the growth policy and returns the previous one
func SetPolicy(p alloc.Policy) (alloc.Policy, error) {
	if err := p.Validate(); err != nil {
		return load().policy, err
	}
	var prev alloc.Policy
	update(func(s *settings) {
		prev = s.policy
		s.policy = p
	})
	return prev, nil
}

// Policy returns the current growth policy
func Policy() alloc.Policy {
	return load().policy
}

// SetLogger sets the logger for allocation diagnostics; nil restores the default
func SetLogger(l *mdwlog.Logger) {
	update(func(s *settings) {
		s.logger = l
	})
}

func logger() *mdwlog.Logger {
	if l := load().logger; l != nil {
		return l
	}
	return mdwlog.GetDefault().WithName("wstring")
}

// Configure applies the alloc.* keys of cfg to the package settings
func Configure(cfg *config.Config) error {
	a, p, err := alloc.FromConfig(cfg)
	if err != nil {
		return mdwerror.Wrap(err, "cannot configure wstring").WithOperation("wstring.Configure")
	}
	update(func(s *settings) {
		s.allocator = a
		s.policy = p
	})
	return nil
}
