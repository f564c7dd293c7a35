// File: failure_test.go
// Title: Allocation Failure Tests
// Description: Runs growing operations against an exhausted budget and
//              checks that each one either completes or leaves the value
//              exactly as it was.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-12 v0.1.0: Initial test implementation

package wstring

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/wstring/core/config"
	mdwerror "github.com/msto63/wstring/core/error"
	mdwlog "github.com/msto63/wstring/core/log"
)

// snapshot captures everything observable about a value
type snapshot struct {
	Null    bool
	Inline  bool
	Len     int
	Cap     int
	Content string
}

func snap(s *String) snapshot {
	return snapshot{Null: s.IsNull(), Inline: s.IsInline(), Len: s.Len(), Cap: s.Cap(), Content: s.String()}
}

func TestFailedGrowthLeavesValueUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *String
		op    func(*String) bool
	}{
		{
			name:  "reserve inline",
			setup: func() *String { return FromString("hello") },
			op:    func(s *String) bool { return s.Reserve(100) },
		},
		{
			name:  "reserve null",
			setup: New,
			op:    func(s *String) bool { return s.Reserve(100) },
		},
		{
			name:  "set length",
			setup: func() *String { return FromString("hello") },
			op:    func(s *String) bool { return s.SetLength(200) },
		},
		{
			name:  "concat heap",
			setup: func() *String { return FromString(strings.Repeat("x", 40)) },
			op:    func(s *String) bool { return s.ConcatString(strings.Repeat("y", 20)) },
		},
		{
			name:  "concat self",
			setup: func() *String { return FromString(strings.Repeat("x", 40)) },
			op:    func(s *String) bool { return s.Concat(s) },
		},
		{
			name:  "concat number",
			setup: func() *String { return FromString(strings.Repeat("x", 14)) },
			op:    func(s *String) bool { return s.ConcatInt(1, Format{Width: 100}) },
		},
		{
			name:  "replace needing staging",
			setup: func() *String { return FromString(strings.Repeat("ab", 20)) },
			op:    func(s *String) bool { return s.Replace("a", "AAA") },
		},
		{
			name:  "pad",
			setup: func() *String { return FromString("42") },
			op: func(s *String) bool {
				s.PadLeft(100, '0')
				return s.Len() == 100
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBudget(t, 64)
			s := tt.setup()
			before := snap(s)

			if tt.op(s) {
				t.Fatal("operation should fail on an exhausted budget")
			}
			if diff := cmp.Diff(before, snap(s)); diff != "" {
				t.Errorf("failed operation changed the value (-before +after):\n%s", diff)
			}
			checkInvariants(t, s)
		})
	}
}

func TestFailedAssignNullsDestination(t *testing.T) {
	src := FromString(strings.Repeat("s", 40))
	withBudget(t, 32)

	dst := FromString("abc")
	if dst.Assign(src) {
		t.Fatal("Assign should fail on an exhausted budget")
	}
	if !dst.IsNull() {
		t.Errorf("destination should be null, holds %q", dst.String())
	}
	if src.String() != strings.Repeat("s", 40) {
		t.Error("failed Assign changed the source")
	}
	if !src.Clone().IsNull() {
		t.Error("failed Clone should be null")
	}
}

func TestFailedConstructorsAreNull(t *testing.T) {
	withBudget(t, 16)
	if !FromString(strings.Repeat("c", 40)).IsNull() {
		t.Error("FromString should be null when allocation fails")
	}
	if !FromInt(1, Format{Width: 40}).IsNull() {
		t.Error("FromInt should be null when allocation fails")
	}
	if FromString("fits inline").IsNull() {
		t.Error("inline content needs no allocation")
	}
}

func TestFailedGetBufferKeepsValue(t *testing.T) {
	withBudget(t, 8)
	s := FromString("abc")
	buf := s.GetBuffer()
	if buf.Data != nil {
		t.Errorf("expected the zero Buffer, got %+v", buf)
	}
	if s.String() != "abc" || !s.IsInline() {
		t.Error("failed hand-out changed the value")
	}
}

func TestBudgetAccountingReturnsToZero(t *testing.T) {
	b := withBudget(t, 1024)

	s := FromString(strings.Repeat("a", 20))
	s.ConcatString(strings.Repeat("b", 30))
	s.Replace("a", "aa")
	clone := s.Clone()
	sum := NewSum(s).Add(clone).AddString("tail").Result()

	if b.Stats().InUse == 0 {
		t.Fatal("expected heap buffers in use")
	}

	s.Release()
	clone.Release()
	sum.Release()

	stats := b.Stats()
	if stats.InUse != 0 {
		t.Errorf("InUse = %d after releasing everything", stats.InUse)
	}
	if stats.Allocations != stats.Frees {
		t.Errorf("allocations %d != frees %d", stats.Allocations, stats.Frees)
	}
	if stats.Failures != 0 {
		t.Errorf("unexpected failures: %d", stats.Failures)
	}
}

func TestWriteReportsAllocationError(t *testing.T) {
	withBudget(t, 32)
	s := FromString("abc")

	n, err := s.WriteString(strings.Repeat("w", 50))
	if err == nil || n != 0 {
		t.Fatalf("WriteString = %d, %v", n, err)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeAllocationFailed) {
		t.Errorf("error code = %s", mdwerror.GetCode(err))
	}
	if s.String() != "abc" {
		t.Errorf("failed write changed the value to %q", s.String())
	}
}

func TestFailureIsLogged(t *testing.T) {
	var out bytes.Buffer
	SetLogger(mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatJSON, Output: &out}))
	t.Cleanup(func() { SetLogger(nil) })
	withBudget(t, 16)

	s := FromString("abc")
	if s.Reserve(64) {
		t.Fatal("Reserve should fail")
	}
	line := out.String()
	for _, want := range []string{"allocation failed", `"operation":"grow"`, "ALLOCATION_FAILED"} {
		if !strings.Contains(line, want) {
			t.Errorf("log output missing %q:\n%s", want, line)
		}
	}
}

func TestConfigure(t *testing.T) {
	prevAlloc, prevPolicy := Allocator(), Policy()
	t.Cleanup(func() {
		SetAllocator(prevAlloc)
		SetPolicy(prevPolicy)
	})

	cfg, err := config.LoadFromString("[alloc]\nkind = \"budget\"\nbudget = 40\ngranularity = 8\n", config.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	if err := Configure(cfg); err != nil {
		t.Fatal(err)
	}
	if Policy().Granularity != 8 {
		t.Errorf("granularity = %d", Policy().Granularity)
	}

	s := FromString(strings.Repeat("g", 20))
	if s.Cap() != 23 {
		t.Errorf("Cap() = %d, want 23", s.Cap())
	}
	if s.ConcatString(strings.Repeat("h", 20)) {
		t.Error("budget of 40 bytes should refuse a 48 byte buffer")
	}

	bad, _ := config.LoadFromString("[alloc]\nkind = \"pool\"\n", config.FormatTOML)
	if err := Configure(bad); !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Configure(bad) err = %v", err)
	}
}
