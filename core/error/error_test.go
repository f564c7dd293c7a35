// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and details.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Allocation codes and errors.Is support

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("allocation of %d bytes failed", 64)
	if err.Error() != "allocation of 64 bytes failed" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original"),
			message:  "wrapper",
			wantMsg:  "wrapper: original",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error keeps code",
			err:      New("out of memory").WithCode(CodeAllocationFailed),
			message:  "reserve failed",
			wantMsg:  "reserve failed: out of memory",
			wantCode: CodeAllocationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeAllocationFailed)
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, "layer")
	}
	if depth := chainDepth(err); depth > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want at most %d", depth, MaxErrorChainDepth+1)
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("truncated chain lost the root cause: %q", err.Error())
	}
	if GetCode(err) != CodeAllocationFailed {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeAllocationFailed)
	}
}

func TestWithMethods(t *testing.T) {
	err := New("failed").
		WithCode(CodeBudgetExceeded).
		WithOperation("alloc.Budget.Allocate").
		WithDetail("requested", 64).
		WithDetails(map[string]interface{}{"available": 10})

	if err.Operation() != "alloc.Budget.Allocate" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	details := err.Details()
	if details["requested"] != 64 || details["available"] != 10 {
		t.Errorf("Details() = %v", details)
	}
	if v, ok := err.Detail("requested"); !ok || v != 64 {
		t.Errorf("Detail(requested) = %v, %v", v, ok)
	}

	details["requested"] = 1
	if v, _ := err.Detail("requested"); v != 64 {
		t.Error("Details() must return a copy")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	if got := New("x").WithCode(CodeInternal).Severity(); got != SeverityCritical {
		t.Errorf("severity = %v, want %v", got, SeverityCritical)
	}
	if got := New("x").WithSeverity(SeverityLow).WithCode(CodeInternal).Severity(); got != SeverityLow {
		t.Errorf("explicit severity overwritten: %v", got)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("allocation failed").WithCode(CodeAllocationFailed)
	err := Wrap(New("budget exhausted").WithCode(CodeAllocationFailed), "concat")

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should match errors with the same code")
	}
	if errors.Is(err, New("other").WithCode(CodeInvalidInput)) {
		t.Error("errors.Is should not match a different code")
	}
	if errors.Is(New("a"), New("b")) {
		t.Error("CodeUnknown errors must not match each other")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("budget exhausted").WithCode(CodeBudgetExceeded)
	outer := Wrap(inner, "reserve").WithCode(CodeAllocationFailed)

	if !HasCode(outer, CodeAllocationFailed) {
		t.Error("HasCode should match the outer code")
	}
	if !HasCode(outer, CodeBudgetExceeded) {
		t.Error("HasCode should walk the chain")
	}
	if HasCode(errors.New("plain"), CodeAllocationFailed) {
		t.Error("HasCode on a plain error should be false")
	}
	if HasCode(nil, CodeAllocationFailed) {
		t.Error("HasCode(nil) should be false")
	}
}

func TestGetters(t *testing.T) {
	plain := errors.New("plain")
	if GetCode(plain) != CodeUnknown {
		t.Error("GetCode(plain) should be CodeUnknown")
	}
	if GetSeverity(plain) != SeverityMedium {
		t.Error("GetSeverity(plain) should be SeverityMedium")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("cause"), "top").
		WithCode(CodeAllocationFailed).
		WithOperation("wstring.Reserve").
		WithDetail("b", 2).
		WithDetail("a", 1)

	s := err.String()
	for _, want := range []string{
		"Error: top",
		"Code: ALLOCATION_FAILED",
		"Operation: wstring.Reserve",
		"Details: {a=1, b=2}",
		"Cause: cause",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("failed").WithCode(CodeAllocationFailed).WithDetail("requested", 32)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal: %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal: %v", jerr)
	}
	if decoded["code"] != "ALLOCATION_FAILED" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "medium" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	details, _ := decoded["details"].(map[string]interface{})
	if details["requested"] != float64(32) {
		t.Errorf("details = %v", decoded["details"])
	}
}
