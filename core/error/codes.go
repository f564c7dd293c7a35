// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by wstring. Allocation failure is
//              the only recoverable failure of the string type itself; the
//              remaining codes cover configuration and input validation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with core error codes
// - 2026-10-12 v0.2.0: Added allocation codes, removed service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Memory
	CodeAllocationFailed Code = "ALLOCATION_FAILED"
	CodeBudgetExceeded   Code = "BUDGET_EXCEEDED"
	CodeInvalidBuffer    Code = "INVALID_BUFFER"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeAllocationFailed, CodeBudgetExceeded, CodeInvalidBuffer,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeAllocationFailed, CodeBudgetExceeded, CodeInvalidBuffer:
		return "memory"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// IsRecoverable reports whether the caller can retry after releasing memory
// or fixing its input. Only internal errors are treated as unrecoverable.
func (c Code) IsRecoverable() bool {
	return c != CodeInternal
}
