// Package error provides structured error values for wstring.
//
// Package: error
// Title: wstring Error Handling
// Description: Coded, severity-tagged errors with details and stack traces.
//              The string type itself reports failures as booleans; this
//              package carries the reason behind them where an API returns
//              an error (allocators, io.Writer methods, configuration).
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Allocation codes
//
// Usage:
//
//	import mdwerror "github.com/msto63/wstring/core/error"
//
//	err := mdwerror.New("allocation of 64 bytes failed").
//		WithCode(mdwerror.CodeAllocationFailed).
//		WithOperation("alloc.Budget.Allocate").
//		WithDetail("requested", 64)
//
//	if mdwerror.HasCode(err, mdwerror.CodeAllocationFailed) {
//		// release something and retry
//	}
package error
