// Package log provides structured logging for wstring.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent context fields and JSON or
//              text output. The allocators log budget exhaustion through it
//              and the string package logs failed growth at debug level.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Synchronous output only
//
// Usage:
//
//	logger := log.New().WithName("alloc").WithField("arena", id)
//	logger.Warn("budget exhausted", log.Fields{"requested": 64, "available": 12})
//
//	if err := sb.WriteString("x"); err != nil {
//		logger.LogError(err)
//	}
package log
