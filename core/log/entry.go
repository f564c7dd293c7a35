// File: entry.go
// Title: Log Entry and Field Types
// Description: Defines the Entry carried from a logger to its formatter and
//              the Fields helpers used to attach structured values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Entry represents a single log entry with its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
	Error     error
}

// Fields are structured key-value pairs attached to an entry
type Fields map[string]interface{}

// Int creates an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// NewEntry creates a new log entry with the given level and message
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
