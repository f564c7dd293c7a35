// File: level.go
// Title: Log Levels
// Description: Severity levels for log filtering. Names and short tags come
//              from one table used by both printing and parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with standard log levels
// - 2026-10-09 v0.1.0: Level names moved into a single lookup table

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace reports storage transitions the caller rarely needs
	LevelTrace Level = iota

	// LevelDebug reports individual allocation decisions and failures
	LevelDebug

	LevelInfo

	// LevelWarn indicates exhausted budgets and rejected requests
	LevelWarn

	LevelError
	LevelFatal

	// LevelAudit is always logged regardless of the minimum level
	LevelAudit
)

type levelName struct {
	long    string
	short   string
	aliases []string
}

var levelNames = [...]levelName{
	LevelTrace: {"trace", "TRC", nil},
	LevelDebug: {"debug", "DBG", nil},
	LevelInfo:  {"info", "INF", []string{"information"}},
	LevelWarn:  {"warn", "WRN", []string{"warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelFatal: {"fatal", "FTL", nil},
	LevelAudit: {"audit", "AUD", nil},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three-letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether a message at this level passes minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel accepts a level name, its short tag or a common alias,
// ignoring case and surrounding space
func ParseLevel(level string) (Level, error) {
	in := strings.ToLower(strings.TrimSpace(level))
	for i, n := range levelNames {
		if in == n.long || in == strings.ToLower(n.short) {
			return Level(i), nil
		}
		for _, a := range n.aliases {
			if in == a {
				return Level(i), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError is returned for an unknown level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level new loggers start with
func DefaultLevel() Level {
	return LevelInfo
}
