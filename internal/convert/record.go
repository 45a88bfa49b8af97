// Package convert reconstructs logical log entries from Azure App Service
// diagnostic exports: CSV rows of (eventTickCount, message) become time-sorted,
// per-tag text files.
package convert

import (
	"time"
)

// Level is the severity prefix of a log entry header.
type Level string

const (
	LevelInfo Level = "info"
	LevelWarn Level = "warn"
	LevelFail Level = "fail"
)

// levels in header matching priority order.
var levels = []Level{LevelInfo, LevelWarn, LevelFail}

// Record is one raw CSV row from the source file.
type Record struct {
	Ticks   int64
	Message string
}

// Header is the parsed form of a message that opens a new entry.
type Header struct {
	Level Level
	Tag   string // raw tag source, not yet normalized
}

// Entry is a closed, immutable log entry.
type Entry struct {
	OccurredAt time.Time `json:"occurred_at"`
	Tag        string    `json:"tag"`
	Level      Level     `json:"level"`
	Message    string    `json:"msg"`
}

const (
	// ticksPerSecond is the number of 100ns ticks in one second.
	ticksPerSecond = 10_000_000

	// tickEpochUnix is 0001-01-01T00:00:00Z expressed as Unix seconds.
	tickEpochUnix = -62135596800
)

// ToInstant converts an eventTickCount value (100ns ticks since year 1) into
// a UTC instant. Split into seconds and remainder to stay clear of int64
// nanosecond overflow for modern dates.
func ToInstant(ticks int64) time.Time {
	secs := ticks / ticksPerSecond
	rem := ticks % ticksPerSecond
	return time.Unix(tickEpochUnix+secs, rem*100).UTC()
}
