// Package gelog is the core's structured logger.
//
// It is modelled on the ring-buffer-of-tagged-entries logger used by the
// console emulator this engine was adapted from, but runs synchronously:
// the simulation core is single-threaded (no goroutines, no locks) and a
// log call happens inline with the tick that produced it.
package gelog

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// Level is the severity of a log entry, ordered least to most verbose.
type Level int

const (
	LevelNone Level = iota
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Subsystem tags which part of the core produced an entry.
type Subsystem string

const (
	Scheduler  Subsystem = "Scheduler"
	Doors      Subsystem = "Doors"
	Plotter    Subsystem = "Plotter"
	Routes     Subsystem = "Routes"
	Items      Subsystem = "Items"
	Searchlight Subsystem = "Searchlight"
	Messages   Subsystem = "Messages"
	Events     Subsystem = "Events"
	Hero       Subsystem = "Hero"
)

// Entry is a single log record.
type Entry struct {
	Tick      uint64
	Subsystem Subsystem
	Level     Level
	Message   string
	Data      interface{}
}

// Logger is a fixed-capacity ring buffer of Entry, with per-subsystem
// enable flags and a minimum level filter. Disabled by default per
// subsystem: logging is opt-in, so a quiet run costs nothing.
type Logger struct {
	entries  []Entry
	next     int
	count    int
	enabled  map[Subsystem]bool
	minLevel Level
	tick     uint64
}

// New creates a Logger with room for capacity entries (minimum 64).
func New(capacity int) *Logger {
	if capacity < 64 {
		capacity = 64
	}
	return &Logger{
		entries:  make([]Entry, capacity),
		enabled:  make(map[Subsystem]bool),
		minLevel: LevelInfo,
	}
}

// SetTick records the current simulation tick, stamped onto subsequent entries.
func (l *Logger) SetTick(tick uint64) { l.tick = tick }

// Enable turns logging on or off for a subsystem.
func (l *Logger) Enable(s Subsystem, on bool) { l.enabled[s] = on }

// SetMinLevel sets the minimum level that will be recorded.
func (l *Logger) SetMinLevel(level Level) { l.minLevel = level }

// Log records an entry if its subsystem is enabled and its level clears
// the minimum. At LevelTrace, data is rendered with spew.Sdump so that
// vischar/route snapshots are legible without hand-rolled formatting.
func (l *Logger) Log(s Subsystem, level Level, msg string, data interface{}) {
	if !l.enabled[s] || level > l.minLevel || level == LevelNone {
		return
	}
	entry := Entry{Tick: l.tick, Subsystem: s, Level: level, Message: msg, Data: data}
	if level == LevelTrace && data != nil {
		entry.Message = fmt.Sprintf("%s\n%s", msg, spew.Sdump(data))
	}
	l.entries[l.next] = entry
	l.next = (l.next + 1) % len(l.entries)
	if l.count < len(l.entries) {
		l.count++
	}
}

// Warn logs a defined no-op fallback for malformed input: the caller logs
// via Warn and then performs its own no-op (stand still, transparent
// tile, terminate route) rather than panicking.
func (l *Logger) Warn(s Subsystem, msg string, data interface{}) {
	l.Log(s, LevelWarning, msg, data)
}

// Entries returns the buffered entries in chronological order.
func (l *Logger) Entries() []Entry {
	out := make([]Entry, 0, l.count)
	start := (l.next - l.count + len(l.entries)) % len(l.entries)
	for i := 0; i < l.count; i++ {
		out = append(out, l.entries[(start+i)%len(l.entries)])
	}
	return out
}
