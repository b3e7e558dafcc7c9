// Package logging provides the leveled run log.
//
// Every entry is printed to the console immediately. Entries not marked
// console-only are also buffered in order and written to the log file in one
// go by Persist, so a failed run still leaves its diagnostic history behind.
package logging

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// Level is the severity of a log entry.
type Level string

// Log levels.
const (
	LevelInfo    Level = "INFO"
	LevelSuccess Level = "SUCCESS"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
)

// TimeLayout formats entry timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// Logger records leveled messages to the console and to an in-memory buffer.
type Logger struct {
	mu      sync.Mutex
	console *Console
	now     func() time.Time
	entries []string
}

// NewLogger creates a Logger printing through console and stamping entries with now.
func NewLogger(console *Console, now func() time.Time) *Logger {
	if now == nil {
		now = time.Now
	}

	return &Logger{console: console, now: now}
}

// Format returns the log line for a message: "[<timestamp>] [<LEVEL>] <message>".
func Format(ts time.Time, level Level, message string) string {
	return "[" + ts.Format(TimeLayout) + "] [" + string(level) + "] " + message
}

// Log records message at level. With consoleOnly set, the entry is printed
// but not kept for Persist.
func (l *Logger) Log(level Level, message string, consoleOnly bool) {
	line := Format(l.now(), level, message)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.console != nil {
		l.console.Entry(level, line)
	}

	if !consoleOnly {
		l.entries = append(l.entries, line)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...any) {
	l.Log(LevelInfo, fmt.Sprintf(format, args...), false)
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...any) {
	l.Log(LevelSuccess, fmt.Sprintf(format, args...), false)
}

// Warning logs at WARNING level (yellow).
func (l *Logger) Warning(format string, args ...any) {
	l.Log(LevelWarning, fmt.Sprintf(format, args...), false)
}

// Error logs at ERROR level (red), to the error stream.
func (l *Logger) Error(format string, args ...any) {
	l.Log(LevelError, fmt.Sprintf(format, args...), false)
}

// ConsoleOnly logs at level without keeping the entry for Persist.
func (l *Logger) ConsoleOnly(level Level, format string, args ...any) {
	l.Log(level, fmt.Sprintf(format, args...), true)
}

// Debug logs a console-only INFO entry when verbose is set; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...any) {
	if !verbose {
		return
	}

	l.ConsoleOnly(LevelInfo, "[debug] "+format, args...)
}

// Entries returns a copy of the buffered entries in logging order.
func (l *Logger) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.entries)
}

// Persist writes the buffered entries, newline-joined, to path. A failure is
// also reported on the console.
func (l *Logger) Persist(path string) error {
	content := strings.Join(l.Entries(), "\n")

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { //nolint:gosec // Log file is not sensitive
		err = fmt.Errorf("writing log file: %w", err)
		if l.console != nil {
			l.console.Fail("ERROR", "Failed to save log file: "+err.Error())
		}

		return err
	}

	return nil
}
