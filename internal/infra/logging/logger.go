// Package logging provides file-based logging for commonspace.
// Entries are appended to <dir>/commonspace.log, one line per entry:
//
//	[2025-12-30 09:32:51] [INFO] [engine] nearest run: ./sbt 'run nearest 39.958823 -75.158553'
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/commonspace/commonspace/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

const timeLayout = "2006-01-02 15:04:05"

// Logger appends leveled, categorized entries to a log file that is opened
// on the first write. A Logger with an empty dir discards everything.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file  *os.File
	now   func() time.Time
	dir   string
	mu    sync.Mutex
	level slog.Level
}

// New creates a Logger writing entries at or above level into dir.
func New(dir string, level slog.Level) *Logger {
	return &Logger{dir: dir, level: level, now: time.Now}
}

// ParseLevel parses debug, info, warn or error (any case). Anything else
// yields slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if s == "" || level.UnmarshalText([]byte(s)) != nil {
		return slog.LevelInfo
	}
	return level
}

// Close closes the log file if it was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := l.file
	l.file = nil
	if f == nil {
		return nil
	}
	return f.Close()
}

func (l *Logger) open() error {
	if l.file != nil {
		return nil
	}
	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(domain.LogFilePath(l.dir), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return nil
}

func (l *Logger) write(level slog.Level, category, msg string) {
	if l.dir == "" || level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString("[" + l.now().Format(timeLayout) + "] ")
	b.WriteString("[" + level.String() + "] ")
	b.WriteString("[" + category + "] ")
	b.WriteString(msg)
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.open() != nil {
		return
	}
	_, _ = l.file.WriteString(b.String())
}

// Debug logs a debug message.
func (l *Logger) Debug(category, msg string) { l.write(slog.LevelDebug, category, msg) }

// Info logs an info message.
func (l *Logger) Info(category, msg string) { l.write(slog.LevelInfo, category, msg) }

// Warn logs a warning message.
func (l *Logger) Warn(category, msg string) { l.write(slog.LevelWarn, category, msg) }

// Error logs an error message.
func (l *Logger) Error(category, msg string) { l.write(slog.LevelError, category, msg) }
