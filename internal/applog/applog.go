// Package applog is the narrow logging interface the Time Controller and
// CLI depend on (SPEC_FULL.md §2, item 8). Grounded on
// original_source/src/logger/logger.cpp's spdlog-based level discipline
// (SPDLOG_TRACE/DEBUG/WARN/CRITICAL); no pack example carries a
// structured logging library (the teacher's own progress lines are bare
// fmt.Printf, e.g. model_problems/Maxwell1D/maxwell.go), so this is built
// on the standard library's log package with a level filter layered on
// top — a documented standard-library exception (DESIGN.md) rather than
// an unrelated ecosystem logger the corpus never demonstrates.
package applog

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level is a log severity, ordered least to most severe.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes level-tagged lines to an underlying writer (normally
// log/log.log, spec.md §6), filtering anything below MinLevel.
type Logger struct {
	MinLevel Level
	std      *log.Logger
}

// New constructs a Logger writing to w at the given minimum level.
func New(w io.Writer, minLevel Level) *Logger {
	return &Logger{
		MinLevel: minLevel,
		std:      log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
}

// Discard is a Logger that drops every line, useful in tests that do not
// care about diagnostic output.
func Discard() *Logger { return New(io.Discard, LevelError+1) }

// Stderr is a convenience Logger writing INFO and above to os.Stderr, for
// callers that want console feedback without a file-backed logger.
func Stderr() *Logger { return New(os.Stderr, LevelInfo) }

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.MinLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	l.std.Printf("[%s] %s", level, msg)
}

func (l *Logger) Trace(format string, args ...any) { l.log(LevelTrace, format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
