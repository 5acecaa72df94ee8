// Package logger provides a small leveled logger for the model and its tools.
// It is backed by zerolog; the printf-style API keeps call sites terse.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Level represents the logging level.
type Level int

// Log levels.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return ""
	}
}

// ParseLevel converts a level name ("debug", "info", "warn", "error", "none")
// to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug", "DEBUG":
		return LevelDebug, nil
	case "info", "INFO", "":
		return LevelInfo, nil
	case "warn", "WARN", "warning":
		return LevelWarn, nil
	case "error", "ERROR":
		return LevelError, nil
	case "none", "off", "disabled":
		return LevelNone, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

// Logger provides logging functionality.
type Logger struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	zl     zerolog.Logger
}

const component = "gofhir-model"

var defaultLogger atomic.Pointer[Logger]

func init() {
	defaultLogger.Store(New(os.Stderr, LevelInfo))
}

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger. It is safe to call while other
// goroutines log. A nil l is ignored.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(l)
}

// New creates a new logger writing JSON lines to output.
func New(output io.Writer, level Level) *Logger {
	l := &Logger{level: level, output: output}
	l.rebuild()
	return l
}

// NewConsole creates a logger with human-readable output, for terminals.
func NewConsole(output io.Writer, level Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}, level)
}

// rebuild must be called with mu held (or before the logger is shared).
func (l *Logger) rebuild() {
	l.zl = zerolog.New(l.output).
		Level(l.level.zerolog()).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}

// SetLevel sets the logging level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.rebuild()
}

// Level returns the current level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// Zerolog returns the underlying zerolog logger for structured fields.
func (l *Logger) Zerolog() zerolog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.zl
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	l.zl.WithLevel(level.zerolog()).Msgf(format, args...)
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info logs an info message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Package-level convenience functions.

// Debug logs a debug message using the default logger.
func Debug(format string, args ...any) {
	Default().Debug(format, args...)
}

// Info logs an info message using the default logger.
func Info(format string, args ...any) {
	Default().Info(format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...any) {
	Default().Warn(format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...any) {
	Default().Error(format, args...)
}

// SetLevel sets the level of the default logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// SetOutput sets the output of the default logger.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

// Disable disables all logging.
func Disable() {
	Default().SetLevel(LevelNone)
}
