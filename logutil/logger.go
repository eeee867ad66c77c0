package logutil

import (
	"log/slog"

	"github.com/google/uuid"
)

// ComponentLogger provides component-scoped structured logging.
type ComponentLogger struct {
	slogger *slog.Logger
}

// NewLogger creates a logger scoped to a named component. It binds to the
// global logger as configured at call time.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{
		slogger: Logger().With("component", component),
	}
}

// WithOperation returns a new logger with the operation context added.
func (l *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return l.WithFields("operation", name)
}

// WithRunID tags every record with a fresh random run id and returns it.
func (l *ComponentLogger) WithRunID() (*ComponentLogger, string) {
	id := uuid.NewString()
	return l.WithFields("run_id", id), id
}

// WithFields returns a new logger with additional alternating key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return &ComponentLogger{
		slogger: l.slogger.With(fields...),
	}
}

// Debug logs a message at debug level.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

// Info logs a message at info level.
func (l *ComponentLogger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

// Warn logs a message at warn level.
func (l *ComponentLogger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

// Error logs a message at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}
