package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warnings.
	LevelWarn
	// LevelError is for errors.
	LevelError
)

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	currentLevel           = LevelWarn
	isStructured           = false
	outputWriter io.Writer = os.Stderr
	globalFields []any
)

func init() {
	SetupLogger(LevelWarn, false)
}

// SetupLogger configures the global logger to write to stderr.
// This function is safe for concurrent use.
func SetupLogger(level Level, structured bool) {
	SetupLoggerWithWriter(os.Stderr, level, structured)
}

// SetupLoggerWithWriter configures the logger with a custom writer.
// This is useful for testing or redirecting logs.
// This function is safe for concurrent use.
func SetupLoggerWithWriter(w io.Writer, level Level, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	currentLevel = level
	isStructured = structured
	rebuild()
}

// rebuild recreates the handler from the current settings.
// Caller must hold mu.Lock().
func rebuild() {
	opts := &slog.HandlerOptions{Level: toSlogLevel(currentLevel)}

	var handler slog.Handler
	if isStructured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	globalLogger = slog.New(handler).With(globalFields...)
	slog.SetDefault(globalLogger)
}

// SetFields attaches key-value pairs to every record logged afterwards,
// replacing fields from a previous call. Component loggers bind the global
// logger when created, so call this before creating them.
func SetFields(fields ...any) {
	mu.Lock()
	defer mu.Unlock()

	globalFields = append([]any(nil), fields...)
	rebuild()
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ParseLevel parses a string into a Level.
// Valid values are: "debug", "info", "warn", "warning", "error".
// The second result is false for unrecognized values.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelWarn, false
	}
}

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	default:
		return "warn"
	}
}

// GetLevel returns the current logging level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// IsDebugEnabled returns true if debug logging is enabled.
func IsDebugEnabled() bool {
	return GetLevel() == LevelDebug
}

// Logger returns the underlying slog.Logger for advanced usage.
// This function is safe for concurrent use.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
