// ABOUTME: Process-wide leveled logger backed by zerolog, printf-style helpers
// ABOUTME: Defaults to stderr; Setup redirects it (the TUI owns stdout)

package log

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Level aliases zerolog levels.
type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

// Options configures the global logger.
type Options struct {
	Level  string
	Human  bool
	Writer io.Writer
}

var (
	logger atomic.Pointer[zerolog.Logger]
	level  atomic.Int32
)

func init() {
	level.Store(int32(LevelInfo))
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	logger.Store(&l)
}

// Setup replaces the global logger. An empty level keeps the current one.
func Setup(opts Options) error {
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return err
		}
		SetLevel(parsed)
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.Human {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.RFC3339
		console.NoColor = true
		w = console
	}
	l := zerolog.New(w).With().Timestamp().Logger()
	logger.Store(&l)
	return nil
}

// SetLevel sets the global log level.
func SetLevel(l Level) {
	level.Store(int32(l))
}

// GetLevel returns the current log level.
func GetLevel() Level {
	return Level(level.Load())
}

// Logger returns the underlying zerolog logger for structured fields.
func Logger() *zerolog.Logger {
	return logger.Load()
}

func emit(l Level, format string, args []any) {
	if l < GetLevel() {
		return
	}
	logger.Load().WithLevel(l).Msgf(format, args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) { emit(LevelDebug, format, args) }

// Info logs an info message if the level allows it.
func Info(format string, args ...any) { emit(LevelInfo, format, args) }

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) { emit(LevelWarn, format, args) }

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	logger.Load().Error().Msgf(format, args...)
}
