// Package logging provides the structured logger shared by the I/O steps.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is a minimum log level.
type Level int

const (
	// LevelDebug logs everything, including per-step tracing.
	LevelDebug Level = iota
	// LevelInfo logs informational messages and above.
	LevelInfo
	// LevelWarn logs warnings and errors.
	LevelWarn
	// LevelError logs errors only.
	LevelError
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses "debug", "info", "warn"/"warning" or "error". Unknown
// values return LevelInfo and an error.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// Config configures a Logger.
type Config struct {
	// Level sets the minimum level that is written.
	Level Level
	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer
	// AddSource includes file and line in every record.
	AddSource bool
}

// DefaultConfig logs info and above to stderr.
func DefaultConfig() Config {
	return Config{Level: LevelInfo, Output: os.Stderr}
}

// Logger writes key/value structured records. A nil *Logger is valid and
// discards everything, so steps can log unconditionally.
type Logger struct {
	logger *slog.Logger
}

// New creates a text-format Logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     cfg.Level.slog(),
		AddSource: cfg.AddSource,
	})
	return &Logger{logger: slog.New(handler)}
}

// NewNop returns a Logger that discards all records.
func NewNop() *Logger {
	return &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *Logger) *Logger {
	if l == nil {
		return NewNop()
	}
	return l
}

// With returns a child logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{logger: l.logger.With(args...)}
}

// WithStep tags records with the pipeline step name.
func (l *Logger) WithStep(step string) *Logger {
	return l.With("step", step)
}

// WithComponent tags records with the emitting component.
func (l *Logger) WithComponent(component string) *Logger {
	return l.With("component", component)
}

// Debug logs debug-level messages.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	if l != nil {
		l.logger.DebugContext(ctx, msg, args...)
	}
}

// Info logs info-level messages.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	if l != nil {
		l.logger.InfoContext(ctx, msg, args...)
	}
}

// Warn logs warn-level messages.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	if l != nil {
		l.logger.WarnContext(ctx, msg, args...)
	}
}

// Error logs error-level messages.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	if l != nil {
		l.logger.ErrorContext(ctx, msg, args...)
	}
}
