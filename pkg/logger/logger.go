// Package logger builds the slog logger the client runs on and collects the
// attribute constructors used across the codebase so field names stay
// consistent between packages.
package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// ParseLevel parses a configured level string, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Options configures the logger.
type Options struct {
	// Level is the minimum level, as configured (e.g. "debug").
	Level string

	// JSON switches from the human-readable text handler to JSON output,
	// the format log shippers expect.
	JSON bool

	// AddSource annotates records with the emitting file:line.
	AddSource bool
}

// New creates a logger writing to stderr so transcript output on stdout
// stays clean.
func New(opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: opts.AddSource,
	}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}

// Err wraps an error as the conventional "error" attribute.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Shared attribute constructors for the matching domain.
func StudentID(id string) slog.Attr     { return slog.String("student_id", id) }
func UserID(id string) slog.Attr        { return slog.String("user_id", id) }
func RoleName(role string) slog.Attr    { return slog.String("role", role) }
func Operation(name string) slog.Attr   { return slog.String("operation", name) }
func Latency(d time.Duration) slog.Attr { return slog.String("latency", d.String()) }
func Count(key string, n int) slog.Attr { return slog.Int(key, n) }
