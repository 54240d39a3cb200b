package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Logger is the structured logger passed between components.
type Logger = *slog.Logger

type LoggerOption func(opts *loggerOptions)

type loggerOptions struct {
	level       slog.Level
	development bool
	writer      io.Writer
}

// WithLevel sets the minimum level that is logged. Defaults to info.
func WithLevel(level slog.Level) LoggerOption {
	return func(opts *loggerOptions) {
		opts.level = level
	}
}

// WithDevelopment switches from JSON output to human-readable tint output.
// Colour is only used when the writer is a terminal.
func WithDevelopment() LoggerOption {
	return func(opts *loggerOptions) {
		opts.development = true
	}
}

// WithWriter sets the log destination. Defaults to stderr; stdout is reserved
// for generated output.
func WithWriter(w io.Writer) LoggerOption {
	return func(opts *loggerOptions) {
		opts.writer = w
	}
}

func NewLogger(opts ...LoggerOption) Logger {
	o := loggerOptions{
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.development {
		return slog.New(tint.NewHandler(o.writer, &tint.Options{
			Level:      o.level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(o.writer),
		}))
	}

	return slog.New(slog.NewJSONHandler(o.writer, &slog.HandlerOptions{
		Level: o.level,
	}))
}

// ParseLevel parses one of debug, info, warn or error (case-insensitive).
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
