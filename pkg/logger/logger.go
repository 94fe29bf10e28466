package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the process logger
type Options struct {
	Level          string
	Format         string // json or text
	FilePath       string // optional rotated file sink
	FileMaxSizeMB  int
	FileMaxBackups int
	App            string
	Version        string
}

// Logger wraps slog for consistent logging across the application
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New creates a new logger instance writing JSON to stdout at info level
func New() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

// NewWithOptions builds a logger from configuration. The text format uses a
// coloured console handler; a file sink always receives JSON.
func NewWithOptions(opts Options) *Logger {
	level := ParseLevel(opts.Level)

	var console slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		console = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		console = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	l := &Logger{}
	handler := console
	if opts.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.FileMaxSizeMB,
			MaxBackups: opts.FileMaxBackups,
			Compress:   true,
		}
		l.closer = rotator
		handler = fanout{console, slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: level})}
	}

	l.Logger = slog.New(handler)
	if opts.App != "" {
		l.Logger = l.Logger.With("app", opts.App, "version", opts.Version)
	}
	return l
}

// ParseLevel maps a level name to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// Close releases the file sink, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
