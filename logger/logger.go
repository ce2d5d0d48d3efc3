package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/devtrivedi96/Code-analyst-ai/config"
)

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	defaultLogger.Store(New(config.LoggingConfig{Level: "info", Format: "text"}, os.Stderr))
}

// New creates a logger writing to w according to cfg. When cfg.File is set
// and can be opened, output goes there instead of w.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	if cfg.File != "" {
		if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			w = f
		}
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a configured level name to a slog level. Unknown names
// fall back to info.
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

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Configure replaces the default logger.
func Configure(cfg config.LoggingConfig) {
	defaultLogger.Store(New(cfg, os.Stderr))
}

// Default returns the package-level logger.
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// Debug logs using the default logger.
func Debug(msg string, args ...any) {
	Default().Debug(msg, args...)
}

// Info logs using the default logger.
func Info(msg string, args ...any) {
	Default().Info(msg, args...)
}

// Warn logs using the default logger.
func Warn(msg string, args ...any) {
	Default().Warn(msg, args...)
}

// Error logs using the default logger.
func Error(msg string, args ...any) {
	Default().Error(msg, args...)
}
