package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger creates a logger configured from the logging config.
// Verbose and quiet take priority over the configured level.
// Logs go to w, or stderr when w is nil; stdout is reserved for results.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	if cfg == nil {
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	opts := &slog.HandlerOptions{Level: logLevel(&cfg.Logging)}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func logLevel(logging *LoggingConfig) slog.Level {
	if logging.Quiet {
		return slog.LevelWarn
	}
	if logging.Verbose {
		return slog.LevelDebug
	}

	switch logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
