package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config controls log output, loaded from the environment.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`  // debug, info, warn, error
	Format string `env:"LOG_FORMAT" envDefault:"json"` // json or text
}

// New builds a slog.Logger for the given service name. Unknown levels fall
// back to info and unknown formats to JSON, so a misconfigured environment
// still produces logs.
func New(cfg Config, service string) *slog.Logger {
	return NewWithOutput(cfg, service, os.Stdout)
}

// NewWithOutput is New with an explicit output writer, used by tests.
func NewWithOutput(cfg Config, service string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	log := slog.New(handler)
	if service != "" {
		log = log.With(slog.String("service", service))
	}
	return log
}

// Error wraps an error as a slog attribute under the conventional key.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

func parseLevel(s string) slog.Level {
	switch s {
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
