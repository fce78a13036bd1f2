package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/notes-backend/internal/config"
	"github.com/heartmarshall/notes-backend/pkg/ctxutil"
)

// NewLogger builds the process logger on stderr and installs it as the
// slog default. Format "json" is meant for production, "text" adds source
// locations for local work. Records logged with a request context carry
// the request_id attribute.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(ctxutil.NewLogHandler(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
