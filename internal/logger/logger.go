package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// New returns the shop's diagnostic logger. Records go to stderr as JSON so
// they never interleave with the menu and tables printed on stdout.
func New(serviceName, level string) *slog.Logger {
	return NewWithWriter(serviceName, level, os.Stderr)
}

// NewWithWriter is New with an explicit destination, used by tests to capture
// checkout and audit records. Source locations are only attached at debug.
func NewWithWriter(serviceName, level string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With(slog.String("service", serviceName))
}

// parseLevel maps LOG_LEVEL to a slog level. Unknown values fall back to info;
// config validation rejects them before they get here.
func parseLevel(level string) slog.Level {
	switch level {
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

// WithSessionID tags ctx with the console session, so checkout logs and audit
// records written in one run can be grouped.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext returns the session tag, or "" outside a session.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// WithContext adds the session_id attribute when ctx carries one.
func WithContext(ctx context.Context, l *slog.Logger) *slog.Logger {
	if id := SessionIDFromContext(ctx); id != "" {
		l = l.With(slog.String("session_id", id))
	}
	return l
}
