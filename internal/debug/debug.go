// Package debug carries the --debug switch through contexts and configures
// the process logger.
package debug

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

const debugKey contextKey = "debug_enabled"

// WithDebug returns a context with debug mode enabled/disabled.
func WithDebug(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, debugKey, enabled)
}

// IsEnabled returns true if debug mode is enabled in the context.
func IsEnabled(ctx context.Context) bool {
	if v, ok := ctx.Value(debugKey).(bool); ok {
		return v
	}
	return false
}

// SetupLogger configures the default slog logger. Debug records are only
// emitted when debugEnabled is set; otherwise warnings and errors pass.
// A nil writer means stderr.
func SetupLogger(w io.Writer, debugEnabled bool) {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if debugEnabled {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "access_token" || a.Key == "client_secret" {
				return slog.String(a.Key, Redact(a.Value.String()))
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

// Redact masks a secret, keeping the last four characters for recognition.
func Redact(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", 8) + secret[len(secret)-4:]
}
