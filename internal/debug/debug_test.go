package debug

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestWithDebug(t *testing.T) {
	ctx := WithDebug(context.Background(), true)
	if !IsEnabled(ctx) {
		t.Error("IsEnabled should return true when debug is enabled")
	}
	if IsEnabled(WithDebug(ctx, false)) {
		t.Error("IsEnabled should return false when debug is disabled")
	}
	if IsEnabled(context.Background()) {
		t.Error("IsEnabled should return false by default")
	}
}

func TestSetupLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	SetupLogger(&buf, true)
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("SetupLogger(true) should enable debug level logging")
	}

	SetupLogger(&buf, false)
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("SetupLogger(false) should disable debug level logging")
	}
	if !slog.Default().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("SetupLogger(false) should keep warn level logging")
	}
}

func TestSetupLoggerRedactsTokens(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(&buf, true)
	defer SetupLogger(nil, false)

	slog.Debug("request", "access_token", "vk1.a.secretsecret1234", "method", "users.get")

	out := buf.String()
	if strings.Contains(out, "secretsecret") {
		t.Errorf("token leaked into log: %s", out)
	}
	if !strings.Contains(out, "1234") || !strings.Contains(out, "method=users.get") {
		t.Errorf("unexpected log output: %s", out)
	}
}

func TestRedact(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"short":            "*****",
		"abcdefghijklmnop": "********mnop",
	}
	for in, want := range tests {
		if got := Redact(in); got != want {
			t.Errorf("Redact(%q) = %q, want %q", in, got, want)
		}
	}
}
