package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		debug bool
		warn  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"error", false, false},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		l := New(tt.level, "text", &bytes.Buffer{})
		if got := l.Enabled(context.Background(), slog.LevelDebug); got != tt.debug {
			t.Errorf("%s: debug enabled = %v", tt.level, got)
		}
		if got := l.Enabled(context.Background(), slog.LevelWarn); got != tt.warn {
			t.Errorf("%s: warn enabled = %v", tt.level, got)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New("info", "json", &buf).Info("hello", "k", "v")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"k":"v"`) {
		t.Errorf("expected JSON record, got %q", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	l := Discard()
	ctx := WithLogger(context.Background(), l)
	if FromContext(ctx) != l {
		t.Error("expected logger from context")
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Error("expected default logger fallback")
	}
}
