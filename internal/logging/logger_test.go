package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"info", "info", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"trace", "trace", LevelTrace},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"mixed case Trace", "Trace", LevelTrace},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger_levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("debug", &buf)
	l.Info("visible")
	l.Debug("also visible")
	l.Log(context.Background(), LevelTrace, "hidden")

	out := buf.String()
	if !strings.Contains(out, "visible") || !strings.Contains(out, "also visible") {
		t.Errorf("missing info/debug output: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("trace message logged at debug level: %q", out)
	}
}

func TestNewLogger_traceLabel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("trace", &buf)
	l.Log(context.Background(), LevelTrace, "press", "press", 1)
	if out := buf.String(); !strings.Contains(out, "level=TRACE") {
		t.Errorf("expected TRACE label, got %q", out)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger is enabled at error level")
	}
}
