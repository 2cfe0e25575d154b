package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"ERROR", LogLevelError},
		{"bogus", LogLevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf, Prefix: "test"})

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warn")
	logger.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-severity output leaked: %q", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("high-severity output missing: %q", out)
	}
}

func TestLoggerFormatting(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf, Prefix: "textwin"})

	logger.Info("count is %d", 42)

	out := buf.String()
	if !strings.Contains(out, "[INFO] textwin: count is 42") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})

	logger.WithComponent("render").WithField("rows", 4).Info("drawn")

	out := buf.String()
	if !strings.Contains(out, "component=render") || !strings.Contains(out, "rows=4") {
		t.Errorf("fields missing: %q", out)
	}

	// The parent logger is unchanged.
	buf.Reset()
	logger.Info("plain")
	if strings.Contains(buf.String(), "component=") {
		t.Errorf("parent logger mutated: %q", buf.String())
	}
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelError, Output: &buf})

	logger.Info("before")
	logger.SetLevel(LogLevelDebug)
	logger.Info("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Errorf("filtered line leaked: %q", out)
	}
	if !strings.Contains(out, "after") {
		t.Errorf("enabled line missing: %q", out)
	}
}
