package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewWithWriterJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)
	log.Info().Str("component", "test").Msg("hello")

	output := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Fatalf("expected json output, got %q", output)
	}
	if !strings.Contains(output, `"message":"hello"`) {
		t.Fatalf("expected message field, got %q", output)
	}
	if !strings.Contains(output, `"component":"test"`) {
		t.Fatalf("expected structured field, got %q", output)
	}
}

func TestNewWithWriterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithWriter(Config{Level: "warn", Format: "json"}, &buf)
	log.Info().Msg("ignored")
	log.Warn().Msg("kept")

	output := buf.String()
	if strings.Contains(output, "ignored") {
		t.Fatalf("info line should be filtered at warn level: %q", output)
	}
	if !strings.Contains(output, "kept") {
		t.Fatalf("warn line missing: %q", output)
	}
}

func TestNewWithWriterConsoleFormat(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithWriter(Config{Level: "info", Format: "console"}, &buf)
	log.Info().Msg("hello")

	output := buf.String()
	if output == "" {
		t.Fatal("expected console output")
	}
	if strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Fatalf("console output should not be raw json: %q", output)
	}
}
