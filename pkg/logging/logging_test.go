package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"nonsense", LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.input), "input %q", tt.input)
	}
}

func TestLogging_WritesSubsystem(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelDebug, &buf)

	Info("Test", "hello %s", "world")

	out := buf.String()
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "subsystem=Test")
	assert.Contains(t, out, "level=INFO")
}

func TestLogging_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelWarn, &buf)

	Debug("Test", "invisible")
	Warn("Test", "visible")

	out := buf.String()
	assert.NotContains(t, out, "invisible")
	assert.Contains(t, out, "visible")
}
