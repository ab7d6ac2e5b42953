package mcpserver

import (
	"bytes"
	"testing"

	"ezmcp/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestBanner(t *testing.T) {
	t.Setenv(config.EnvGreetingPrefix, "")
	t.Setenv(config.EnvEnvironment, "")

	adapter := newTestAdapter(t)
	banner := adapter.Banner()

	assert.Contains(t, banner, config.DefaultServerName)
	assert.Contains(t, banner, "server-info")
	assert.Contains(t, banner, "server://info")
	assert.Contains(t, banner, "hello-someone")
	assert.Contains(t, banner, "greeting-prompt")
	assert.Contains(t, banner, "Environment: development")
	assert.Contains(t, banner, "Greeting prefix: Hello")
}

func TestBanner_ReflectsEnvironment(t *testing.T) {
	t.Setenv(config.EnvGreetingPrefix, "Howdy")
	t.Setenv(config.EnvEnvironment, "staging")

	adapter := newTestAdapter(t)
	banner := adapter.Banner()

	assert.Contains(t, banner, "Environment: staging")
	assert.Contains(t, banner, "Greeting prefix: Howdy")
}

func TestPrintBanner(t *testing.T) {
	adapter := newTestAdapter(t)

	var buf bytes.Buffer
	adapter.PrintBanner(&buf)
	assert.Equal(t, adapter.Banner(), buf.String())
}
