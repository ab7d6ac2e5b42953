package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	expected := []string{"serve", "capability", "version"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "expected subcommand %q to be registered", name)
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", rootCmd.Version)
}

func TestBuiltinRegistry(t *testing.T) {
	registry, err := builtinRegistry()
	require.NoError(t, err)

	assert.Len(t, registry.Names("tool"), 1)
	assert.Len(t, registry.Names("prompt"), 1)
	assert.Len(t, registry.Names("resource"), 1)
}

func TestCapabilityGet_UnknownCapability(t *testing.T) {
	err := runCapabilityGet(capabilityGetCmd, []string{"tool", "no-such-tool"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capability not found")
}
