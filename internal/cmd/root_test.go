package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "fabricforge", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, flag := range []string{"config", "verbose", "timestamps"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "persistent flag %s should exist", flag)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "init")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}

func TestRootCmd_VersionThroughRoot(t *testing.T) {
	// PersistentPreRunE tolerates a missing config file.
	t.Setenv("FABRICFORGE_CONFIG", "/nonexistent/config.yaml")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"version"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
}

func TestGetConfig_FallsBackToDefaults(t *testing.T) {
	forgeConfig = nil
	t.Cleanup(func() { forgeConfig = nil })

	cfg := GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "item", cfg.Defaults.Kind)
}
