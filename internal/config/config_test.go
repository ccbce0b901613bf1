package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultTemplateRepo, cfg.Template.Repo)
	assert.Equal(t, "Your Name", cfg.Defaults.Author)
	assert.Equal(t, "item", cfg.Defaults.Kind)
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()

	assert.Equal(t, DefaultTemplateRepo, cfg.Template.Repo)
	assert.Equal(t, "item", cfg.Defaults.Kind)

	// Explicit values are not overridden
	custom := (&Config{
		Template: TemplateConfig{Repo: "https://example.com/template.git"},
		Defaults: DefaultsConfig{Kind: "block"},
	}).WithDefaults()

	assert.Equal(t, "https://example.com/template.git", custom.Template.Repo)
	assert.Equal(t, "block", custom.Defaults.Kind)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads yaml config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `template:
  repo: https://example.com/my-template.git
defaults:
  author: Alex
  kind: block
log:
  timestamps: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)

		assert.Equal(t, "https://example.com/my-template.git", cfg.Template.Repo)
		assert.Equal(t, "Alex", cfg.Defaults.Author)
		assert.Equal(t, "block", cfg.Defaults.Kind)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.yaml")

		cfg, err := NewLoader().LoadWithDefaults(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultTemplateRepo, cfg.Template.Repo)
	})

	t.Run("environment variables take precedence", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("defaults:\n  author: FromFile\n"), 0o644))

		t.Setenv("FABRICFORGE_DEFAULTS_AUTHOR", "FromEnv")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)
		assert.Equal(t, "FromEnv", cfg.Defaults.Author)
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "absolute", in: "/etc/config.yaml", want: "/etc/config.yaml"},
		{name: "tilde only", in: "~", want: home},
		{name: "tilde slash", in: "~/cfg.yaml", want: filepath.Join(home, "cfg.yaml")},
		{name: "tilde user unsupported", in: "~bob/cfg.yaml", want: "~bob/cfg.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	exists, err = ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}
