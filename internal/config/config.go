// Package config provides configuration loading and management.
package config

// DefaultTemplateRepo is the template repository cloned when none is
// configured.
const DefaultTemplateRepo = "https://github.com/FabricMC/fabric-example-mod.git"

// Config holds the persisted CLI configuration.
type Config struct {
	// Template contains template-repository settings.
	Template TemplateConfig `mapstructure:"template" yaml:"template"`

	// Defaults contains default scaffold parameters.
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// TemplateConfig selects where the example-mod template comes from.
type TemplateConfig struct {
	// Repo is the git URL of the template repository.
	// Env: FABRICFORGE_TEMPLATE_REPO
	Repo string `mapstructure:"repo" yaml:"repo"`
}

// DefaultsConfig supplies scaffold parameters omitted on the command line.
type DefaultsConfig struct {
	// Author is the default mod author written into fabric.mod.json.
	// Env: FABRICFORGE_DEFAULTS_AUTHOR
	Author string `mapstructure:"author" yaml:"author"`

	// Kind is the default scaffold kind (item or block).
	Kind string `mapstructure:"kind" yaml:"kind"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Timestamps toggles timestamps in log output. Nil means default (off).
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `fabricforge config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Template: TemplateConfig{Repo: DefaultTemplateRepo},
		Defaults: DefaultsConfig{
			Author: "Your Name",
			Kind:   "item",
		},
	}
}

// WithDefaults fills empty fields with default values.
func (c *Config) WithDefaults() *Config {
	if c.Template.Repo == "" {
		c.Template.Repo = DefaultTemplateRepo
	}
	if c.Defaults.Kind == "" {
		c.Defaults.Kind = "item"
	}
	return c
}
