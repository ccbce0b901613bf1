package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fabricforge/cli/internal/config"
	oerrors "github.com/fabricforge/cli/internal/errors"
	"github.com/fabricforge/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage fabricforge configuration",
		Long:  `Manage the fabricforge configuration file (~/.fabricforge/config.yaml).`,
	}

	cmd.AddCommand(NewConfigInitCmd())
	cmd.AddCommand(NewConfigPathCmd())

	return cmd
}

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Write a configuration file with default values.

The file holds the template repository URL and default scaffold
parameters:

  template:
    repo: https://github.com/FabricMC/fabric-example-mod.git
  defaults:
    author: Your Name
    kind: item

Examples:
  # Initialize configuration
  fabricforge config init

  # Overwrite existing configuration
  fabricforge config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := configFilePath()
	if err != nil {
		return fmt.Errorf("determining config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.Println(output.FormatCheckmark("Configuration initialized at " + path))
	return nil
}

// NewConfigPathCmd creates the config path command.
func NewConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return fmt.Errorf("determining config path: %w", err)
			}
			output.Println(path)
			return nil
		},
	}
}

// configFilePath resolves the active config file: the --config flag wins,
// then FABRICFORGE_CONFIG, then the default location.
func configFilePath() (string, error) {
	if configFlag != "" {
		return config.ExpandPath(configFlag)
	}
	return config.GetConfigFile()
}
