// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fabricforge/cli/internal/config"
	"github.com/fabricforge/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	forgeConfig *config.Config
)

// GetConfig returns the configuration loaded during PersistentPreRunE.
// Falls back to defaults when no configuration has been loaded yet.
func GetConfig() *config.Config {
	if forgeConfig == nil {
		return config.DefaultConfig()
	}
	return forgeConfig
}

// NewRootCmd creates the root command for the fabricforge CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fabricforge",
		Short:         "Scaffold Fabric mod projects",
		Long:          `fabricforge turns a fresh Fabric example-mod checkout into a named mod project: it merges the mod descriptor, generates registry sources, patches the initializer, and publishes item or block assets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: FABRICFORGE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Commands that don't need config still work with defaults.
		loaded = config.DefaultConfig()
	}
	forgeConfig = loaded

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}

	// Timestamp precedence: flag (if explicitly set) > config > default (off)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if forgeConfig.Log.Timestamps != nil {
		logCfg.Timestamps = forgeConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"template_repo", forgeConfig.Template.Repo,
		)
	}

	return nil
}
