package main

import (
	"github.com/spf13/cobra"

	"github.com/cursedclient/cursedclient/internal/config"
	"github.com/cursedclient/cursedclient/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "cursedclient",
		Short:         "cursedclient probes a host for its window handle and version, then titles the window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging of individual resolution attempts")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML config overriding candidate tables and budgets")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig parses the configured file or falls back to defaults.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath == "" {
		return config.Default(), nil
	}
	return config.ParseConfig(flags.configPath)
}

// logLevel picks the effective level, letting --verbose win over config.
func logLevel(flags *rootFlags, cfg *config.Config) string {
	if flags.verbose {
		return "debug"
	}
	if cfg.Logging.Level != "" {
		return cfg.Logging.Level
	}
	return "info"
}

func newLogger(flags *rootFlags, cfg *config.Config) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         logLevel(flags, cfg),
		HumanReadable: cfg.HumanReadable(logger.StdoutIsTerminal()),
	})
}
