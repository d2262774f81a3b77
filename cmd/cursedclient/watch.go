package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cursedclient/cursedclient/internal/driver"
	"github.com/cursedclient/cursedclient/internal/logger"
	"github.com/cursedclient/cursedclient/internal/native"
	"github.com/cursedclient/cursedclient/internal/probe"
	"github.com/cursedclient/cursedclient/internal/simulator"
	"github.com/cursedclient/cursedclient/internal/tui"
)

func newWatchCmd(flags *rootFlags) *cobra.Command {
	var host string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the probe retry loop live in a terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			scenario, err := simulator.Pick(host)
			if err != nil {
				return err
			}

			// Resolution attempts render inside the view, so the logger
			// writes into a ring instead of stdout.
			ring := tui.NewLogRing(10)
			log, err := logger.New(logger.Options{
				Level:         logLevel(flags, cfg),
				HumanReadable: true,
				Writer:        ring,
			})
			if err != nil {
				return err
			}

			prober := probe.New(cfg.ProbeTables(), scenario.Registry, log)
			d := driver.New(prober, native.Discard{}, log, cfg.Driver.MaxTicks)

			maxTicks := cfg.Driver.MaxTicks
			if maxTicks <= 0 {
				maxTicks = driver.DefaultMaxTicks
			}

			model := tui.NewModel(scenario, d, ring, cfg.TickInterval(), maxTicks)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&host, "host", "modern", "Host scenario to simulate (modern, legacy or headless)")

	return cmd
}
