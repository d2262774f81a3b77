package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cursedclient/cursedclient/internal/driver"
	"github.com/cursedclient/cursedclient/internal/native"
	"github.com/cursedclient/cursedclient/internal/probe"
	"github.com/cursedclient/cursedclient/internal/simulator"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	var host string
	var headless bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive the title probe against a simulated host until it finishes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			log, err := newLogger(flags, cfg)
			if err != nil {
				return err
			}

			scenario, err := simulator.Pick(host)
			if err != nil {
				return err
			}

			var titles native.TitleSetter = native.NewTerminal(os.Stdout)
			if headless {
				titles = native.Discard{}
			}

			log.Infof("%s v%s initializing...", driver.ClientName, driver.ClientVersion)

			prober := probe.New(cfg.ProbeTables(), scenario.Registry, log)
			d := driver.New(prober, titles, log, cfg.Driver.MaxTicks)

			ticker := time.NewTicker(cfg.TickInterval())
			defer ticker.Stop()

			for range ticker.C {
				scenario.Client.Advance()
				d.Tick(scenario.Client)
				if d.State() == driver.StateDone {
					break
				}
			}

			if title := d.Title(); title != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "window title: %s\n", title)
				return nil
			}
			return fmt.Errorf("no window handle within %d ticks", d.TicksWaited()-1)
		},
	}

	cmd.Flags().StringVar(&host, "host", "modern", "Host scenario to simulate (modern, legacy or headless)")
	cmd.Flags().BoolVar(&headless, "no-title", false, "Skip the real terminal title escape sequence")

	return cmd
}
