package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cursedclient/cursedclient/internal/driver"
)

var (
	commit = "none"
	date   = "unknown"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\ncommit: %s\nbuilt: %s\n", driver.ClientName, driver.ClientVersion, commit, date)
			return nil
		},
	}

	return cmd
}
