package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/gstyle"
)

var (
	commit = "none"
	date   = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gstyle %s\ncommit: %s\nbuilt: %s\n", gstyle.Version, commit, date)
			return nil
		},
	}
}
