package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/gstyle"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gstyle",
		Short:         "Render and inspect component style documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			gstyle.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging of the render engine")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
