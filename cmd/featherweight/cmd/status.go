package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	RegisterCommand(newStatusCommand)
}

func newStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.Config
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Featherweight Status")
			fmt.Fprintln(out, "====================")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Project:     %s\n", cfg.Root)
			if cfg.File != "" {
				fmt.Fprintf(out, "Config:      %s\n", cfg.File)
			} else {
				fmt.Fprintln(out, "Config:      (defaults)")
			}
			if cfg.ModulePath != "" {
				fmt.Fprintf(out, "Module:      %s\n", cfg.ModulePath)
			}
			fmt.Fprintf(out, "App:         %s\n", cfg.AppName)
			fmt.Fprintf(out, "Root ID:     %s\n", cfg.RootID)
			fmt.Fprintf(out, "Demo:        %s\n", cfg.Demo)
			fmt.Fprintf(out, "Checker:     %t\n", cfg.Check)
			fmt.Fprintf(out, "Log:         %s (%s)\n", cfg.LogLevel, cfg.LogFormat)
			fmt.Fprintf(out, "Version:     %s\n", Version)
			return nil
		},
	}
}
