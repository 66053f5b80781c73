package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/joshuaharry/featherweight-react/showcase"
)

func init() {
	RegisterCommand(newListCommand)
}

func newListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demo apps",
		Long: `List the demo apps that render and play can mount.

The default demo, set by render.demo in featherweight.yaml, is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, d := range showcase.Demos() {
				mark := " "
				if d.Name == opts.Config.Demo {
					mark = "*"
				}
				fmt.Fprintf(w, "%s %s\t%s\t%s\n", mark, d.Name, d.Category, d.Title)
			}
			return w.Flush()
		},
	}
}
