package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	RegisterCommand(newRenderCommand)
}

func newRenderCommand(opts *RootOptions) *cobra.Command {
	var (
		clicks []string
		wait   bool
		hooks  bool
	)

	cmd := &cobra.Command{
		Use:   "render [demo]",
		Short: "Mount a demo, click through it and print the markup",
		Long: `Mount a demo into an in-memory DOM and print the resulting body markup.

Each --click dispatches a click at the element with that id, in order.
Delayed work started by a click stays pending unless --wait is given.

Examples:
  featherweight render counter --click counter-button --click counter-button
  featherweight render xor --click set-b --wait`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := opts.Config.Demo
			if len(args) == 1 {
				name = args[0]
			}

			s, err := newSession(opts, name)
			if err != nil {
				return err
			}
			defer s.close()

			for _, id := range clicks {
				if err := s.click(id); err != nil {
					return err
				}
			}
			if wait {
				if err := s.wait(); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, s.html())
			if hooks {
				s.writeHooks(out)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&clicks, "click", nil, "id of an element to click (repeatable)")
	cmd.Flags().BoolVar(&wait, "wait", false, "run pending delayed work before printing")
	cmd.Flags().BoolVar(&hooks, "hooks", false, "print the hook slots after the markup")
	return cmd
}
