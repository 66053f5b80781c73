package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(newPlayCommand)
}

// Step is one action of a play session.
type Step struct {
	Action string `yaml:"action"`
	Target string `yaml:"target,omitempty"`
}

// errQuit ends a session.
var errQuit = errors.New("quit")

func newPlayCommand(opts *RootOptions) *cobra.Command {
	var script string

	cmd := &cobra.Command{
		Use:   "play [demo]",
		Short: "Drive a demo with line commands or a script",
		Long: `Mount a demo and drive it one action at a time.

Without --script, actions are read from standard input, one per line:
  click <id>   dispatch a click at the element with that id
  html         print the body markup
  hooks        print the hook slots
  wait         run pending delayed work
  quit         stop

Errors from line actions are printed and the session continues.

A script is a YAML list of steps and stops at the first error:
  - action: click
    target: set-b
  - action: wait
  - action: html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := opts.Config.Demo
			if len(args) == 1 {
				name = args[0]
			}

			var steps []Step
			if script != "" {
				var err error
				if steps, err = loadScript(script); err != nil {
					return err
				}
			}

			s, err := newSession(opts, name)
			if err != nil {
				return err
			}
			defer s.close()

			out := cmd.OutOrStdout()
			if script != "" {
				for i, step := range steps {
					if err := s.run(out, step); err != nil {
						if err == errQuit {
							return nil
						}
						return fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
					}
				}
				return nil
			}
			return s.interact(cmd.InOrStdin(), out, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&script, "script", "", "YAML file of steps to run instead of reading stdin")
	return cmd
}

func loadScript(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	return steps, nil
}

// parseStep parses a line command. Blank lines and # comments yield ok=false.
func parseStep(line string) (step Step, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Step{}, false
	}
	action, target, _ := strings.Cut(line, " ")
	return Step{Action: strings.ToLower(action), Target: strings.TrimSpace(target)}, true
}

func (s *demoSession) interact(in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		step, ok := parseStep(scanner.Text())
		if !ok {
			continue
		}
		if err := s.run(out, step); err != nil {
			if err == errQuit {
				return nil
			}
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (s *demoSession) run(out io.Writer, step Step) error {
	switch step.Action {
	case "click":
		return s.click(step.Target)
	case "html":
		fmt.Fprintln(out, s.html())
	case "hooks":
		s.writeHooks(out)
	case "wait":
		return s.wait()
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
	return nil
}
