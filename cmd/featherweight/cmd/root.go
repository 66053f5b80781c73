// Package cmd implements the featherweight CLI commands.
//
// Each command lives in its own file and registers a constructor with
// RegisterCommand from an init function; NewRootCommand wires them under
// the root command together with the global flags.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/joshuaharry/featherweight-react/cmd/featherweight/internal/config"
	"github.com/joshuaharry/featherweight-react/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// RootOptions holds global flags and the state every command starts from.
type RootOptions struct {
	Verbose bool
	Dir     string

	// Set before any command runs.
	Config *config.Resolved
	Logger *slog.Logger
}

// commands holds the registered command constructors in registration order.
var commands []func(*RootOptions) *cobra.Command

// RegisterCommand adds a command to the CLI.
func RegisterCommand(newCommand func(*RootOptions) *cobra.Command) {
	commands = append(commands, newCommand)
}

// NewRootCommand creates the root command with every registered command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "featherweight",
		Short: "featherweight - hooks and renders on an in-memory DOM",
		Long: `featherweight mounts small hook-based apps into an in-memory DOM,
dispatches clicks at them and prints the markup they render.

Settings are read from featherweight.yaml in the project directory when it
exists. Use "featherweight <command> --help" for more information about a
command.`,
		Version:      fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging, with stack traces for render errors")
	cmd.PersistentFlags().StringVar(&opts.Dir, "dir", ".", "project directory holding featherweight.yaml")

	for _, newCommand := range commands {
		cmd.AddCommand(newCommand(opts))
	}
	return cmd
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// setup resolves the configuration and installs the logger as the sink for
// render diagnostics.
func (o *RootOptions) setup(w io.Writer) error {
	res, err := config.Resolve(o.Dir)
	if err != nil {
		return err
	}
	level := res.LogLevel
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Config = res
	o.Logger = newLogger(w, res.LogFormat, level)
	errors.SetHandler(&errors.LogHandler{Logger: o.Logger, Verbose: o.Verbose})
	return nil
}

func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
