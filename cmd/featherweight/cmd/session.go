package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/diagnostics"
	"github.com/joshuaharry/featherweight-react/pkg/session"
	"github.com/joshuaharry/featherweight-react/showcase"
)

// demoSession is one mounted demo driven from the command line. Delayed
// work scheduled by the demo waits on the session clock until wait runs.
type demoSession struct {
	demo    showcase.Demo
	s       *session.Session
	checker *diagnostics.Checker
	log     *slog.Logger
}

func newSession(opts *RootOptions, name string) (*demoSession, error) {
	demo, ok := showcase.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(showcase.Names(), ", "))
	}

	ds := &demoSession{demo: demo, log: opts.Logger}
	rtOpts := []core.Option{core.WithLogger(opts.Logger)}
	if opts.Config.Check {
		ds.checker = diagnostics.NewChecker(diagnostics.WithCheckerLogger(opts.Logger))
		rtOpts = append(rtOpts, core.WithObserver(ds.checker.Observe))
	}
	s, err := session.New(
		session.WithRootID(opts.Config.RootID),
		session.WithRuntimeOptions(rtOpts...),
	)
	if err != nil {
		return nil, err
	}
	ds.s = s

	env := &showcase.Env{Logger: opts.Logger, After: s.After}
	if err := s.Mount(demo.Build(env)); err != nil {
		return nil, fmt.Errorf("mount %s: %w", name, err)
	}
	ds.log.Debug("demo mounted", "demo", name, "root_id", opts.Config.RootID, "check", ds.checker != nil)
	return ds, nil
}

func (ds *demoSession) click(id string) error {
	if id == "" {
		return fmt.Errorf("click needs an element id")
	}
	ds.log.Debug("click", "target", id)
	return ds.s.ClickID(id)
}

// wait fires every pending timer.
func (ds *demoSession) wait() error {
	pending := ds.s.Clock().Pending()
	ds.log.Debug("wait", "pending", pending)
	return ds.s.Settle()
}

// html returns the body markup, mount element included.
func (ds *demoSession) html() string {
	return ds.s.Document().Body().InnerHTML()
}

// writeHooks prints one line per hook slot.
func (ds *demoSession) writeHooks(w io.Writer) {
	snap := ds.s.Hooks()
	if len(snap.Slots) == 0 {
		fmt.Fprintln(w, "no hooks")
		return
	}
	for i, slot := range snap.Slots {
		switch slot.Kind {
		case core.SlotState:
			fmt.Fprintf(w, "%d\tstate\t%#v\n", i, slot.Value)
		case core.SlotEffect:
			deps := "always"
			if slot.Deps != nil {
				deps = fmt.Sprintf("%v", slot.Deps)
			}
			fmt.Fprintf(w, "%d\teffect\tdeps=%s\n", i, deps)
		}
	}
}

func (ds *demoSession) close() {
	ds.s.Close()
}
