package testing

import (
	"fmt"
	"testing"

	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/session"
)

// DefaultRootID is the id of the element trees are mounted into.
const DefaultRootID = session.DefaultRootID

// Option configures a Tester.
type Option = session.Option

// WithRootID mounts trees into <div id=id> instead of DefaultRootID.
func WithRootID(id string) Option {
	return session.WithRootID(id)
}

// WithRuntimeOptions passes options to the tester's core.Runtime.
func WithRuntimeOptions(opts ...core.Option) Option {
	return session.WithRuntimeOptions(opts...)
}

// Tester mounts element trees into an in-memory document and drives them:
// it dispatches clicks, fires delayed work on a fake clock, and inspects the
// resulting markup and hook state. Mounting, timers and inspection come from
// the embedded session; Tester adds finders and golden snapshots.
//
// Each Tester owns its runtime, so tests do not share hook state. A Tester
// is not safe for concurrent use.
type Tester struct {
	*session.Session
}

// NewTester creates a tester with an empty document holding only the mount
// element. Call Cleanup when done, or use NewTesterWithT instead.
func NewTester(opts ...Option) *Tester {
	s, err := session.New(opts...)
	if err != nil {
		panic(err)
	}
	return &Tester{Session: s}
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T, opts ...Option) *Tester {
	tester := NewTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup drops the hook state and clears the mount element.
func (t *Tester) Cleanup() {
	t.Close()
}

// Find evaluates a finder against the mount element.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{nodes: finder.Evaluate(t.Root()), finder: finder}
}

// Click dispatches a click at the first node matching finder.
func (t *Tester) Click(finder Finder) error {
	n := t.Find(finder).FirstOrNil()
	if n == nil {
		return fmt.Errorf("click: no node matches %s", finder.Description())
	}
	return n.Click()
}

// ClickID dispatches a click at the element with the given id.
func (t *Tester) ClickID(id string) error {
	return t.Click(ByID(id))
}
