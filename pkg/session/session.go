// Package session mounts element trees into an in-memory document and
// drives them headlessly: it dispatches clicks, runs delayed work on a
// manual clock, and exposes the resulting markup and hook state.
//
// A Session is what the featherweight CLI renders demos with; the test
// harness in pkg/testing builds on it.
package session

import (
	"fmt"
	"html"
	"time"

	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/dom"
)

// DefaultRootID is the id of the element trees are mounted into.
const DefaultRootID = "app"

// Option configures a Session.
type Option func(*Session)

// WithRootID mounts trees into <div id=id> instead of DefaultRootID.
func WithRootID(id string) Option {
	return func(s *Session) {
		s.rootID = id
	}
}

// WithRuntimeOptions passes options to the session's core.Runtime.
func WithRuntimeOptions(opts ...core.Option) Option {
	return func(s *Session) {
		s.rtOpts = append(s.rtOpts, opts...)
	}
}

// Session owns a document holding one mount element, the runtime that
// renders into it, and the clock delayed work waits on.
//
// Each Session owns its runtime, so sessions do not share hook state. A
// Session is not safe for concurrent use.
type Session struct {
	doc    *dom.Document
	root   *dom.Node
	rt     *core.Runtime
	clock  *Clock
	tree   any
	rootID string
	rtOpts []core.Option
}

// New creates a session with an empty document holding only the mount
// element.
func New(opts ...Option) (*Session, error) {
	s := &Session{rootID: DefaultRootID, clock: NewClock()}
	for _, opt := range opts {
		opt(s)
	}
	s.rt = core.NewRuntime(s.rtOpts...)
	s.doc = dom.NewDocument()
	markup := fmt.Sprintf(`<div id="%s"></div>`, html.EscapeString(s.rootID))
	if err := s.doc.SetBodyHTML(markup); err != nil {
		return nil, fmt.Errorf("session: create mount element: %w", err)
	}
	s.root = s.doc.GetElementByID(s.rootID)
	if s.root == nil {
		return nil, fmt.Errorf("session: no mount element with id %q", s.rootID)
	}
	return s, nil
}

// Close drops the hook state and clears the mount element. Pending timers
// are left on the clock but no longer reach a mounted tree.
func (s *Session) Close() {
	s.rt.Reset()
	s.root.RemoveChildren()
	s.tree = nil
}

// Mount resets the hook state and renders tree from scratch.
func (s *Session) Mount(tree any) error {
	s.rt.Reset()
	s.tree = tree
	return s.rt.Render(tree, s.root)
}

// Rerender renders the mounted tree again, keeping hook state.
func (s *Session) Rerender() error {
	return s.rt.Render(s.tree, s.root)
}

// ElementByID returns the first element under the mount element, the mount
// element included, whose id is id, or nil.
func (s *Session) ElementByID(id string) *dom.Node {
	var found *dom.Node
	s.root.Walk(func(n *dom.Node) bool {
		if n.IsElement() && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// ClickID dispatches a click at the element with the given id.
func (s *Session) ClickID(id string) error {
	n := s.ElementByID(id)
	if n == nil {
		return fmt.Errorf("click: no element with id %q", id)
	}
	return n.Click()
}

// After schedules fn on the session's clock.
func (s *Session) After(d time.Duration, fn func() error) {
	s.clock.After(d, fn)
}

// Advance moves the clock forward, firing due timers.
func (s *Session) Advance(d time.Duration) error {
	return s.clock.Advance(d)
}

// Settle fires every pending timer.
func (s *Session) Settle() error {
	return s.clock.Settle()
}

// HTML returns the markup inside the mount element.
func (s *Session) HTML() string {
	return s.root.InnerHTML()
}

// Text returns the text content of the mount element.
func (s *Session) Text() string {
	return s.root.TextContent()
}

// Hooks returns a snapshot of the session's hook state.
func (s *Session) Hooks() core.HookSnapshot {
	return s.rt.Snapshot()
}

func (s *Session) Document() *dom.Document { return s.doc }
func (s *Session) Root() *dom.Node         { return s.root }
func (s *Session) Runtime() *core.Runtime  { return s.rt }
func (s *Session) Clock() *Clock           { return s.clock }

// Tree returns the mounted tree, or nil.
func (s *Session) Tree() any {
	return s.tree
}
