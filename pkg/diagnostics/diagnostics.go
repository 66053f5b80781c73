// Package diagnostics cross-checks the hook store of a running app against
// an independent model of the state it should hold.
//
// The model is the XOR cycle of two booleans used by the xor showcase:
//
//	[true false] -> [true true] -> [false true] -> [false false] -> ...
//
// A Checker installed with core.WithObserver sees the state slots after
// every render pass. Each time they differ from the last distinct state it
// saw, they must equal the machine's current step, and the machine advances.
package diagnostics

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/joshuaharry/featherweight-react/pkg/core"
)

// ErrStateMachine is returned when the observed state leaves the cycle.
var ErrStateMachine = errors.New("state machine failure")

var cycle = [...][2]bool{
	{true, false},
	{true, true},
	{false, true},
	{false, false},
}

// Machine walks the four-step XOR cycle. The zero value is at the first
// step.
type Machine struct {
	step int
}

// NewMachine returns a machine at the first step.
func NewMachine() *Machine {
	return &Machine{}
}

// State returns the expected values of the two state slots.
func (m *Machine) State() [2]bool {
	return cycle[m.step]
}

// Advance moves to the next step, wrapping after the fourth.
func (m *Machine) Advance() {
	m.step = (m.step + 1) % len(cycle)
}

// Tracker remembers the last distinct list of state values it was shown.
type Tracker struct {
	last []any
}

// Observe compares values position by position with the last distinct list.
// If any position differs, a copy of values becomes the new last list. It
// returns whether that happened and the current last list. A list that is
// only shorter than the last one is not a change.
func (t *Tracker) Observe(values []any) (changed bool, state []any) {
	for i, v := range values {
		var prev any
		if i < len(t.last) {
			prev = t.last[i]
		}
		if !same(v, prev) {
			t.last = slices.Clone(values)
			return true, t.last
		}
	}
	return false, t.last
}

// Last returns the last distinct list.
func (t *Tracker) Last() []any {
	return t.last
}

// Reset forgets the last list.
func (t *Tracker) Reset() {
	t.last = nil
}

// StateValues returns the values of the state slots of snap in order.
// Effect slots are skipped.
func StateValues(snap core.HookSnapshot) []any {
	out := make([]any, 0, len(snap.Slots))
	for _, s := range snap.Slots {
		if s.Kind == core.SlotState {
			out = append(out, s.Value)
		}
	}
	return out
}

// Checker validates render passes against a Machine.
type Checker struct {
	machine *Machine
	tracker *Tracker
	logger  *slog.Logger
	checks  int
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithCheckerLogger sets the logger that records state transitions.
func WithCheckerLogger(logger *slog.Logger) CheckerOption {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker returns a checker at the first step of a fresh machine.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{machine: NewMachine(), tracker: &Tracker{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Observe implements core.Observer.
func (c *Checker) Observe(snap core.HookSnapshot) error {
	changed, state := c.tracker.Observe(StateValues(snap))
	if !changed {
		return nil
	}
	want := c.machine.State()
	for i, v := range state {
		if i >= len(want) || v != any(want[i]) {
			exp := any(nil)
			if i < len(want) {
				exp = want[i]
			}
			c.log().Warn("state left the xor cycle", "slot", i, "got", v, "want", exp, "checks", c.checks)
			return fmt.Errorf("%w: slot %d is %v, want %v", ErrStateMachine, i, v, exp)
		}
	}
	c.checks++
	c.log().Debug("state transition", "state", fmt.Sprint(state), "checks", c.checks)
	c.machine.Advance()
	return nil
}

// Checks returns the number of transitions validated so far.
func (c *Checker) Checks() int {
	return c.checks
}

// Expected returns the state the next transition must produce.
func (c *Checker) Expected() [2]bool {
	return c.machine.State()
}

func (c *Checker) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// same is == that treats a panicking comparison as different.
func same(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
