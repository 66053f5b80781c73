package core

import (
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/joshuaharry/featherweight-react/pkg/errors"
	"github.com/joshuaharry/featherweight-react/pkg/surface"
)

// NoCursor is the cursor reported by an idle runtime.
const NoCursor = -1

// SlotKind identifies the hook that owns a slot.
type SlotKind int

const (
	// SlotState is owned by UseState.
	SlotState SlotKind = iota + 1
	// SlotEffect is owned by UseEffect.
	SlotEffect
)

func (k SlotKind) String() string {
	switch k {
	case SlotState:
		return "state"
	case SlotEffect:
		return "effect"
	default:
		return "unknown"
	}
}

// Slot is the persistent data of one hook call position.
type Slot struct {
	Kind SlotKind
	// Value is the current state of a state slot.
	Value any
	// Deps are the dependencies last passed to an effect slot; nil means
	// none were supplied.
	Deps []any
	// Action is the effect function last passed to an effect slot.
	Action func()
}

// HookSnapshot is a copy of a runtime's hook state.
type HookSnapshot struct {
	Slots  []Slot
	Cursor int
	Active bool
}

// PaintFunc paints tree into target while hooks are active.
type PaintFunc func(tree any, target surface.Node) error

// Observer is told about the hook state after every successful top-level
// render pass. A non-nil error fails the render.
type Observer func(HookSnapshot) error

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger used for render pass records. By default the
// runtime logs to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(rt *Runtime) {
		rt.logger = logger
	}
}

// WithObserver registers an observer of completed render passes.
func WithObserver(obs Observer) Option {
	return func(rt *Runtime) {
		if obs != nil {
			rt.observers = append(rt.observers, obs)
		}
	}
}

// Runtime is a hook store: the ordered slot list of a mounted tree, the
// cursor of the render in progress, and the callback that rerenders the
// tree when state changes.
//
// At most one Runtime in the process is active at a time. Slots persist
// across top-level renders until Reset, and are matched to hook calls by
// position, so components must call hooks in the same order on every render.
//
// Runtime is NOT thread-safe. It must only be used from the UI goroutine.
type Runtime struct {
	slots     []Slot
	cursor    int
	active    bool
	rerender  func() error
	gen       uint64 // bumped by Reset; setters from older generations are stale
	pass      string
	logger    *slog.Logger
	observers []Observer
}

// active is the runtime whose render is in progress, or nil.
var active *Runtime

// NewRuntime creates an idle runtime with no slots.
func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{cursor: NoCursor}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (rt *Runtime) log() *slog.Logger {
	if rt.logger != nil {
		return rt.logger
	}
	return slog.Default()
}

// Active reports whether a render is in progress on rt.
func (rt *Runtime) Active() bool {
	return rt.active
}

// Snapshot returns a shallow copy of the slots and cursor. Changing the copy
// does not affect rt.
func (rt *Runtime) Snapshot() HookSnapshot {
	slots := slices.Clone(rt.slots)
	if slots == nil {
		slots = []Slot{}
	}
	return HookSnapshot{Slots: slots, Cursor: rt.cursor, Active: rt.active}
}

// Reset drops every slot and unbinds the rerender callback. Setters handed
// out before the reset return errors.ErrStaleSetter, even after the runtime
// mounts again.
func (rt *Runtime) Reset() {
	rt.gen++
	rt.slots = nil
	rt.cursor = NoCursor
	rt.rerender = nil
	if rt.active {
		rt.exit()
	}
}

// Render paints value into target.
//
// When no render is active this is a top-level render: target is cleared,
// hooks become active on rt, and the tree is painted from scratch. When a
// render is already active, on rt or any other runtime, value is painted
// directly into target against the active runtime without clearing or
// rebinding anything.
func (rt *Runtime) Render(value any, target surface.Node) error {
	if cur := active; cur != nil {
		return cur.paintValue(value, target)
	}
	return rt.WithHooks(value, target, rt.paintValue)
}

// WithHooks runs fn with hooks active on rt.
//
// On entry it removes every child of target, rewinds the cursor, and binds
// the rerender callback to Render(tree, target). However fn exits, rt is
// idle again when WithHooks returns. A panic in fn is returned as an error:
// a *errors.RenderError is passed through, anything else becomes a
// KindPanic error.
func (rt *Runtime) WithHooks(tree any, target surface.Node, fn PaintFunc) (err error) {
	if cur := active; cur != nil {
		return &errors.RenderError{
			Op:   "core.WithHooks",
			Kind: errors.KindUsage,
			Err:  errors.ErrRenderActive,
			Pass: cur.pass,
		}
	}

	surface.RemoveChildren(target)
	rt.enter(func() error { return rt.Render(tree, target) })
	start := time.Now()
	rt.log().Debug("render pass started", "pass", rt.pass)

	defer func() {
		if r := recover(); r != nil {
			err = errors.FromPanic("core.WithHooks", errors.KindPanic, r, rt.pass)
		}
		pass := rt.pass
		rt.exit()
		if err != nil {
			rt.log().Debug("render pass failed", "pass", pass, "err", err)
			return
		}
		rt.log().Debug("render pass finished",
			"pass", pass,
			"slots", len(rt.slots),
			"elapsed", time.Since(start),
		)
		err = rt.notify(pass)
	}()

	return fn(tree, target)
}

func (rt *Runtime) enter(rerender func() error) {
	rt.cursor = 0
	rt.rerender = rerender
	rt.active = true
	rt.pass = uuid.Must(uuid.NewV7()).String()
	active = rt
}

func (rt *Runtime) exit() {
	rt.cursor = NoCursor
	rt.active = false
	rt.pass = ""
	if active == rt {
		active = nil
	}
}

func (rt *Runtime) notify(pass string) error {
	if len(rt.observers) == 0 {
		return nil
	}
	snap := rt.Snapshot()
	for _, obs := range rt.observers {
		if err := obs(snap); err != nil {
			return &errors.RenderError{
				Op:   "core.Observer",
				Kind: errors.KindDiagnostic,
				Err:  err,
				Pass: pass,
			}
		}
	}
	return nil
}

var defaultRuntime = NewRuntime()

// DefaultRuntime returns the process-wide runtime used by the package-level
// functions.
func DefaultRuntime() *Runtime {
	return defaultRuntime
}

// Render paints value into target using the default runtime.
func Render(value any, target surface.Node) error {
	return defaultRuntime.Render(value, target)
}

// WithHooks runs fn with hooks active on the default runtime.
func WithHooks(tree any, target surface.Node, fn PaintFunc) error {
	return defaultRuntime.WithHooks(tree, target, fn)
}

// ViewHooks returns a snapshot of the default runtime.
func ViewHooks() HookSnapshot {
	return defaultRuntime.Snapshot()
}

// ResetHooks resets the default runtime.
func ResetHooks() {
	defaultRuntime.Reset()
}
