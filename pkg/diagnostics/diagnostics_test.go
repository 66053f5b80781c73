package diagnostics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuaharry/featherweight-react/pkg/core"
	"github.com/joshuaharry/featherweight-react/pkg/dom"
	"github.com/joshuaharry/featherweight-react/pkg/errors"
)

func TestMachineCycle(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, [2]bool{true, false}, m.State())
	m.Advance()
	assert.Equal(t, [2]bool{true, true}, m.State())
	m.Advance()
	assert.Equal(t, [2]bool{false, true}, m.State())
	m.Advance()
	assert.Equal(t, [2]bool{false, false}, m.State())
	m.Advance()
	assert.Equal(t, [2]bool{true, false}, m.State(), "four steps return to the start")

	var zero Machine
	assert.Equal(t, [2]bool{true, false}, zero.State())
}

func TestTracker(t *testing.T) {
	var tr Tracker

	changed, state := tr.Observe([]any{})
	assert.False(t, changed)
	assert.Empty(t, state)

	changed, state = tr.Observe([]any{5})
	assert.True(t, changed)
	assert.Equal(t, []any{5}, state)

	changed, _ = tr.Observe([]any{5})
	assert.False(t, changed)

	changed, state = tr.Observe([]any{5, 6})
	assert.True(t, changed)
	assert.Equal(t, []any{5, 6}, state)

	for range 10 {
		changed, _ = tr.Observe([]any{5, 6})
		assert.False(t, changed)
	}

	changed, state = tr.Observe([]any{5, 7})
	assert.True(t, changed)
	assert.Equal(t, []any{5, 7}, state)

	changed, state = tr.Observe([]any{5})
	assert.False(t, changed, "a shorter list is not a change")
	assert.Equal(t, []any{5, 7}, state)

	tr.Reset()
	assert.Nil(t, tr.Last())
}

func TestTrackerCopiesInput(t *testing.T) {
	var tr Tracker
	in := []any{1, 2}
	tr.Observe(in)
	in[0] = 9
	assert.Equal(t, []any{1, 2}, tr.Last())
}

func TestTrackerUncomparableValues(t *testing.T) {
	var tr Tracker
	changed, _ := tr.Observe([]any{[]int{1}})
	assert.True(t, changed)
	changed, _ = tr.Observe([]any{[]int{1}})
	assert.True(t, changed, "uncomparable values always count as changed")
}

func snapshot(values ...any) core.HookSnapshot {
	snap := core.HookSnapshot{Cursor: core.NoCursor}
	for _, v := range values {
		snap.Slots = append(snap.Slots, core.Slot{Kind: core.SlotState, Value: v})
	}
	return snap
}

func TestStateValuesSkipsEffects(t *testing.T) {
	snap := snapshot(true)
	snap.Slots = append(snap.Slots, core.Slot{Kind: core.SlotEffect}, core.Slot{Kind: core.SlotState, Value: false})
	assert.Equal(t, []any{true, false}, StateValues(snap))
}

func TestCheckerFollowsCycle(t *testing.T) {
	c := NewChecker()
	steps := [][]any{
		{true, false},
		{true, false}, // unchanged, not checked
		{true, true},
		{false, true},
		{false, false},
		{true, false},
	}
	for i, s := range steps {
		require.NoError(t, c.Observe(snapshot(s...)), "step %d", i)
	}
	assert.Equal(t, 5, c.Checks())
	assert.Equal(t, [2]bool{true, true}, c.Expected())
}

func TestCheckerDetectsFailure(t *testing.T) {
	c := NewChecker()
	require.NoError(t, c.Observe(snapshot(true, false)))
	err := c.Observe(snapshot(true, false, true))
	// Only the third position changed, but the whole list is checked.
	require.ErrorIs(t, err, ErrStateMachine)

	c = NewChecker()
	require.NoError(t, c.Observe(snapshot(true, false)))
	err = c.Observe(snapshot(false, false))
	require.ErrorIs(t, err, ErrStateMachine)
	assert.Contains(t, err.Error(), "slot 0 is false, want true")
}

func TestCheckerAsObserver(t *testing.T) {
	doc := dom.NewDocument()
	require.NoError(t, doc.SetBodyHTML(`<div id="app"></div>`))
	root := doc.GetElementByID("app")

	c := NewChecker()
	rt := core.NewRuntime(core.WithObserver(c.Observe))
	var setA, setB core.Setter[bool]
	var a, b bool
	app := func() core.Element {
		a, setA = core.UseState(true)
		b, setB = core.UseState(false)
		return core.H("p", nil, fmt.Sprint(a, b))
	}
	require.NoError(t, rt.Render(app, root))
	assert.Equal(t, "<p>true false</p>", root.InnerHTML())

	// Toggling b then a walks the cycle.
	require.NoError(t, setB.Set(!b))
	require.NoError(t, setA.Set(!a))
	require.NoError(t, setB.Set(!b))
	assert.Equal(t, 4, c.Checks())
	assert.Equal(t, "<p>false false</p>", root.InnerHTML())

	// Toggling b twice in a row leaves it.
	err := setB.Set(!b)
	require.ErrorIs(t, err, ErrStateMachine)
	assert.Equal(t, errors.KindDiagnostic, errors.KindOf(err))
}
