package core

import (
	"slices"

	"github.com/joshuaharry/featherweight-react/pkg/errors"
)

// current returns the active runtime or panics with a usage error naming op.
func current(op string) *Runtime {
	rt := active
	if rt == nil {
		panic(&errors.RenderError{
			Op:         op,
			Kind:       errors.KindUsage,
			Err:        errors.ErrHookOutsideRender,
			StackTrace: errors.CaptureStack(),
		})
	}
	return rt
}

// next claims the slot at the cursor for kind and advances the cursor. It
// reports whether the slot is new. A slot left by a different hook at the
// same position is taken over as new.
func (rt *Runtime) next(op string, kind SlotKind) (index int, fresh bool) {
	index = rt.cursor
	rt.cursor++
	if index < len(rt.slots) {
		if rt.slots[index].Kind == kind {
			return index, false
		}
		rt.log().Warn("hook order changed between renders",
			"op", op,
			"slot", index,
			"was", rt.slots[index].Kind.String(),
			"now", kind.String(),
		)
		rt.slots[index] = Slot{Kind: kind}
		return index, true
	}
	rt.slots = append(rt.slots, Slot{Kind: kind})
	return index, true
}

// Setter updates one state slot and rerenders the tree it belongs to. It is
// a small value that can be copied and stored freely.
type Setter[T any] struct {
	rt       *Runtime
	gen      uint64
	index    int
	rerender func() error
}

// Index returns the position of the slot the setter writes.
func (s Setter[T]) Index() int {
	return s.index
}

// Set stores next and rerenders synchronously, returning the rerender's
// error.
func (s Setter[T]) Set(next T) error {
	if err := s.check("core.Setter.Set"); err != nil {
		return err
	}
	s.rt.slots[s.index].Value = next
	if s.rerender == nil {
		return nil
	}
	return s.rerender()
}

// Update replaces the slot value with transform applied to it and
// rerenders synchronously.
func (s Setter[T]) Update(transform func(T) T) error {
	if err := s.check("core.Setter.Update"); err != nil {
		return err
	}
	prev, _ := s.rt.slots[s.index].Value.(T)
	return s.Set(transform(prev))
}

func (s Setter[T]) check(op string) error {
	if s.rt == nil || s.gen != s.rt.gen || s.index >= len(s.rt.slots) || s.rt.slots[s.index].Kind != SlotState {
		return &errors.RenderError{
			Op:   op,
			Kind: errors.KindUsage,
			Err:  errors.ErrStaleSetter,
		}
	}
	return nil
}

// UseState returns the state stored at the current hook position and a
// setter for it. On the first visit the slot is created holding initial.
//
// UseState panics with a KindUsage *errors.RenderError when no render is
// active.
func UseState[T any](initial T) (T, Setter[T]) {
	rt := current("core.UseState")
	index, fresh := rt.next("core.UseState", SlotState)
	slot := &rt.slots[index]
	if fresh {
		slot.Value = initial
	}
	value, ok := slot.Value.(T)
	if !ok {
		// A slot of another type is only possible when hook order changed.
		slot.Value = initial
		value = initial
	}
	return value, Setter[T]{rt: rt, gen: rt.gen, index: index, rerender: rt.rerender}
}

// UseEffect runs action on the first visit of its hook position, and on
// later visits when deps changed. A nil deps means the action runs on every
// render; an empty deps, see Deps, means it never runs again. Otherwise it
// runs when the length or any element differs from the deps of the previous
// visit.
//
// The stored action and deps are replaced on every visit, before the action
// runs. UseEffect panics with a KindUsage *errors.RenderError when no render
// is active.
func UseEffect(action func(), deps []any) {
	rt := current("core.UseEffect")
	index, fresh := rt.next("core.UseEffect", SlotEffect)
	slot := &rt.slots[index]
	run := fresh || depsChanged(slot.Deps, deps)
	slot.Action = action
	slot.Deps = slices.Clone(deps)
	if run && action != nil {
		action()
	}
}

// Deps builds a dependency list for UseEffect. Deps() is the empty list,
// which is different from passing nil.
func Deps(values ...any) []any {
	if values == nil {
		return []any{}
	}
	return values
}
