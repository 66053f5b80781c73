package dom

import (
	stderrors "errors"
	"fmt"

	"github.com/joshuaharry/featherweight-react/pkg/errors"
)

// Event is dispatched to the "on<type>" properties along the propagation
// path of its target.
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node
	stopped       bool
}

// StopPropagation prevents handlers on further ancestors from running.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Click dispatches a click event at n.
func (n *Node) Click() error {
	return n.DispatchEvent("click")
}

// DispatchEvent dispatches an event of the given type at n and lets it
// bubble to the document. The path is fixed before the first handler runs,
// so handlers that rebuild the tree do not change who else is notified.
//
// Accepted handler shapes are func(), func(*Event), func() error and
// func(*Event) error. Handler errors are joined and returned. A panicking
// handler is reported through errors.ReportPanic and its *errors.PanicError
// is included in the result; dispatch continues with the next handler.
func (n *Node) DispatchEvent(typ string) error {
	ev := &Event{Type: typ, Target: n}
	var path []*Node
	for cur := n; cur != nil; cur = cur.Parent() {
		path = append(path, cur)
	}

	var errs []error
	for _, cur := range path {
		if ev.stopped {
			break
		}
		handler := cur.Property("on" + typ)
		if handler == nil {
			continue
		}
		ev.CurrentTarget = cur
		if err := invokeHandler(handler, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

func invokeHandler(handler any, ev *Event) (err error) {
	defer errors.RecoverPanic("dom.DispatchEvent", func(pe *errors.PanicError) { err = pe })

	switch h := handler.(type) {
	case func():
		h()
	case func(*Event):
		h(ev)
	case func() error:
		return h()
	case func(*Event) error:
		return h(ev)
	default:
		return fmt.Errorf("dom: on%s handler has unsupported type %T", ev.Type, handler)
	}
	return nil
}
