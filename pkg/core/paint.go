package core

import (
	"maps"
	"slices"
	"time"

	"github.com/joshuaharry/featherweight-react/pkg/errors"
	"github.com/joshuaharry/featherweight-react/pkg/surface"
)

// paintValue classifies value and paints it into target.
func (rt *Runtime) paintValue(value any, target surface.Node) error {
	if m, ok := value.(malformed); ok {
		return rt.malformed(m.value)
	}
	el, ok := ToElement(value)
	if !ok {
		return rt.malformed(value)
	}
	return rt.paint(el, target)
}

// paint projects el onto target. Components are painted into target
// directly, without a wrapping surface element.
func (rt *Runtime) paint(el Element, target surface.Node) error {
	switch el := el.(type) {
	case Text:
		target.AppendText(string(el))
		return nil
	case Number:
		target.AppendText(el.String())
		return nil
	case *Node:
		if el == nil || el.Tag == "" {
			return rt.malformed(el)
		}
		return rt.paintNode(el, target)
	case ComponentRef:
		if el.Fn == nil {
			return rt.malformed(el)
		}
		out, err := rt.invoke(el)
		if err != nil {
			return err
		}
		return rt.paintValue(out, target)
	case malformed:
		return rt.malformed(el.value)
	}
	return rt.malformed(el)
}

func (rt *Runtime) paintNode(n *Node, target surface.Node) error {
	child := target.CreateElement(n.Tag)
	target.AppendChild(child)
	for _, key := range slices.Sorted(maps.Keys(n.Props)) {
		switch v := n.Props[key].(type) {
		case string:
			child.SetAttribute(key, v)
		default:
			child.SetProperty(key, v)
		}
	}
	for _, c := range n.Children {
		if err := rt.paint(c, child); err != nil {
			return err
		}
	}
	return nil
}

// invoke calls a component. A panic raised by the component, or by an
// effect it runs, becomes a KindComponent error; RenderErrors pass through.
func (rt *Runtime) invoke(ref ComponentRef) (out Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.FromPanic("core.invoke", errors.KindComponent, r, rt.pass)
		}
	}()
	return ref.Fn(ref.Props), nil
}

// malformed reports value to the diagnostic channel and returns the
// malformed-tree error.
func (rt *Runtime) malformed(value any) error {
	err := &errors.RenderError{
		Op:        "core.paint",
		Kind:      errors.KindMalformedTree,
		Value:     value,
		Err:       errors.ErrUnexpectedElement,
		Pass:      rt.pass,
		Timestamp: time.Now(),
	}
	errors.Report(err)
	return err
}
