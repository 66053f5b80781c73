// Package tags provides typed shorthands for building element trees.
//
//	tags.Div(core.Props{"id": "menu"},
//	    tags.H1(nil, "Menu"),
//	    tags.Button(tags.OnClick(open), "Open"),
//	)
//
// Every helper is core.H with a fixed tag name.
package tags

import "github.com/joshuaharry/featherweight-react/pkg/core"

// Div builds a <div> block container.
func Div(props core.Props, children ...any) *core.Node {
	return core.H("div", props, children...)
}

// Span builds an inline <span>.
func Span(props core.Props, children ...any) *core.Node {
	return core.H("span", props, children...)
}

// P builds a <p> paragraph.
func P(props core.Props, children ...any) *core.Node {
	return core.H("p", props, children...)
}

// H1 builds an <h1> heading.
func H1(props core.Props, children ...any) *core.Node {
	return core.H("h1", props, children...)
}

// H2 builds an <h2> heading.
func H2(props core.Props, children ...any) *core.Node {
	return core.H("h2", props, children...)
}

// H3 builds an <h3> heading.
func H3(props core.Props, children ...any) *core.Node {
	return core.H("h3", props, children...)
}

// B builds a <b> bold run.
func B(props core.Props, children ...any) *core.Node {
	return core.H("b", props, children...)
}

// Em builds an <em> emphasis run.
func Em(props core.Props, children ...any) *core.Node {
	return core.H("em", props, children...)
}

// A builds an <a> link; set href in props.
func A(props core.Props, children ...any) *core.Node {
	return core.H("a", props, children...)
}

// Ul builds a <ul> list; pair it with Li and Each.
func Ul(props core.Props, children ...any) *core.Node {
	return core.H("ul", props, children...)
}

// Li builds an <li> list item.
func Li(props core.Props, children ...any) *core.Node {
	return core.H("li", props, children...)
}

// Button builds a <button>; attach handlers with OnClick.
func Button(props core.Props, children ...any) *core.Node {
	return core.H("button", props, children...)
}

// Section builds a <section> grouping.
func Section(props core.Props, children ...any) *core.Node {
	return core.H("section", props, children...)
}

// ID returns props holding only an id attribute.
func ID(id string) core.Props {
	return core.Props{"id": id}
}

// OnClick returns props holding only a click handler. Any handler shape the
// surface accepts may be used.
func OnClick(handler any) core.Props {
	return core.Props{"onclick": handler}
}

// Merge combines props left to right; later keys win. The inputs are not
// modified.
func Merge(props ...core.Props) core.Props {
	out := core.Props{}
	for _, p := range props {
		for k, v := range p {
			out[k] = v
		}
	}
	return out
}

// Each maps items to children, for use as a single flattened child.
func Each[T any](items []T, fn func(int, T) core.Element) []core.Element {
	out := make([]core.Element, 0, len(items))
	for i, item := range items {
		out = append(out, fn(i, item))
	}
	return out
}
