package core

import (
	"maps"
	"reflect"
	"strconv"
)

// Element is an immutable description of a piece of UI.
//
// The set of implementations is closed: [Text], [Number], [*Node] and
// [ComponentRef]. Use [ToElement] to classify an arbitrary value.
type Element interface {
	isElement()
}

// Text is a string leaf, painted as text content.
type Text string

// Number is a numeric leaf, painted as its shortest decimal form.
type Number float64

// String formats n the way it is painted: 5, 3.5, -0.25.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// Props are the properties of a Node. String values become surface
// attributes; every other value, event handlers included, is assigned as a
// surface property.
type Props map[string]any

// Node is a tagged element with properties and children.
type Node struct {
	Tag      string
	Props    Props
	Children []Element
}

// Component renders a properties value into an Element. It may call hooks.
type Component func(props any) Element

// ComponentRef pairs a component with the properties it will be invoked
// with when the tree is painted.
type ComponentRef struct {
	Fn    Component
	Props any
}

// malformed carries a value that is not an element so that painting can
// report it.
type malformed struct {
	value any
}

func (Text) isElement()         {}
func (Number) isElement()       {}
func (*Node) isElement()        {}
func (ComponentRef) isElement() {}
func (malformed) isElement()    {}

// Func adapts a component that takes no properties.
func Func(fn func() Element) Component {
	return func(any) Element { return fn() }
}

// Typed adapts a component with a typed properties value. Properties of a
// different type, including nil, are passed as the zero P.
func Typed[P any](fn func(P) Element) Component {
	return func(props any) Element {
		p, _ := props.(P)
		return fn(p)
	}
}

// Lazy defers invoking c until the tree is painted, so that its hooks run
// inside the active render.
func Lazy(c Component, props any) ComponentRef {
	return ComponentRef{Fn: c, Props: props}
}

// maxExactInt is the largest magnitude a float64 holds without rounding.
const maxExactInt = 1 << 53

// ToElement classifies v. Strings become Text and numeric kinds become
// Number; integers beyond ±2^53 become Text holding their exact digits.
// Components and no-argument component functions become a ComponentRef with
// nil props, and Elements are returned as they are. It reports false for
// anything else, including nil.
func ToElement(v any) (Element, bool) {
	switch v := v.(type) {
	case nil:
		return nil, false
	case malformed:
		return v, false
	case *Node:
		if v == nil {
			return nil, false
		}
		return v, true
	case Element:
		return v, true
	case string:
		return Text(v), true
	case Component:
		return componentRef(v, nil)
	case func(any) Element:
		return componentRef(v, nil)
	case func() Element:
		if v == nil {
			return nil, false
		}
		return ComponentRef{Fn: Func(v)}, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i > maxExactInt || i < -maxExactInt {
			return Text(strconv.FormatInt(i, 10)), true
		}
		return Number(i), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > maxExactInt {
			return Text(strconv.FormatUint(u, 10)), true
		}
		return Number(u), true
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), true
	}
	return nil, false
}

func componentRef(fn Component, props any) (Element, bool) {
	if fn == nil {
		return nil, false
	}
	return ComponentRef{Fn: fn, Props: props}, true
}

// H builds a Node. Props are copied; children are classified as in
// CreateElement.
func H(tag string, props Props, children ...any) *Node {
	return &Node{
		Tag:      tag,
		Props:    copyProps(props),
		Children: elements(children),
	}
}

// CreateElement builds an element from a tag name or a component.
//
// For a string tag it returns a *Node whose props default to an empty map
// and whose children default to an empty slice. Props may be Props,
// map[string]any or map[string]string. Nil children are dropped and
// []Element or []any children are flattened in order.
//
// For a component it invokes the component immediately with props and
// returns the result. Components take exactly one argument, so children are
// handed over in a copy of the props under the "children" key. That needs
// props to be nil, Props or map[string]any; children with props of any
// other type yield an element that fails to paint.
//
// Props of an unsupported type on a string tag, and any other tag, also
// yield an element that fails to paint.
func CreateElement(tagOrComponent any, props any, children ...any) Element {
	switch tag := tagOrComponent.(type) {
	case string:
		p, ok := toProps(props)
		if !ok {
			return malformed{value: props}
		}
		return H(tag, p, children...)
	case Component:
		return invokeNow(tag, props, children)
	case func(any) Element:
		return invokeNow(tag, props, children)
	case func() Element:
		if tag != nil {
			return invokeNow(Func(tag), props, children)
		}
	}
	return malformed{value: tagOrComponent}
}

func invokeNow(c Component, props any, children []any) Element {
	if c == nil {
		return malformed{value: c}
	}
	if len(children) > 0 {
		var withChildren Props
		switch p := props.(type) {
		case nil:
			withChildren = Props{}
		case Props:
			withChildren = copyProps(p)
		case map[string]any:
			withChildren = copyProps(Props(p))
		default:
			return malformed{value: props}
		}
		withChildren["children"] = elements(children)
		props = withChildren
	}
	return c(props)
}

// toProps converts the prop shapes a tag accepts. It reports false for any
// other non-nil value.
func toProps(props any) (Props, bool) {
	switch p := props.(type) {
	case nil:
		return nil, true
	case Props:
		return p, true
	case map[string]any:
		return Props(p), true
	case map[string]string:
		out := make(Props, len(p))
		for k, v := range p {
			out[k] = v
		}
		return out, true
	}
	return nil, false
}

func copyProps(p Props) Props {
	if p == nil {
		return Props{}
	}
	return maps.Clone(p)
}

func elements(children []any) []Element {
	out := make([]Element, 0, len(children))
	for _, child := range children {
		out = appendChild(out, child)
	}
	return out
}

func appendChild(out []Element, child any) []Element {
	switch c := child.(type) {
	case nil:
		return out
	case []Element:
		for _, e := range c {
			out = appendChild(out, e)
		}
		return out
	case []any:
		for _, e := range c {
			out = appendChild(out, e)
		}
		return out
	}
	if el, ok := ToElement(child); ok {
		return append(out, el)
	}
	if m, ok := child.(malformed); ok {
		return append(out, m)
	}
	return append(out, malformed{value: child})
}
