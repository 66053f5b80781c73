// Package surface defines the drawing surface the render pipeline paints
// onto: a tree of mutable nodes in the shape of the browser DOM.
package surface

// Node is a mutable node of a DOM-like tree.
//
// FirstChild must return an untyped nil when the node has no children.
type Node interface {
	// CreateElement returns a new, detached element node owned by the same
	// document as this node.
	CreateElement(tag string) Node
	// AppendChild appends child as the last child of this node, detaching
	// it from any previous parent.
	AppendChild(child Node)
	// FirstChild returns the first child, or nil.
	FirstChild() Node
	// RemoveChild detaches child from this node.
	RemoveChild(child Node)
	// SetAttribute sets a named string attribute.
	SetAttribute(name, value string)
	// SetProperty assigns an arbitrary named property, such as an event
	// handler.
	SetProperty(name string, value any)
	// AppendText appends text content.
	AppendText(text string)
}

// RemoveChildren detaches every child of n.
func RemoveChildren(n Node) {
	for child := n.FirstChild(); child != nil; child = n.FirstChild() {
		n.RemoveChild(child)
	}
}
