package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/joshuaharry/featherweight-react/pkg/surface"
)

// Node is an element, text or document node of a Document.
//
// Nodes obtained from the same Document for the same underlying tree node
// are identical, so they can be compared with ==. Properties live on the
// Node value; when a subtree is removed its descendants are forgotten, and a
// later lookup of a descendant returns a fresh Node without properties.
type Node struct {
	doc   *Document
	n     *html.Node
	props map[string]any
}

var _ surface.Node = (*Node)(nil)

// Document returns the document owning n.
func (n *Node) Document() *Document {
	return n.doc
}

// CreateElement returns a new detached element from n's document.
func (n *Node) CreateElement(tag string) surface.Node {
	return n.doc.CreateElement(tag)
}

// AppendChild appends child as the last child of n, detaching it from its
// previous parent first.
func (n *Node) AppendChild(child surface.Node) {
	c := n.own(child)
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	n.n.AppendChild(c.n)
	n.doc.nodes[c.n] = c
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() surface.Node {
	if n.n.FirstChild == nil {
		return nil
	}
	return n.doc.wrap(n.n.FirstChild)
}

// RemoveChild detaches child. It is a no-op when child is not a child of n.
func (n *Node) RemoveChild(child surface.Node) {
	c := n.own(child)
	if c.n.Parent != n.n {
		return
	}
	n.n.RemoveChild(c.n)
	n.doc.forget(c.n)
}

// RemoveChildren detaches every child of n.
func (n *Node) RemoveChildren() {
	surface.RemoveChildren(n)
}

// SetAttribute sets a named attribute, replacing any previous value.
func (n *Node) SetAttribute(name, value string) {
	for i, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.n.Attr[i].Val = value
			return
		}
	}
	n.n.Attr = append(n.n.Attr, html.Attribute{Key: name, Val: value})
}

// SetProperty assigns a Go value to a named property.
func (n *Node) SetProperty(name string, value any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = value
}

// AppendText appends text content, merging into a trailing text node.
func (n *Node) AppendText(text string) {
	if text == "" {
		return
	}
	if last := n.n.LastChild; last != nil && last.Type == html.TextNode {
		last.Data += text
		return
	}
	n.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// IsElement reports whether n is an element node.
func (n *Node) IsElement() bool {
	return n.n.Type == html.ElementNode
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.n.Type == html.TextNode
}

// Tag returns the tag name of an element, or "" for other nodes.
func (n *Node) Tag() string {
	if n.n.Type != html.ElementNode {
		return ""
	}
	return n.n.Data
}

// ID returns the id attribute.
func (n *Node) ID() string {
	return attr(n.n, "id")
}

// Attribute returns the named attribute and whether it is present.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Property returns the named property, or nil.
func (n *Node) Property(name string) any {
	return n.props[name]
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node {
	if n.n.Parent == nil {
		return nil
	}
	return n.doc.wrap(n.n.Parent)
}

// Children returns the child nodes in order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, n.doc.wrap(c))
	}
	return out
}

// Walk visits n and its descendants in document order until fn returns
// false.
func (n *Node) Walk(fn func(*Node) bool) {
	walk(n.n, func(c *html.Node) bool {
		return fn(n.doc.wrap(c))
	})
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	var sb strings.Builder
	walk(n.n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

// InnerHTML serializes the children of n.
func (n *Node) InnerHTML() string {
	var sb strings.Builder
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return sb.String()
		}
	}
	return sb.String()
}

// OuterHTML serializes n including its own tag.
func (n *Node) OuterHTML() string {
	var sb strings.Builder
	if err := html.Render(&sb, n.n); err != nil {
		return sb.String()
	}
	return sb.String()
}

func (n *Node) String() string {
	if n.IsElement() {
		if id := n.ID(); id != "" {
			return fmt.Sprintf("<%s id=%q>", n.Tag(), id)
		}
		return fmt.Sprintf("<%s>", n.Tag())
	}
	if n.IsText() {
		return fmt.Sprintf("#text(%q)", n.n.Data)
	}
	return "#document"
}

func (n *Node) own(s surface.Node) *Node {
	c, ok := s.(*Node)
	if !ok {
		panic(fmt.Sprintf("dom: node of type %T does not belong to this document", s))
	}
	if c.doc != n.doc {
		panic("dom: node belongs to a different document")
	}
	return c
}
