// Package dom provides an in-memory, DOM-like surface for the render
// pipeline.
//
// The tree itself is a golang.org/x/net/html node tree, so rendering output
// can be serialized with [Node.OuterHTML] and fixtures can be loaded from
// markup with [Document.SetBodyHTML]. Go values that have no place in
// markup, such as event handlers, are kept as node properties alongside the
// tree.
//
// A Document is not safe for concurrent use.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document owns a node tree and the Go-side state attached to its nodes.
type Document struct {
	root  *html.Node
	nodes map[*html.Node]*Node
}

// NewDocument returns an empty document with html, head and body elements.
func NewDocument() *Document {
	doc, err := ParseDocument(strings.NewReader("<!DOCTYPE html><html><head></head><body></body></html>"))
	if err != nil {
		// Parsing a fixed string from memory cannot fail.
		panic(err)
	}
	return doc
}

// ParseDocument parses a full HTML document.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return &Document{root: root, nodes: make(map[*html.Node]*Node)}, nil
}

// Root returns the document node.
func (d *Document) Root() *Node {
	return d.wrap(d.root)
}

// Body returns the body element. Parsing always synthesizes one.
func (d *Document) Body() *Node {
	var body *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return false
		}
		return true
	})
	if body == nil {
		return nil
	}
	return d.wrap(body)
}

// CreateElement returns a new, detached element.
func (d *Document) CreateElement(tag string) *Node {
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// CreateTextNode returns a new, detached text node.
func (d *Document) CreateTextNode(text string) *Node {
	return d.wrap(&html.Node{Type: html.TextNode, Data: text})
}

// GetElementByID returns the first element in document order whose id
// attribute equals id, or nil.
func (d *Document) GetElementByID(id string) *Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil
	}
	return d.wrap(found)
}

// SetBodyHTML replaces the children of the body with the parsed markup.
func (d *Document) SetBodyHTML(markup string) error {
	body := d.Body()
	nodes, err := html.ParseFragment(strings.NewReader(markup), body.n)
	if err != nil {
		return fmt.Errorf("dom: parse fragment: %w", err)
	}
	body.RemoveChildren()
	for _, n := range nodes {
		body.n.AppendChild(n)
	}
	return nil
}

// HTML renders the whole document.
func (d *Document) HTML() string {
	var sb strings.Builder
	if err := html.Render(&sb, d.root); err != nil {
		return ""
	}
	return sb.String()
}

func (d *Document) wrap(n *html.Node) *Node {
	if w, ok := d.nodes[n]; ok {
		return w
	}
	w := &Node{doc: d, n: n}
	d.nodes[n] = w
	return w
}

// forget drops the wrappers of a removed subtree so that discarded render
// output does not accumulate.
func (d *Document) forget(n *html.Node) {
	walk(n, func(c *html.Node) bool {
		delete(d.nodes, c)
		return true
	})
}

// walk visits n and its descendants in document order until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
