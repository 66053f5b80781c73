package testing

import (
	"fmt"
	"strings"

	"github.com/joshuaharry/featherweight-react/pkg/dom"
)

// Finder locates nodes in the rendered surface.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order),
	// root included.
	Evaluate(root *dom.Node) []*dom.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*dom.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *dom.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *dom.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *dom.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*dom.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

// Text returns the text content of the first match. Panics if no matches.
func (r FinderResult) Text() string {
	return r.First().TextContent()
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

type predicateFinder struct {
	desc string
	fn   func(*dom.Node) bool
}

func (f *predicateFinder) Evaluate(root *dom.Node) []*dom.Node {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByID matches elements whose id attribute is id.
func ByID(id string) Finder {
	return &predicateFinder{
		desc: fmt.Sprintf("ByID(%q)", id),
		fn: func(n *dom.Node) bool {
			return n.IsElement() && n.ID() == id
		},
	}
}

// ByTag matches elements with the given tag name.
func ByTag(tag string) Finder {
	return &predicateFinder{
		desc: fmt.Sprintf("ByTag(%q)", tag),
		fn: func(n *dom.Node) bool {
			return n.Tag() == tag
		},
	}
}

// ByText matches elements whose whole text content equals text. Both a
// button and the paragraph wrapping it can match; use First for the
// outermost.
func ByText(text string) Finder {
	return &predicateFinder{
		desc: fmt.Sprintf("ByText(%q)", text),
		fn: func(n *dom.Node) bool {
			return n.IsElement() && n.TextContent() == text
		},
	}
}

// ByTextContaining matches elements whose text content contains substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
		fn: func(n *dom.Node) bool {
			return n.IsElement() && strings.Contains(n.TextContent(), substring)
		},
	}
}

// ByAttribute matches elements whose attribute name equals value.
func ByAttribute(name, value string) Finder {
	return &predicateFinder{
		desc: fmt.Sprintf("ByAttribute(%s=%q)", name, value),
		fn: func(n *dom.Node) bool {
			v, ok := n.Attribute(name)
			return ok && v == value
		},
	}
}

// ByPredicate matches nodes for which fn returns true.
func ByPredicate(fn func(*dom.Node) bool) Finder {
	return &predicateFinder{desc: "ByPredicate(<func>)", fn: fn}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *dom.Node) []*dom.Node {
	seen := make(map[*dom.Node]bool)
	var out []*dom.Node
	for _, anc := range f.of.Evaluate(root) {
		for _, n := range f.matching.Evaluate(anc) {
			if n == anc || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant matches nodes satisfying matching that lie strictly inside a
// node matching of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// collectMatches performs a depth-first pre-order traversal, collecting
// nodes that satisfy the predicate.
func collectMatches(root *dom.Node, predicate func(*dom.Node) bool) []*dom.Node {
	if root == nil {
		return nil
	}
	var results []*dom.Node
	root.Walk(func(n *dom.Node) bool {
		if predicate(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}
