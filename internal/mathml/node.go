// Package mathml provides the read-only expression tree consumed by the
// typesetter, and readers that build it from serialized MathML (XML) or
// from a JSON encoding of the same tree.
//
// Only element structure, direct text and attributes are kept: a Node's
// Text is the concatenation of its direct character data, trimmed, and its
// Children are its element children in document order.
package mathml

import "strings"

// Node is one element of a presentation-MathML expression tree.
type Node struct {
	// Tag is the local element name, e.g. "mfrac".
	Tag string

	// Text is the trimmed direct text content of the element.
	Text string

	// Attrs holds the element's attributes by local name.
	Attrs map[string]string

	// Children are the element children in document order.
	Children []*Node
}

// Element creates a node with the given children.
func Element(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Leaf creates a childless node with text content.
func Leaf(tag, text string) *Node {
	return &Node{Tag: tag, Text: strings.TrimSpace(text)}
}

// WithAttr returns n with an attribute set. It is meant for building
// trees, before they are handed to a renderer.
func (n *Node) WithAttr(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
	return n
}

// Attr returns the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// AttrOr returns the named attribute or def when it is absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attrs[name]; ok {
		return v
	}
	return def
}

// Kind classifies the node by its tag.
func (n *Node) Kind() Kind {
	return KindOf(n.Tag)
}

// Walk calls fn for n and every descendant in depth-first order.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// String returns a compact s-expression of the tree, for debugging.
func (n *Node) String() string {
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(n.Tag)
	if n.Text != "" {
		b.WriteString(" \"")
		b.WriteString(n.Text)
		b.WriteByte('"')
	}
	for _, c := range n.Children {
		b.WriteByte(' ')
		c.format(b)
	}
	b.WriteByte(')')
}
