package ast

import (
	"strings"

	"dicer/internal/source"
)

// Node is a named region of source with nested regions.
type Node struct {
	Name     string
	Span     source.Span
	Children []Node
}

// MakeNode builds a node and checks the span rules for its children.
func MakeNode(name string, span source.Span, children ...Node) (Node, error) {
	if !span.Valid() {
		return Node{}, &SpanError{Node: name, Child: -1, Reason: ReasonReversed, Span: span}
	}
	for i := range children {
		child := children[i].Span
		switch {
		case child.File != span.File:
			return Node{}, &SpanError{Node: name, Child: i, Reason: ReasonForeignFile, Span: span, ChildSpan: child}
		case !span.Contains(child):
			return Node{}, &SpanError{Node: name, Child: i, Reason: ReasonOutside, Span: span, ChildSpan: child}
		case i > 0 && !children[i-1].Span.Precedes(child):
			return Node{}, &SpanError{Node: name, Child: i, Reason: ReasonOverlap, Span: span, ChildSpan: child}
		}
	}
	// своя копия, чтобы вызывающий мог переиспользовать срез
	var kids []Node
	if len(children) > 0 {
		kids = make([]Node, len(children))
		copy(kids, children)
	}
	return Node{Name: name, Span: span, Children: kids}, nil
}

// MustNode is MakeNode for callers whose spans are correct by construction.
// Нарушение считается ошибкой программиста, поэтому паника.
func MustNode(name string, span source.Span, children ...Node) Node {
	n, err := MakeNode(name, span, children...)
	if err != nil {
		panic(err)
	}
	return n
}

// Leaf builds a childless node.
func Leaf(name string, span source.Span) Node {
	return Node{Name: name, Span: span}
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// Len returns the number of nodes in the subtree including n.
func (n Node) Len() int {
	total := 1
	for i := range n.Children {
		total += n.Children[i].Len()
	}
	return total
}

// Text returns the source slice covered by n.
func (n Node) Text(content []byte) string {
	return n.Span.Text(content)
}

// String renders the tree as an s-expression of names, e.g. (source (paren ident)).
func (n Node) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n Node) writeTo(b *strings.Builder) {
	if n.IsLeaf() {
		b.WriteString(n.Name)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Name)
	for i := range n.Children {
		b.WriteByte(' ')
		n.Children[i].writeTo(b)
	}
	b.WriteByte(')')
}
