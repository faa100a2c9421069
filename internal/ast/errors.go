package ast

import (
	"fmt"

	"dicer/internal/source"
)

// Reason says which span rule a node broke.
type Reason uint8

const (
	ReasonReversed Reason = iota + 1
	ReasonForeignFile
	ReasonOutside
	ReasonOverlap
)

func (r Reason) String() string {
	switch r {
	case ReasonReversed:
		return "span stop precedes start"
	case ReasonForeignFile:
		return "child belongs to another unit"
	case ReasonOutside:
		return "child lies outside the parent span"
	case ReasonOverlap:
		return "child overlaps or precedes its sibling"
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// SpanError reports a node whose children violate the span rules.
// Child is -1 when the node's own span is broken.
type SpanError struct {
	Node      string
	Child     int
	Reason    Reason
	Span      source.Span
	ChildSpan source.Span
}

func (e *SpanError) Error() string {
	if e.Child < 0 {
		return fmt.Sprintf("node %q %s: %s", e.Node, e.Span, e.Reason)
	}
	return fmt.Sprintf("node %q %s: child %d %s: %s", e.Node, e.Span, e.Child, e.ChildSpan, e.Reason)
}
