package ast

import (
	"dicer/internal/source"
	"dicer/internal/token"
)

// Walk visits n and its descendants in pre-order.
// Если fn вернул false, потомки узла пропускаются.
func (n Node) Walk(fn func(node Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n Node) walk(fn func(Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for i := range n.Children {
		n.Children[i].walk(fn, depth+1)
	}
}

// SpanOf returns the span from the first token start to the last token stop.
// Ложь для пустого диапазона или токенов из разных файлов.
func SpanOf(tokens []token.Token) (source.Span, bool) {
	if len(tokens) == 0 {
		return source.Span{}, false
	}
	first, last := tokens[0].Span, tokens[len(tokens)-1].Span
	if first.File != last.File || last.Stop.Less(first.Start) {
		return source.Span{}, false
	}
	return source.Span{File: first.File, Start: first.Start, Stop: last.Stop}, true
}
