package parser

import (
	"fmt"

	"dicer/internal/ast"
	"dicer/internal/diag"
	"dicer/internal/source"
	"dicer/internal/token"
)

// имена узлов для пар
var pairNames = map[token.Kind]string{
	token.LParen:     "paren",
	token.LBracket:   "bracket",
	token.LBrace:     "brace",
	token.LRuleDelim: "rule",
}

// текст закрывающих скобок для исправлений
var closerText = map[token.Kind]string{
	token.RParen:     ")",
	token.RBracket:   "]",
	token.RBrace:     "}",
	token.RRuleDelim: ":>",
}

// RootName names the node returned by Group.
const RootName = "source"

type grouper struct {
	s        *Stream
	reporter diag.Reporter
	open     []token.Token // стек открытых скобок
}

// Group folds the stream into a tree: balanced pairs become paren, bracket,
// brace or rule nodes, other significant tokens become leaves named after
// their kind. Broken pairs are reported and the tree is still returned.
// A nil reporter discards the diagnostics.
func Group(s *Stream, reporter diag.Reporter) ast.Node {
	if reporter == nil {
		reporter = diag.ReporterFunc(func(diag.Diagnostic) {})
	}
	g := &grouper{s: s, reporter: reporter}
	children := g.list()
	eof := s.Next()
	span := source.Span{File: eof.Span.File, Start: s.Start(), Stop: eof.Span.Stop}
	return ast.MustNode(RootName, span, children...)
}

// list читает элементы до закрывающей скобки верхнего уровня стека или EOF.
func (g *grouper) list() []ast.Node {
	var out []ast.Node
	for {
		tok := g.s.Peek()
		switch {
		case tok.Kind.IsEOF():
			return out

		case tok.Kind.IsOpen():
			out = append(out, g.pair())

		case tok.Is(token.GroupRealPair):
			if g.closesAny(tok.Kind) {
				// закрывает текущую или внешнюю пару, решает pair()
				return out
			}
			g.s.Next()
			g.reporter.Report(diag.Errorf(diag.SynUnexpectedToken, tok.Span,
				"unexpected %q without matching opener", tok.Text).
				WithFix(fmt.Sprintf("remove %q", tok.Text), diag.FixEdit{Span: tok.Span}))

		default:
			g.s.Next()
			out = append(out, ast.Leaf(tok.Kind.String(), tok.Span))
		}
	}
}

func (g *grouper) pair() ast.Node {
	open := g.s.Next()
	closer, _ := open.Kind.Counterpart()
	g.open = append(g.open, open)
	children := g.list()
	g.open = g.open[:len(g.open)-1]

	span := open.Span
	if len(children) > 0 {
		span = span.Cover(children[len(children)-1].Span)
	}

	next := g.s.Peek()
	switch {
	case next.Kind == closer:
		g.s.Next()
		span = span.Cover(next.Span)
	case next.Kind.IsEOF():
		g.reporter.Report(diag.Errorf(diag.SynUnclosedDelimiter, open.Span, "unclosed %q", open.Text).
			WithNote(next.Span, "input ends here").
			WithFix(fmt.Sprintf("insert %q", closerText[closer]), diag.FixEdit{Span: next.Span, NewText: closerText[closer]}))
	default:
		// закрывающая скобка от внешней пары: эту считаем незакрытой
		g.reporter.Report(diag.Errorf(diag.SynMismatchedDelimiter, next.Span,
			"mismatched %q, expected closer for %q", next.Text, open.Text).
			WithNote(open.Span, "opened here").
			WithFix(fmt.Sprintf("insert %q", closerText[closer]), diag.FixEdit{
				Span:    source.Span{File: next.Span.File, Start: next.Span.Start, Stop: next.Span.Start},
				NewText: closerText[closer],
			}))
	}
	return ast.MustNode(pairNames[open.Kind], span, children...)
}

// closesAny reports whether k closes an open pair on the stack.
func (g *grouper) closesAny(k token.Kind) bool {
	for i := len(g.open) - 1; i >= 0; i-- {
		if c, _ := g.open[i].Kind.Counterpart(); c == k {
			return true
		}
	}
	return false
}
