package testkit

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"

	"dicer/internal/ast"
	"dicer/internal/source"
	"dicer/internal/token"
)

// CheckTokenInvariants runs the stream invariants on tokens lexed from the whole unit id:
// 1) the stream is non-empty and ends with exactly one EOF
// 2) spans are contiguous, start at offset 0 and end at len(content)
// 3) every token's Text is the source slice under its span, so texts reconstruct the input
// 4) every span Point agrees with FileSet.PointAt
// 5) Groups is exactly token.GroupsOf(Kind)
func CheckTokenInvariants(fs *source.FileSet, id source.FileID, toks []token.Token) error {
	file, ok := fs.Lookup(id)
	if !ok {
		return fmt.Errorf("file %d not found", id)
	}
	if len(toks) == 0 {
		return errors.New("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var (
		b    strings.Builder
		prev uint32
	)
	for i, tok := range toks {
		sp := tok.Span
		if sp.File != id {
			return fmt.Errorf("token %d: span file %d, want %d", i, sp.File, id)
		}
		if !sp.Valid() || sp.Stop.Off > lenContent {
			return fmt.Errorf("token %d: bad span %v", i, sp)
		}
		if sp.Start.Off != prev {
			return fmt.Errorf("token %d (%s): starts at %d, previous stopped at %d", i, tok.Kind, sp.Start.Off, prev)
		}
		prev = sp.Stop.Off

		if want := file.Text(sp); tok.Text != want {
			return fmt.Errorf("token %d (%s): text %q, source %q", i, tok.Kind, tok.Text, want)
		}
		if got := fs.PointAt(id, sp.Start.Off); got != sp.Start {
			return fmt.Errorf("token %d: start %+v, PointAt gives %+v", i, sp.Start, got)
		}
		if got := fs.PointAt(id, sp.Stop.Off); got != sp.Stop {
			return fmt.Errorf("token %d: stop %+v, PointAt gives %+v", i, sp.Stop, got)
		}
		if tok.Groups != token.GroupsOf(tok.Kind) {
			return fmt.Errorf("token %d (%s): groups %s, want %s", i, tok.Kind, tok.Groups, token.GroupsOf(tok.Kind))
		}

		last := i == len(toks)-1
		if tok.Kind.IsEOF() != last {
			return fmt.Errorf("token %d: EOF must be the last token and only there", i)
		}
		b.WriteString(tok.Text)
	}

	if prev != lenContent {
		return fmt.Errorf("stream stops at %d, content has %d bytes", prev, lenContent)
	}
	if b.String() != string(file.Content) {
		return errors.New("concatenated token texts differ from the source")
	}
	return nil
}

// CheckNodeInvariants checks a tree produced over file:
// 1) every span is valid, points into file and stays within content
// 2) every child lies inside its parent
// 3) siblings are ordered and do not overlap
func CheckNodeInvariants(file *source.File, root ast.Node) error {
	if file == nil {
		return errors.New("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var failure error
	check := func(n ast.Node) error {
		sp := n.Span
		if !sp.Valid() {
			return fmt.Errorf("node %s: reversed span %v", n.Name, sp)
		}
		if sp.File != file.ID {
			return fmt.Errorf("node %s: span file mismatch: got=%d want=%d", n.Name, sp.File, file.ID)
		}
		if sp.Stop.Off > lenContent {
			return fmt.Errorf("node %s: span end beyond content: %d > %d", n.Name, sp.Stop.Off, lenContent)
		}
		for i, child := range n.Children {
			if !sp.Contains(child.Span) {
				return fmt.Errorf("node %s: child %s %v is outside %v", n.Name, child.Name, child.Span, sp)
			}
			if i > 0 && !n.Children[i-1].Span.Precedes(child.Span) {
				return fmt.Errorf("node %s: children %d and %d overlap", n.Name, i-1, i)
			}
		}
		return nil
	}
	root.Walk(func(n ast.Node, _ int) bool {
		if failure != nil {
			return false
		}
		failure = check(n)
		return failure == nil
	})
	return failure
}
