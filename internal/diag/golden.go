package diag

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"dicer/internal/source"
)

type goldenLine struct {
	path      string
	line, col uint32
	text      string
}

// Golden renders diagnostics one per line as
//
//	error SYN2002 path:line:col message
//
// sorted by position, for comparing against expected output in tests.
// With notes set every note becomes its own "note" line. Spans of units
// unknown to fs are skipped; messages are folded onto one line.
func Golden(fs *source.FileSet, diags []Diagnostic, notes bool) string {
	if fs == nil {
		return ""
	}
	var lines []goldenLine
	add := func(label string, code Code, sp source.Span, msg string) {
		f, ok := fs.Lookup(sp.File)
		if !ok {
			return
		}
		at := sp.Start.LineCol()
		lines = append(lines, goldenLine{
			path: f.Path,
			line: at.Line,
			col:  at.Col,
			text: fmt.Sprintf("%s %s %s:%d:%d %s", label, code.ID(), f.Path, at.Line, at.Col, strings.Join(strings.Fields(msg), " ")),
		})
	}
	for _, d := range diags {
		add(strings.ToLower(d.Severity.String()), d.Code, d.Primary, d.Message)
		if notes {
			for _, n := range d.Notes {
				add("note", d.Code, n.Span, n.Msg)
			}
		}
	}
	slices.SortStableFunc(lines, func(x, y goldenLine) int {
		return cmp.Or(cmp.Compare(x.path, y.path), cmp.Compare(x.line, y.line), cmp.Compare(x.col, y.col), cmp.Compare(x.text, y.text))
	})

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.text
	}
	return strings.Join(out, "\n")
}
