package diagfmt

import (
	"encoding/json"
	"io"

	"dicer/internal/diag"
	"dicer/internal/source"
)

// Pos is a 1-based line and column.
type Pos struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// Location places a span: unit path, byte range [start, end) and, when
// positions are requested, line/column of both ends.
type Location struct {
	Path  string    `json:"path,omitempty"`
	Bytes [2]uint32 `json:"bytes"`
	Start *Pos      `json:"start,omitempty"`
	End   *Pos      `json:"end,omitempty"`
}

type locator struct {
	fs        *source.FileSet
	paths     PathMode
	positions bool
}

func (l locator) at(sp source.Span) Location {
	loc := Location{Bytes: [2]uint32{sp.Start.Off, sp.Stop.Off}}
	if f, ok := l.fs.Lookup(sp.File); ok {
		loc.Path = formatPath(f.Path, l.paths)
	}
	if l.positions {
		// Point уже знает строку и колонку
		start, end := sp.Start.LineCol(), sp.Stop.LineCol()
		loc.Start = &Pos{Line: start.Line, Col: start.Col}
		loc.End = &Pos{Line: end.Line, Col: end.Col}
	}
	return loc
}

type JSONNote struct {
	Message string   `json:"message"`
	At      Location `json:"at"`
}

type JSONEdit struct {
	At   Location `json:"at"`
	Text string   `json:"text"`
}

type JSONFix struct {
	Title string     `json:"title"`
	Edits []JSONEdit `json:"edits"`
}

type JSONDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	At       Location   `json:"at"`
	Notes    []JSONNote `json:"notes,omitempty"`
	Fixes    []JSONFix  `json:"fixes,omitempty"`
}

// JSONReport is the document JSON writes.
// Omitted counts diagnostics cut by JSONOpts.Max plus those the bag dropped.
type JSONReport struct {
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Count       int              `json:"count"`
	Omitted     int              `json:"omitted,omitempty"`
}

// BuildJSON собирает JSONReport без сериализации.
func BuildJSON(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) JSONReport {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	loc := locator{fs: fs, paths: opts.PathMode, positions: opts.IncludePositions}

	report := JSONReport{
		Diagnostics: make([]JSONDiagnostic, 0, len(items)),
		Omitted:     bag.Len() - len(items) + bag.Dropped(),
	}
	for _, d := range items {
		out := JSONDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			At:       loc.at(d.Primary),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				out.Notes = append(out.Notes, JSONNote{Message: n.Msg, At: loc.at(n.Span)})
			}
		}
		if opts.IncludeFixes {
			for _, fix := range d.Fixes {
				jf := JSONFix{Title: fix.Title, Edits: make([]JSONEdit, 0, len(fix.Edits))}
				for _, e := range fix.Edits {
					jf.Edits = append(jf.Edits, JSONEdit{At: loc.at(e.Span), Text: e.NewText})
				}
				out.Fixes = append(out.Fixes, jf)
			}
		}
		report.Diagnostics = append(report.Diagnostics, out)
	}
	report.Count = len(report.Diagnostics)
	return report
}

// JSON writes the bag as one indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildJSON(bag, fs, opts))
}
