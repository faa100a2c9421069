package fix

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"slices"

	"dicer/internal/diag"
	"dicer/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first fix in source order.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every fix that does not conflict with an earlier one.
	ApplyModeAll
)

type ApplyOptions struct {
	Mode ApplyMode
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      diag.Code
	Message   string
	Path      string
	EditCount int
}

// SkippedFix names a fix that was not applied and why.
type SkippedFix struct {
	Title  string
	Reason string
}

// FileChange holds the rewritten content of one unit.
// Файлы на диск не пишутся: это дело вызывающего.
type FileChange struct {
	FileID    source.FileID
	Path      string
	Content   []byte
	EditCount int
}

type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

// accepted is an edit kept for the final rewrite. Offsets stay in the
// coordinates of the original unit; rank orders insertions at one point.
type accepted struct {
	edit diag.FixEdit
	rank int
}

// Apply selects fixes from diagnostics according to opts and rewrites
// in-memory copies of the affected units.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, errors.New("fix: FileSet is nil")
	}

	type pick struct {
		d   diag.Diagnostic
		fix diag.Fix
	}
	var picks []pick
	for _, d := range diagnostics {
		for _, f := range d.Fixes {
			if len(f.Edits) == 0 {
				result.Skipped = append(result.Skipped, SkippedFix{Title: f.Title, Reason: "fix has no edits"})
				continue
			}
			picks = append(picks, pick{d: d, fix: f})
		}
	}
	if len(picks) == 0 {
		return result, ErrNoFixes
	}
	// стабильная сортировка: при равных спанах сохраняется порядок диагностик
	slices.SortStableFunc(picks, func(a, b pick) int {
		pa, pb := a.d.Primary, b.d.Primary
		return cmp.Or(
			cmp.Compare(pa.File, pb.File),
			cmp.Compare(pa.Start.Off, pb.Start.Off),
			cmp.Compare(pa.Stop.Off, pb.Stop.Off),
		)
	})
	if opts.Mode == ApplyModeOnce {
		picks = picks[:1]
	}

	kept := make(map[source.FileID][]accepted)
	rank := 0
	for _, p := range picks {
		if reason := check(fs, kept, p.fix.Edits); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{Title: p.fix.Title, Reason: reason})
			continue
		}
		for _, e := range p.fix.Edits {
			kept[e.Span.File] = append(kept[e.Span.File], accepted{edit: e, rank: rank})
			rank++
		}
		path := ""
		if f, ok := fs.Lookup(p.d.Primary.File); ok {
			path = f.Path
		}
		result.Applied = append(result.Applied, AppliedFix{
			Title:     p.fix.Title,
			Code:      p.d.Code,
			Message:   p.d.Message,
			Path:      path,
			EditCount: len(p.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	for id, edits := range kept {
		file := fs.Get(id)
		result.FileChanges = append(result.FileChanges, FileChange{
			FileID:    id,
			Path:      file.Path,
			Content:   rewrite(file.Content, edits),
			EditCount: len(edits),
		})
	}
	slices.SortFunc(result.FileChanges, func(a, b FileChange) int { return cmp.Compare(a.FileID, b.FileID) })
	return result, nil
}

// check returns why edits cannot join kept, or "" when they can.
func check(fs *source.FileSet, kept map[source.FileID][]accepted, edits []diag.FixEdit) string {
	for i, e := range edits {
		file, ok := fs.Lookup(e.Span.File)
		if !ok {
			return fmt.Sprintf("unknown file id %d", e.Span.File)
		}
		if e.Span.Start.Off > e.Span.Stop.Off || int(e.Span.Stop.Off) > len(file.Content) {
			return "edit span out of range"
		}
		for _, prev := range kept[e.Span.File] {
			if overlaps(prev.edit.Span, e.Span) {
				return fmt.Sprintf("conflicts with previously applied edits in %s", file.Path)
			}
		}
		for _, other := range edits[:i] {
			if other.Span.File == e.Span.File && overlaps(other.Span, e.Span) {
				return "fix edits overlap each other"
			}
		}
	}
	return ""
}

// overlaps reports whether two half-open spans of one unit collide.
// Insertions never collide with each other; an insertion collides only
// with a span that strictly contains its point.
func overlaps(a, b source.Span) bool {
	aEmpty, bEmpty := a.Start.Off == a.Stop.Off, b.Start.Off == b.Stop.Off
	switch {
	case aEmpty && bEmpty:
		return false
	case aEmpty:
		return b.Start.Off < a.Start.Off && a.Start.Off < b.Stop.Off
	case bEmpty:
		return a.Start.Off < b.Start.Off && b.Start.Off < a.Stop.Off
	}
	return a.Start.Off < b.Stop.Off && b.Start.Off < a.Stop.Off
}

// rewrite splices edits into a copy of content in one forward pass.
// At a shared offset insertions precede replacements, and a later
// insertion lands before an earlier one, so the inner pair closes first.
func rewrite(content []byte, edits []accepted) []byte {
	slices.SortFunc(edits, func(a, b accepted) int {
		if c := cmp.Compare(a.edit.Span.Start.Off, b.edit.Span.Start.Off); c != 0 {
			return c
		}
		if c := cmp.Compare(a.edit.Span.Stop.Off, b.edit.Span.Stop.Off); c != 0 {
			return c
		}
		return cmp.Compare(b.rank, a.rank)
	})
	var out bytes.Buffer
	out.Grow(len(content))
	at := uint32(0)
	for _, a := range edits {
		out.Write(content[at:a.edit.Span.Start.Off])
		out.WriteString(a.edit.NewText)
		at = a.edit.Span.Stop.Off
	}
	out.Write(content[at:])
	return out.Bytes()
}
