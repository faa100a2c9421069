package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"dicer/internal/diag"
	"dicer/internal/source"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

type palette struct {
	err, warn, info, note, caret, gutter, bold *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgBlue, color.Bold),
		note:   color.New(color.FgCyan),
		caret:  color.New(color.FgRed, color.Bold),
		gutter: color.New(color.FgBlue),
		bold:   color.New(color.Bold),
	}
	// глобальный color.NoColor не трогаем: решение принимается на каждый вывод
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.note, p.caret, p.gutter, p.bold} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color.enabled(w))
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}

	var b strings.Builder
	for _, d := range bag.Items() {
		file, ok := fs.Lookup(d.Primary.File)
		if !ok {
			continue
		}
		start := d.Primary.Start.LineCol()
		fmt.Fprintf(&b, "%s:%d:%d: %s %s: %s\n",
			pal.bold.Sprint(formatPath(file.Path, opts.PathMode)), start.Line, start.Col,
			pal.severity(d.Severity).Sprint(d.Severity.String()),
			pal.bold.Sprint(d.Code.ID()), d.Message)

		writeSnippet(&b, file, d.Primary, opts, pal)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				nf, ok := fs.Lookup(n.Span.File)
				if !ok {
					continue
				}
				pos := n.Span.Start.LineCol()
				fmt.Fprintf(&b, "  %s %s:%d:%d: %s\n", pal.note.Sprint("note:"),
					formatPath(nf.Path, opts.PathMode), pos.Line, pos.Col, n.Msg)
			}
		}
		if opts.ShowFixes {
			for _, fix := range d.Fixes {
				fmt.Fprintf(&b, "  %s %s\n", pal.note.Sprint("fix:"), fix.Title)
				for _, e := range fix.Edits {
					from, to := e.Span.Start.LineCol(), e.Span.Stop.LineCol()
					fmt.Fprintf(&b, "    %d:%d-%d:%d => %q\n", from.Line, from.Col, to.Line, to.Col, e.NewText)
				}
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeSnippet печатает строку ошибки (и Context строк перед ней) с подчёркиванием.
func writeSnippet(b *strings.Builder, file *source.File, sp source.Span, opts PrettyOpts, pal palette) {
	row := sp.Start.Row
	first := row
	if ctx, err := safecast.Conv[uint32](opts.Context); err == nil && ctx > 0 {
		first = row - min(ctx, row)
	}
	gutterWidth := len(fmt.Sprint(row + 1))

	for r := first; r <= row; r++ {
		line := file.Line(r + 1)
		fmt.Fprintf(b, "%s %s\n", pal.gutter.Sprintf("%*d |", gutterWidth, r+1), expandTabs(line, opts.TabWidth))
	}

	line := file.Line(row + 1)
	col := min(int(sp.Start.Col), len(line))
	end := len(line)
	if sp.Stop.Row == row {
		end = min(int(sp.Stop.Col), len(line))
	}
	pad := runewidth.StringWidth(expandTabs(line[:col], opts.TabWidth))
	width := max(runewidth.StringWidth(expandTabs(line[col:end], opts.TabWidth)), 1)

	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(b, "%s %s%s\n", pal.gutter.Sprintf("%*s |", gutterWidth, ""),
		strings.Repeat(" ", pad), pal.caret.Sprint(underline))
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", width))
}
