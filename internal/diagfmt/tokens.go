package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dicer/internal/source"
	"dicer/internal/token"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TokenOutput: JSON-представление токена (дамп потока).
type TokenOutput struct {
	Kind   string   `json:"kind"`
	Groups []string `json:"groups,omitempty"`
	Text   string   `json:"text,omitempty"`
	Value  *string  `json:"value,omitempty"` // только если отличается от Text
	At     Location `json:"at"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	var b strings.Builder
	for i, tok := range tokens {
		start, end := tok.Span.Start.LineCol(), tok.Span.Stop.LineCol()
		fmt.Fprintf(&b, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(&b, " %q", tok.Text)
		}
		fmt.Fprintf(&b, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if tok.Groups != 0 {
			b.WriteString(" " + tok.Groups.String())
		}
		b.WriteByte('\n')

		if tok.Kind == token.EOF {
			break
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// TokensOutput builds the JSON form of a token stream without encoding it.
func TokensOutput(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	loc := locator{fs: fs, positions: true}
	for _, tok := range tokens {
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			At:   loc.at(tok.Span),
		}
		for _, g := range tok.Groups.List() {
			out.Groups = append(out.Groups, g.String())
		}
		if tok.Value != tok.Text {
			v := tok.Value
			out.Value = &v
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(TokensOutput(tokens, fs))
}

// TableOpts configures FormatTokensTable.
type TableOpts struct {
	Color     bool
	TextWidth int // ширина колонки текста, 0 → 32
}

var (
	headerColor  = lipgloss.Color("7")
	kindColor    = lipgloss.Color("6")
	invalidColor = lipgloss.Color("1")
	mutedColor   = lipgloss.Color("8")
)

// FormatTokensTable prints tokens as an aligned table: index, kind, position, text, groups.
func FormatTokensTable(w io.Writer, tokens []token.Token, opts TableOpts) error {
	if opts.TextWidth <= 0 {
		opts.TextWidth = 32
	}

	rows := make([][5]string, 0, len(tokens)+1)
	rows = append(rows, [5]string{"#", "KIND", "POS", "TEXT", "GROUPS"})
	for i, tok := range tokens {
		start := tok.Span.Start.LineCol()
		rows = append(rows, [5]string{
			strconv.Itoa(i + 1),
			tok.Kind.String(),
			fmt.Sprintf("%d:%d", start.Line, start.Col),
			truncate(strconv.Quote(tok.Text), opts.TextWidth),
			tok.Groups.String(),
		})
	}

	var widths [5]int
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	for r, row := range rows {
		for c, cell := range row {
			style := lipgloss.NewStyle()
			if c < len(row)-1 {
				style = style.Width(widths[c] + 2)
			}
			if opts.Color {
				style = styleCell(style, r, c, tokenAt(tokens, r))
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func tokenAt(tokens []token.Token, row int) token.Token {
	if row == 0 {
		return token.Token{}
	}
	return tokens[row-1]
}

func styleCell(style lipgloss.Style, row, col int, tok token.Token) lipgloss.Style {
	switch {
	case row == 0:
		return style.Bold(true).Foreground(headerColor)
	case col == 1 && tok.Kind == token.Invalid:
		return style.Foreground(invalidColor)
	case col == 1:
		return style.Foreground(kindColor)
	case col == 4 || tok.IsIgnorable():
		return style.Foreground(mutedColor)
	}
	return style
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
