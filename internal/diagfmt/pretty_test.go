package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"dicer/internal/diag"
	"dicer/internal/source"
)

func singleDiag(t *testing.T, path, content string, start, stop uint32, code diag.Code, msg string) (*diag.Bag, *source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual(path, []byte(content))
	bag := diag.NewBag(4)
	bag.Add(diag.NewError(code, fs.SpanOf(id, start, stop), msg))
	return bag, fs, id
}

func TestPrettyCaret(t *testing.T) {
	bag, fs, _ := singleDiag(t, "src/test.dcr", "a = \"abc\n", 4, 8, diag.LexUnterminatedLiteral, "unterminated string literal")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Color: ColorOff, PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	want := "test.dcr:1:5: ERROR LEX1002: unterminated string literal\n" +
		"1 | a = \"abc\n" +
		"  |     ^~~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideRunes(t *testing.T) {
	content := "名前 | x"
	bag, fs, _ := singleDiag(t, "wide.dcr", content, 7, 8, diag.LexUnknownChar, "unknown character")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Color: ColorOff}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	// "名前 " занимает 5 колонок терминала
	if lines[2] != "  |      ^" {
		t.Fatalf("caret line = %q", lines[2])
	}
}

func TestPrettyContextAndTabs(t *testing.T) {
	content := "one\ntwo\n\tbad"
	bag, fs, _ := singleDiag(t, "ctx.dcr", content, 9, 12, diag.LexMalformedNumber, "malformed")

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Color: ColorOff, Context: 1, TabWidth: 2}); err != nil {
		t.Fatal(err)
	}
	want := "ctx.dcr:3:2: ERROR LEX1004: malformed\n" +
		"2 | two\n" +
		"3 |   bad\n" +
		"  |   ^~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.dcr", []byte("(a b\n"))

	bag := diag.NewBag(4)
	d := diag.New(diag.SevWarning, diag.SynUnclosedDelimiter, fs.SpanOf(id, 0, 1), "unclosed \"(\"").
		WithNote(fs.SpanOf(id, 5, 5), "input ends here").
		WithFix("close the pair", diag.FixEdit{Span: fs.SpanOf(id, 4, 4), NewText: ")"})
	bag.Add(d)

	var buf bytes.Buffer
	opts := PrettyOpts{Color: ColorOff, ShowNotes: true, ShowFixes: true}
	if err := Pretty(&buf, bag, fs, opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"WARNING SYN2002",
		"note: test.dcr:2:1: input ends here",
		"fix: close the pair",
		`1:5-1:5 => ")"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestPrettyColor(t *testing.T) {
	bag, fs, _ := singleDiag(t, "c.dcr", "|", 0, 1, diag.LexUnknownChar, "unknown character")

	var on, auto bytes.Buffer
	if err := Pretty(&on, bag, fs, PrettyOpts{Color: ColorOn}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(on.String(), "\x1b[") {
		t.Errorf("ColorOn must emit ANSI escapes: %q", on.String())
	}
	// буфер не терминал, auto выключает цвет
	if err := Pretty(&auto, bag, fs, PrettyOpts{Color: ColorAuto}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(auto.String(), "\x1b[") {
		t.Errorf("ColorAuto on a buffer must be plain: %q", auto.String())
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{"auto": ColorAuto, "ON": ColorOn, "off": ColorOff, "": ColorAuto} {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Error("expected error")
	}
}
