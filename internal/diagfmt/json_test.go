package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"dicer/internal/diag"
	"dicer/internal/source"
)

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("rule\n  \"unterminated\n")
	fileID := fs.AddVirtual("dir/test.dcr", content)

	bag := diag.NewBag(10)
	d := diag.New(diag.SevError, diag.LexUnterminatedLiteral, fs.SpanOf(fileID, 7, 20), "newline in string literal").
		WithNote(fs.SpanOf(fileID, 7, 8), "opened here").
		WithFix("close", diag.FixEdit{Span: fs.SpanOf(fileID, 20, 20), NewText: "\""})
	bag.Add(d)
	bag.Add(diag.New(diag.SevWarning, diag.LexInfo, fs.SpanOf(fileID, 0, 4), "second"))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		Max:              1,
		IncludeNotes:     true,
		IncludeFixes:     true,
	}
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output JSONReport
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 || output.Omitted != 1 {
		t.Fatalf("Max must cut the output, got count=%d omitted=%d", output.Count, output.Omitted)
	}

	got := output.Diagnostics[0]
	if got.Severity != "ERROR" || got.Code != "LEX1002" || got.Title != "Unterminated literal" {
		t.Errorf("header = %s %s %s", got.Severity, got.Code, got.Title)
	}
	at := got.At
	if at.Path != "test.dcr" || at.Bytes != [2]uint32{7, 20} {
		t.Errorf("location = %+v", at)
	}
	if at.Start == nil || at.End == nil || *at.Start != (Pos{Line: 2, Col: 3}) || *at.End != (Pos{Line: 2, Col: 16}) {
		t.Errorf("positions = %+v %+v", at.Start, at.End)
	}
	if len(got.Notes) != 1 || len(got.Fixes) != 1 || got.Fixes[0].Edits[0].Text != "\"" {
		t.Errorf("notes/fixes = %+v %+v", got.Notes, got.Fixes)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.dcr", []byte("abc"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, fs.SpanOf(id, 1, 2), "x").WithNote(fs.SpanOf(id, 0, 1), "n"))

	bag.Add(diag.NewError(diag.LexUnknownChar, fs.SpanOf(id, 2, 3), "over the limit"))

	out := BuildJSON(bag, fs, JSONOpts{})
	d := out.Diagnostics[0]
	if d.At.Start != nil || d.Notes != nil {
		t.Errorf("positions and notes must be omitted: %+v", d)
	}
	if out.Omitted != 1 {
		t.Errorf("dropped diagnostics must count as omitted, got %d", out.Omitted)
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"start"`)) {
		t.Errorf("start must be omitted:\n%s", buf.String())
	}
}
