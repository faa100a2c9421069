package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dicer/internal/lexer"
	"dicer/internal/source"
)

func lexString(t *testing.T, input string) (*source.FileSet, []TokenOutput, *bytes.Buffer) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("tok.dcr", []byte(input))
	toks, _ := lexer.TokenizeAll(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	return fs, out, &buf
}

func TestFormatTokensJSON(t *testing.T) {
	_, out, _ := lexString(t, "\"a\\n\" 12")
	if len(out) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(out))
	}
	str := out[0]
	if str.Kind != "String" || str.Value == nil || *str.Value != "a\n" {
		t.Errorf("string token = %+v", str)
	}
	if out[2].Value != nil {
		t.Errorf("value equal to text must be omitted: %+v", out[2])
	}
	if len(out[2].Groups) != 1 || out[2].Groups[0] != "BaseType" {
		t.Errorf("integer groups = %v", out[2].Groups)
	}
	if out[3].Kind != "EOF" || out[3].At.Bytes[0] != 8 {
		t.Errorf("eof = %+v", out[3])
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("tok.dcr", []byte("(a)"))
	toks, _ := lexer.TokenizeAll(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "  1: LParen") || !strings.Contains(lines[0], `"(" at 1:1-1:2`) {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestFormatTokensTable(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("tok.dcr", []byte("имя \"очень длинная строка\""))
	toks, _ := lexer.TokenizeAll(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensTable(&buf, toks, TableOpts{TextWidth: 12}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(toks)+1 {
		t.Fatalf("expected header plus %d rows, got %d", len(toks), len(lines))
	}
	if !strings.HasPrefix(lines[0], "#") || !strings.Contains(lines[0], "KIND") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(buf.String(), "...") {
		t.Errorf("long text must be truncated:\n%s", buf.String())
	}
	// колонка KIND выровнена во всех строках
	col := strings.Index(lines[0], "KIND")
	if !strings.HasPrefix(lines[1][col:], "Identifier") {
		t.Errorf("misaligned row %q", lines[1])
	}
}
