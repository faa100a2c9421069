package source

import (
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.dcr", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	latestID, exists := fs.GetLatest("test.dcr")
	if !exists {
		t.Error("Expected file to exist after Add")
	}
	if latestID != id1 {
		t.Errorf("Expected latest ID to be %d, got %d", id1, latestID)
	}

	// тот же путь, новое содержимое
	id2 := fs.Add("test.dcr", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists = fs.GetLatest("test.dcr")
	if !exists || latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d (exists=%v)", id2, latestID, exists)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("Expected first file content to be 'hello world', got %q", got)
	}
	if got := string(fs.Get(id2).Content); got != "hello universe" {
		t.Errorf("Expected second file content to be 'hello universe', got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

// TestAddVirtualLineIdx проверяет построение LineIdx для AddVirtual
func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.dcr", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3} // позиции символов \n
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestAddNormalized(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddNormalized("n.dcr", []byte("\xEF\xBB\xBFa\r\nb\r\n"))
	file := fs.Get(id)

	if string(file.Content) != "a\nb\n" {
		t.Errorf("Expected normalized content %q, got %q", "a\nb\n", string(file.Content))
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("Expected FileHadBOM flag to be set")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("Expected FileNormalizedCRLF flag to be set")
	}
}

func TestAddKeepsCRLF(t *testing.T) {
	fs := NewFileSet()
	id := fs.Add("raw.dcr", []byte("a\r\nb"), 0)
	if got := string(fs.Get(id).Content); got != "a\r\nb" {
		t.Errorf("Add must not rewrite content, got %q", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in    string
		want  string
		flags FileFlags
	}{
		{"a\r\nb\r\n", "a\nb\n", FileNormalizedCRLF},
		{"a\rb", "a\rb", 0}, // одиночный CR остаётся
		{"\xEF\xBB\xBFx\n", "x\n", FileHadBOM},
		{"\xEF\xBB", "\xEF\xBB", 0},
		{"", "", 0},
	}
	for _, tt := range tests {
		got, flags := Normalize([]byte(tt.in))
		if string(got) != tt.want || flags != tt.flags {
			t.Errorf("Normalize(%q) = %q, %b; want %q, %b", tt.in, got, flags, tt.want, tt.flags)
		}
	}
}

// TestResolveUTF8 проверяет разрешение позиций в UTF-8 тексте
func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()

	// α занимает 2 байта
	id := fs.AddVirtual("test.dcr", []byte("α\n"))

	span := fs.SpanOf(id, 0, 1)
	start, end := fs.Resolve(span)

	if want := (LineCol{Line: 1, Col: 1}); start != want {
		t.Errorf("Expected start %+v, got %+v", want, start)
	}
	if want := (LineCol{Line: 1, Col: 2}); end != want {
		t.Errorf("Expected end %+v, got %+v", want, end)
	}
}

func TestPointAt(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("p.dcr", []byte("ab\n\ncd"))

	tests := []struct {
		off  uint32
		want Point
	}{
		{0, Point{Off: 0, Row: 0, Col: 0}},
		{2, Point{Off: 2, Row: 0, Col: 2}}, // сам '\n' принадлежит первой строке
		{3, Point{Off: 3, Row: 1, Col: 0}},
		{4, Point{Off: 4, Row: 2, Col: 0}},
		{6, Point{Off: 6, Row: 2, Col: 2}}, // EOF
	}
	for _, tt := range tests {
		if got := fs.PointAt(id, tt.off); got != tt.want {
			t.Errorf("PointAt(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestRows(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("rows.dcr", []byte("one\ntwo\nthree"))
	file := fs.Get(id)

	if got := file.Text(fs.Rows(id, 1, 2)); got != "two\n" {
		t.Errorf("Rows(1,2) = %q", got)
	}
	if got := file.Text(fs.Rows(id, 1, 99)); got != "two\nthree" {
		t.Errorf("Rows(1,99) = %q", got)
	}
	if sp := fs.Rows(id, 7, 9); !sp.Empty() {
		t.Errorf("Rows past EOF must be empty, got %v", sp)
	}
}

func TestLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("l.dcr", []byte("first\nsecond\n"))
	f := fs.Get(id)

	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "", 4: ""}
	for n, want := range cases {
		if got := f.Line(n); got != want {
			t.Errorf("Line(%d) = %q, want %q", n, got, want)
		}
	}
}

// TestEdgeCases проверяет граничные случаи
func TestEdgeCases(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.AddVirtual("empty.dcr", []byte{})
	if n := len(fs.Get(id1).LineIdx); n != 0 {
		t.Errorf("Expected empty LineIdx for empty file, got length %d", n)
	}

	id2 := fs.AddVirtual("no_newlines.dcr", []byte("hello"))
	if n := len(fs.Get(id2).LineIdx); n != 0 {
		t.Errorf("Expected empty LineIdx for file without newlines, got length %d", n)
	}

	id3 := fs.AddVirtual("only_newline.dcr", []byte("\n"))
	file3 := fs.Get(id3)
	if len(file3.LineIdx) != 1 || file3.LineIdx[0] != 0 {
		t.Errorf("Expected LineIdx [0] for file with only newline, got %v", file3.LineIdx)
	}

	if _, ok := fs.Lookup(FileID(42)); ok {
		t.Error("Lookup must fail for unknown id")
	}
}

func TestUnknownFileID(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.dcr", []byte("ab\ncd"))
	unknown := FileID(7)

	if got := fs.PointAt(unknown, 3); got != (Point{}) {
		t.Errorf("PointAt on unknown id = %+v", got)
	}
	if got := fs.SpanOf(unknown, 0, 2); got != (Span{File: unknown}) {
		t.Errorf("SpanOf on unknown id = %v", got)
	}
	if got := fs.Rows(unknown, 0, 1); got != (Span{File: unknown}) {
		t.Errorf("Rows on unknown id = %v", got)
	}
	start, end := fs.Resolve(Span{File: unknown})
	if start != (LineCol{}) || end != (LineCol{}) {
		t.Errorf("Resolve on unknown id = %+v %+v", start, end)
	}
	if _, ok := fs.Lookup(unknown); ok {
		t.Error("Lookup must reject unknown id")
	}
}
