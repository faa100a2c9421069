package lexer

import (
	"dicer/internal/source"
	"testing"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.dcr", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	want := []struct {
		b        byte
		row, col uint32
	}{
		{'a', 0, 1},
		{'\n', 1, 0},
		{'b', 1, 1},
	}
	for i, w := range want {
		if cursor.EOF() {
			t.Fatalf("step %d: unexpected EOF", i)
		}
		if got := cursor.Peek(); got != w.b {
			t.Errorf("step %d: Peek = %q, want %q", i, got, w.b)
		}
		if got := cursor.Bump(); got != w.b {
			t.Errorf("step %d: Bump = %q, want %q", i, got, w.b)
		}
		if cursor.Row != w.row || cursor.Col != w.col {
			t.Errorf("step %d: position = %d:%d, want %d:%d", i, cursor.Row, cursor.Col, w.row, w.col)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected zero bytes at EOF")
	}
}

// TestLookahead проверяет просмотр вперёд без сдвига и Accept
func TestLookahead(t *testing.T) {
	cursor := NewCursor(createFile("<~é"))

	if cursor.PeekAt(1) != '~' || cursor.PeekAt(4) != 0 {
		t.Errorf("PeekAt = %q, %q", cursor.PeekAt(1), cursor.PeekAt(4))
	}
	if !cursor.HasPrefix("<~") || cursor.HasPrefix("<~~") {
		t.Error("HasPrefix mismatch")
	}
	if cursor.Accept("<:") || cursor.Off != 0 {
		t.Error("Accept must not move on mismatch")
	}
	if !cursor.Accept("<~") || cursor.Off != 2 || cursor.Col != 2 {
		t.Fatalf("Accept moved to %d:%d", cursor.Off, cursor.Col)
	}
	if r, size := cursor.PeekRune(); r != 'é' || size != 2 {
		t.Errorf("PeekRune = %q/%d", r, size)
	}
	if r := cursor.BumpRune(); r != 'é' || !cursor.EOF() {
		t.Errorf("BumpRune = %q, eof=%v", r, cursor.EOF())
	}
	if _, size := cursor.PeekRune(); size != 0 {
		t.Error("PeekRune at EOF must report size 0")
	}
}

// TestMarkResetSpan проверяет метки, откат и построение Span
func TestMarkResetSpan(t *testing.T) {
	file := createFile("ab\ncd")
	cursor := NewCursor(file)
	cursor.Bump()
	m := cursor.Mark()
	cursor.Advance(3)

	sp := cursor.SpanFrom(m)
	if sp.Start.Off != 1 || sp.Stop.Off != 4 {
		t.Fatalf("span offsets = [%d,%d), want [1,4)", sp.Start.Off, sp.Stop.Off)
	}
	if sp.Stop.Row != 1 || sp.Stop.Col != 1 {
		t.Errorf("stop = %d:%d, want 1:1", sp.Stop.Row, sp.Stop.Col)
	}
	if got := file.Text(sp); got != "b\nc" {
		t.Errorf("span text = %q", got)
	}

	cursor.Reset(m)
	if cursor.Point() != m {
		t.Errorf("Reset: got %+v, want %+v", cursor.Point(), m)
	}
}

// TestLast проверяет позицию до последнего Bump
func TestLast(t *testing.T) {
	file := createFile("x\ny")
	cursor := NewCursor(file)
	if cursor.Last() != (source.Point{}) {
		t.Errorf("Last before any bump = %+v", cursor.Last())
	}
	cursor.Bump()
	cursor.Bump()
	want := source.Point{Off: 1, Row: 0, Col: 1}
	if cursor.Last() != want {
		t.Errorf("Last = %+v, want %+v", cursor.Last(), want)
	}
}

// TestEat проверяет условное потребление байта
func TestEat(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	if cursor.Eat('b') {
		t.Error("Eat must not consume a mismatching byte")
	}
	if !cursor.Eat('a') || cursor.Off != 1 {
		t.Error("Eat must consume a matching byte")
	}
}

// TestCursorIn проверяет ограничение курсора регионом
func TestCursorIn(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("r.dcr", []byte("one\ntwo\nthree"))
	file := fs.Get(id)

	cursor := NewCursorIn(file, fs.Rows(id, 1, 2))
	if p := cursor.Point(); p.Off != 4 || p.Row != 1 || p.Col != 0 {
		t.Fatalf("region start = %+v", p)
	}
	cursor.SkipToEnd()
	if cursor.Off != 8 || cursor.Row != 2 || cursor.Col != 0 {
		t.Errorf("region end = %d (%d:%d)", cursor.Off, cursor.Row, cursor.Col)
	}

	empty := NewCursorIn(file, fs.Rows(id, 0, 0))
	if !empty.EOF() {
		t.Error("empty region must start at EOF")
	}
}

// TestPointsAgreeWithLineIndex проверяет, что инкрементальные Row/Col совпадают с пересчётом
func TestPointsAgreeWithLineIndex(t *testing.T) {
	fs := source.NewFileSet()
	content := "ab\n\nц d\n\te"
	id := fs.AddVirtual("p.dcr", []byte(content))
	cursor := NewCursor(fs.Get(id))
	for !cursor.EOF() {
		if got, want := cursor.Point(), fs.PointAt(id, cursor.Off); got != want {
			t.Fatalf("offset %d: cursor %+v, index %+v", cursor.Off, got, want)
		}
		cursor.Bump()
	}
}

func TestAdvanceMatchesBump(t *testing.T) {
	file := createFile("ab\n\nц d\n\te")
	for n := 0; n <= len(file.Content)+1; n++ {
		stepped, jumped := NewCursor(file), NewCursor(file)
		for range n {
			stepped.Bump()
		}
		jumped.Advance(n)
		if stepped.Point() != jumped.Point() || stepped.Last() != jumped.Last() {
			t.Fatalf("Advance(%d) = %+v last %+v, Bump gives %+v last %+v",
				n, jumped.Point(), jumped.Last(), stepped.Point(), stepped.Last())
		}
	}
}
