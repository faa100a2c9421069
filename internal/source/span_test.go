package source

import (
	"testing"
)

func pt(off, row, col uint32) Point { return Point{Off: off, Row: row, Col: col} }

func TestPoint_Compare(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want int
	}{
		{"same", pt(3, 0, 3), pt(3, 0, 3), 0},
		{"earlier column", pt(1, 0, 1), pt(2, 0, 2), -1},
		{"later row wins over column", pt(10, 1, 0), pt(8, 0, 8), 1},
		{"earlier row", pt(0, 0, 9), pt(12, 2, 0), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := tt.a.Less(tt.b); got != (tt.want < 0) {
				t.Errorf("Less() = %v", got)
			}
		})
	}
}

func TestPoint_LineCol(t *testing.T) {
	if got := pt(5, 1, 2).LineCol(); got != (LineCol{Line: 2, Col: 3}) {
		t.Errorf("LineCol() = %+v", got)
	}
}

func TestSpan_Basics(t *testing.T) {
	sp := Span{File: 1, Start: pt(2, 0, 2), Stop: pt(6, 1, 1)}
	if sp.Empty() {
		t.Error("span must not be empty")
	}
	if sp.Len() != 4 {
		t.Errorf("Len() = %d, want 4", sp.Len())
	}
	if !sp.Valid() {
		t.Error("span must be valid")
	}
	if got := sp.String(); got != "1:0:2-1:1" {
		t.Errorf("String() = %q", got)
	}
	if got := sp.Text([]byte("abcd\nefg")); got != "cd\ne" {
		t.Errorf("Text() = %q", got)
	}
	if got := sp.Text([]byte("ab")); got != "" {
		t.Errorf("Text() out of range = %q", got)
	}

	inverted := Span{Start: pt(4, 0, 4), Stop: pt(1, 0, 1)}
	if inverted.Valid() {
		t.Error("inverted span must be invalid")
	}
}

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			a:        Span{File: 1, Start: pt(0, 0, 0), Stop: pt(2, 0, 2)},
			b:        Span{File: 1, Start: pt(5, 1, 0), Stop: pt(7, 1, 2)},
			expected: Span{File: 1, Start: pt(0, 0, 0), Stop: pt(7, 1, 2)},
		},
		{
			name:     "nested span",
			a:        Span{File: 1, Start: pt(0, 0, 0), Stop: pt(9, 0, 9)},
			b:        Span{File: 1, Start: pt(3, 0, 3), Stop: pt(4, 0, 4)},
			expected: Span{File: 1, Start: pt(0, 0, 0), Stop: pt(9, 0, 9)},
		},
		{
			name:     "different files are not merged",
			a:        Span{File: 1, Start: pt(0, 0, 0), Stop: pt(2, 0, 2)},
			b:        Span{File: 2, Start: pt(5, 0, 5), Stop: pt(8, 0, 8)},
			expected: Span{File: 1, Start: pt(0, 0, 0), Stop: pt(2, 0, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_ContainsPrecedes(t *testing.T) {
	outer := Span{File: 1, Start: pt(0, 0, 0), Stop: pt(10, 0, 10)}
	left := Span{File: 1, Start: pt(1, 0, 1), Stop: pt(3, 0, 3)}
	right := Span{File: 1, Start: pt(3, 0, 3), Stop: pt(10, 0, 10)}
	foreign := Span{File: 2, Start: pt(1, 0, 1), Stop: pt(3, 0, 3)}

	if !outer.Contains(left) || !outer.Contains(right) || !outer.Contains(outer) {
		t.Error("outer must contain its parts and itself")
	}
	if outer.Contains(foreign) {
		t.Error("span from another file must not be contained")
	}
	if !left.Precedes(right) {
		t.Error("touching spans: left must precede right")
	}
	if right.Precedes(left) {
		t.Error("right must not precede left")
	}
	if left.Precedes(foreign) {
		t.Error("spans of different files are unordered")
	}
}
