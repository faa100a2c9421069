package source

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// offset converts a length or index into the uint32 used by spans.
// Units larger than 4 GiB are not supported.
func offset(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("source offset %d: %w", n, err))
	}
	return v
}

func newlines(content []byte) []uint32 {
	idx := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, offset(i))
		}
	}
	return idx
}

// Point maps a byte offset to its 0-based row and column.
// A '\n' belongs to the row it terminates.
func (f *File) Point(off uint32) Point {
	// номер строки = число '\n' строго до off
	row, _ := slices.BinarySearch(f.LineIdx, off)
	if row == 0 {
		return Point{Off: off, Col: off}
	}
	return Point{Off: off, Row: offset(row), Col: off - f.rowStart(uint32(row))}
}

// rowStart returns the offset of the first byte of row (0-based);
// rows past the last one start at the end of content.
func (f *File) rowStart(row uint32) uint32 {
	switch {
	case row == 0:
		return 0
	case int(row) <= len(f.LineIdx):
		return f.LineIdx[row-1] + 1
	}
	return offset(len(f.Content))
}

// Line возвращает строку с номером n (1-based) без '\n'; несуществующая строка пустая.
func (f *File) Line(n uint32) string {
	if n == 0 || int(n-1) > len(f.LineIdx) {
		return ""
	}
	start := f.rowStart(n - 1)
	stop := offset(len(f.Content))
	if int(n-1) < len(f.LineIdx) {
		stop = f.LineIdx[n-1]
	}
	return string(f.Content[start:stop])
}

// Text returns the source text covered by span, or "" if the span belongs to another unit.
func (f *File) Text(span Span) string {
	if span.File != f.ID {
		return ""
	}
	return span.Text(f.Content)
}
