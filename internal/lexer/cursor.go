package lexer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"dicer/internal/source"

	"fortio.org/safecast"
)

// Cursor walks the bytes of one unit and keeps Row/Col in step with Off,
// so every Point it hands out agrees with the unit's line index.
type Cursor struct {
	File *source.File
	Off  uint32
	Row  uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off.
	Limit uint32

	last source.Point // позиция до последнего шага
}

func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("unit %s is too large: %w", f.Path, err))
	}
	return Cursor{File: f, Limit: limit}
}

// NewCursorIn creates a cursor restricted to the span of f.
// Positions stay relative to the whole file.
func NewCursorIn(f *source.File, sp source.Span) Cursor {
	c := NewCursor(f)
	c.Limit = min(c.Limit, sp.Stop.Off)
	c.Reset(sp.Start)
	return c
}

// Rest returns the unread bytes up to Limit.
func (c *Cursor) Rest() []byte {
	if c.EOF() {
		return nil
	}
	return c.File.Content[c.Off:c.Limit]
}

func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// Peek returns the current byte, or 0 at the end.
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt returns the byte k positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(k int) byte {
	if rest := c.Rest(); k < len(rest) {
		return rest[k]
	}
	return 0
}

// PeekRune декодирует руну под курсором; size 0 означает конец.
func (c *Cursor) PeekRune() (r rune, size int) {
	rest := c.Rest()
	switch {
	case len(rest) == 0:
		return utf8.RuneError, 0
	case rest[0] < utf8.RuneSelf:
		return rune(rest[0]), 1
	}
	return utf8.DecodeRune(rest)
}

// HasPrefix reports whether the unread bytes start with s.
func (c *Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(string(c.Rest()), s)
}

// Accept consumes s if the unread bytes start with it.
func (c *Cursor) Accept(s string) bool {
	if !c.HasPrefix(s) {
		return false
	}
	c.Advance(len(s))
	return true
}

// Eat consumes b if it is the next byte.
func (c *Cursor) Eat(b byte) bool {
	if c.Peek() != b || c.EOF() {
		return false
	}
	c.Bump()
	return true
}

// Bump consumes one byte and returns it; 0 at the end.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	c.last = c.Point()
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Row++
		c.Col = 0
	} else {
		c.Col++
	}
	return b
}

// BumpRune consumes the whole rune under the cursor.
func (c *Cursor) BumpRune() rune {
	r, size := c.PeekRune()
	c.Advance(size)
	return r
}

// Advance consumes up to n bytes, stopping at Limit.
func (c *Cursor) Advance(n int) {
	rest := c.Rest()
	n = min(n, len(rest))
	if n == 0 {
		return
	}
	// всё, кроме последнего байта, одним куском; последний через Bump ради last
	chunk := rest[:n-1]
	if nl := bytes.Count(chunk, []byte{'\n'}); nl > 0 {
		c.Row += uint32(nl)
		c.Col = uint32(len(chunk) - 1 - bytes.LastIndexByte(chunk, '\n'))
	} else {
		c.Col += uint32(len(chunk))
	}
	c.Off += uint32(len(chunk))
	c.Bump()
}

// SkipToEnd moves the cursor to Limit.
func (c *Cursor) SkipToEnd() { c.Advance(len(c.Rest())) }

func (c *Cursor) Point() source.Point {
	return source.Point{Off: c.Off, Row: c.Row, Col: c.Col}
}

// Last returns the position before the most recent step.
// До первого шага совпадает с началом.
func (c *Cursor) Last() source.Point { return c.last }

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark = source.Point

func (c *Cursor) Mark() Mark { return c.Point() }

// SpanFrom covers the bytes read since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: m, Stop: c.Point()}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off, c.Row, c.Col = m.Off, m.Row, m.Col
	c.last = m
}
