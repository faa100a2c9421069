package lexer

import (
	"fmt"
	"unicode/utf8"

	"dicer/internal/source"
	"dicer/internal/token"
)

type lookahead struct {
	tok token.Token
	err error
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *lookahead // 1 элементный буфер для токена
}

// New creates a lexer over the whole file starting at Point{0,0,0}.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// NewRegion creates a lexer that scans only sp.
// Token positions stay relative to the whole file.
func NewRegion(file *source.File, sp source.Span, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursorIn(file, sp),
		opts:   opts,
	}
}

// Next возвращает следующий токен.
// При ошибке возвращается Invalid токен и *LexError, курсор уже за ошибочным текстом.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.look != nil {
		l := *lx.look
		lx.look = nil
		return l.tok, l.err
	}

	for {
		tok, err := lx.scan()
		if err == nil && lx.opts.SkipTrivia && tok.IsIgnorable() {
			continue
		}
		return tok, err
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() (token.Token, error) {
	if lx.look == nil {
		tok, err := lx.Next()
		lx.look = &lookahead{tok: tok, err: err}
	}
	return lx.look.tok, lx.look.err
}

// Pos returns the position of the next unread byte.
func (lx *Lexer) Pos() source.Point {
	return lx.cursor.Point()
}

func (lx *Lexer) scan() (token.Token, error) {
	if lx.cursor.EOF() {
		return token.New(token.EOF, lx.emptySpan(), "", ""), nil
	}

	start := lx.cursor.Mark()
	tok, err := lx.scanToken()
	if err != nil {
		return tok, err
	}
	if tok.Span.Len() > lx.opts.maxTokenLength() {
		// дальше не сканируем: остаток файла считается частью ошибки
		lx.cursor.SkipToEnd()
		sp := lx.cursor.SpanFrom(start)
		return lx.invalid(sp), lx.fail(TokenTooLong, sp,
			fmt.Sprintf("token exceeds %d bytes", lx.opts.maxTokenLength()))
	}
	return tok, nil
}

func (lx *Lexer) scanToken() (token.Token, error) {
	ch := lx.cursor.Peek()

	switch {
	case ch == ' ' || ch == '\t' || ch == '\r':
		return lx.scanWhitespace(), nil

	case ch == '\n':
		return lx.scanLinebreaks(), nil

	case ch == '<' && lx.isCommentStart():
		return lx.scanComment()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '\'' || ch == '"':
		return lx.scanString()

	case ch == '`':
		return lx.scanRawString()

	case isIdentStartByte(ch) || ch >= utf8.RuneSelf:
		// Unicode разбирается внутри
		return lx.scanIdent()

	default:
		return lx.scanOperator()
	}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	return token.New(kind, sp, text, text)
}

func (lx *Lexer) invalid(sp source.Span) token.Token {
	return token.New(token.Invalid, sp, lx.text(sp), "")
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start.Off:sp.Stop.Off])
}

func (lx *Lexer) emptySpan() source.Span {
	p := lx.cursor.Point()
	return source.Span{File: lx.file.ID, Start: p, Stop: p}
}
