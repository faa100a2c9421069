package parser

import (
	"dicer/internal/source"
	"dicer/internal/token"
)

// Replay feeds an already lexed token slice to a Stream, e.g. a cached one.
// Ошибки лексера в срезе не хранятся, поэтому Next всегда возвращает nil error.
type Replay struct {
	toks []token.Token
	pos  int
}

// NewReplay wraps toks. The slice should end with EOF; if it does not, an
// empty EOF is synthesized after the last token.
func NewReplay(toks []token.Token) *Replay {
	return &Replay{toks: toks}
}

func (r *Replay) Next() (token.Token, error) {
	if r.pos >= len(r.toks) {
		return r.eof(), nil
	}
	tok := r.toks[r.pos]
	if !tok.Kind.IsEOF() {
		r.pos++
	}
	return tok, nil
}

// Pos returns the start of the next token.
func (r *Replay) Pos() source.Point {
	if r.pos < len(r.toks) {
		return r.toks[r.pos].Span.Start
	}
	return r.eof().Span.Start
}

func (r *Replay) eof() token.Token {
	if len(r.toks) == 0 {
		return token.New(token.EOF, source.Span{}, "", "")
	}
	last := r.toks[len(r.toks)-1].Span
	sp := source.Span{File: last.File, Start: last.Stop, Stop: last.Stop}
	return token.New(token.EOF, sp, "", "")
}
