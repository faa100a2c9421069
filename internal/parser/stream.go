package parser

import (
	"errors"

	"dicer/internal/source"
	"dicer/internal/token"
)

// Source yields raw tokens; *lexer.Lexer and Replay implement it.
type Source interface {
	Next() (token.Token, error)
	Pos() source.Point
}

// Stream: поток значимых токенов поверх лексера.
// Ignorable и Invalid токены пропускаются, ошибки лексера копятся в Err.
type Stream struct {
	lx    Source
	start source.Point
	look  *token.Token
	last  token.Token
	errs  []error
}

// NewStream wraps lx. Lexer errors also reach lx's own Reporter, if any.
func NewStream(lx Source) *Stream {
	return &Stream{lx: lx, start: lx.Pos()}
}

// Peek возвращает следующий значимый токен, не потребляя его.
func (s *Stream) Peek() token.Token {
	if s.look == nil {
		tok := s.pull()
		s.look = &tok
	}
	return *s.look
}

// Next съедает следующий значимый токен.
func (s *Stream) Next() token.Token {
	tok := s.Peek()
	s.look = nil
	if !tok.Kind.IsEOF() {
		s.last = tok
	}
	return tok
}

// Last returns the most recently consumed significant token.
func (s *Stream) Last() token.Token {
	return s.last
}

// Start returns the position the stream began at.
func (s *Stream) Start() source.Point {
	return s.start
}

// Err joins every lexer error seen so far.
func (s *Stream) Err() error {
	return errors.Join(s.errs...)
}

func (s *Stream) pull() token.Token {
	for {
		tok, err := s.lx.Next()
		if err != nil {
			s.errs = append(s.errs, err)
			continue
		}
		if tok.IsIgnorable() || tok.Kind == token.Invalid {
			continue
		}
		return tok
	}
}
