package lexer

import (
	"errors"
	"fmt"

	"dicer/internal/diag"
	"dicer/internal/source"
)

// ErrorKind classifies lexical failures.
type ErrorKind uint8

const (
	UnterminatedLiteral ErrorKind = iota + 1
	UnknownCharacter
	InvalidEscape
	MalformedNumber
	TokenTooLong
)

// Sentinels for errors.Is against *LexError.
var (
	ErrUnterminatedLiteral = errors.New("unterminated literal")
	ErrUnknownCharacter    = errors.New("unknown character")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrMalformedNumber     = errors.New("malformed number")
	ErrTokenTooLong        = errors.New("token too long")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnterminatedLiteral:
		return ErrUnterminatedLiteral
	case UnknownCharacter:
		return ErrUnknownCharacter
	case InvalidEscape:
		return ErrInvalidEscape
	case MalformedNumber:
		return ErrMalformedNumber
	case TokenTooLong:
		return ErrTokenTooLong
	}
	return nil
}

// Code maps the kind onto its diagnostic code.
func (k ErrorKind) Code() diag.Code {
	switch k {
	case UnterminatedLiteral:
		return diag.LexUnterminatedLiteral
	case UnknownCharacter:
		return diag.LexUnknownChar
	case InvalidEscape:
		return diag.LexInvalidEscape
	case MalformedNumber:
		return diag.LexMalformedNumber
	case TokenTooLong:
		return diag.LexTokenTooLong
	}
	return diag.UnknownCode
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// LexError describes a lexeme that could not be classified.
// Span covers the offending text.
type LexError struct {
	Kind ErrorKind
	Span source.Span
	Msg  string
}

func (e *LexError) Error() string {
	start := e.Span.Start.LineCol()
	return fmt.Sprintf("%d:%d: %s", start.Line, start.Col, e.Msg)
}

// Diagnostic converts the error into the LEX diagnostic of its kind.
func (e *LexError) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Kind.Code(), e.Span, e.Msg)
}

// Is makes errors.Is(err, ErrUnknownCharacter) and friends work.
func (e *LexError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Unwrap exposes the sentinel of the kind.
func (e *LexError) Unwrap() error {
	return e.Kind.sentinel()
}
