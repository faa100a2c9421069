package lexer

import (
	"dicer/internal/diag"
	"dicer/internal/source"

	"fortio.org/safecast"
)

// DefaultMaxTokenLength is used when Options.MaxTokenLength is zero.
const DefaultMaxTokenLength = 1 << 20

type Options struct {
	// Reporter получает копию каждой ошибки. Может быть nil.
	Reporter diag.Reporter
	// SkipTrivia drops whitespace, linebreaks and comments.
	SkipTrivia bool
	// MaxTokenLength bounds a single lexeme in bytes.
	MaxTokenLength int
}

func (o Options) maxTokenLength() uint32 {
	if o.MaxTokenLength <= 0 {
		return DefaultMaxTokenLength
	}
	limit, err := safecast.Conv[uint32](o.MaxTokenLength)
	if err != nil {
		return DefaultMaxTokenLength
	}
	return limit
}

func (lx *Lexer) fail(kind ErrorKind, sp source.Span, msg string) *LexError {
	err := &LexError{Kind: kind, Span: sp, Msg: msg}
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(err.Diagnostic())
	}
	return err
}
