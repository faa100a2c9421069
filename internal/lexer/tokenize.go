package lexer

import (
	"errors"

	"dicer/internal/source"
	"dicer/internal/token"
)

// Tokenize collects tokens up to and including EOF.
// It stops at the first error and returns the tokens produced before it.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok, err := lx.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind.IsEOF() {
			return toks, nil
		}
	}
}

// TokenizeAll keeps going after errors. Invalid tokens stay in the result
// so the stream still covers every byte; errors are joined.
func TokenizeAll(file *source.File, opts Options) ([]token.Token, error) {
	return Drain(New(file, opts))
}

// Drain reads lx until EOF with the same policy as TokenizeAll.
func Drain(lx *Lexer) ([]token.Token, error) {
	var (
		toks []token.Token
		errs []error
	)
	for {
		tok, err := lx.Next()
		if err != nil {
			errs = append(errs, err)
		}
		toks = append(toks, tok)
		if tok.Kind.IsEOF() {
			return toks, errors.Join(errs...)
		}
	}
}
