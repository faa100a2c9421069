package driver

import (
	"context"
	"errors"
	"fmt"

	"dicer/internal/ast"
	"dicer/internal/diag"
	"dicer/internal/lexer"
	"dicer/internal/observ"
	"dicer/internal/parser"
	"dicer/internal/source"
	"dicer/internal/tokcache"
	"dicer/internal/token"
	"dicer/internal/trace"
)

// Unit is the outcome of processing one source unit.
type Unit struct {
	FileID source.FileID
	Path   string
	Tokens []token.Token // всегда заканчивается EOF
	Errors []*lexer.LexError
	Tree   *ast.Node // только при Options.Group
	Bag    *diag.Bag
	Cached bool
	Timing observ.Report
}

// Err joins the unit's lexer errors.
func (u *Unit) Err() error {
	errs := make([]error, len(u.Errors))
	for i, err := range u.Errors {
		errs[i] = err
	}
	return errors.Join(errs...)
}

// TokenizeUnit lexes one unit of fileSet, consulting opts.Cache first.
// Lexer errors do not fail the call: they land in Unit.Errors and Unit.Bag.
//
// Under a tracer the unit opens a "tokenize" span with "cache", "lex" and
// "group" phase spans inside it; every lexical error is a token-level point.
func TokenizeUnit(ctx context.Context, fileSet *source.FileSet, id source.FileID, opts Options) (*Unit, error) {
	file, ok := fileSet.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("driver: unknown file id %d", id)
	}

	ctx, span := trace.Start(ctx, trace.ScopeUnit, "tokenize", trace.Str("path", file.Path))

	unit := &Unit{
		FileID: id,
		Path:   file.Path,
		Bag:    opts.newBag(),
	}
	timer := observ.NewTimer()

	if !unit.loadCached(ctx, file, opts, timer) {
		unit.lex(ctx, file, opts, timer)
	}
	if opts.Group {
		unit.group(ctx, timer)
	}
	unit.Bag.Sort()

	unit.Timing = timer.Report()
	if opts.Timings {
		appendTimingDiagnostic(unit.Bag, timingPayload{
			Kind:    "unit",
			Path:    file.Path,
			TotalMS: unit.Timing.TotalMS,
			Phases:  unit.Timing.Phases,
		})
	}
	span.Add(
		trace.Int("tokens", len(unit.Tokens)),
		trace.Int("errors", len(unit.Errors)),
		trace.Bool("cached", unit.Cached),
		trace.Int("dropped", unit.Bag.Dropped()),
	).End("")
	return unit, nil
}

// loadCached заполняет юнит из кэша; false означает, что нужно лексить.
func (u *Unit) loadCached(ctx context.Context, file *source.File, opts Options, timer *observ.Timer) bool {
	if opts.Cache == nil {
		return false
	}
	ctx, span := trace.Start(ctx, trace.ScopePhase, "cache")
	done := timer.Track("cache")
	entry, hit := opts.Cache.Get(file, opts.Lexer)
	if hit {
		u.Tokens, u.Errors, u.Cached = entry.Tokens, entry.Errors, true
		// из кэша ошибки не проходили через Reporter
		for _, err := range entry.Errors {
			u.Bag.Report(err.Diagnostic())
			traceLexError(ctx, err)
		}
		done("hit")
	} else {
		done("miss")
	}
	span.Add(trace.Bool("hit", hit), trace.Int("entries", opts.Cache.Len())).End("")
	return hit
}

func (u *Unit) lex(ctx context.Context, file *source.File, opts Options, timer *observ.Timer) {
	ctx, span := trace.Start(ctx, trace.ScopePhase, "lex", trace.Int("bytes", len(file.Content)))
	done := timer.Track("lex")

	lexOpts := opts.Lexer
	lexOpts.Reporter = u.Bag
	u.Tokens, u.Errors = lexUnit(lexer.New(file, lexOpts))
	for _, err := range u.Errors {
		traceLexError(ctx, err)
	}
	done(fmt.Sprintf("%d tokens", len(u.Tokens)))
	span.Add(trace.Int("tokens", len(u.Tokens)), trace.Int("errors", len(u.Errors))).End("")

	// ключ кэша от Reporter не зависит
	if err := opts.Cache.Put(file, opts.Lexer, tokcache.Entry{Tokens: u.Tokens, Errors: u.Errors}); err != nil {
		trace.Error(ctx, trace.ScopePhase, "cache-store", err)
	}
}

func (u *Unit) group(ctx context.Context, timer *observ.Timer) {
	_, span := trace.Start(ctx, trace.ScopePhase, "group")
	done := timer.Track("group")

	before := u.Bag.Len()
	tree := parser.Group(parser.NewStream(parser.NewReplay(u.Tokens)), u.Bag)
	u.Tree = &tree
	done("")

	nodes := 0
	tree.Walk(func(ast.Node, int) bool { nodes++; return true })
	span.Add(trace.Int("nodes", nodes), trace.Int("diagnostics", u.Bag.Len()-before)).End("")
}

// traceLexError пишет одну ошибку лексера как точку уровня token.
func traceLexError(ctx context.Context, err *lexer.LexError) {
	trace.Point(ctx, trace.ScopeToken, "lex-error",
		trace.Str("kind", err.Kind.String()),
		trace.Str("code", err.Kind.Code().ID()),
		trace.Str("at", fmt.Sprintf("%d:%d", err.Span.Start.Row+1, err.Span.Start.Col+1)),
	)
}

// lexUnit собирает все токены до EOF; ошибочные токены остаются в потоке.
func lexUnit(lx *lexer.Lexer) ([]token.Token, []*lexer.LexError) {
	var (
		toks []token.Token
		errs []*lexer.LexError
	)
	for {
		tok, err := lx.Next()
		var lerr *lexer.LexError
		if errors.As(err, &lerr) {
			errs = append(errs, lerr)
		}
		toks = append(toks, tok)
		if tok.Kind.IsEOF() {
			return toks, errs
		}
	}
}
