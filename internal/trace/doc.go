// Package trace records what the tokenization pipeline does, as structured events.
//
// Events are nested by scope: a batch (driver.TokenizeAll) holds units, a
// unit holds the lex, cache and group phases, and a phase may emit
// token-level points such as one event per lexical error. The configured
// Level names the finest scope that is recorded:
//
//	off    nothing
//	error  only Error events
//	unit   batch and unit spans
//	phase  plus phase spans and phase points
//	token  plus token-level points
//
// The tracer travels in a context.Context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	ctx, sp := trace.Start(ctx, trace.ScopePhase, "lex")
//	trace.Point(ctx, trace.ScopeToken, "lex-error", trace.Str("kind", "InvalidEscape"))
//	sp.Add(trace.Int("tokens", n)).End("")
//
// A nil *Span is valid and ignores every call, so disabled tracing costs
// one level check per event.
package trace
