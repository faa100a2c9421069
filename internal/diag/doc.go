// Package diag is the diagnostic model shared by the lexer, the grouping
// consumer, the fix engine and the configuration layer.
//
// A Diagnostic carries a Severity, a Code with a stable printed form
// (LEX1001, SYN2002, CFG4001, OBS6001), a message, the primary source.Span,
// and optional notes and fixes. Fixes are plain text edits; internal/fix
// applies them.
//
// Producers depend on Reporter only:
//
//	r.Report(diag.Errorf(diag.SynUnclosedDelimiter, open.Span, "unclosed %q", open.Text).
//		WithNote(eof.Span, "input ends here"))
//
// *Bag is the usual Reporter. Rendering lives in internal/diagfmt.
package diag
