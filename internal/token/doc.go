// Package token defines lexical token kinds, token groups and the classifier
// tables of the Dicer front end.
// Invariants:
//   - Token.Text is exactly the source slice covered by Token.Span.
//   - Token.Groups is always GroupsOf(Token.Kind); tokens are built via New.
//   - Quote kinds (SQuote, DQuote, TripleSQuote, TripleDQuote) are consumed
//     while scanning literals and never appear in the token stream.
//   - Escape kinds describe escapes inside non-raw strings; they are
//     classifier entries only and never appear in the token stream.
//   - Whitespace, Linebreak and Comment are emitted (GroupIgnorable) so that
//     concatenating all token texts reconstructs the source.
package token
