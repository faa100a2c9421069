package token

import (
	"dicer/internal/source"
)

// Token is a single classified lexeme with its location.
type Token struct {
	Kind   Kind
	Groups GroupSet
	Span   source.Span
	Text   string // exact source slice
	Value  string // decoded payload: literal content, normalized identifier
}

// New builds a token and derives its groups from the kind.
func New(kind Kind, span source.Span, text, value string) Token {
	return Token{
		Kind:   kind,
		Groups: GroupsOf(kind),
		Span:   span,
		Text:   text,
		Value:  value,
	}
}

// Is reports whether the token belongs to group g.
func (t Token) Is(g Group) bool { return t.Groups.Has(g) }

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool { return t.Is(GroupBaseType) }

// IsIgnorable reports whether a parser may skip the token.
func (t Token) IsIgnorable() bool { return t.Is(GroupIgnorable) }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Identifier }

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + "(" + t.Text + ")"
}
