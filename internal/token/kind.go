package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks text that could not be lexed.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// --- base types ---
	Float     // 12.5
	Integer   // 12
	RawString // `raw`
	String    // "str", 'str', """str""", '''str'''

	// --- solo delimiters ---
	Sep  // ,
	Term // ;

	// --- unreal pair delimiters ---
	SQuote       // '
	DQuote       // "
	TripleSQuote // '''
	TripleDQuote // """

	// --- real pair delimiters ---
	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	LBrace     // {
	RBrace     // }
	LRuleDelim // <:
	RRuleDelim // :>

	// --- strong connectives ---
	Not         // ~
	Equal       // =
	Plus        // +
	Minus       // -
	Slash       // /
	XOp         // x
	GreaterThan // >
	SmallerThan // <

	// --- weak connectives ---
	Period     // .
	Colon      // :
	Star       // *
	Top        // ^
	Underscore // _

	// --- triggers ---
	At      // @
	QMark   // ?
	Exclaim // !
	Hash    // #
	Peso    // $
	Amp     // &
	Perc    // %

	// --- escape sequences ---
	Esc     // \\
	Newline // \n
	Tab     // \t
	Space   // \s
	Alert   // \a
	Del     // \d

	// --- other ---
	Comment    // <~ ... / <~~ ... ~~>
	Identifier // name
	Whitespace // ' ', '\t', '\r'
	Linebreak  // '\n'

	numKinds
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Float:        "Float",
	Integer:      "Integer",
	RawString:    "RawString",
	String:       "String",
	Sep:          "Sep",
	Term:         "Term",
	SQuote:       "SQuote",
	DQuote:       "DQuote",
	TripleSQuote: "TripleSQuote",
	TripleDQuote: "TripleDQuote",
	LParen:       "LParen",
	RParen:       "RParen",
	LBracket:     "LBracket",
	RBracket:     "RBracket",
	LBrace:       "LBrace",
	RBrace:       "RBrace",
	LRuleDelim:   "LRuleDelim",
	RRuleDelim:   "RRuleDelim",
	Not:          "Not",
	Equal:        "Equal",
	Plus:         "Plus",
	Minus:        "Minus",
	Slash:        "Slash",
	XOp:          "XOp",
	GreaterThan:  "GreaterThan",
	SmallerThan:  "SmallerThan",
	Period:       "Period",
	Colon:        "Colon",
	Star:         "Star",
	Top:          "Top",
	Underscore:   "Underscore",
	At:           "At",
	QMark:        "QMark",
	Exclaim:      "Exclaim",
	Hash:         "Hash",
	Peso:         "Peso",
	Amp:          "Amp",
	Perc:         "Perc",
	Esc:          "Esc",
	Newline:      "Newline",
	Tab:          "Tab",
	Space:        "Space",
	Alert:        "Alert",
	Del:          "Del",
	Comment:      "Comment",
	Identifier:   "Identifier",
	Whitespace:   "Whitespace",
	Linebreak:    "Linebreak",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Kinds returns every defined kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Invalid; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// IsEOF reports whether k is the end-of-input marker.
func (k Kind) IsEOF() bool { return k == EOF }

// Counterpart returns the matching delimiter of a pair kind.
func (k Kind) Counterpart() (Kind, bool) {
	c, ok := counterparts[k]
	return c, ok
}

// IsOpen reports whether k opens a real pair.
func (k Kind) IsOpen() bool {
	switch k {
	case LParen, LBracket, LBrace, LRuleDelim:
		return true
	}
	return false
}

var counterparts = map[Kind]Kind{
	LParen:       RParen,
	RParen:       LParen,
	LBracket:     RBracket,
	RBracket:     LBracket,
	LBrace:       RBrace,
	RBrace:       LBrace,
	LRuleDelim:   RRuleDelim,
	RRuleDelim:   LRuleDelim,
	SQuote:       SQuote,
	DQuote:       DQuote,
	TripleSQuote: TripleSQuote,
	TripleDQuote: TripleDQuote,
}
