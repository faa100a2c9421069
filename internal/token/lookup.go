package token

// symbols maps operator, delimiter and trigger lexemes to kinds.
// Двухбайтовые лексемы сканер пробует раньше однобайтовых.
var symbols = map[string]Kind{
	",":  Sep,
	";":  Term,
	"(":  LParen,
	")":  RParen,
	"[":  LBracket,
	"]":  RBracket,
	"{":  LBrace,
	"}":  RBrace,
	"<:": LRuleDelim,
	":>": RRuleDelim,
	"~":  Not,
	"=":  Equal,
	"+":  Plus,
	"-":  Minus,
	"/":  Slash,
	">":  GreaterThan,
	"<":  SmallerThan,
	".":  Period,
	":":  Colon,
	"*":  Star,
	"^":  Top,
	"@":  At,
	"?":  QMark,
	"!":  Exclaim,
	"#":  Hash,
	"$":  Peso,
	"&":  Amp,
	"%":  Perc,
}

// words maps identifier-shaped lexemes that are operators.
var words = map[string]Kind{
	"x": XOp,
	"_": Underscore,
}

type escape struct {
	kind    Kind
	decoded byte
}

// escapes maps the byte after the escape introducer to its kind and value.
var escapes = map[byte]escape{
	'\\': {Esc, '\\'},
	'n':  {Newline, '\n'},
	't':  {Tab, '\t'},
	's':  {Space, ' '},
	'a':  {Alert, 0x07},
	'd':  {Del, 0x7F},
}

// LookupSymbol returns the kind of an operator, delimiter or trigger lexeme.
func LookupSymbol(lexeme string) (Kind, bool) {
	k, ok := symbols[lexeme]
	return k, ok
}

// LookupWord returns the operator kind of an identifier-shaped lexeme.
// Регистрозависимо: "X" остаётся идентификатором.
func LookupWord(word string) (Kind, bool) {
	k, ok := words[word]
	return k, ok
}

// LookupEscape classifies the byte following '\' inside a non-raw string.
func LookupEscape(b byte) (Kind, byte, bool) {
	e, ok := escapes[b]
	return e.kind, e.decoded, ok
}

// IsSymbolStart reports whether b can begin a symbol lexeme.
func IsSymbolStart(b byte) bool {
	_, ok := symbols[string(b)]
	return ok
}
