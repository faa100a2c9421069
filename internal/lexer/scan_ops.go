package lexer

import (
	"fmt"

	"dicer/internal/token"
)

// Жадность: сначала 2-символьные (<: и :>), затем 1-символьные из token.LookupSymbol.
// Комментарии (<~, <~~) разбираются раньше, см. scanComment.
func (lx *Lexer) scanOperator() (token.Token, error) {
	start := lx.cursor.Mark()

	switch {
	case lx.cursor.Accept("<:"):
		return lx.emit(token.LRuleDelim, start), nil
	case lx.cursor.Accept(":>"):
		return lx.emit(token.RRuleDelim, start), nil
	}

	ch := lx.cursor.Bump()
	if k, ok := token.LookupSymbol(string(ch)); ok {
		return lx.emit(k, start), nil
	}

	// неизвестный символ
	sp := lx.cursor.SpanFrom(start)
	return lx.invalid(sp), lx.fail(UnknownCharacter, sp, fmt.Sprintf("unknown character %q", ch))
}
