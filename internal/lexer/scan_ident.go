package lexer

import (
	"fmt"
	"unicode/utf8"

	"dicer/internal/token"

	"golang.org/x/text/unicode/norm"
)

// scanIdent сканирует идентификатор и проверяет через LookupWord ("x", "_").
// Token.Text хранит ровно исходный срез, Token.Value хранит NFC форму.
func (lx *Lexer) scanIdent() (token.Token, error) {
	start := lx.cursor.Mark()

	r, sz := lx.cursor.PeekRune()
	if sz == 0 {
		return lx.invalid(lx.cursor.SpanFrom(start)), nil
	}
	if !isIdentStartRune(r) {
		// не буква: символ целиком (все байты руны) считается ошибкой
		lx.cursor.BumpRune()
		sp := lx.cursor.SpanFrom(start)
		return lx.invalid(sp), lx.fail(UnknownCharacter, sp, fmt.Sprintf("unknown character %q", r))
	}
	lx.cursor.BumpRune()
	for {
		b := lx.cursor.Peek()
		if b < utf8.RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.cursor.PeekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.cursor.BumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if k, ok := token.LookupWord(text); ok {
		return token.New(k, sp, text, text), nil
	}
	return token.New(token.Identifier, sp, text, norm.NFC.String(text)), nil
}
