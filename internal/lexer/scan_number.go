package lexer

import (
	"unicode/utf8"

	"dicer/internal/token"
)

// Поддержка: 0, 123, 12.5. Точка без цифры после неё не поглощается ("12." → Integer, Period).
// Число, за которым сразу идут символы идентификатора ("12ab", "1.5x"): MalformedNumber на весь хвост.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Mark()
	kind := token.Integer

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.Float
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if lx.atIdentContinue() {
		for lx.atIdentContinue() {
			lx.cursor.BumpRune()
		}
		sp := lx.cursor.SpanFrom(start)
		return lx.invalid(sp), lx.fail(MalformedNumber, sp, "malformed number "+lx.text(sp))
	}

	return lx.emit(kind, start), nil
}

func (lx *Lexer) atIdentContinue() bool {
	if lx.cursor.EOF() {
		return false
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return isIdentContinueByte(b)
	}
	r, _ := lx.cursor.PeekRune()
	return isIdentContinueRune(r)
}
