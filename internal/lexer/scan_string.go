package lexer

import (
	"fmt"

	"dicer/internal/source"
	"dicer/internal/token"
)

// scanString разбирает строки в одинарных, двойных и утроенных кавычках.
// Одинарные варианты не пересекают перевод строки, тройные могут.
// Value: содержимое без кавычек с раскрытыми escape-последовательностями.
func (lx *Lexer) scanString() (token.Token, error) {
	start := lx.cursor.Mark()
	q := lx.cursor.Peek()

	quotes := string([]byte{q, q, q})
	triple := lx.cursor.Accept(quotes)
	if !triple {
		lx.cursor.Bump() // opening quote
	}

	var (
		value  []byte
		badEsc source.Span
		badChr rune
		hasBad bool
	)
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			return lx.invalid(sp), lx.fail(UnterminatedLiteral, sp, "unterminated string literal")
		}
		if triple {
			if lx.cursor.Accept(quotes) {
				break
			}
		} else if lx.cursor.Eat(q) {
			break
		}

		b := lx.cursor.Peek()
		if b == '\n' && !triple {
			// перевод строки не входит в ошибочный токен
			sp := lx.cursor.SpanFrom(start)
			return lx.invalid(sp), lx.fail(UnterminatedLiteral, sp, "newline in string literal")
		}
		if b != '\\' {
			value = append(value, lx.cursor.Bump())
			continue
		}

		escStart := lx.cursor.Mark()
		lx.cursor.Bump() // '\'
		if lx.cursor.EOF() {
			continue
		}
		e := lx.cursor.Peek()
		if _, decoded, ok := token.LookupEscape(e); ok {
			lx.cursor.Bump()
			value = append(value, decoded)
			continue
		}
		// неизвестный escape, включая `\<LF>`: перевод строки экранирован,
		// поэтому литерал продолжается до закрывающей кавычки
		r := lx.cursor.BumpRune()
		if !hasBad {
			hasBad = true
			badChr = r
			badEsc = lx.cursor.SpanFrom(escStart)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if hasBad {
		return lx.invalid(sp), lx.fail(InvalidEscape, badEsc, fmt.Sprintf("invalid escape sequence: %q", badChr))
	}
	return token.New(token.String, sp, lx.text(sp), string(value)), nil
}

// scanRawString разбирает `...`: содержимое берётся как есть, переводы строк допустимы.
func (lx *Lexer) scanRawString() (token.Token, error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '`'
	body := lx.cursor.Off
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '`' {
			end := lx.cursor.Off
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.New(token.RawString, sp, lx.text(sp), string(lx.file.Content[body:end])), nil
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return lx.invalid(sp), lx.fail(UnterminatedLiteral, sp, "unterminated raw string literal")
}
