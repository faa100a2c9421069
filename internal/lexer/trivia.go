package lexer

import (
	"dicer/internal/token"
)

// scanWhitespace коалесцирует ' ', '\t' и '\r' в один Whitespace.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if b != ' ' && b != '\t' && b != '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// scanLinebreaks коалесцирует подряд идущие '\n' в один Linebreak.
func (lx *Lexer) scanLinebreaks() token.Token {
	start := lx.cursor.Mark()
	for lx.cursor.Peek() == '\n' {
		lx.cursor.Bump()
	}
	return lx.emit(token.Linebreak, start)
}

func (lx *Lexer) isCommentStart() bool {
	return lx.cursor.HasPrefix("<~")
}

// scanComment разбирает <~ ... до конца строки и <~~ ... ~~>.
// Перевод строки в строчный комментарий не входит.
// Value: текст без маркеров.
func (lx *Lexer) scanComment() (token.Token, error) {
	start := lx.cursor.Mark()

	if lx.cursor.Accept("<~~") {
		body := lx.cursor.Off
		for !lx.cursor.EOF() {
			end := lx.cursor.Off
			if lx.cursor.Accept("~~>") {
				sp := lx.cursor.SpanFrom(start)
				return token.New(token.Comment, sp, lx.text(sp), string(lx.file.Content[body:end])), nil
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return lx.invalid(sp), lx.fail(UnterminatedLiteral, sp, "unterminated block comment")
	}

	lx.cursor.Advance(2) // "<~"
	body := lx.cursor.Off
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.New(token.Comment, sp, lx.text(sp), string(lx.file.Content[body:sp.Stop.Off])), nil
}
