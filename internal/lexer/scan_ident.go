package lexer

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"place/internal/diag"
	"place/internal/token"
)

// scanIdent сканирует идентификатор. `_` alone is an identifier too.
// Non-ASCII spellings are NFC-normalized so that visually equal
// identifiers compare equal.
func (lx *Lexer) scanIdent() Item {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", r))
		return tokenItem(token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)})
	}
	lx.bumpRune()
	lx.eatIdentContinue()

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if !isASCII(text) {
		text = norm.NFC.String(text)
	}
	return tokenItem(token.NewIdent(text, sp))
}

func (lx *Lexer) eatIdentContinue() {
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

// scanPrefixed handles the lexemes starting with `r` or `b` that are not
// plain identifiers: raw identifiers r#name, raw strings r"..", r#".."#,
// byte literals b'x', byte strings b"..", raw byte strings br"..".
func (lx *Lexer) scanPrefixed() (Item, bool) {
	start := lx.cursor.Mark()
	b0, b1, b2 := lx.cursor.PeekAt(0), lx.cursor.PeekAt(1), lx.cursor.PeekAt(2)
	switch {
	case b0 == 'r' && b1 == '#' && lx.identStartsAt(2):
		lx.cursor.Bump()
		lx.cursor.Bump()
		it := lx.scanIdent()
		it.Token.Text = "r#" + it.Token.Text
		it.Token.Span = lx.cursor.SpanFrom(start)
		it.Span = it.Token.Span
		return it, true
	case b0 == 'r' && (b1 == '"' || (b1 == '#' && (b2 == '#' || b2 == '"'))):
		lx.cursor.Bump()
		return lx.scanRawString(start, token.LitStr), true
	case b0 == 'b' && b1 == '\'':
		lx.cursor.Bump()
		return lx.scanChar(start, token.LitByte), true
	case b0 == 'b' && b1 == '"':
		lx.cursor.Bump()
		return lx.scanString(start, token.LitByteStr), true
	case b0 == 'b' && b1 == 'r' && (b2 == '"' || b2 == '#'):
		lx.cursor.Bump()
		lx.cursor.Bump()
		return lx.scanRawString(start, token.LitByteStr), true
	}
	return Item{}, false
}

func (lx *Lexer) identStartsAt(n int) bool {
	r, sz := lx.peekRuneAt(n)
	return sz > 0 && isIdentStartRune(r)
}

// eatSuffix consumes a literal suffix such as u8, f64 or a user suffix.
func (lx *Lexer) eatSuffix() {
	if isIdentStartByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		lx.eatIdentContinue()
	}
}
