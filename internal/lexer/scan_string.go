package lexer

import (
	"place/internal/diag"
	"place/internal/token"
)

// scanString scans "..." (and b"..." once the prefix is consumed).
// Escapes are only skipped here; literal.Unescape validates them.
// Strings may span lines.
func (lx *Lexer) scanString(start Mark, kind token.LitKind) Item {
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '"':
			lx.eatSuffix()
			return lx.literalItem(start, kind)
		case '\\':
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return tokenItem(token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)})
}

// scanRawString scans #*"..."#* after the r/br prefix.
func (lx *Lexer) scanRawString(start Mark, kind token.LitKind) Item {
	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	if !lx.cursor.Eat('"') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "expected '\"' after raw string prefix")
		return tokenItem(token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)})
	}
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		n := 0
		for n < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			n++
		}
		if n == hashes {
			lx.eatSuffix()
			return lx.literalItem(start, kind)
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated raw string literal")
	return tokenItem(token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)})
}

// scanQuote decides between a char literal 'x' and a lifetime 'name.
// A lifetime quote is emitted as Joint punctuation so that it prints
// glued to the identifier scanned next.
func (lx *Lexer) scanQuote() Item {
	start := lx.cursor.Mark()
	if lx.cursor.PeekAt(1) == '\\' {
		return lx.scanChar(start, token.LitChar)
	}
	r, sz := lx.peekRuneAt(1)
	if sz > 0 && r != '\'' && lx.cursor.PeekAt(1+sz) == '\'' {
		return lx.scanChar(start, token.LitChar)
	}
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	if sz > 0 && isIdentStartRune(r) {
		return tokenItem(token.NewPunct('\'', token.Joint, sp))
	}
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return tokenItem(token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)})
}

// scanChar scans '...' with the cursor on the opening quote.
func (lx *Lexer) scanChar(start Mark, kind token.LitKind) Item {
	lx.cursor.Bump() // opening '\''
	if lx.cursor.Eat('\\') {
		lx.bumpRune()
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if b == '\'' || b == '\n' {
				break
			}
			lx.cursor.Bump()
		}
	} else {
		lx.bumpRune()
	}
	if !lx.cursor.Eat('\'') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return tokenItem(token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)})
	}
	lx.eatSuffix()
	return lx.literalItem(start, kind)
}

func (lx *Lexer) literalItem(start Mark, kind token.LitKind) Item {
	sp := lx.cursor.SpanFrom(start)
	return tokenItem(token.NewLiteral(kind, lx.text(sp), sp))
}
