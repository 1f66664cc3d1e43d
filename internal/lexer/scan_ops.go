package lexer

import (
	"fmt"
	"strings"

	"place/internal/diag"
	"place/internal/token"
)

// punctChars is the set of single-character punctuation. Multi-character
// operators are sequences of Joint punctuation.
const punctChars = "~!@#$%^&*-=+|;:,<.>/?"

func isPunctByte(b byte) bool {
	return b != 0 && strings.IndexByte(punctChars, b) >= 0
}

// scanPunctOrDelim scans a bracket or one punctuation character. A Punct is
// Joint when another punctuation character (or a quote) follows directly.
func (lx *Lexer) scanPunctOrDelim() Item {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)

	if d, ok := token.DelimiterFor(ch); ok {
		kind := ItemOpen
		if ch == ')' || ch == ']' || ch == '}' {
			kind = ItemClose
		}
		return Item{Kind: kind, Delim: d, Span: sp}
	}

	if isPunctByte(ch) {
		spacing := token.Alone
		if next := lx.cursor.Peek(); isPunctByte(next) || next == '\'' {
			spacing = token.Joint
		}
		return tokenItem(token.NewPunct(rune(ch), spacing, sp))
	}

	// неизвестный символ
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", rune(ch)))
	return tokenItem(token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)})
}
