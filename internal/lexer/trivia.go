package lexer

import (
	"unicode"

	"place/internal/diag"
	"place/internal/literal"
	"place/internal/source"
	"place/internal/token"
)

// skipTrivia пропускает пробелы и комментарии перед значимым токеном.
// Returns true when a doc comment was lowered into lx.pending.
//   - whitespace, including Unicode spaces, is dropped
//   - //... до \n и вложенные /* ... */ are dropped
//   - /// and //! (but not ////) become outer/inner doc attributes
//   - /** */ and /*! */ (but not /**/ or /*** */) likewise
func (lx *Lexer) skipTrivia() bool {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			lx.cursor.Bump()
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			if lx.scanLineComment() {
				return true
			}
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			if lx.scanBlockComment() {
				return true
			}
		case b >= utf8RuneSelf:
			r, _ := lx.peekRune()
			if !unicode.IsSpace(r) {
				return false
			}
			lx.bumpRune()
		default:
			return false
		}
	}
	return false
}

func (lx *Lexer) scanLineComment() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	third, fourth := lx.cursor.PeekAt(0), lx.cursor.PeekAt(1)
	outer := third == '/' && fourth != '/'
	inner := third == '!'
	if outer || inner {
		lx.cursor.Bump()
	}
	bodyStart := lx.cursor.Off
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	if !(outer || inner) || !lx.opts.KeepDocComments {
		return false
	}
	sp := lx.cursor.SpanFrom(start)
	lx.queueDoc(sp, inner, string(lx.file.Content[bodyStart:lx.cursor.Off]))
	return true
}

func (lx *Lexer) scanBlockComment() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	third, fourth := lx.cursor.PeekAt(0), lx.cursor.PeekAt(1)
	outer := third == '*' && fourth != '*' && fourth != '/'
	inner := third == '!'
	bodyStart := lx.cursor.Off + 1
	if !(outer || inner) {
		bodyStart = lx.cursor.Off
	}

	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '/' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		return false
	}
	if !(outer || inner) || !lx.opts.KeepDocComments {
		return false
	}
	lx.queueDoc(sp, inner, string(lx.file.Content[bodyStart:sp.End-2]))
	return true
}

// queueDoc lowers a doc comment into `# [doc = "text"]`, with `!` after
// `#` for inner comments. Every token carries the comment span.
func (lx *Lexer) queueDoc(sp source.Span, inner bool, text string) {
	lx.pending = append(lx.pending, tokenItem(token.NewPunct('#', token.Alone, sp)))
	if inner {
		lx.pending = append(lx.pending, tokenItem(token.NewPunct('!', token.Alone, sp)))
	}
	lx.pending = append(lx.pending,
		Item{Kind: ItemOpen, Delim: token.Bracket, Span: sp},
		tokenItem(token.NewIdent("doc", sp)),
		tokenItem(token.NewPunct('=', token.Alone, sp)),
		tokenItem(token.NewLiteral(token.LitStr, literal.Quote(text), sp)),
		Item{Kind: ItemClose, Delim: token.Bracket, Span: sp},
	)
}
