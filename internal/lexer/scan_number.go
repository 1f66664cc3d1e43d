package lexer

import (
	"place/internal/diag"
	"place/internal/token"
)

// Поддержка: 123, 1_000, 0b..., 0o..., 0x..., 1.0, 1., 1e-3, 1.5E+10 and
// type suffixes (u8, i128, f32, ...). The suffix stays in Token.Text.
// `1.foo` and `1..2` do not take the dot. Invalid forms are reported and
// the token is still completed.
func (lx *Lexer) scanNumber() Item {
	start := lx.cursor.Mark()
	kind := token.LitInt

	base := 10
	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
	}

	if base != 10 {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits, bad := 0, false
		for {
			b := lx.cursor.Peek()
			if b == '_' {
				lx.cursor.Bump()
				continue
			}
			if digitValue(b) < base {
				digits++
			} else if isDec(b) {
				bad = true
			} else {
				break
			}
			lx.cursor.Bump()
		}
		lx.eatSuffix()
		if digits == 0 || bad {
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "invalid digits for base prefix")
		}
		return lx.literalItem(start, kind)
	}

	lx.eatDecDigits()

	// дробная часть
	if lx.cursor.Peek() == '.' {
		next := lx.cursor.PeekAt(1)
		if next != '.' && !isIdentStartByte(next) && next < utf8RuneSelf {
			lx.cursor.Bump()
			kind = token.LitFloat
			lx.eatDecDigits()
		}
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		i := 1
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			i++
		}
		for lx.cursor.PeekAt(i) == '_' {
			i++
		}
		if isDec(lx.cursor.PeekAt(i)) {
			for range i {
				lx.cursor.Bump()
			}
			lx.eatDecDigits()
			kind = token.LitFloat
		}
	}

	suffixStart := lx.cursor.Off
	lx.eatSuffix()
	if suffix := string(lx.file.Content[suffixStart:lx.cursor.Off]); kind == token.LitInt && (suffix == "f32" || suffix == "f64") {
		kind = token.LitFloat
	}
	return lx.literalItem(start, kind)
}

func (lx *Lexer) eatDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

// digitValue returns the value of a hex digit or 99 for anything else.
func digitValue(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return 99
}
