package literal

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unescape resolves backslash escapes inside the body of a char or
// string literal.
func Unescape(s string) (string, error) {
	if strings.IndexByte(s, '\\') < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("%w: trailing backslash", ErrBadEscape)
		}
		esc := s[i+1]
		i += 2
		switch esc {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\\':
			b.WriteByte('\\')
		case '0':
			b.WriteByte(0)
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case '\n':
			// продолжение строки: пропускаем ведущие пробелы следующей строки
			for i < len(s) && isEscapeSpace(s[i]) {
				i++
			}
		case 'x':
			if i+2 > len(s) {
				return "", fmt.Errorf("%w: \\x needs two hex digits", ErrBadEscape)
			}
			v, err := strconv.ParseUint(s[i:i+2], 16, 8)
			if err != nil || v > 0x7f {
				return "", fmt.Errorf("%w: \\x%s", ErrBadEscape, s[i:i+2])
			}
			b.WriteByte(byte(v))
			i += 2
		case 'u':
			r, n, err := unicodeEscape(s[i:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += n
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, esc)
		}
	}
	return b.String(), nil
}

func isEscapeSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// unicodeEscape parses "{XXXX}" and returns the rune and bytes consumed.
func unicodeEscape(s string) (rune, int, error) {
	end := strings.IndexByte(s, '}')
	if !strings.HasPrefix(s, "{") || end < 0 {
		return 0, 0, fmt.Errorf("%w: \\u needs braces", ErrBadEscape)
	}
	hex := strings.ReplaceAll(s[1:end], "_", "")
	if hex == "" || len(hex) > 6 {
		return 0, 0, fmt.Errorf("%w: \\u{%s}", ErrBadEscape, s[1:end])
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > unicode.MaxRune || !utf8.ValidRune(rune(v)) {
		return 0, 0, fmt.Errorf("%w: \\u{%s}", ErrBadEscape, s[1:end])
	}
	return rune(v), end + 1, nil
}

// Quote returns the surface spelling of a string literal holding s.
// Quotes, backslashes and control characters are escaped; single quotes
// are left as is.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i, r := range s {
		switch r {
		case 0:
			// \0 перед восьмеричной цифрой читался бы неоднозначно
			if next := i + 1; next < len(s) && s[next] >= '0' && s[next] <= '7' {
				b.WriteString(`\x00`)
			} else {
				b.WriteString(`\0`)
			}
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r == utf8.RuneError || !unicode.IsPrint(r) {
				fmt.Fprintf(&b, `\u{%x}`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
