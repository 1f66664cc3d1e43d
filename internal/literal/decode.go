package literal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"place/internal/token"
)

// maxIntBits is the width of the widest unsigned integer a literal may hold.
const maxIntBits = 128

// Decode returns the canonical text of a literal token:
// bools as spelled, integers in decimal, floats re-rendered, chars and
// strings unescaped, byte literals in their surface form.
func Decode(tok token.Token) (string, error) {
	if tok.Kind != token.Literal {
		return "", ErrNotLiteral
	}
	switch tok.Lit {
	case token.LitBool:
		if tok.Text != "true" && tok.Text != "false" {
			return "", fmt.Errorf("%w: bool %q", ErrBadLiteral, tok.Text)
		}
		return tok.Text, nil
	case token.LitInt:
		return decodeInt(tok.Text)
	case token.LitFloat:
		return decodeFloat(tok.Text)
	case token.LitChar:
		return CharValue(tok)
	case token.LitStr:
		return StringValue(tok)
	case token.LitByte, token.LitByteStr:
		return tok.Text, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %v", ErrBadLiteral, tok.Lit)
	}
}

// SplitNumber separates the digits of a numeric literal from its type
// suffix and reports the base implied by its prefix. Digits keep their
// '_' separators; the base prefix is removed.
func SplitNumber(text string) (digits, suffix string, base int) {
	base = 10
	body := text
	if len(body) >= 2 && body[0] == '0' {
		switch body[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 10 {
			body = body[2:]
		}
	}
	i := 0
	for i < len(body) && isDigitOf(body[i], base) {
		i++
	}
	return body[:i], body[i:], base
}

func isDigitOf(b byte, base int) bool {
	if b == '_' {
		return true
	}
	switch base {
	case 16:
		return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	case 8:
		return b >= '0' && b <= '7'
	case 2:
		return b == '0' || b == '1'
	default:
		return b >= '0' && b <= '9'
	}
}

func decodeInt(text string) (string, error) {
	digits, _, base := SplitNumber(text)
	digits = strings.ReplaceAll(digits, "_", "")
	if digits == "" {
		return "", fmt.Errorf("%w: %q", ErrBadNumber, text)
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadNumber, text)
	}
	if n.BitLen() > maxIntBits {
		return "", fmt.Errorf("%w: %s", ErrIntegerTooLarge, text)
	}
	return n.String(), nil
}

func decodeFloat(text string) (string, error) {
	body := strings.ReplaceAll(text, "_", "")
	body = strings.TrimSuffix(strings.TrimSuffix(body, "f32"), "f64")
	f, err := strconv.ParseFloat(body, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(f, 1) {
			return "inf", nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return "", fmt.Errorf("%w: %q", ErrBadNumber, text)
		}
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// CharValue returns the decoded character of a char literal.
func CharValue(tok token.Token) (string, error) {
	body, ok := between(tok.Text, '\'')
	if !ok {
		return "", fmt.Errorf("%w: char %q", ErrBadLiteral, tok.Text)
	}
	s, err := Unescape(body)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(s) != 1 {
		return "", fmt.Errorf("%w: char %q", ErrBadLiteral, tok.Text)
	}
	return s, nil
}

// StringValue returns the content of a string literal, plain or raw.
func StringValue(tok token.Token) (string, error) {
	if tok.Kind != token.Literal || tok.Lit != token.LitStr {
		return "", ErrNotLiteral
	}
	text := tok.Text
	if strings.HasPrefix(text, "r") {
		return rawContent(text)
	}
	body, ok := between(text, '"')
	if !ok {
		return "", fmt.Errorf("%w: string %s", ErrBadLiteral, text)
	}
	return Unescape(body)
}

// between returns the text between the first and last quote, dropping a
// literal suffix after the closing quote.
func between(text string, quote byte) (string, bool) {
	first := strings.IndexByte(text, quote)
	last := strings.LastIndexByte(text, quote)
	if first < 0 || last <= first {
		return "", false
	}
	return text[first+1 : last], true
}

func rawContent(text string) (string, error) {
	rest := text[1:]
	hashes := 0
	for hashes < len(rest) && rest[hashes] == '#' {
		hashes++
	}
	rest = rest[hashes:]
	closer := "\"" + strings.Repeat("#", hashes)
	end := strings.LastIndex(rest, closer)
	if !strings.HasPrefix(rest, "\"") || end < 1 {
		return "", fmt.Errorf("%w: raw string %s", ErrBadLiteral, text)
	}
	return rest[1:end], nil
}
