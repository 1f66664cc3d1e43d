package literal_test

import (
	"errors"
	"testing"

	"place/internal/literal"
	"place/internal/source"
	"place/internal/token"
)

func lit(kind token.LitKind, text string) token.Token {
	return token.NewLiteral(kind, text, source.Span{})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		tok  token.Token
		want string
	}{
		{"bool", lit(token.LitBool, "true"), "true"},
		{"int", lit(token.LitInt, "42"), "42"},
		{"int separators", lit(token.LitInt, "1_000_000"), "1000000"},
		{"int suffix", lit(token.LitInt, "7u8"), "7"},
		{"hex", lit(token.LitInt, "0x2F"), "47"},
		{"hex suffix", lit(token.LitInt, "0xFFu16"), "255"},
		{"octal", lit(token.LitInt, "0o17"), "15"},
		{"binary", lit(token.LitInt, "0b1010_1010"), "170"},
		{"u128 max", lit(token.LitInt, "340282366920938463463374607431768211455"), "340282366920938463463374607431768211455"},
		{"float", lit(token.LitFloat, "2.50"), "2.5"},
		{"float whole", lit(token.LitFloat, "1.0"), "1"},
		{"float trailing dot", lit(token.LitFloat, "3."), "3"},
		{"float exp", lit(token.LitFloat, "1e3"), "1000"},
		{"float suffix", lit(token.LitFloat, "0.5f32"), "0.5"},
		{"float int suffix", lit(token.LitFloat, "1f64"), "1"},
		{"char", lit(token.LitChar, "' '"), " "},
		{"char escape", lit(token.LitChar, `'\n'`), "\n"},
		{"char unicode", lit(token.LitChar, `'\u{1F600}'`), "\U0001F600"},
		{"char quote", lit(token.LitChar, `'\''`), "'"},
		{"string", lit(token.LitStr, `"hello"`), "hello"},
		{"string escapes", lit(token.LitStr, `"a\tb\\c\"d\x41"`), "a\tb\\c\"dA"},
		{"string continuation", lit(token.LitStr, "\"a\\\n    b\""), "ab"},
		{"raw string", lit(token.LitStr, `r"C:\path"`), `C:\path`},
		{"raw hashes", lit(token.LitStr, `r#"say "hi""#`), `say "hi"`},
		{"byte", lit(token.LitByte, `b'a'`), `b'a'`},
		{"byte string", lit(token.LitByteStr, `b"ab\n"`), `b"ab\n"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := literal.Decode(tt.tok)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.tok.Text, err)
			}
			if got != tt.want {
				t.Fatalf("Decode(%q) = %q, want %q", tt.tok.Text, got, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		tok  token.Token
		want error
	}{
		{"not literal", token.NewIdent("x", source.Span{}), literal.ErrNotLiteral},
		{"too large", lit(token.LitInt, "340282366920938463463374607431768211456"), literal.ErrIntegerTooLarge},
		{"no digits", lit(token.LitInt, "0x"), literal.ErrBadNumber},
		{"bad float", lit(token.LitFloat, "1.0abc"), literal.ErrBadNumber},
		{"bad escape", lit(token.LitStr, `"\q"`), literal.ErrBadEscape},
		{"bad hex escape", lit(token.LitStr, `"\xFF"`), literal.ErrBadEscape},
		{"surrogate", lit(token.LitStr, `"\u{D800}"`), literal.ErrBadEscape},
		{"two chars", lit(token.LitChar, "'ab'"), literal.ErrBadLiteral},
		{"bad bool", lit(token.LitBool, "yes"), literal.ErrBadLiteral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := literal.Decode(tt.tok)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Decode(%q) error = %v, want %v", tt.tok.Text, err, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\nb\tc", `"a\nb\tc"`},
		{`back\slash`, `"back\\slash"`},
		{"it's", `"it's"`},
		{"\x00", `"\0"`},
		{"\x001", `"\x001"`},
		{"\x07", `"\u{7}"`},
		{"привет", `"привет"`},
	}
	for _, tt := range tests {
		if got := literal.Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestQuoteUnescapeRoundTrip(t *testing.T) {
	inputs := []string{"", "plain", "multi\nline\r\n", `"quoted"`, "tab\tand\\slash", "\x00\x01", "émoji 😀"}
	for _, in := range inputs {
		tok := lit(token.LitStr, literal.Quote(in))
		got, err := literal.StringValue(tok)
		if err != nil {
			t.Fatalf("StringValue(%s): %v", tok.Text, err)
		}
		if got != in {
			t.Fatalf("round trip %q -> %s -> %q", in, tok.Text, got)
		}
	}
}

func TestSplitNumber(t *testing.T) {
	digits, suffix, base := literal.SplitNumber("0xFF_u8")
	if digits != "FF_" || suffix != "u8" || base != 16 {
		t.Fatalf("SplitNumber = (%q, %q, %d)", digits, suffix, base)
	}
}
