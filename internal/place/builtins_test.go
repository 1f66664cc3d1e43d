package place_test

import (
	"errors"
	"strings"
	"testing"

	"place/internal/diag"
	"place/internal/place"
	"place/internal/source"
	"place/internal/token"
)

var call = source.Span{File: 0, Start: 100, End: 110}

func TestStringConcatenation(t *testing.T) {
	out, err := place.String(parse(t, `"hello" + , ", " {(agent)} ' ' 0x2F`), call)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Kind != token.Literal || out[0].Lit != token.LitStr {
		t.Fatalf("String result = %v", out)
	}
	if got := out[0].Text; got != `"hello, agent 47"` {
		t.Fatalf("String = %s", got)
	}
}

func TestIdentifierConcatenation(t *testing.T) {
	out, err := place.Identifier(parse(t, "my + var"), call)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || !out[0].IsIdent() || out[0].Text != "myvar" {
		t.Fatalf("Identifier = %v", out)
	}
}

func TestStringDecodesLiterals(t *testing.T) {
	out, err := place.String(parse(t, `1.50 2e2 'c' r"raw\n" b'x' 1_0u8`), call)
	if err != nil {
		t.Fatal(err)
	}
	if got := out[0].Text; got != `"1.5200craw\\nb'x'10"` {
		t.Fatalf("String = %s", got)
	}
}

func TestReplaceNewline(t *testing.T) {
	out, err := place.ReplaceNewline(parse(t, `"hello\n    every body\n", ", "`), call)
	if err != nil {
		t.Fatal(err)
	}
	if got := out[0].Text; got != `"hello, every body, "` {
		t.Fatalf("ReplaceNewline = %s", got)
	}
}

func TestToCase(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{`"ToCase", my_var`, "MyVar"},
		{`"to_case", MyVar,`, "my_var"},
		{`ToCase my_var`, "MyVar"},
		{`TO_CASE, my_var`, "MY_VAR"},
		{`("toCase"), my_var`, "myVar"},
	}
	for _, tt := range tests {
		out, err := place.ToCase(parse(t, tt.src), call)
		if err != nil {
			t.Fatalf("ToCase(%s): %v", tt.src, err)
		}
		if len(out) != 1 || out[0].Text != tt.want {
			t.Fatalf("ToCase(%s) = %v, want %s", tt.src, out, tt.want)
		}
	}
}

func TestArgumentErrors(t *testing.T) {
	type builtin func(token.Stream, source.Span) (token.Stream, error)
	tests := []struct {
		name string
		fn   builtin
		src  string
		code diag.Code
		msg  string
	}{
		{"repnl none", place.ReplaceNewline, ``, diag.PlcMissingArguments, "expected 2 arguments, got 0"},
		{"repnl one", place.ReplaceNewline, `"a"`, diag.PlcMissingArguments, "expected more arguments"},
		{"repnl trailing comma only", place.ReplaceNewline, `"a",`, diag.PlcMissingArguments, "expected 2 arguments, got 1"},
		{"repnl no comma", place.ReplaceNewline, `"a" "b"`, diag.PlcExpectedComma, "expected comma"},
		{"repnl extra", place.ReplaceNewline, `"a", "b", "c"`, diag.PlcTooManyArguments, "marker takes only 2 arguments"},
		{"repnl junk", place.ReplaceNewline, `"a", "b" x`, diag.PlcUnexpectedToken, "unexpected token"},
		{"repnl kind", place.ReplaceNewline, `x, "b"`, diag.PlcExpectedString, "expected string literal"},
		{"repnl wide group", place.ReplaceNewline, `("a" "b"), "c"`, diag.PlcExpectedString, "expected string literal"},
		{"repstr two", place.StrReplace, `"a", "b"`, diag.PlcMissingArguments, "expected more arguments"},
		{"repstr extra", place.StrReplace, `"a", "b", "c", "d"`, diag.PlcTooManyArguments, "marker takes only 3 arguments"},
		{"repstr kind", place.StrReplace, `"a", 'b', "c"`, diag.PlcExpectedString, "expected string literal"},
		{"case unknown", place.ToCase, `"Bogus", x`, diag.PlcUnknownCase, "unknown case specifier 'Bogus'"},
		{"case none", place.ToCase, ``, diag.PlcMissingArguments, "expected 2 arguments, got 0"},
		{"case ident", place.ToCase, `"ToCase", "x"`, diag.PlcExpectedIdent, "expected identifier"},
		{"dollar args", place.Dollar, `x`, diag.PlcUnexpectedInput, "takes no arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(parse(t, tt.src), call)
			var perr *place.Error
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *place.Error", err)
			}
			if perr.Code != tt.code || !strings.Contains(perr.Msg, tt.msg) {
				t.Fatalf("got %s %q, want %s %q", perr.Code.ID(), perr.Msg, tt.code.ID(), tt.msg)
			}
			if perr.Code.Class() == diag.ClassOther {
				t.Fatalf("%s has no engine class", perr.Code.ID())
			}
			d := perr.Diagnostic()
			if d.Severity != diag.SevError || d.Primary != perr.Span {
				t.Fatalf("Diagnostic() = %+v", d)
			}
		})
	}
}

func TestMissingArgumentsPointAtCall(t *testing.T) {
	_, err := place.StrReplace(parse(t, `"a"`), call)
	var perr *place.Error
	if !errors.As(err, &perr) || perr.Span != call {
		t.Fatalf("error = %v, want span %v", err, call)
	}
}

func TestHeadTailReconstruct(t *testing.T) {
	for _, src := range []string{"a", "a b c", "(x) [y] {z} 1 , \"s\""} {
		s := parse(t, src)
		joined := token.Concat(place.Head(s), place.Tail(s))
		if !token.Equal(joined, s) {
			t.Fatalf("head+tail of %q = %s", src, joined)
		}
		joined = token.Concat(place.Start(s), place.Last(s))
		if !token.Equal(joined, s) {
			t.Fatalf("start+last of %q = %s", src, joined)
		}
	}
}

func TestReverseInvolution(t *testing.T) {
	for _, src := range []string{"", "a", "a b (c d) e", "1 + 2 * 3"} {
		s := parse(t, src)
		once := place.Reverse(s)
		if !token.Equal(place.Reverse(once), s) {
			t.Fatalf("reverse twice of %q = %s", src, place.Reverse(once))
		}
	}
	if got := place.Reverse(parse(t, "a (b c) d")).String(); got != "d (b c) a" {
		t.Fatalf("Reverse = %s", got)
	}
}

func TestReverseDoesNotAlias(t *testing.T) {
	s := parse(t, "a b")
	_ = place.Reverse(s)
	if s[0].Text != "a" {
		t.Fatal("Reverse modified its input")
	}
}

func TestStrReplaceAbsentPattern(t *testing.T) {
	out, err := place.StrReplace(parse(t, `"some text", "absent", "x"`), call)
	if err != nil {
		t.Fatal(err)
	}
	if got := out[0].Text; got != `"some text"` {
		t.Fatalf("StrReplace = %s", got)
	}
}

func TestStrReplaceNonOverlapping(t *testing.T) {
	out, err := place.StrReplace(parse(t, `"aaaa", "aa", "b"`), call)
	if err != nil {
		t.Fatal(err)
	}
	if got := out[0].Text; got != `"bb"` {
		t.Fatalf("StrReplace = %s", got)
	}
}

func TestIgnoreAndIdentity(t *testing.T) {
	s := parse(t, "a b")
	if out := place.Ignore(s); len(out) != 0 {
		t.Fatalf("Ignore = %v", out)
	}
	if out := place.Identity(s); !token.Equal(out, s) {
		t.Fatalf("Identity = %v", out)
	}
}

func TestStringifyDirect(t *testing.T) {
	out := place.Stringify(parse(t, "a :: b < T >"), call)
	if got := out[0].Text; got != `"a :: b < T >"` {
		t.Fatalf("Stringify = %s", got)
	}
}

func TestDollarDirect(t *testing.T) {
	out, err := place.Dollar(nil, call)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || !out[0].IsPunct('$') || out[0].Spacing != token.Alone || out[0].Span != call {
		t.Fatalf("Dollar = %+v", out)
	}
}
