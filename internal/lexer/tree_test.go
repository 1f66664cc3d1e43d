package lexer_test

import (
	"strings"
	"testing"

	"place/internal/diag"
	"place/internal/lexer"
	"place/internal/testkit"
	"place/internal/token"
)

func parse(t *testing.T, input string) (token.Stream, *testReporter) {
	t.Helper()
	rep := &testReporter{}
	s := lexer.Parse(newFile(input), lexer.Options{Reporter: rep, KeepDocComments: true})
	return s, rep
}

func TestParsePrintsCanonically(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"f(a,b)", "f (a , b)"},
		{"x->y", "x -> y"},
		{"fn f<'a>(x: &'a str) {}", "fn f <'a > (x : &'a str) { }"},
		{"let  v = vec![1,2];", "let v = vec ! [1 , 2] ;"},
		{"{ { } }", "{ { } }"},
		{"/// Doc\nstruct S;", `# [doc = " Doc"] struct S ;`},
		{"__string__(a b)", "__string__ (a b)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, rep := parse(t, tt.input)
			if len(rep.diagnostics) != 0 {
				t.Fatalf("unexpected diagnostics: %+v", rep.diagnostics)
			}
			if got := s.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseReparse checks that printing and lexing again gives the same trees.
func TestParseReparse(t *testing.T) {
	inputs := []string{
		`impl<T: Clone> Foo for Bar<T> { fn x(&self) -> u8 { self.0 + 0x10 } }`,
		`macro_rules! m { ($($x:tt)*) => { $($x)* }; }`,
		`let s = r#"raw "str""#; let c = '\u{1F600}'; let b = b"\x00";`,
		`a :: b += c >>= d`,
	}
	for _, in := range inputs {
		first, rep := parse(t, in)
		if len(rep.diagnostics) != 0 {
			t.Fatalf("%q: unexpected diagnostics %+v", in, rep.diagnostics)
		}
		second, _ := parse(t, first.String())
		if !token.Equal(first, second) {
			t.Fatalf("reparse mismatch:\n first: %s\nsecond: %s", first, second)
		}
	}
}

func TestParseGroupSpans(t *testing.T) {
	s, _ := parse(t, "x (a [b])")
	g := s[1]
	if g.Kind != token.Group || g.Delim != token.Paren {
		t.Fatalf("s[1] = %+v", g)
	}
	if g.Span.Start != 2 || g.Span.End != 9 {
		t.Fatalf("group span = %v, want 2..9", g.Span)
	}
	inner := g.Stream[1]
	if inner.Delim != token.Bracket || inner.Span.Start != 5 || inner.Span.End != 8 {
		t.Fatalf("inner group = %+v", inner)
	}
}

func TestParseRecovery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		codes []diag.Code
	}{
		{"unexpected closer", "a ) b", "a b", []diag.Code{diag.SynUnexpectedCloser}},
		{"unclosed", "f(a [b", "f (a [b])", []diag.Code{diag.SynUnclosedDelimiter, diag.SynUnclosedDelimiter}},
		{"mismatched", "(a]", "(a)", []diag.Code{diag.SynMismatchedDelimiter}},
		{"invalid dropped", "a ` b", "a b", []diag.Code{diag.LexUnknownChar}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rep := parse(t, tt.input)
			if got := s.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
			codes := rep.codes()
			if len(codes) != len(tt.codes) {
				t.Fatalf("codes = %v, want %v", codes, tt.codes)
			}
			for i := range codes {
				if codes[i] != tt.codes[i] {
					t.Fatalf("codes = %v, want %v", codes, tt.codes)
				}
			}
		})
	}
}

func TestParseMismatchNote(t *testing.T) {
	_, rep := parse(t, "(a]")
	d := rep.diagnostics[0]
	if len(d.Notes) != 1 || d.Notes[0].Span.Start != 0 {
		t.Fatalf("expected a note at the opener, got %+v", d.Notes)
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 50000
	input := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)
	s, rep := parse(t, input)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %d", len(rep.diagnostics))
	}
	n := 0
	token.Walk(s, func(tok token.Token, _ int) {
		if tok.Kind == token.Group {
			n++
		}
	})
	if n != depth {
		t.Fatalf("groups = %d, want %d", n, depth)
	}
}

func TestParseSpanInvariants(t *testing.T) {
	inputs := []string{
		"fn main() { let v = vec![1, 2.5e3, 'c', \"s\"]; }",
		"/// docs\n//! inner\nstruct S;",
		"/** block */ x",
		"(a]",
		"a ) b",
		"(( x",
		"",
	}
	for _, in := range inputs {
		file := newFile(in)
		s := lexer.Parse(file, lexer.Options{KeepDocComments: true})
		if err := testkit.CheckTreeSpans(s, file); err != nil {
			t.Errorf("%q: %v", in, err)
		}
		items := lexer.New(file, lexer.Options{KeepDocComments: true}).All()
		if err := testkit.CheckItemSpans(items, file); err != nil {
			t.Errorf("%q items: %v", in, err)
		}
	}
}
