package place

import (
	"slices"
	"strings"
	"unicode"

	"place/internal/casing"
	"place/internal/diag"
	"place/internal/literal"
	"place/internal/source"
	"place/internal/token"
)

// Ignore discards its input.
func Ignore(token.Stream) token.Stream {
	return token.Stream{}
}

// Identity returns its input unchanged.
func Identity(s token.Stream) token.Stream {
	return s.Clone()
}

// Dollar returns a single `$`. It takes no arguments.
func Dollar(s token.Stream, call source.Span) (token.Stream, error) {
	if len(s) != 0 {
		return nil, errorAt(diag.PlcUnexpectedInput, s[0].Span, "marker `__dollar__` takes no arguments")
	}
	return token.Stream{token.NewPunct('$', token.Alone, call)}, nil
}

// String concatenates the text of every token into one string literal.
// Identifiers give their spelling, literals their decoded value, groups
// their contents in order; punctuation is dropped.
func String(s token.Stream, call source.Span) (token.Stream, error) {
	text, err := concat(s)
	if err != nil {
		return nil, err
	}
	return token.Stream{token.NewLiteral(token.LitStr, literal.Quote(text), spanOr(s, call))}, nil
}

// Identifier concatenates like String but yields an identifier. The
// result is not checked for being a valid identifier.
func Identifier(s token.Stream, call source.Span) (token.Stream, error) {
	text, err := concat(s)
	if err != nil {
		return nil, err
	}
	return token.Stream{token.NewIdent(text, spanOr(s, call))}, nil
}

// Head returns the first token, if any.
func Head(s token.Stream) token.Stream {
	if len(s) == 0 {
		return token.Stream{}
	}
	return token.Stream{s[0]}
}

// Tail returns every token but the first.
func Tail(s token.Stream) token.Stream {
	if len(s) <= 1 {
		return token.Stream{}
	}
	return s[1:].Clone()
}

// Start returns every token but the last.
func Start(s token.Stream) token.Stream {
	if len(s) <= 1 {
		return token.Stream{}
	}
	return s[:len(s)-1].Clone()
}

// Last returns the last token, if any.
func Last(s token.Stream) token.Stream {
	if len(s) == 0 {
		return token.Stream{}
	}
	return token.Stream{s[len(s)-1]}
}

// Reverse returns the tokens in reverse order. Groups are not entered.
func Reverse(s token.Stream) token.Stream {
	out := s.Clone()
	if out == nil {
		return token.Stream{}
	}
	slices.Reverse(out)
	return out
}

// Stringify returns one string literal holding the canonical printed form
// of its input.
func Stringify(s token.Stream, call source.Span) token.Stream {
	return token.Stream{token.NewLiteral(token.LitStr, literal.Quote(s.String()), spanOr(s, call))}
}

// ReplaceNewline takes (text, replacement). Every newline in text, together
// with the whitespace directly after it, is replaced by replacement.
func ReplaceNewline(s token.Stream, call source.Span) (token.Stream, error) {
	args, err := readArgs(s, 2, call)
	if err != nil {
		return nil, err
	}
	text, err := stringArg(args[0])
	if err != nil {
		return nil, err
	}
	repl, err := stringArg(args[1])
	if err != nil {
		return nil, err
	}
	return token.Stream{token.NewLiteral(token.LitStr, literal.Quote(replaceNewlines(text, repl)), spanOr(s, call))}, nil
}

func replaceNewlines(text, repl string) string {
	var b strings.Builder
	b.Grow(len(text))
	skipping := false
	for _, r := range text {
		if skipping {
			if unicode.IsSpace(r) {
				continue
			}
			skipping = false
		}
		if r == '\n' {
			b.WriteString(repl)
			skipping = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StrReplace takes (text, from, to) and replaces every non-overlapping
// occurrence of from in text, left to right.
func StrReplace(s token.Stream, call source.Span) (token.Stream, error) {
	args, err := readArgs(s, 3, call)
	if err != nil {
		return nil, err
	}
	var vals [3]string
	for i, a := range args {
		if vals[i], err = stringArg(a); err != nil {
			return nil, err
		}
	}
	out := strings.ReplaceAll(vals[0], vals[1], vals[2])
	return token.Stream{token.NewLiteral(token.LitStr, literal.Quote(out), spanOr(s, call))}, nil
}

// ToCase takes (spec, ident) and re-cases ident. spec is a string literal
// such as "ToCase"; a bare identifier is accepted too, with or without the
// comma after it (`ToCase my_var`).
func ToCase(s token.Stream, call source.Span) (token.Stream, error) {
	if len(s) >= 2 && s[0].IsIdent() && s[1].IsIdent() {
		s = token.Concat(token.Stream{s[0], token.NewPunct(',', token.Alone, s[0].Span)}, s[1:])
	}
	args, err := readArgs(s, 2, call)
	if err != nil {
		return nil, err
	}
	var specText string
	if args[0].IsIdent() {
		specText = args[0].Text
	} else if specText, err = stringArg(args[0]); err != nil {
		return nil, err
	}
	if !args[1].IsIdent() {
		return nil, errorAt(diag.PlcExpectedIdent, args[1].Span, "expected identifier")
	}
	spec, ok := casing.ParseSpec(specText)
	if !ok {
		return nil, errorAt(diag.PlcUnknownCase, args[0].Span, "unknown case specifier '%s'", specText)
	}
	return token.Stream{token.NewIdent(casing.Convert(spec, args[1].Text), args[1].Span)}, nil
}

// concat joins the text of s depth first without recursion.
func concat(s token.Stream) (string, error) {
	var b strings.Builder
	var err error
	token.Walk(s, func(tok token.Token, _ int) {
		if err != nil {
			return
		}
		switch tok.Kind {
		case token.Ident:
			b.WriteString(tok.Text)
		case token.Literal:
			v, derr := literal.Decode(tok)
			if derr != nil {
				err = literalError(derr, tok.Span)
				return
			}
			b.WriteString(v)
		}
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

// spanOr returns the span covering s, or fallback when s is empty or was
// synthesized without a position.
func spanOr(s token.Stream, fallback source.Span) source.Span {
	if sp := s.Span(); !sp.IsZero() {
		return sp
	}
	return fallback
}
