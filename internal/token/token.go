package token

import (
	"unicode/utf8"

	"place/internal/source"
)

// Token is one node of a token tree.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string    // identifier spelling, punctuation char or literal surface form
	Lit     LitKind   // only for Literal
	Spacing Spacing   // only for Punct
	Delim   Delimiter // only for Group
	Stream  Stream    // only for Group
}

// NewIdent returns an identifier token.
func NewIdent(text string, sp source.Span) Token {
	return Token{Kind: Ident, Span: sp, Text: text}
}

// NewPunct returns a punctuation token for ch.
func NewPunct(ch rune, spacing Spacing, sp source.Span) Token {
	return Token{Kind: Punct, Span: sp, Text: string(ch), Spacing: spacing}
}

// NewLiteral returns a literal token with the given surface spelling.
func NewLiteral(kind LitKind, raw string, sp source.Span) Token {
	return Token{Kind: Literal, Span: sp, Text: raw, Lit: kind}
}

// NewGroup wraps stream into a group token.
func NewGroup(delim Delimiter, stream Stream, sp source.Span) Token {
	return Token{Kind: Group, Span: sp, Delim: delim, Stream: stream}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsGroup reports whether the token is a group.
func (t Token) IsGroup() bool { return t.Kind == Group }

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool { return t.Kind == Literal }

// IsPunct reports whether the token is the punctuation character ch.
func (t Token) IsPunct(ch rune) bool {
	return t.Kind == Punct && t.Char() == ch
}

// IsComma reports whether the token is ','.
func (t Token) IsComma() bool { return t.IsPunct(',') }

// Char returns the punctuation character, or utf8.RuneError for other kinds.
func (t Token) Char() rune {
	if t.Kind != Punct {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(t.Text)
	return r
}

// WithSpan returns a copy of t positioned at sp.
func (t Token) WithSpan(sp source.Span) Token {
	t.Span = sp
	return t
}
