package token

import "strings"

// String renders the stream in canonical form: one space between tokens,
// Joint punctuation glued to what follows, non-empty brace groups padded
// with spaces on both sides.
func (s Stream) String() string {
	var b strings.Builder
	Print(&b, s)
	return b.String()
}

// String renders a single token tree in canonical form.
func (t Token) String() string {
	return Stream{t}.String()
}

type printFrame struct {
	s     Stream
	i     int
	delim Delimiter
	joint bool
}

// Print writes the canonical form of s into b.
func Print(b *strings.Builder, s Stream) {
	stack := []printFrame{{s: s, delim: None}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i >= len(top.s) {
			if top.delim == Brace && len(top.s) > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(top.delim.Close())
			stack = stack[:len(stack)-1]
			continue
		}
		if top.i > 0 && !top.joint {
			b.WriteByte(' ')
		}
		top.joint = false
		tok := top.s[top.i]
		top.i++

		switch tok.Kind {
		case Group:
			b.WriteString(tok.Delim.Open())
			if tok.Delim == Brace {
				b.WriteByte(' ')
			}
			stack = append(stack, printFrame{s: tok.Stream, delim: tok.Delim})
		case Punct:
			top.joint = tok.Spacing == Joint
			b.WriteString(tok.Text)
		default:
			b.WriteString(tok.Text)
		}
	}
}
