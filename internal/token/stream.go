package token

import "place/internal/source"

// Stream is an ordered sequence of token trees.
type Stream []Token

// Clone returns a shallow copy with its own backing array.
func (s Stream) Clone() Stream {
	if s == nil {
		return nil
	}
	out := make(Stream, len(s))
	copy(out, s)
	return out
}

// Span covers the first and last token of s; zero for an empty stream.
func (s Stream) Span() source.Span {
	if len(s) == 0 {
		return source.Span{}
	}
	return s[0].Span.Cover(s[len(s)-1].Span)
}

// Concat returns a new stream holding a followed by b.
func Concat(a, b Stream) Stream {
	out := make(Stream, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Equal compares two streams structurally, ignoring spans.
func Equal(a, b Stream) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.Kind != y.Kind {
			return false
		}
		switch x.Kind {
		case Group:
			if x.Delim != y.Delim || !Equal(x.Stream, y.Stream) {
				return false
			}
		case Punct:
			if x.Text != y.Text || x.Spacing != y.Spacing {
				return false
			}
		case Literal:
			if x.Lit != y.Lit || x.Text != y.Text {
				return false
			}
		default:
			if x.Text != y.Text {
				return false
			}
		}
	}
	return true
}

// Walk calls fn for every token of s in depth-first order, groups before
// their contents. It uses an explicit stack so nesting depth is unbounded.
func Walk(s Stream, fn func(tok Token, depth int)) {
	type cursor struct {
		s Stream
		i int
	}
	stack := []cursor{{s: s}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.i >= len(top.s) {
			stack = stack[:len(stack)-1]
			continue
		}
		tok := top.s[top.i]
		top.i++
		fn(tok, len(stack)-1)
		if tok.Kind == Group {
			stack = append(stack, cursor{s: tok.Stream})
		}
	}
}
