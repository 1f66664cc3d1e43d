package place

import (
	"errors"
	"fmt"

	"place/internal/diag"
	"place/internal/literal"
	"place/internal/source"
	"place/internal/token"
)

// Options tunes a rewrite.
type Options struct {
	// Observe, if set, is called after every builtin invocation with the
	// rewritten arguments and the result.
	Observe func(m Marker, args, result token.Stream)
}

// frame is one level of the walk: a cursor over the stream being consumed,
// the marker waiting for this frame's output (if any) and the delimiter used
// to rebuild a group from it.
type frame struct {
	s      token.Stream
	i      int
	marker *Marker
	delim  token.Delimiter
	span   source.Span // span of the group, or of marker and group for calls
	out    token.Stream
}

func (f *frame) next() (token.Token, bool) {
	if f.i >= len(f.s) {
		return token.Token{}, false
	}
	tok := f.s[f.i]
	f.i++
	return tok, true
}

// Place rewrites input, evaluating every marker it contains. Streams
// without markers come back unchanged. The first malformed marker usage
// stops the rewrite and is returned as *Error.
func Place(input token.Stream) (token.Stream, error) {
	return PlaceWith(input, Options{})
}

// PlaceWith is Place with options.
func PlaceWith(input token.Stream, opts Options) (token.Stream, error) {
	stack := []*frame{{s: input, delim: token.None}}
	for {
		top := stack[len(stack)-1]
		tok, ok := top.next()
		if !ok {
			if len(stack) == 1 {
				if top.out == nil {
					return token.Stream{}, nil
				}
				return top.out, nil
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			if top.marker == nil {
				parent.out = append(parent.out, token.NewGroup(top.delim, top.out, top.span))
				continue
			}
			res, err := invoke(*top.marker, top.out, top.span)
			if err != nil {
				return nil, err
			}
			if opts.Observe != nil {
				opts.Observe(*top.marker, top.out, res)
			}
			parent.out = append(parent.out, res...)
			continue
		}

		switch tok.Kind {
		case token.Group:
			stack = append(stack, &frame{s: tok.Stream, delim: tok.Delim, span: tok.Span})
			continue
		case token.Ident:
		default:
			top.out = append(top.out, tok)
			continue
		}

		m, isMarker := Lookup(tok.Text, tok.Span)
		if !isMarker {
			top.out = append(top.out, tok)
			continue
		}
		if m.Op == OpDollar {
			top.out = append(top.out, token.NewPunct('$', token.Alone, tok.Span))
			continue
		}

		arg, ok := top.next()
		if !ok {
			return nil, errorAt(diag.PlcExpectedGroup, tok.Span, "expected a group `(...)`, `[...]` or `{...}` after marker `%s`", m.Name)
		}
		if arg.Kind != token.Group {
			if m.Op == OpIgnore && arg.Kind == token.Ident {
				if err := spliceIgnored(top, arg); err != nil {
					return nil, err
				}
				continue
			}
			return nil, errorAt(diag.PlcExpectedGroup, arg.Span, "expected a group `(...)`, `[...]` or `{...}` after marker `%s`", m.Name)
		}

		call := tok.Span.Cover(arg.Span)
		switch m.Op {
		case OpIdentity:
			// содержимое идёт в вывод как есть, без обхода
			top.out = append(top.out, arg.Stream...)
			if opts.Observe != nil {
				opts.Observe(m, arg.Stream, arg.Stream)
			}
		case OpToCase:
			spec := token.Stream{
				token.NewLiteral(token.LitStr, literal.Quote(m.CaseSpec()), tok.Span),
				token.NewPunct(',', token.Alone, tok.Span),
			}
			stack = append(stack, &frame{s: token.Concat(spec, arg.Stream), marker: &m, delim: arg.Delim, span: call})
		default:
			stack = append(stack, &frame{s: arg.Stream, marker: &m, delim: arg.Delim, span: call})
		}
	}
}

// spliceIgnored handles `__ignore__ <marker>`: the ignored marker is
// dropped and the group after it is walked in place of the call, as part
// of the current frame. `__ignore__ __dollar__` just drops both.
func spliceIgnored(top *frame, id token.Token) error {
	inner, ok := Lookup(id.Text, id.Span)
	if !ok {
		return errorAt(diag.PlcExpectedMarker, id.Span, "expected a group or builtin marker after `__ignore__`, found `%s`", id.Text)
	}
	if inner.Op == OpDollar {
		return nil
	}
	g, ok := top.next()
	if !ok {
		return errorAt(diag.PlcExpectedGroup, id.Span, "expected a group `(...)`, `[...]` or `{...}` after marker `%s`", inner.Name)
	}
	if g.Kind != token.Group {
		return errorAt(diag.PlcExpectedGroup, g.Span, "expected a group `(...)`, `[...]` or `{...}` after marker `%s`", inner.Name)
	}
	top.s = token.Concat(g.Stream, top.s[top.i:])
	top.i = 0
	return nil
}

// Expand is Place with errors rendered in-band as
// `compile_error ! ("msg")`, so callers get a stream either way.
func Expand(input token.Stream) token.Stream {
	out, err := Place(input)
	if err == nil {
		return out
	}
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Tokens()
	}
	return (&Error{Code: diag.UnknownCode, Span: input.Span(), Msg: err.Error()}).Tokens()
}

// invoke dispatches a marker to its builtin.
func invoke(m Marker, args token.Stream, call source.Span) (token.Stream, error) {
	switch m.Op {
	case OpIgnore:
		return Ignore(args), nil
	case OpIdentity:
		return Identity(args), nil
	case OpDollar:
		return Dollar(args, call)
	case OpString:
		return String(args, call)
	case OpHead:
		return Head(args), nil
	case OpTail:
		return Tail(args), nil
	case OpStart:
		return Start(args), nil
	case OpLast:
		return Last(args), nil
	case OpReverse:
		return Reverse(args), nil
	case OpIdentifier:
		return Identifier(args, call)
	case OpStringify:
		return Stringify(args, call), nil
	case OpReplaceNewline:
		return ReplaceNewline(args, call)
	case OpStrReplace:
		return StrReplace(args, call)
	case OpToCase:
		return ToCase(args, call)
	default:
		panic(fmt.Sprintf("place: unhandled marker op %d", m.Op))
	}
}
