package lexer

import (
	"fmt"

	"place/internal/diag"
	"place/internal/source"
	"place/internal/token"
)

type treeFrame struct {
	delim token.Delimiter
	open  source.Span
	out   token.Stream
}

// Parse lexes file and assembles the items into token trees.
// Brackets are matched with an explicit stack, so nesting depth does not
// grow the call stack. Recovery rules:
//   - a closer with no open group is reported and dropped;
//   - a closer of the wrong kind is reported and closes the innermost group;
//   - groups still open at EOF are reported and closed at EOF.
//
// Invalid tokens are reported by the lexer and left out of the tree.
func Parse(file *source.File, opts Options) token.Stream {
	lx := New(file, opts)
	stack := []treeFrame{{delim: token.None}}
	for {
		it := lx.Next()
		switch it.Kind {
		case ItemEOF:
			for len(stack) > 1 {
				top := stack[len(stack)-1]
				lx.errSyn(diag.SynUnclosedDelimiter, top.open,
					fmt.Sprintf("unclosed delimiter `%s`", top.delim.Open()), nil)
				stack = closeFrame(stack, it.Span)
			}
			return stack[0].out

		case ItemOpen:
			stack = append(stack, treeFrame{delim: it.Delim, open: it.Span})

		case ItemClose:
			if len(stack) == 1 {
				lx.errSyn(diag.SynUnexpectedCloser, it.Span,
					fmt.Sprintf("unexpected closing delimiter `%s`", it.Delim.Close()), nil)
				continue
			}
			if top := stack[len(stack)-1]; top.delim != it.Delim {
				lx.errSyn(diag.SynMismatchedDelimiter, it.Span,
					fmt.Sprintf("mismatched closing delimiter `%s`", it.Delim.Close()),
					&diag.Note{Span: top.open, Msg: fmt.Sprintf("unclosed delimiter `%s` opened here", top.delim.Open())})
			}
			stack = closeFrame(stack, it.Span)

		case ItemToken:
			if it.Token.Kind == token.Invalid {
				continue
			}
			top := &stack[len(stack)-1]
			top.out = append(top.out, it.Token)
		}
	}
}

func closeFrame(stack []treeFrame, end source.Span) []treeFrame {
	top := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	parent := &stack[len(stack)-1]
	parent.out = append(parent.out, token.NewGroup(top.delim, top.out, top.open.Cover(end)))
	return stack
}

func (lx *Lexer) errSyn(code diag.Code, sp source.Span, msg string, note *diag.Note) {
	if lx.opts.Reporter == nil {
		return
	}
	b := diag.ReportError(lx.opts.Reporter, code, sp, msg)
	if note != nil {
		b.WithNote(note.Span, note.Msg)
	}
	b.Emit()
}
