package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"place/internal/diag"
	"place/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		code:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
		note:   mk(color.FgGreen, color.Bold),
	}
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// then the source line with ^~~~ under the span, then the notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			location(fs, d.Primary, opts.PathMode),
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message)
		snippet(w, fs, d.Primary, opts.Context, p)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note:"), location(fs, n.Span, opts.PathMode), n.Msg)
			snippet(w, fs, n.Span, 0, p)
		}
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	path := formatPath(fs, sp.File, mode)
	if fs == nil || !fs.Has(sp.File) {
		return path
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

// snippet prints the line holding the start of sp with a caret line below.
// Spans running past the end of the line are underlined to its end.
func snippet(w io.Writer, fs *source.FileSet, sp source.Span, context int, p palette) {
	if fs == nil || !fs.Has(sp.File) {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	width := len(fmt.Sprint(start.Line))

	first := uint32(1)
	if c := uint32(max(context, 0)); start.Line > c {
		first = start.Line - c
	}
	for ln := first; ln < start.Line; ln++ {
		fmt.Fprintf(w, " %s %s\n", p.gutter.Sprintf("%*d |", width, ln), expandTabs(f.GetLine(ln)))
	}

	line := f.GetLine(start.Line)
	fmt.Fprintf(w, " %s %s\n", p.gutter.Sprintf("%*d |", width, start.Line), expandTabs(line))

	runesBefore := prefixRunes(line, start.Col-1)
	pad := runewidth.StringWidth(expandTabs(runesBefore))
	var marked string
	if end.Line == start.Line && end.Col > start.Col {
		marked = line[len(runesBefore):min(int(end.Col-1), len(line))]
	} else {
		marked = line[len(runesBefore):]
	}
	n := max(runewidth.StringWidth(expandTabs(marked)), 1)
	fmt.Fprintf(w, " %s %s%s\n", p.gutter.Sprintf("%*s |", width, ""), strings.Repeat(" ", pad),
		p.caret.Sprint("^"+strings.Repeat("~", n-1)))
}

// prefixRunes returns the first n bytes of line, clamped.
func prefixRunes(line string, n uint32) string {
	if int(n) > len(line) {
		return line
	}
	return line[:n]
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
