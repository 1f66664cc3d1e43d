package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"place/internal/lexer"
	"place/internal/source"
	"place/internal/token"
)

// SpanJSON is a byte range with optional resolved positions.
type SpanJSON struct {
	Start     uint32 `json:"start"`
	End       uint32 `json:"end"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// ItemJSON is the JSON form of one flat lexer item.
type ItemJSON struct {
	Kind    string   `json:"kind"`
	Token   string   `json:"token,omitempty"`
	Text    string   `json:"text,omitempty"`
	Lit     string   `json:"lit,omitempty"`
	Spacing string   `json:"spacing,omitempty"`
	Delim   string   `json:"delim,omitempty"`
	Span    SpanJSON `json:"span"`
}

// TreeJSON is the JSON form of a token tree node.
type TreeJSON struct {
	Kind     string     `json:"kind"`
	Text     string     `json:"text,omitempty"`
	Lit      string     `json:"lit,omitempty"`
	Spacing  string     `json:"spacing,omitempty"`
	Delim    string     `json:"delim,omitempty"`
	Span     SpanJSON   `json:"span"`
	Children []TreeJSON `json:"children,omitempty"`
}

func makeSpan(fs *source.FileSet, sp source.Span) SpanJSON {
	out := SpanJSON{Start: sp.Start, End: sp.End}
	if fs != nil && fs.Has(sp.File) {
		start, end := fs.Resolve(sp)
		out.StartLine, out.StartCol = start.Line, start.Col
		out.EndLine, out.EndCol = end.Line, end.Col
	}
	return out
}

func spanText(fs *source.FileSet, sp source.Span) string {
	if fs == nil || !fs.Has(sp.File) {
		return fmt.Sprintf("%d..%d", sp.Start, sp.End)
	}
	start, end := fs.Resolve(sp)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func leafKind(tok token.Token) string {
	switch tok.Kind {
	case token.Literal:
		return fmt.Sprintf("Literal(%s)", tok.Lit)
	case token.Punct:
		return fmt.Sprintf("Punct(%s)", tok.Spacing)
	default:
		return tok.Kind.String()
	}
}

// FormatItemsPretty prints one line per flat lexer item.
func FormatItemsPretty(w io.Writer, items []lexer.Item, fs *source.FileSet) error {
	for i, it := range items {
		var kind, text string
		switch it.Kind {
		case lexer.ItemToken:
			kind, text = leafKind(it.Token), it.Token.Text
		case lexer.ItemOpen:
			kind, text = "Open("+it.Delim.String()+")", it.Delim.Open()
		case lexer.ItemClose:
			kind, text = "Close("+it.Delim.String()+")", it.Delim.Close()
		default:
			kind = "EOF"
		}
		if _, err := fmt.Fprintf(w, "%4d: %-16s %-20q %s\n", i+1, kind, text, spanText(fs, it.Span)); err != nil {
			return err
		}
	}
	return nil
}

// FormatItemsJSON encodes items as an indented JSON array.
func FormatItemsJSON(w io.Writer, items []lexer.Item, fs *source.FileSet) error {
	out := make([]ItemJSON, 0, len(items))
	for _, it := range items {
		j := ItemJSON{Kind: it.Kind.String(), Span: makeSpan(fs, it.Span)}
		switch it.Kind {
		case lexer.ItemToken:
			j.Token = it.Token.Kind.String()
			j.Text = it.Token.Text
			if it.Token.Kind == token.Literal {
				j.Lit = it.Token.Lit.String()
			}
			if it.Token.Kind == token.Punct {
				j.Spacing = it.Token.Spacing.String()
			}
		case lexer.ItemOpen, lexer.ItemClose:
			j.Delim = it.Delim.String()
		}
		out = append(out, j)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatTreePretty prints the token tree, one node per line, indented by depth.
func FormatTreePretty(w io.Writer, s token.Stream, fs *source.FileSet) error {
	var b strings.Builder
	token.Walk(s, func(tok token.Token, depth int) {
		b.WriteString(strings.Repeat("  ", depth))
		if tok.Kind == token.Group {
			fmt.Fprintf(&b, "Group(%s) %s\n", tok.Delim, spanText(fs, tok.Span))
			return
		}
		fmt.Fprintf(&b, "%s %q %s\n", leafKind(tok), tok.Text, spanText(fs, tok.Span))
	})
	_, err := io.WriteString(w, b.String())
	return err
}

// BuildTree converts a stream into its JSON node form.
func BuildTree(s token.Stream, fs *source.FileSet) []TreeJSON {
	out := make([]TreeJSON, 0, len(s))
	for _, tok := range s {
		node := TreeJSON{Kind: tok.Kind.String(), Span: makeSpan(fs, tok.Span)}
		switch tok.Kind {
		case token.Group:
			node.Delim = tok.Delim.String()
			node.Children = BuildTree(tok.Stream, fs)
		case token.Literal:
			node.Text, node.Lit = tok.Text, tok.Lit.String()
		case token.Punct:
			node.Text, node.Spacing = tok.Text, tok.Spacing.String()
		default:
			node.Text = tok.Text
		}
		out = append(out, node)
	}
	return out
}

// FormatTreeJSON encodes the token tree as indented JSON.
func FormatTreeJSON(w io.Writer, s token.Stream, fs *source.FileSet) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildTree(s, fs))
}
