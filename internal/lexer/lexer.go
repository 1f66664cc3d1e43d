package lexer

import (
	"place/internal/source"
	"place/internal/token"
)

// ItemKind classifies flat lexer output.
type ItemKind uint8

const (
	ItemEOF ItemKind = iota
	ItemToken
	ItemOpen
	ItemClose
)

func (k ItemKind) String() string {
	switch k {
	case ItemToken:
		return "Token"
	case ItemOpen:
		return "Open"
	case ItemClose:
		return "Close"
	default:
		return "EOF"
	}
}

// Item is one flat lexeme: a leaf token or a single bracket.
// Parse assembles items into token trees.
type Item struct {
	Kind  ItemKind
	Token token.Token     // для ItemToken
	Delim token.Delimiter // для ItemOpen/ItemClose
	Span  source.Span
}

func tokenItem(tok token.Token) Item {
	return Item{Kind: ItemToken, Token: tok, Span: tok.Span}
}

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *Item  // 1 элементный буфер
	pending []Item // очередь элементов из doc-комментариев
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next item. After EOF it keeps returning EOF.
func (lx *Lexer) Next() Item {
	if lx.look != nil {
		it := *lx.look
		lx.look = nil
		return it
	}

	for len(lx.pending) == 0 {
		if !lx.skipTrivia() {
			break
		}
	}
	if len(lx.pending) > 0 {
		it := lx.pending[0]
		lx.pending = lx.pending[1:]
		return it
	}

	if lx.cursor.EOF() {
		return Item{Kind: ItemEOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == 'r' || ch == 'b':
		if it, ok := lx.scanPrefixed(); ok {
			return it
		}
		return lx.scanIdent()
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdent()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString(lx.cursor.Mark(), token.LitStr)
	case ch == '\'':
		return lx.scanQuote()
	default:
		return lx.scanPunctOrDelim()
	}
}

// Peek возвращает следующий элемент, не потребляя его.
func (lx *Lexer) Peek() Item {
	it := lx.Next()
	lx.look = &it
	return it
}

// All returns every item up to and including EOF.
func (lx *Lexer) All() []Item {
	var items []Item
	for {
		it := lx.Next()
		items = append(items, it)
		if it.Kind == ItemEOF {
			return items
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
