package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"place/internal/lexer"
	"place/internal/source"
	"place/internal/token"
)

// CheckItemSpans runs span invariants on flat lexer output:
// 1) every item span lies in sf and within its content bounds
// 2) item starts never go backwards
// 3) the last item is EOF and nothing follows it
func CheckItemSpans(items []lexer.Item, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var prev uint32
	for i, it := range items {
		if err := checkBounds(it.Span, sf.ID, lenContent); err != nil {
			return fmt.Errorf("item %d (%s): %w", i, it.Kind, err)
		}
		if it.Span.Start < prev {
			return fmt.Errorf("item %d (%s) starts at %d before previous start %d", i, it.Kind, it.Span.Start, prev)
		}
		prev = it.Span.Start
		if it.Kind == lexer.ItemEOF && i != len(items)-1 {
			return fmt.Errorf("item %d is EOF but %d items follow", i, len(items)-1-i)
		}
	}
	if len(items) == 0 || items[len(items)-1].Kind != lexer.ItemEOF {
		return fmt.Errorf("item list does not end with EOF")
	}
	return nil
}

// CheckTreeSpans runs span invariants on a freshly parsed token tree:
// 1) every span lies in sf and within its content bounds
// 2) leaf tokens have non-empty spans
// 3) a group span covers the spans of all its children
// 4) siblings appear in source order
func CheckTreeSpans(s token.Stream, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkLevel(s, sf.ID, lenContent, nil)
}

func checkLevel(s token.Stream, id source.FileID, limit uint32, parent *token.Token) error {
	var prev uint32
	for i, tok := range s {
		sp := tok.Span
		if err := checkBounds(sp, id, limit); err != nil {
			return fmt.Errorf("token %d %s: %w", i, tok.Kind, err)
		}
		if tok.Kind != token.Group && sp.Empty() {
			return fmt.Errorf("token %d %s has empty span %v", i, tok.Kind, sp)
		}
		if sp.Start < prev {
			return fmt.Errorf("token %d %s starts at %d before previous sibling at %d", i, tok.Kind, sp.Start, prev)
		}
		prev = sp.Start
		if parent != nil && (sp.Start < parent.Span.Start || sp.End > parent.Span.End) {
			return fmt.Errorf("token %d %s span %v is outside group span %v", i, tok.Kind, sp, parent.Span)
		}
		if tok.Kind == token.Group {
			if err := checkLevel(tok.Stream, id, limit, &tok); err != nil {
				return fmt.Errorf("in %s group at %v: %w", tok.Delim, sp, err)
			}
		}
	}
	return nil
}

// CheckExpandedSpans checks a rewritten stream: tokens are reordered and
// synthesized freely, but every non-zero span must still point into sf.
func CheckExpandedSpans(s token.Stream, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	var firstErr error
	token.Walk(s, func(tok token.Token, depth int) {
		if firstErr != nil || tok.Span.IsZero() {
			return
		}
		if err := checkBounds(tok.Span, sf.ID, lenContent); err != nil {
			firstErr = fmt.Errorf("%s at depth %d: %w", tok.Kind, depth, err)
		}
	})
	return firstErr
}

func checkBounds(sp source.Span, id source.FileID, limit uint32) error {
	if sp.File != id {
		return fmt.Errorf("span file mismatch: got=%d want=%d", sp.File, id)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("inverted span %v", sp)
	}
	if sp.End > limit {
		return fmt.Errorf("span end beyond content: %d > %d", sp.End, limit)
	}
	return nil
}
