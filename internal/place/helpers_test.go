package place_test

import (
	"errors"
	"testing"

	"place/internal/diag"
	"place/internal/lexer"
	"place/internal/place"
	"place/internal/source"
	"place/internal/token"
)

func parse(t *testing.T, src string) token.Stream {
	t.Helper()
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	file := fs.Get(fs.AddVirtual("test.rs", []byte(src)))
	s := lexer.Parse(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != 0 {
		t.Fatalf("parse %q: %+v", src, bag.Items())
	}
	return s
}

func mustPlace(t *testing.T, src string) token.Stream {
	t.Helper()
	out, err := place.Place(parse(t, src))
	if err != nil {
		t.Fatalf("Place(%q): %v", src, err)
	}
	return out
}

func placeError(t *testing.T, src string) *place.Error {
	t.Helper()
	_, err := place.Place(parse(t, src))
	var perr *place.Error
	if !errors.As(err, &perr) {
		t.Fatalf("Place(%q) error = %v, want *place.Error", src, err)
	}
	return perr
}
