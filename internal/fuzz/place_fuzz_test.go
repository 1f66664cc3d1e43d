package fuzztests

import (
	"context"
	"testing"
	"time"

	"place/internal/diag"
	"place/internal/lexer"
	"place/internal/place"
	"place/internal/source"
	"place/internal/testkit"
	"place/internal/token"
)

// expandTimeout bounds a single rewrite. Anything slower points at a loop
// in marker evaluation.
const expandTimeout = 5 * time.Second

func FuzzPlaceExpand(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.place", input))
		s := lexer.Parse(file, lexer.Options{KeepDocComments: true})

		ctx, cancel := context.WithTimeout(context.Background(), expandTimeout)
		defer cancel()

		var out token.Stream
		done := make(chan struct{})
		go func() {
			defer close(done)
			out = place.Expand(s)
			// печать тоже должна завершаться
			_ = out.String()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("expand hang detected: took longer than %v\ninput (%d bytes): %q",
				expandTimeout, len(input), truncateForLog(input, 200))
		}

		if err := testkit.CheckExpandedSpans(out, file); err != nil {
			t.Fatalf("expanded spans: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzPlacePassThrough checks that clean input without markers is
// returned unchanged.
func FuzzPlacePassThrough(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.place", input))
		bag := diag.NewBag(16)
		s := lexer.Parse(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if bag.HasErrors() || hasMarker(s) {
			return
		}

		out, err := place.Place(s)
		if err != nil {
			t.Fatalf("Place failed on marker-free input: %v\ninput: %q", err, truncateForLog(input, 200))
		}
		if !token.Equal(out, s) {
			t.Fatalf("pass-through changed tokens:\n got: %s\nwant: %s", out, s)
		}
	})
}

func hasMarker(s token.Stream) bool {
	found := false
	token.Walk(s, func(tok token.Token, _ int) {
		if tok.Kind == token.Ident && place.IsMarker(tok.Text) {
			found = true
		}
	})
	return found
}
