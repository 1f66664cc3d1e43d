package fuzztests

import (
	"testing"

	"place/internal/diag"
	"place/internal/lexer"
	"place/internal/source"
	"place/internal/testkit"
)

func FuzzLexerItems(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.place", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		reporter := diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Reporter: reporter, KeepDocComments: true})
		items := lx.All()
		if err := testkit.CheckItemSpans(items, file); err != nil {
			t.Fatalf("item spans: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

func FuzzTreeSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.place", input))

		bag := diag.NewBag(128)
		s := lexer.Parse(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}, KeepDocComments: true})
		if err := testkit.CheckTreeSpans(s, file); err != nil {
			t.Fatalf("tree spans: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
