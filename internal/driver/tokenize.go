package driver

import (
	"context"

	"place/internal/diag"
	"place/internal/lexer"
	"place/internal/source"
	"place/internal/token"
	"place/internal/trace"
)

// TokenizeResult holds the flat lexer output and the assembled tree of one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Items   []lexer.Item
	Tree    token.Stream
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it. "-" is not accepted here; use
// TokenizeSource for stdin.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	stop := opts.Timer.Start(string(StageLoad))
	fileID, err := fs.Load(path)
	stop()
	if err != nil {
		trace.Error(ctx, "load", err)
		return nil, err
	}
	return tokenizeFile(ctx, fs, fileID, opts), nil
}

// TokenizeSource lexes in-memory content registered under name.
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(ctx, fs, fs.AddVirtual(name, content), opts)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) *TokenizeResult {
	file := fs.Get(id)
	bag := diag.NewBag(opts.maxDiagnostics())

	// плоский проход без отчётов: все LEX/SYN диагностики даёт Parse
	_, span := trace.Start(ctx, trace.ScopePass, string(StageLex))
	stop := opts.Timer.Start(string(StageLex))
	items := lexer.New(file, lexer.Options{KeepDocComments: opts.KeepDocComments}).All()
	stop()
	span.End("")

	tree := parseTree(ctx, file, bag, opts)
	return &TokenizeResult{FileSet: fs, File: file, Items: items, Tree: tree, Bag: bag}
}

func parseTree(ctx context.Context, file *source.File, bag *diag.Bag, opts Options) token.Stream {
	_, span := trace.Start(ctx, trace.ScopePass, string(StageTree))
	defer span.End("")
	defer opts.Timer.Start(string(StageTree))()
	return lexer.Parse(file, lexer.Options{
		Reporter:        diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		KeepDocComments: opts.KeepDocComments,
	})
}
