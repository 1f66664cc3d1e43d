package lexer

import (
	"place/internal/diag"
	"place/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives lexical and tree diagnostics; nil drops them
	// and lexing continues.
	Reporter diag.Reporter
	// KeepDocComments lowers `///` and `/** */` comments into
	// `#[doc = "..."]` attribute tokens. Otherwise they are skipped
	// like plain comments.
	KeepDocComments bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
