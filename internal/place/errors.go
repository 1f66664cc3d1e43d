package place

import (
	"errors"
	"fmt"

	"place/internal/diag"
	"place/internal/literal"
	"place/internal/source"
	"place/internal/token"
)

// Error is a malformed marker usage found while rewriting. It carries the
// position of the offending token, or of the marker call when no token is
// available.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Tokens renders the error as `compile_error ! ("msg")` positioned at the
// offending span, the shape a macro host reports as a user diagnostic.
func (e *Error) Tokens() token.Stream {
	sp := e.Span
	return token.Stream{
		token.NewIdent("compile_error", sp),
		token.NewPunct('!', token.Alone, sp),
		token.NewGroup(token.Paren, token.Stream{
			token.NewLiteral(token.LitStr, literal.Quote(e.Msg), sp),
		}, sp),
	}
}

// Diagnostic converts the error into a diagnostic value.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}

func errorAt(code diag.Code, sp source.Span, format string, args ...any) *Error {
	return &Error{Code: code, Span: sp, Msg: fmt.Sprintf(format, args...)}
}

// literalError maps a literal decoding failure to a positioned error.
func literalError(err error, sp source.Span) *Error {
	code := diag.PlcBadLiteral
	switch {
	case errors.Is(err, literal.ErrIntegerTooLarge):
		code = diag.PlcIntegerTooLarge
	case errors.Is(err, literal.ErrBadNumber):
		code = diag.PlcBadNumber
	case errors.Is(err, literal.ErrBadEscape):
		code = diag.PlcBadEscape
	}
	return &Error{Code: code, Span: sp, Msg: err.Error()}
}
