package literal

import "errors"

var (
	// ErrNotLiteral is returned when Decode receives a non-literal token.
	ErrNotLiteral = errors.New("not a literal")
	// ErrIntegerTooLarge is returned for integers above 2^128-1.
	ErrIntegerTooLarge = errors.New("integer too large")
	// ErrBadNumber is returned when a numeric literal cannot be parsed.
	ErrBadNumber = errors.New("bad number literal")
	// ErrBadEscape is returned for an invalid escape sequence.
	ErrBadEscape = errors.New("invalid escape sequence")
	// ErrBadLiteral is returned when the literal spelling is malformed.
	ErrBadLiteral = errors.New("malformed literal")
)
