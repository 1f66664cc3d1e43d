package diag

import (
	"place/internal/source"
)

// Note is a secondary span with its own message.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding attributed to a source position.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
