// Package diag defines the diagnostic model shared by the lexer, the tree
// builder, the rewriting engine and the driver.
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable string form (codes.go).
//     Codes of the rewriting engine are grouped by class: structural (PLC31xx),
//     kind (PLC32xx) and value (PLC33xx).
//   - Message – short, actionable text.
//   - Primary – the source.Span the problem is attributed to.
//   - Notes – optional secondary spans, e.g. where an unclosed bracket opened.
//
// Producers emit through a Reporter (reporter.go); BagReporter collects into a
// capped Bag that supports sorting and deduplication. Package diag does no
// rendering: pretty and JSON output live in internal/diagfmt.
package diag
