// Package token defines the token-tree model the rewriting engine works on.
// Invariants:
//   - A Stream is an ordered slice; streams are treated as values and are
//     never mutated after construction. Operations build new slices.
//   - Group tokens own their contents in Token.Stream; Delimiter None marks a
//     virtual group without surface brackets.
//   - Punct tokens carry exactly one character; multi-character operators are
//     sequences of Joint punctuation followed by an Alone one.
//   - Literal tokens keep their surface spelling in Text; decoding lives in
//     package literal.
//   - Spans are for diagnostics only and never affect evaluation.
package token
