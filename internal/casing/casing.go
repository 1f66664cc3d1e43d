// Package casing re-joins the words of an identifier in one of six
// naming conventions.
package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Spec selects a naming convention. Each value is named after the way
// the word pair "to case" is spelled in that convention.
type Spec uint8

const (
	// UpperFlat is TOCASE.
	UpperFlat Spec = iota
	// Flat is tocase.
	Flat
	// Camel is toCase.
	Camel
	// Pascal is ToCase.
	Pascal
	// Snake is to_case.
	Snake
	// UpperSnake is TO_CASE.
	UpperSnake
)

var specNames = [...]string{
	UpperFlat:  "TOCASE",
	Flat:       "tocase",
	Camel:      "toCase",
	Pascal:     "ToCase",
	Snake:      "to_case",
	UpperSnake: "TO_CASE",
}

// ParseSpec matches s exactly against the six specifier spellings.
func ParseSpec(s string) (Spec, bool) {
	for i, name := range specNames {
		if name == s {
			return Spec(i), true
		}
	}
	return 0, false
}

func (s Spec) String() string {
	if int(s) < len(specNames) {
		return specNames[s]
	}
	return "unknown"
}

// Specs lists every specifier in declaration order.
func Specs() []Spec {
	return []Spec{UpperFlat, Flat, Camel, Pascal, Snake, UpperSnake}
}

// Convert rewrites ident in the convention selected by spec.
func Convert(spec Spec, ident string) string {
	words := Words(ident)
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	title := cases.Title(language.Und)

	out := make([]string, len(words))
	for i, w := range words {
		switch spec {
		case UpperFlat, UpperSnake:
			out[i] = upper.String(w)
		case Flat, Snake:
			out[i] = lower.String(w)
		case Camel:
			if i == 0 {
				out[i] = lower.String(w)
			} else {
				out[i] = title.String(w)
			}
		case Pascal:
			out[i] = title.String(w)
		}
	}
	if spec == Snake || spec == UpperSnake {
		return strings.Join(out, "_")
	}
	return strings.Join(out, "")
}

// Words splits ident into words on '_', '-' and spaces, on a lower case
// letter or digit followed by an upper case one, and before the last
// capital of an acronym followed by a lower case letter ("HTTPServer" is
// "HTTP", "Server"). Digits stay with the word they follow.
func Words(ident string) []string {
	var words []string
	for _, part := range strings.FieldsFunc(ident, isSeparator) {
		words = append(words, splitPart(part)...)
	}
	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func splitPart(part string) []string {
	runes := []rune(part)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		if !unicode.IsUpper(cur) {
			continue
		}
		boundary := unicode.IsLower(prev) || unicode.IsDigit(prev)
		if !boundary && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}
