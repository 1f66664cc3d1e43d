package place

import (
	"strings"

	"place/internal/source"
)

// Op identifies a builtin operation.
type Op uint8

const (
	OpIgnore Op = iota
	OpIdentity
	OpDollar
	OpString
	OpHead
	OpTail
	OpStart
	OpLast
	OpReverse
	OpIdentifier
	OpStringify
	OpReplaceNewline
	OpStrReplace
	OpToCase
)

var opNames = [...]string{
	OpIgnore:         "__ignore__",
	OpIdentity:       "__identity__",
	OpDollar:         "__dollar__",
	OpString:         "__string__",
	OpHead:           "__head__",
	OpTail:           "__tail__",
	OpStart:          "__start__",
	OpLast:           "__last__",
	OpReverse:        "__reverse__",
	OpIdentifier:     "__identifier__",
	OpStringify:      "__stringify__",
	OpReplaceNewline: "__replace_newline__",
	OpStrReplace:     "__str_replace__",
	OpToCase:         "__to_case__",
}

// String returns the canonical marker spelling.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "__unknown__"
}

// markers maps every exact spelling, aliases included, to its Op.
// The case conversion family is matched separately.
var markers = map[string]Op{
	"__ignore__":          OpIgnore,
	"__identity__":        OpIdentity,
	"__id__":              OpIdentity,
	"__dollar__":          OpDollar,
	"__s__":               OpDollar,
	"__string__":          OpString,
	"__str__":             OpString,
	"__head__":            OpHead,
	"__tail__":            OpTail,
	"__start__":           OpStart,
	"__last__":            OpLast,
	"__reverse__":         OpReverse,
	"__identifier__":      OpIdentifier,
	"__ident__":           OpIdentifier,
	"__stringify__":       OpStringify,
	"__strfy__":           OpStringify,
	"__replace_newline__": OpReplaceNewline,
	"__repnl__":           OpReplaceNewline,
	"__str_replace__":     OpStrReplace,
	"__repstr__":          OpStrReplace,
}

// Marker is a recognized marker identifier.
type Marker struct {
	Op   Op
	Name string      // spelling as written
	Span source.Span // position of the marker identifier
}

// Lookup resolves an identifier spelling to a marker. Spellings are exact,
// except __tocase__ and __to_case__, which match in any letter case.
func Lookup(name string, sp source.Span) (Marker, bool) {
	if op, ok := markers[name]; ok {
		return Marker{Op: op, Name: name, Span: sp}, true
	}
	if len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		switch strings.ToLower(name) {
		case "__tocase__", "__to_case__":
			return Marker{Op: OpToCase, Name: name, Span: sp}, true
		}
	}
	return Marker{}, false
}

// IsMarker reports whether name spells any marker.
func IsMarker(name string) bool {
	_, ok := Lookup(name, source.Span{})
	return ok
}

// CaseSpec returns the case specifier encoded in a to_case marker spelling,
// the name without its underscore fences: __ToCase__ gives ToCase.
func (m Marker) CaseSpec() string {
	return strings.Trim(m.Name, "_")
}

// Names returns every recognized spelling in the exact table.
func Names() []string {
	out := make([]string, 0, len(markers)+2)
	for name := range markers {
		out = append(out, name)
	}
	return append(out, "__tocase__", "__to_case__")
}
