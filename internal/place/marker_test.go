package place

import (
	"testing"

	"place/internal/source"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		ok   bool
	}{
		{"__ignore__", OpIgnore, true},
		{"__identity__", OpIdentity, true},
		{"__id__", OpIdentity, true},
		{"__dollar__", OpDollar, true},
		{"__s__", OpDollar, true},
		{"__string__", OpString, true},
		{"__str__", OpString, true},
		{"__head__", OpHead, true},
		{"__tail__", OpTail, true},
		{"__start__", OpStart, true},
		{"__last__", OpLast, true},
		{"__reverse__", OpReverse, true},
		{"__identifier__", OpIdentifier, true},
		{"__ident__", OpIdentifier, true},
		{"__stringify__", OpStringify, true},
		{"__strfy__", OpStringify, true},
		{"__replace_newline__", OpReplaceNewline, true},
		{"__repnl__", OpReplaceNewline, true},
		{"__str_replace__", OpStrReplace, true},
		{"__repstr__", OpStrReplace, true},
		{"__tocase__", OpToCase, true},
		{"__TO_CASE__", OpToCase, true},
		{"__ToCase__", OpToCase, true},
		{"__tO_cAsE__", OpToCase, true},
		{"__STRING__", 0, false},
		{"__Ignore__", 0, false},
		{"ToCase", 0, false},
		{"_tocase_", 0, false},
		{"__to_case", 0, false},
		{"string", 0, false},
	}
	sp := source.Span{Start: 3, End: 9}
	for _, tt := range tests {
		m, ok := Lookup(tt.name, sp)
		if ok != tt.ok {
			t.Errorf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if m.Op != tt.op || m.Name != tt.name || m.Span != sp {
			t.Errorf("Lookup(%q) = %+v", tt.name, m)
		}
	}
}

func TestCaseSpec(t *testing.T) {
	m, _ := Lookup("__TO_CASE__", source.Span{})
	if got := m.CaseSpec(); got != "TO_CASE" {
		t.Fatalf("CaseSpec = %q", got)
	}
}

func TestEveryOpHasName(t *testing.T) {
	for op := OpIgnore; op <= OpToCase; op++ {
		m, ok := Lookup(op.String(), source.Span{})
		if !ok || m.Op != op {
			t.Fatalf("%v does not resolve to itself", op)
		}
	}
	if !IsMarker("__repnl__") || IsMarker("repnl") {
		t.Fatal("IsMarker mismatch")
	}
	if len(Names()) != len(markers)+2 {
		t.Fatal("Names() incomplete")
	}
}
