package diag

import (
	"testing"

	"place/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/macros/gen.rs.place", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SynInfo,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynUnclosedDelimiter,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error SYN2001 macros/gen.rs.place:1:1 first line second\n" +
		"note SYN2001 macros/gen.rs.place:2:1 note line\n" +
		"warning SYN2000 macros/gen.rs.place:2:1 another"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestBagLimitAndSort(t *testing.T) {
	bag := NewBag(2)
	first := NewError(PlcExpectedComma, source.Span{Start: 9, End: 10}, "b")
	second := NewError(PlcExpectedGroup, source.Span{Start: 1, End: 2}, "a")
	if !bag.Add(first) || !bag.Add(second) {
		t.Fatalf("bag rejected diagnostics below the limit")
	}
	if bag.Add(first) {
		t.Fatalf("bag accepted a diagnostic above the limit")
	}
	bag.Sort()
	if got := bag.Items()[0].Message; got != "a" {
		t.Fatalf("first after sort = %q, want %q", got, "a")
	}
	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("error severity must count as error and warning")
	}
}

func TestCodeClass(t *testing.T) {
	tests := []struct {
		code Code
		want Class
		id   string
	}{
		{PlcExpectedGroup, ClassStructural, "PLC3101"},
		{PlcExpectedString, ClassKind, "PLC3201"},
		{PlcUnknownCase, ClassValue, "PLC3301"},
		{LexBadNumber, ClassOther, "LEX1004"},
	}
	for _, tt := range tests {
		if got := tt.code.Class(); got != tt.want {
			t.Errorf("%v.Class() = %v, want %v", tt.code, got, tt.want)
		}
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("ID() = %q, want %q", got, tt.id)
		}
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 2}
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil)
	r.Report(LexUnknownChar, SevError, sp, "unknown character", nil)
	ReportError(r, LexBadNumber, sp, "bad").WithNote(sp, "here").Emit()
	if bag.Len() != 2 {
		t.Fatalf("bag has %d diagnostics, want 2", bag.Len())
	}
	if len(bag.Items()[1].Notes) != 1 {
		t.Fatalf("note lost: %+v", bag.Items()[1])
	}
}
