package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"place/internal/diag"
	"place/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.place", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 8, End: 28},
		"Unterminated string literal",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{name: "Absolute path", mode: PathModeAbsolute, contains: "/home/user/project/src/test.place"},
		{name: "Relative path", mode: PathModeRelative, contains: "src/test.place"},
		{name: "Basename only", mode: PathModeBasename, contains: "test.place:1:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			for _, want := range []string{"ERROR", "LEX1002", "Unterminated string"} {
				if !strings.Contains(output, want) {
					t.Errorf("Expected %q in output, got:\n%s", want, output)
				}
			}
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "Short path - as is", path: "test.place", expected: "test.place"},
		{name: "Long absolute path - basename", path: "/very/long/absolute/path/to/some/nested/directory/file.place", expected: "file.place:1:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileID := fs.AddVirtual(tt.path, []byte("let x = 42\n"))
			bag := diag.NewBag(10)
			bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 8, End: 10}, "Test warning"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
			if output := buf.String(); !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.expected, output)
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.place", []byte("let x = __string__(1)\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.PlcExpectedString, source.Span{File: fileID, Start: 8, End: 18}, "expected string literal"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	want := "t.place:1:9: ERROR PLC3201: expected string literal\n" +
		" 1 | let x = __string__(1)\n" +
		"   |         ^~~~~~~~~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyContextAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("n.place", []byte("(a\nb]\n"))

	bag := diag.NewBag(4)
	d := diag.NewError(diag.SynMismatchedDelimiter, source.Span{File: fileID, Start: 4, End: 5}, "mismatched closing delimiter `]`")
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 1}, "unclosed delimiter `(`")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 1, ShowNotes: true})
	output := buf.String()

	for _, want := range []string{
		"n.place:2:2: ERROR SYN2003",
		" 1 | (a\n 2 | b]\n",
		"note: n.place:1:1: unclosed delimiter `(`",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("notes printed with ShowNotes=false:\n%s", buf.String())
	}
}

func TestPrettyUnknownFile(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.PlcExpectedGroup, source.Span{File: 7}, "expected a group"))

	var buf bytes.Buffer
	Pretty(&buf, bag, source.NewFileSet(), PrettyOpts{})
	if got := buf.String(); got != "<unknown>: ERROR PLC3101: expected a group\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
