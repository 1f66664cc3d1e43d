package source

import (
	"fmt"
)

// Span is a half-open byte range inside one file of a FileSet.
type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// IsZero reports whether the span is the zero value. Synthesized tokens
// without a source position carry the zero span.
func (s Span) IsZero() bool {
	return s == Span{}
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged; s is returned unchanged.
// A zero span is treated as absent.
func (s Span) Cover(other Span) Span {
	if s.IsZero() {
		return other
	}
	if other.IsZero() || s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Head returns the empty span at the start of s.
func (s Span) Head() Span {
	return Span{File: s.File, Start: s.Start, End: s.Start}
}

// Tail returns the empty span at the end of s.
func (s Span) Tail() Span {
	return Span{File: s.File, Start: s.End, End: s.End}
}
