package source

import (
	"fmt"
)

// Span is a half-open range [Start, Stop) inside one source unit.
// Invariant: Start <= Stop.
type Span struct {
	File  FileID
	Start Point // включительно
	Stop  Point // не включительно
}

func (s Span) Empty() bool {
	return s.Start.Off == s.Stop.Off
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() uint32 {
	return s.Stop.Off - s.Start.Off
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d:%d-%d:%d", s.File, s.Start.Row, s.Start.Col, s.Stop.Row, s.Stop.Col)
}

// Valid reports whether Start does not come after Stop.
func (s Span) Valid() bool {
	return s.Start.Compare(s.Stop) <= 0 && s.Start.Off <= s.Stop.Off
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start.Less(s.Start) {
		s.Start = other.Start
	}
	if s.Stop.Less(other.Stop) {
		s.Stop = other.Stop
	}
	return s
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File &&
		s.Start.Compare(other.Start) <= 0 &&
		other.Stop.Compare(s.Stop) <= 0
}

// Precedes reports whether s ends at or before other starts.
func (s Span) Precedes(other Span) bool {
	return s.File == other.File && s.Stop.Compare(other.Start) <= 0
}

// Text slices the covered bytes out of content.
// Returns "" when the span does not fit into content.
func (s Span) Text(content []byte) string {
	if int(s.Stop.Off) > len(content) || s.Start.Off > s.Stop.Off {
		return ""
	}
	return string(content[s.Start.Off:s.Stop.Off])
}
