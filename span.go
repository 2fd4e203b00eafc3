package strview

import "fmt"

// Span is a half-open byte range [Start, End) within some base text.
// Views report their position as a Span, and char handles can recover
// theirs with SpanIn. Callers coordinating manual exclusive access can
// use Overlaps to check two handles against each other before writing.
type Span struct {
	Start int // inclusive
	End   int // exclusive
}

// NewSpan creates a Span from start and end offsets.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// IsValid returns true if Start <= End.
func (s Span) IsValid() bool {
	return s.Start <= s.End
}

// Contains returns true if the given byte offset is within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// ContainsSpan returns true if other lies entirely within this span.
func (s Span) ContainsSpan(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Overlaps returns true if the two spans share at least one byte.
// Empty spans never overlap anything.
func (s Span) Overlaps(other Span) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	return s.Start < other.End && other.Start < s.End
}

// Intersect returns the shared range of two spans, or an empty span at
// the would-be intersection point if they do not overlap.
func (s Span) Intersect(other Span) Span {
	start := s.Start
	if other.Start > start {
		start = other.Start
	}
	end := s.End
	if other.End < end {
		end = other.End
	}
	if start >= end {
		return Span{Start: start, End: start}
	}
	return Span{Start: start, End: end}
}
