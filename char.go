package strview

import "unicode/utf8"

// Char is a read-only handle to a single rune stored in place inside a
// larger text. The handle addresses the rune's encoded bytes directly;
// nothing is copied, and any number of read handles may overlap.
//
// A Char is validated once, at construction. Accessors trust the
// invariant and never revalidate.
type Char struct {
	s string
}

// NewChar wraps s, which must be exactly one encoded rune: not empty,
// not more than one rune, no bytes beyond the first rune, and a valid
// encoding. Anything else fails with ErrNotSingleRune.
func NewChar(s string) (Char, error) {
	if !singleRune(s) {
		return Char{}, ErrNotSingleRune
	}
	return Char{s: s}, nil
}

// MustChar is NewChar, panicking on error.
func MustChar(s string) Char {
	c, err := NewChar(s)
	if err != nil {
		panic("strview: " + err.Error())
	}
	return c
}

// Rune returns the rune the handle addresses.
func (c Char) Rune() rune {
	r, _ := utf8.DecodeRuneInString(c.s)
	return r
}

// Size returns the rune's encoded length in bytes.
func (c Char) Size() int {
	return len(c.s)
}

// Text returns the encoded rune as a slice of the original text.
func (c Char) Text() string {
	return c.s
}

// String implements fmt.Stringer.
func (c Char) String() string {
	return c.s
}

// SpanIn reports the handle's byte range within base, which must be the
// text the handle was carved from. ok is false when the handle does not
// alias base's memory.
func (c Char) SpanIn(base string) (Span, bool) {
	return stringSpanIn(base, c.s)
}

// singleRune reports whether s is exactly one validly encoded rune.
func singleRune(s string) bool {
	r, width := utf8.DecodeRuneInString(s)
	if len(s) == 0 || width != len(s) {
		return false
	}
	// A literal U+FFFD decodes as (RuneError, 3) and is a real rune;
	// (RuneError, 1) means the byte is not a valid encoding at all.
	return r != utf8.RuneError || width > 1
}
