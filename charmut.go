package strview

import (
	"unicode/utf8"

	"github.com/dshills/strview/internal/casemap"
	"github.com/dshills/strview/internal/lease"
)

// CharMut is an exclusive handle to a single rune that can be rewritten
// in place. Every write is size-preserving: the new rune must encode to
// exactly the bytes the old one occupied, so the surrounding text never
// shifts and stays valid UTF-8.
//
// The handle aliases the caller's bytes. While it is live, those bytes
// must not be reached through anything else: NewCharMut leaves that
// contract to the caller, Buffer.AcquireChar enforces it at runtime.
// Handles checked out of a Buffer panic on their write paths once
// released.
type CharMut struct {
	b  []byte
	ls *lease.Lease // nil unless checked out of a Buffer
}

// NewCharMut wraps b, which must be exactly one encoded rune, under the
// same validation as NewChar. The caller hands the bytes over for the
// handle's lifetime.
func NewCharMut(b []byte) (CharMut, error) {
	if !singleRune(byteString(b)) {
		return CharMut{}, ErrNotSingleRune
	}
	return CharMut{b: b}, nil
}

// MustCharMut is NewCharMut, panicking on error.
func MustCharMut(b []byte) CharMut {
	c, err := NewCharMut(b)
	if err != nil {
		panic("strview: " + err.Error())
	}
	return c
}

// Rune returns the rune the handle addresses.
func (c CharMut) Rune() rune {
	r, _ := utf8.DecodeRune(c.b)
	return r
}

// Size returns the rune's encoded length in bytes.
func (c CharMut) Size() int {
	return len(c.b)
}

// Text returns the encoded rune without copying. The string aliases the
// handle's bytes and observes later replacements.
func (c CharMut) Text() string {
	return byteString(c.b)
}

// String implements fmt.Stringer.
func (c CharMut) String() string {
	return c.Text()
}

// Char returns a read-only handle over the same bytes.
func (c CharMut) Char() Char {
	return Char{s: byteString(c.b)}
}

// Bytes returns the raw mutable span. Writing anything through it other
// than a valid encoding of the span's exact length breaks the handle's
// guarantees and can leave the surrounding text invalid; Replace is the
// checked path.
func (c CharMut) Bytes() []byte {
	c.checkLive()
	return c.b
}

// SpanIn reports the handle's byte range within base, which must be the
// buffer the handle was carved from. ok is false when the handle does
// not alias base's memory.
func (c CharMut) SpanIn(base []byte) (Span, bool) {
	return byteSpanIn(base, c.b)
}

// SameSize reports whether r encodes to exactly the handle's byte
// length. Invalid runes (surrogates, negative, beyond MaxRune) never
// match.
func (c CharMut) SameSize(r rune) bool {
	return utf8.RuneLen(r) == len(c.b)
}

// Replace overwrites the rune with r, byte for byte. When r's encoding
// differs in length it fails with ErrSizeMismatch and writes nothing.
func (c CharMut) Replace(r rune) error {
	c.checkLive()
	if !c.SameSize(r) {
		return ErrSizeMismatch
	}
	utf8.EncodeRune(c.b, r)
	return nil
}

// MakeUpper rewrites the rune with its full Unicode uppercase mapping.
// A mapping that expands to more than one rune (ß to "SS") cannot fit
// the span and fails with ErrSizeMismatch, leaving it untouched.
func (c CharMut) MakeUpper() error {
	mapped, single := casemap.Upper(c.Rune())
	if !single {
		return ErrSizeMismatch
	}
	return c.Replace(mapped)
}

// MakeLower rewrites the rune with its full Unicode lowercase mapping,
// with the same contract as MakeUpper.
func (c CharMut) MakeLower() error {
	mapped, single := casemap.Lower(c.Rune())
	if !single {
		return ErrSizeMismatch
	}
	return c.Replace(mapped)
}

func (c CharMut) checkLive() {
	if c.ls != nil && c.ls.Released() {
		panic("strview: use of CharMut after release")
	}
}
