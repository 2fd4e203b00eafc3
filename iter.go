package strview

import (
	"unicode/utf8"

	"github.com/dshills/strview/internal/lease"
)

// Chars iterates the runes of a text as in-place read handles, from
// either end. Next and NextBack advance opposite ends of one shared
// remainder, so they interleave freely and between them yield each
// rune exactly once. Iteration is not restartable: once the ends meet,
// the iterator stays exhausted.
type Chars struct {
	rest string
}

// NewChars returns an iterator over every rune of s.
func NewChars(s string) *Chars {
	return &Chars{rest: s}
}

// Next yields a handle to the first unvisited rune and advances the
// front. ok is false once the iterator is exhausted.
func (it *Chars) Next() (c Char, ok bool) {
	if len(it.rest) == 0 {
		return Char{}, false
	}
	_, width := utf8.DecodeRuneInString(it.rest)
	c = Char{s: it.rest[:width]}
	it.rest = it.rest[width:]
	return c, true
}

// NextBack yields a handle to the last unvisited rune and advances the
// back. ok is false once the iterator is exhausted.
func (it *Chars) NextBack() (c Char, ok bool) {
	if len(it.rest) == 0 {
		return Char{}, false
	}
	_, width := utf8.DecodeLastRuneInString(it.rest)
	n := len(it.rest)
	c = Char{s: it.rest[n-width:]}
	it.rest = it.rest[:n-width]
	return c, true
}

// Rest returns the unvisited remainder.
func (it *Chars) Rest() string {
	return it.rest
}

// CharsMut iterates the runes of a mutable text as exclusive write
// handles. Yields and remainder are split with clipped capacity, so
// neither a yielded handle nor the Rest slice can be resliced onto
// the other's bytes. Directions interleave as with Chars.
type CharsMut struct {
	rest []byte
	ls   *lease.Lease // nil unless checked out of a Buffer
}

// NewCharsMut returns an iterator over every rune of b. The caller
// hands b over for the iterator's lifetime: until iteration ends and
// the yielded handles are dropped, b must not be reached through
// anything else. Buffer.AcquireChars is the checked alternative.
func NewCharsMut(b []byte) *CharsMut {
	return &CharsMut{rest: b}
}

// Next yields a write handle to the first unvisited rune and advances
// the front. ok is false once the iterator is exhausted.
func (it *CharsMut) Next() (c CharMut, ok bool) {
	if len(it.rest) == 0 {
		return CharMut{}, false
	}
	_, width := utf8.DecodeRune(it.rest)
	c = CharMut{b: it.rest[:width:width], ls: it.ls}
	it.rest = it.rest[width:]
	return c, true
}

// NextBack yields a write handle to the last unvisited rune and
// advances the back. ok is false once the iterator is exhausted.
func (it *CharsMut) NextBack() (c CharMut, ok bool) {
	if len(it.rest) == 0 {
		return CharMut{}, false
	}
	_, width := utf8.DecodeLastRune(it.rest)
	n := len(it.rest)
	c = CharMut{b: it.rest[n-width : n : n], ls: it.ls}
	it.rest = it.rest[: n-width : n-width]
	return c, true
}

// Rest returns the unvisited remainder.
func (it *CharsMut) Rest() []byte {
	return it.rest
}
