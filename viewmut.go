package strview

import (
	"unicode/utf8"

	"github.com/dshills/strview/internal/lease"
)

// ViewMut is a window over a mutable byte text. It supports the same
// edge operations as View plus in-place, size-preserving writes to the
// windowed bytes: whole-window case folding, fills, equal-length
// overwrites, and per-rune write handles.
//
// A ViewMut is exclusive. It can roam anywhere in its base (extends
// reach outside the current window), so while it is live the whole base
// must not be reached through anything else, read or write. The raw
// constructors leave that contract to the caller; Buffer.AcquireView
// enforces it at runtime, and handles checked out of a Buffer panic on
// their write paths once released. Edge arithmetic and reads are not
// write paths.
type ViewMut struct {
	base []byte
	str  string // no-copy alias of base for the window engine
	win  window
	ls   *lease.Lease // nil unless checked out of a Buffer
}

// NewViewMut returns a view spanning all of base. The caller hands base
// over for the view's lifetime.
func NewViewMut(base []byte) *ViewMut {
	return &ViewMut{
		base: base,
		str:  byteString(base),
		win:  window{start: 0, size: len(base)},
	}
}

// NewViewMutAt returns a view of base[start:end) under the same
// construction contract as NewViewAt: bad edges panic, and validation
// happens here only.
func NewViewMutAt(base []byte, start, end int) *ViewMut {
	str := byteString(base)
	checkWindow(str, start, end)
	return &ViewMut{
		base: base,
		str:  str,
		win:  window{start: start, size: end - start},
	}
}

// Start returns the byte offset of the window's left edge in base.
func (v *ViewMut) Start() int {
	return v.win.start
}

// End returns the byte offset one past the window's right edge.
func (v *ViewMut) End() int {
	return v.win.end()
}

// Len returns the window's length in bytes.
func (v *ViewMut) Len() int {
	return v.win.size
}

// IsEmpty returns true if the window has zero length.
func (v *ViewMut) IsEmpty() bool {
	return v.win.size == 0
}

// RuneCount returns the number of runes inside the window.
func (v *ViewMut) RuneCount() int {
	return utf8.RuneCountInString(v.Text())
}

// Span returns the window's byte range within base.
func (v *ViewMut) Span() Span {
	return Span{Start: v.win.start, End: v.win.end()}
}

// Text returns the windowed bytes as a string without copying. The
// result aliases the base and observes later writes through the view.
func (v *ViewMut) Text() string {
	return v.str[v.win.start:v.win.end()]
}

// String implements fmt.Stringer.
func (v *ViewMut) String() string {
	return v.Text()
}

// View returns a read-only view of the same window. It aliases the same
// bytes, so it observes later writes; take it when mutation is done or
// between writes.
func (v *ViewMut) View() View {
	return View{base: v.str, win: v.win}
}

// Base returns the full base bytes. Like Bytes, this is a write path.
func (v *ViewMut) Base() []byte {
	v.checkLive()
	return v.base
}

// Bytes returns the windowed bytes, writable and clipped to the window.
// Writes must preserve both the window's byte length and UTF-8
// validity; Replace, Fill, and Overwrite are the checked paths.
func (v *ViewMut) Bytes() []byte {
	v.checkLive()
	return v.base[v.win.start:v.win.end():v.win.end()]
}

// Chars returns a write-handle iterator over the runes inside the
// window. The handles it yields stay valid as the window later moves;
// they address bytes, not the view.
func (v *ViewMut) Chars() *CharsMut {
	return &CharsMut{rest: v.Bytes(), ls: v.ls}
}

// CharAt returns a write handle to the rune starting at the given
// window-relative byte offset. It fails with ErrOffsetOutOfRange
// outside the window and ErrNotSingleRune on an offset that lands
// mid-rune.
func (v *ViewMut) CharAt(off int) (CharMut, error) {
	if off < 0 || off >= v.win.size {
		return CharMut{}, ErrOffsetOutOfRange
	}
	b := v.Bytes()
	_, width := utf8.DecodeRune(b[off:])
	c, err := NewCharMut(b[off : off+width : off+width])
	if err != nil {
		return CharMut{}, err
	}
	c.ls = v.ls
	return c, nil
}

// ExtendRight grows the right edge past exactly n runes of base. When
// fewer remain it fails with BaseTooShortError{SideRight} and leaves
// the window unchanged. n == 0 always succeeds.
func (v *ViewMut) ExtendRight(n int) error {
	return v.win.extendRight(v.str, n)
}

// ExtendLeft grows the left edge past exactly n runes of base, with the
// same contract as ExtendRight mirrored to SideLeft.
func (v *ViewMut) ExtendLeft(n int) error {
	return v.win.extendLeft(v.str, n)
}

// ReduceRight drops exactly n runes off the right edge. When the window
// holds fewer it fails with ViewTooShortError{SideRight} and leaves the
// window unchanged. n == 0 always succeeds.
func (v *ViewMut) ReduceRight(n int) error {
	return v.win.reduceRight(v.str, n)
}

// ReduceLeft drops exactly n runes off the left edge, with the same
// contract as ReduceRight mirrored to SideLeft.
func (v *ViewMut) ReduceLeft(n int) error {
	return v.win.reduceLeft(v.str, n)
}

// MustExtendRight is ExtendRight, panicking on error.
func (v *ViewMut) MustExtendRight(n int) {
	must(v.win.extendRight(v.str, n))
}

// MustExtendLeft is ExtendLeft, panicking on error.
func (v *ViewMut) MustExtendLeft(n int) {
	must(v.win.extendLeft(v.str, n))
}

// MustReduceRight is ReduceRight, panicking on error.
func (v *ViewMut) MustReduceRight(n int) {
	must(v.win.reduceRight(v.str, n))
}

// MustReduceLeft is ReduceLeft, panicking on error.
func (v *ViewMut) MustReduceLeft(n int) {
	must(v.win.reduceLeft(v.str, n))
}

// ExtendRightWhile grows the right edge past every contiguous rune
// satisfying pred and returns the number taken.
func (v *ViewMut) ExtendRightWhile(pred func(rune) bool) int {
	return v.win.extendRightWhile(v.str, pred)
}

// ExtendLeftWhile is ExtendRightWhile mirrored to the left edge.
func (v *ViewMut) ExtendLeftWhile(pred func(rune) bool) int {
	return v.win.extendLeftWhile(v.str, pred)
}

// ReduceRightWhile drops every contiguous rune satisfying pred off the
// right edge and returns the number dropped.
func (v *ViewMut) ReduceRightWhile(pred func(rune) bool) int {
	return v.win.reduceRightWhile(v.str, pred)
}

// ReduceLeftWhile is ReduceRightWhile mirrored to the left edge.
func (v *ViewMut) ReduceLeftWhile(pred func(rune) bool) int {
	return v.win.reduceLeftWhile(v.str, pred)
}

// ShrinkToRight collapses the window to zero length at its right edge.
func (v *ViewMut) ShrinkToRight() {
	v.win.shrinkToRight()
}

// ShrinkToLeft collapses the window to zero length at its left edge.
func (v *ViewMut) ShrinkToLeft() {
	v.win.shrinkToLeft()
}

// TrimWhile drops runes satisfying pred off the left edge, then off the
// right edge of what remains, and returns the total dropped.
func (v *ViewMut) TrimWhile(pred func(rune) bool) int {
	return v.win.trimWhile(v.str, pred)
}

// MakeUpper uppercases the window in place, rune by rune, skipping any
// rune whose full mapping would not fit its span. It returns the number
// of runes changed.
func (v *ViewMut) MakeUpper() int {
	return MakeUpper(v.Bytes())
}

// MakeLower lowercases the window in place with the same skipping rule
// as MakeUpper.
func (v *ViewMut) MakeLower() int {
	return MakeLower(v.Bytes())
}

// Fill replaces every rune in the window with r. The whole window is
// validated first: if any rune's span differs in length from r's
// encoding, Fill fails with ErrSizeMismatch and writes nothing.
func (v *ViewMut) Fill(r rune) error {
	return Fill(v.Bytes(), r)
}

// Overwrite replaces the windowed bytes with s, which must have exactly
// the window's byte length and be valid UTF-8. A length mismatch fails
// with ErrSizeMismatch and writes nothing.
func (v *ViewMut) Overwrite(s string) error {
	return Overwrite(v.Bytes(), s)
}

func (v *ViewMut) checkLive() {
	if v.ls != nil && v.ls.Released() {
		panic("strview: use of ViewMut after release")
	}
}
