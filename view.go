package strview

import "unicode/utf8"

// View is a read-only window over a string. The base is never copied:
// Text returns a slice of it, and every edge operation is offset
// arithmetic over its encoding. Views are small values; copying one
// gives an independent window over the same base, and any number of
// views may overlap since strings cannot change underneath them.
//
// Edge operations move by whole runes and leave both edges on rune
// boundaries. Fallible operations commit all-or-nothing: on error the
// window is exactly where it was.
type View struct {
	base string
	win  window
}

// NewView returns a view spanning all of base.
func NewView(base string) View {
	return View{base: base, win: window{start: 0, size: len(base)}}
}

// NewViewAt returns a view of base[start:end). The window is structure,
// not data: inverted, out-of-range, or rune-splitting edges are caller
// bugs and panic. Validation happens here only.
func NewViewAt(base string, start, end int) View {
	checkWindow(base, start, end)
	return View{base: base, win: window{start: start, size: end - start}}
}

// Start returns the byte offset of the window's left edge in base.
func (v *View) Start() int {
	return v.win.start
}

// End returns the byte offset one past the window's right edge.
func (v *View) End() int {
	return v.win.end()
}

// Len returns the window's length in bytes.
func (v *View) Len() int {
	return v.win.size
}

// IsEmpty returns true if the window has zero length.
func (v *View) IsEmpty() bool {
	return v.win.size == 0
}

// RuneCount returns the number of runes inside the window.
func (v *View) RuneCount() int {
	return utf8.RuneCountInString(v.Text())
}

// Span returns the window's byte range within base.
func (v *View) Span() Span {
	return Span{Start: v.win.start, End: v.win.end()}
}

// Base returns the full base text.
func (v *View) Base() string {
	return v.base
}

// Text returns the windowed bytes as a slice of base.
func (v *View) Text() string {
	return v.base[v.win.start:v.win.end()]
}

// String implements fmt.Stringer.
func (v *View) String() string {
	return v.Text()
}

// Chars returns an iterator over the runes inside the window.
func (v *View) Chars() *Chars {
	return NewChars(v.Text())
}

// CharAt returns a read handle to the rune starting at the given
// window-relative byte offset. It fails with ErrOffsetOutOfRange
// outside the window and ErrNotSingleRune on an offset that lands
// mid-rune.
func (v *View) CharAt(off int) (Char, error) {
	if off < 0 || off >= v.win.size {
		return Char{}, ErrOffsetOutOfRange
	}
	text := v.Text()
	_, width := utf8.DecodeRuneInString(text[off:])
	return NewChar(text[off : off+width])
}

// ExtendRight grows the right edge past exactly n runes of base. When
// fewer remain it fails with BaseTooShortError{SideRight} and leaves
// the window unchanged. n == 0 always succeeds.
func (v *View) ExtendRight(n int) error {
	return v.win.extendRight(v.base, n)
}

// ExtendLeft grows the left edge past exactly n runes of base, with the
// same contract as ExtendRight mirrored to SideLeft.
func (v *View) ExtendLeft(n int) error {
	return v.win.extendLeft(v.base, n)
}

// ReduceRight drops exactly n runes off the right edge. When the window
// holds fewer it fails with ViewTooShortError{SideRight} and leaves the
// window unchanged. n == 0 always succeeds.
func (v *View) ReduceRight(n int) error {
	return v.win.reduceRight(v.base, n)
}

// ReduceLeft drops exactly n runes off the left edge, with the same
// contract as ReduceRight mirrored to SideLeft.
func (v *View) ReduceLeft(n int) error {
	return v.win.reduceLeft(v.base, n)
}

// MustExtendRight is ExtendRight, panicking on error.
func (v *View) MustExtendRight(n int) {
	must(v.win.extendRight(v.base, n))
}

// MustExtendLeft is ExtendLeft, panicking on error.
func (v *View) MustExtendLeft(n int) {
	must(v.win.extendLeft(v.base, n))
}

// MustReduceRight is ReduceRight, panicking on error.
func (v *View) MustReduceRight(n int) {
	must(v.win.reduceRight(v.base, n))
}

// MustReduceLeft is ReduceLeft, panicking on error.
func (v *View) MustReduceLeft(n int) {
	must(v.win.reduceLeft(v.base, n))
}

// ExtendRightWhile grows the right edge past every contiguous rune
// satisfying pred, scanning outward from the edge. It returns the
// number of runes taken; running out of base stops the scan and is not
// an error.
func (v *View) ExtendRightWhile(pred func(rune) bool) int {
	return v.win.extendRightWhile(v.base, pred)
}

// ExtendLeftWhile is ExtendRightWhile mirrored to the left edge.
func (v *View) ExtendLeftWhile(pred func(rune) bool) int {
	return v.win.extendLeftWhile(v.base, pred)
}

// ReduceRightWhile drops every contiguous rune satisfying pred off the
// right edge, scanning inward from the edge, and returns the number
// dropped.
func (v *View) ReduceRightWhile(pred func(rune) bool) int {
	return v.win.reduceRightWhile(v.base, pred)
}

// ReduceLeftWhile is ReduceRightWhile mirrored to the left edge.
func (v *View) ReduceLeftWhile(pred func(rune) bool) int {
	return v.win.reduceLeftWhile(v.base, pred)
}

// ShrinkToRight collapses the window to zero length at its right edge.
func (v *View) ShrinkToRight() {
	v.win.shrinkToRight()
}

// ShrinkToLeft collapses the window to zero length at its left edge.
func (v *View) ShrinkToLeft() {
	v.win.shrinkToLeft()
}

// TrimWhile drops runes satisfying pred off the left edge, then off the
// right edge of what remains, and returns the total dropped.
// TrimWhile(unicode.IsSpace) is the windowed analog of
// strings.TrimSpace.
func (v *View) TrimWhile(pred func(rune) bool) int {
	return v.win.trimWhile(v.base, pred)
}
