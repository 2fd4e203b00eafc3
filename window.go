package strview

import (
	"fmt"
	"unicode/utf8"
)

// window is a byte window into a base text. It stores only offsets; the
// base is supplied to each operation, which lets View and ViewMut share
// one engine across string and []byte bases (ViewMut passes a no-copy
// string alias of its bytes).
//
// Invariant: start and start+size rest on rune boundaries of the base,
// and size is never negative. Operations that can fail compute their
// full byte movement first and commit only on success, so a failed
// call leaves the window untouched.
type window struct {
	start int
	size  int
}

func (w *window) end() int { return w.start + w.size }

// extendRight grows the right edge past exactly n runes of the base.
func (w *window) extendRight(base string, n int) error {
	grown := 0
	tail := base[w.end():]
	for i := 0; i < n; i++ {
		_, width := utf8.DecodeRuneInString(tail[grown:])
		if width == 0 {
			return &BaseTooShortError{Side: SideRight}
		}
		grown += width
	}
	w.size += grown
	return nil
}

// extendLeft grows the left edge past exactly n runes of the base.
func (w *window) extendLeft(base string, n int) error {
	grown := 0
	for i := 0; i < n; i++ {
		_, width := utf8.DecodeLastRuneInString(base[:w.start-grown])
		if width == 0 {
			return &BaseTooShortError{Side: SideLeft}
		}
		grown += width
	}
	w.start -= grown
	w.size += grown
	return nil
}

// reduceRight drops exactly n runes off the right edge of the window.
func (w *window) reduceRight(base string, n int) error {
	dropped := 0
	for i := 0; i < n; i++ {
		_, width := utf8.DecodeLastRuneInString(base[w.start : w.end()-dropped])
		if width == 0 {
			return &ViewTooShortError{Side: SideRight}
		}
		dropped += width
	}
	w.size -= dropped
	return nil
}

// reduceLeft drops exactly n runes off the left edge of the window.
func (w *window) reduceLeft(base string, n int) error {
	dropped := 0
	for i := 0; i < n; i++ {
		_, width := utf8.DecodeRuneInString(base[w.start+dropped : w.end()])
		if width == 0 {
			return &ViewTooShortError{Side: SideLeft}
		}
		dropped += width
	}
	w.start += dropped
	w.size -= dropped
	return nil
}

// extendRightWhile grows the right edge past every contiguous rune
// satisfying pred, scanning forward from the edge. Returns the rune
// count moved; running out of base is not an error.
func (w *window) extendRightWhile(base string, pred func(rune) bool) int {
	grown, count := 0, 0
	tail := base[w.end():]
	for {
		r, width := utf8.DecodeRuneInString(tail[grown:])
		if width == 0 || !pred(r) {
			break
		}
		grown += width
		count++
	}
	w.size += grown
	return count
}

// extendLeftWhile grows the left edge past every contiguous rune
// satisfying pred, scanning backward from the edge.
func (w *window) extendLeftWhile(base string, pred func(rune) bool) int {
	grown, count := 0, 0
	for {
		r, width := utf8.DecodeLastRuneInString(base[:w.start-grown])
		if width == 0 || !pred(r) {
			break
		}
		grown += width
		count++
	}
	w.start -= grown
	w.size += grown
	return count
}

// reduceRightWhile drops every contiguous rune satisfying pred off the
// right edge, scanning backward from the edge into the window.
func (w *window) reduceRightWhile(base string, pred func(rune) bool) int {
	dropped, count := 0, 0
	for {
		r, width := utf8.DecodeLastRuneInString(base[w.start : w.end()-dropped])
		if width == 0 || !pred(r) {
			break
		}
		dropped += width
		count++
	}
	w.size -= dropped
	return count
}

// reduceLeftWhile drops every contiguous rune satisfying pred off the
// left edge, scanning forward from the edge into the window.
func (w *window) reduceLeftWhile(base string, pred func(rune) bool) int {
	dropped, count := 0, 0
	for {
		r, width := utf8.DecodeRuneInString(base[w.start+dropped : w.end()])
		if width == 0 || !pred(r) {
			break
		}
		dropped += width
		count++
	}
	w.start += dropped
	w.size -= dropped
	return count
}

// shrinkToRight collapses the window to zero length at its right edge.
func (w *window) shrinkToRight() {
	w.start = w.end()
	w.size = 0
}

// shrinkToLeft collapses the window to zero length at its left edge.
func (w *window) shrinkToLeft() {
	w.size = 0
}

// trimWhile reduces the left edge past runes satisfying pred, then the
// right edge of the already-trimmed window. The left pass runs first;
// the right pass sees its result.
func (w *window) trimWhile(base string, pred func(rune) bool) int {
	n := w.reduceLeftWhile(base, pred)
	return n + w.reduceRightWhile(base, pred)
}

// checkWindow validates construction indexes for a window over base.
// Inverted, out-of-range, or rune-splitting edges are caller bugs, so
// it panics rather than returning an error; this runs at construction
// only and nothing revalidates afterward.
func checkWindow(base string, start, end int) {
	if start < 0 || end < start || end > len(base) {
		panic(fmt.Sprintf("strview: invalid window [%d:%d) over %d bytes", start, end, len(base)))
	}
	if start < len(base) && !utf8.RuneStart(base[start]) {
		panic(fmt.Sprintf("strview: window start %d splits a rune", start))
	}
	if end < len(base) && !utf8.RuneStart(base[end]) {
		panic(fmt.Sprintf("strview: window end %d splits a rune", end))
	}
}
