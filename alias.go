package strview

import "unsafe"

// byteString returns a string aliasing b without copying. The result
// observes later writes to b and must not outlive it. This bridge lets
// the window engine run over a single string representation while
// ViewMut keeps its bytes writable.
func byteString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// stringSpanIn locates sub within base by address arithmetic. ok is
// false when sub does not alias base's memory, or is empty (an empty
// string has no address to compare). base must be the text sub was
// actually sliced from; unrelated arguments yield ok == false or, for
// coincidentally adjacent allocations, a meaningless span.
func stringSpanIn(base, sub string) (Span, bool) {
	if len(sub) == 0 || len(base) == 0 {
		return Span{}, false
	}
	b := uintptr(unsafe.Pointer(unsafe.StringData(base)))
	s := uintptr(unsafe.Pointer(unsafe.StringData(sub)))
	if s < b || s+uintptr(len(sub)) > b+uintptr(len(base)) {
		return Span{}, false
	}
	start := int(s - b)
	return Span{Start: start, End: start + len(sub)}, true
}

// byteSpanIn is stringSpanIn over byte slices.
func byteSpanIn(base, sub []byte) (Span, bool) {
	if len(sub) == 0 || len(base) == 0 {
		return Span{}, false
	}
	b := uintptr(unsafe.Pointer(unsafe.SliceData(base)))
	s := uintptr(unsafe.Pointer(unsafe.SliceData(sub)))
	if s < b || s+uintptr(len(sub)) > b+uintptr(len(base)) {
		return Span{}, false
	}
	start := int(s - b)
	return Span{Start: start, End: start + len(sub)}, true
}
