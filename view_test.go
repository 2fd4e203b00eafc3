package strview

import (
	"errors"
	"testing"
	"unicode"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNewView(t *testing.T) {
	v := NewView("Hello, World!")

	if v.Start() != 0 {
		t.Errorf("expected start 0, got %d", v.Start())
	}
	if v.End() != 13 {
		t.Errorf("expected end 13, got %d", v.End())
	}
	if v.Len() != 13 {
		t.Errorf("expected length 13, got %d", v.Len())
	}
	if v.Text() != "Hello, World!" {
		t.Errorf("expected full text, got %q", v.Text())
	}
	if v.IsEmpty() {
		t.Error("view over non-empty base should not be empty")
	}
}

func TestNewViewEmpty(t *testing.T) {
	v := NewView("")

	if !v.IsEmpty() {
		t.Error("view over empty base should be empty")
	}
	if v.Text() != "" {
		t.Errorf("expected empty text, got %q", v.Text())
	}
	if v.RuneCount() != 0 {
		t.Errorf("expected 0 runes, got %d", v.RuneCount())
	}
}

func TestNewViewAt(t *testing.T) {
	v := NewViewAt("Hello, World!", 7, 12)

	if v.Text() != "World" {
		t.Errorf("expected %q, got %q", "World", v.Text())
	}
	if v.Start() != 7 || v.End() != 12 {
		t.Errorf("expected window [7:12), got [%d:%d)", v.Start(), v.End())
	}
	if v.Base() != "Hello, World!" {
		t.Errorf("base not preserved: %q", v.Base())
	}
}

func TestNewViewAtMultiByte(t *testing.T) {
	// 日本語 is three 3-byte runes
	v := NewViewAt("日本語", 3, 6)

	if v.Text() != "本" {
		t.Errorf("expected %q, got %q", "本", v.Text())
	}
	if v.RuneCount() != 1 {
		t.Errorf("expected 1 rune, got %d", v.RuneCount())
	}
}

func TestNewViewAtEmptyWindow(t *testing.T) {
	// empty windows are valid anywhere on a boundary, including the end
	for _, start := range []int{0, 3, 9} {
		v := NewViewAt("日本語", start, start)
		if !v.IsEmpty() {
			t.Errorf("window [%d:%d) should be empty", start, start)
		}
	}
}

func TestNewViewAtPanics(t *testing.T) {
	expectPanic(t, "inverted", func() { NewViewAt("hello", 3, 1) })
	expectPanic(t, "negative start", func() { NewViewAt("hello", -1, 2) })
	expectPanic(t, "end past base", func() { NewViewAt("hello", 0, 6) })
	expectPanic(t, "start splits rune", func() { NewViewAt("日本語", 1, 6) })
	expectPanic(t, "end splits rune", func() { NewViewAt("日本語", 0, 4) })
}

func TestViewExtendRight(t *testing.T) {
	v := NewViewAt("Hello, World!", 0, 5)

	if err := v.ExtendRight(2); err != nil {
		t.Fatalf("extend failed: %v", err)
	}
	if v.Text() != "Hello, " {
		t.Errorf("expected %q, got %q", "Hello, ", v.Text())
	}
}

func TestViewExtendRightMultiByte(t *testing.T) {
	v := NewViewAt("abc日本語def", 0, 3)

	if err := v.ExtendRight(2); err != nil {
		t.Fatalf("extend failed: %v", err)
	}
	if v.Text() != "abc日本" {
		t.Errorf("expected %q, got %q", "abc日本", v.Text())
	}
	if v.End() != 9 {
		t.Errorf("expected end 9, got %d", v.End())
	}
}

func TestViewExtendRightPastBase(t *testing.T) {
	v := NewViewAt("hello", 0, 3)

	err := v.ExtendRight(3)
	if err == nil {
		t.Fatal("expected error extending past base")
	}
	if !errors.Is(err, ErrBaseTooShort) {
		t.Errorf("expected ErrBaseTooShort, got %v", err)
	}

	var tooShort *BaseTooShortError
	if !errors.As(err, &tooShort) {
		t.Fatalf("expected BaseTooShortError, got %T", err)
	}
	if tooShort.Side != SideRight {
		t.Errorf("expected SideRight, got %v", tooShort.Side)
	}

	// failed extend must not move the window
	if v.Start() != 0 || v.End() != 3 {
		t.Errorf("window moved on failure: [%d:%d)", v.Start(), v.End())
	}
}

func TestViewExtendLeft(t *testing.T) {
	v := NewViewAt("Привет мир", 13, 19)

	if err := v.ExtendLeft(1); err != nil {
		t.Fatalf("extend failed: %v", err)
	}
	if v.Text() != " мир" {
		t.Errorf("expected %q, got %q", " мир", v.Text())
	}

	if err := v.ExtendLeft(6); err != nil {
		t.Fatalf("extend failed: %v", err)
	}
	if v.Text() != "Привет мир" {
		t.Errorf("expected %q, got %q", "Привет мир", v.Text())
	}
}

func TestViewExtendLeftPastBase(t *testing.T) {
	v := NewViewAt("hello", 2, 5)

	err := v.ExtendLeft(3)
	if err == nil {
		t.Fatal("expected error extending past base")
	}

	var tooShort *BaseTooShortError
	if !errors.As(err, &tooShort) {
		t.Fatalf("expected BaseTooShortError, got %T", err)
	}
	if tooShort.Side != SideLeft {
		t.Errorf("expected SideLeft, got %v", tooShort.Side)
	}
	if v.Start() != 2 || v.End() != 5 {
		t.Errorf("window moved on failure: [%d:%d)", v.Start(), v.End())
	}
}

func TestViewReduceRight(t *testing.T) {
	v := NewView("日本語")

	if err := v.ReduceRight(1); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if v.Text() != "日本" {
		t.Errorf("expected %q, got %q", "日本", v.Text())
	}
}

func TestViewReduceRightPastWindow(t *testing.T) {
	v := NewView("abc")

	err := v.ReduceRight(4)
	if err == nil {
		t.Fatal("expected error reducing past window")
	}
	if !errors.Is(err, ErrViewTooShort) {
		t.Errorf("expected ErrViewTooShort, got %v", err)
	}

	var tooShort *ViewTooShortError
	if !errors.As(err, &tooShort) {
		t.Fatalf("expected ViewTooShortError, got %T", err)
	}
	if tooShort.Side != SideRight {
		t.Errorf("expected SideRight, got %v", tooShort.Side)
	}
	if v.Text() != "abc" {
		t.Errorf("window moved on failure: %q", v.Text())
	}
}

func TestViewReduceLeft(t *testing.T) {
	v := NewView("Привет")

	if err := v.ReduceLeft(3); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if v.Text() != "вет" {
		t.Errorf("expected %q, got %q", "вет", v.Text())
	}
	if v.Start() != 6 {
		t.Errorf("expected start 6, got %d", v.Start())
	}
}

func TestViewReduceLeftPastWindow(t *testing.T) {
	v := NewViewAt("hello", 1, 3)

	err := v.ReduceLeft(3)
	if err == nil {
		t.Fatal("expected error reducing past window")
	}

	var tooShort *ViewTooShortError
	if !errors.As(err, &tooShort) {
		t.Fatalf("expected ViewTooShortError, got %T", err)
	}
	if tooShort.Side != SideLeft {
		t.Errorf("expected SideLeft, got %v", tooShort.Side)
	}
}

func TestViewZeroCountOps(t *testing.T) {
	// zero-rune movements succeed everywhere, including on empty
	// windows over empty bases
	v := NewView("")
	if err := v.ExtendRight(0); err != nil {
		t.Errorf("extend right by 0 on empty view: %v", err)
	}
	if err := v.ExtendLeft(0); err != nil {
		t.Errorf("extend left by 0 on empty view: %v", err)
	}
	if err := v.ReduceRight(0); err != nil {
		t.Errorf("reduce right by 0 on empty view: %v", err)
	}
	if err := v.ReduceLeft(0); err != nil {
		t.Errorf("reduce left by 0 on empty view: %v", err)
	}

	w := NewViewAt("hello", 2, 2)
	if err := w.ExtendRight(0); err != nil {
		t.Errorf("extend 0 on empty window: %v", err)
	}
	if err := w.ReduceLeft(0); err != nil {
		t.Errorf("reduce 0 on empty window: %v", err)
	}
	if w.Start() != 2 || w.End() != 2 {
		t.Errorf("zero-count op moved window: [%d:%d)", w.Start(), w.End())
	}
}

func TestViewMustOps(t *testing.T) {
	v := NewViewAt("hello", 0, 3)

	v.MustExtendRight(2)
	if v.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", v.Text())
	}
	v.MustReduceRight(1)
	v.MustReduceLeft(1)
	if v.Text() != "ell" {
		t.Errorf("expected %q, got %q", "ell", v.Text())
	}
	v.MustExtendLeft(1)
	if v.Text() != "hell" {
		t.Errorf("expected %q, got %q", "hell", v.Text())
	}

	expectPanic(t, "must extend past base", func() { v.MustExtendRight(10) })
	expectPanic(t, "must reduce past window", func() { v.MustReduceLeft(10) })
}

func TestViewExtendReduceRoundTrip(t *testing.T) {
	base := "чай ☕ and 茶"
	v := NewViewAt(base, 7, 10)
	start, end := v.Start(), v.End()

	for n := 0; n <= 3; n++ {
		if err := v.ExtendRight(n); err != nil {
			t.Fatalf("extend right %d: %v", n, err)
		}
		if err := v.ReduceRight(n); err != nil {
			t.Fatalf("reduce right %d: %v", n, err)
		}
		if v.Start() != start || v.End() != end {
			t.Errorf("right round trip %d moved window: [%d:%d)", n, v.Start(), v.End())
		}

		if err := v.ExtendLeft(n); err != nil {
			t.Fatalf("extend left %d: %v", n, err)
		}
		if err := v.ReduceLeft(n); err != nil {
			t.Fatalf("reduce left %d: %v", n, err)
		}
		if v.Start() != start || v.End() != end {
			t.Errorf("left round trip %d moved window: [%d:%d)", n, v.Start(), v.End())
		}
	}
}

func TestViewReduceExtendRoundTrip(t *testing.T) {
	v := NewView("日本語テスト")
	if err := v.ReduceRight(2); err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if err := v.ExtendRight(2); err != nil {
		t.Fatalf("extend: %v", err)
	}
	if v.Text() != "日本語テスト" {
		t.Errorf("round trip lost text: %q", v.Text())
	}
}

func TestViewExtendRightWhile(t *testing.T) {
	v := NewViewAt("abc12345xyz", 0, 3)

	n := v.ExtendRightWhile(unicode.IsDigit)
	if n != 5 {
		t.Errorf("expected 5 runes taken, got %d", n)
	}
	if v.Text() != "abc12345" {
		t.Errorf("expected %q, got %q", "abc12345", v.Text())
	}

	// next rune is not a digit: no movement, count 0
	if n := v.ExtendRightWhile(unicode.IsDigit); n != 0 {
		t.Errorf("expected 0 runes taken, got %d", n)
	}
}

func TestViewExtendLeftWhile(t *testing.T) {
	v := NewViewAt("12345abc", 5, 8)

	n := v.ExtendLeftWhile(unicode.IsDigit)
	if n != 5 {
		t.Errorf("expected 5 runes taken, got %d", n)
	}
	if v.Text() != "12345abc" {
		t.Errorf("expected %q, got %q", "12345abc", v.Text())
	}
}

func TestViewExtendWhileStopsAtBaseEnd(t *testing.T) {
	v := NewView("12345")

	// predicate always true: the scan stops at the base edge without error
	if n := v.ExtendRightWhile(func(rune) bool { return true }); n != 0 {
		t.Errorf("expected 0 at base end, got %d", n)
	}
}

func TestViewReduceRightWhile(t *testing.T) {
	v := NewView("hello   ")

	n := v.ReduceRightWhile(unicode.IsSpace)
	if n != 3 {
		t.Errorf("expected 3 runes dropped, got %d", n)
	}
	if v.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", v.Text())
	}
}

func TestViewReduceLeftWhile(t *testing.T) {
	v := NewView("   hello")

	n := v.ReduceLeftWhile(unicode.IsSpace)
	if n != 3 {
		t.Errorf("expected 3 runes dropped, got %d", n)
	}
	if v.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", v.Text())
	}
}

func TestViewReduceWhileEmptiesWindow(t *testing.T) {
	v := NewView("     ")

	n := v.ReduceLeftWhile(unicode.IsSpace)
	if n != 5 {
		t.Errorf("expected 5 runes dropped, got %d", n)
	}
	if !v.IsEmpty() {
		t.Errorf("window should be empty, got %q", v.Text())
	}
}

func TestViewTrimWhile(t *testing.T) {
	v := NewView("  \n   Hello  \n \t  ")

	v.TrimWhile(unicode.IsSpace)
	if v.Text() != "Hello" {
		t.Errorf("expected %q, got %q", "Hello", v.Text())
	}
}

func TestViewTrimWhileAllMatching(t *testing.T) {
	v := NewView(" \t\n ")

	n := v.TrimWhile(unicode.IsSpace)
	if n != 4 {
		t.Errorf("expected 4 runes dropped, got %d", n)
	}
	if !v.IsEmpty() {
		t.Errorf("window should be empty, got %q", v.Text())
	}
}

func TestViewTrimWhileOrder(t *testing.T) {
	// the left pass runs first and the right pass sees its result:
	// with a window of only matching runes, the left pass consumes
	// everything and the right pass sees an empty window
	var seen []rune
	v := NewView("ab")
	v.TrimWhile(func(r rune) bool {
		seen = append(seen, r)
		return true
	})

	if len(seen) != 2 || seen[0] != 'a' || seen[1] != 'b' {
		t.Errorf("expected left-first scan [a b], got %q", string(seen))
	}
	if !v.IsEmpty() {
		t.Errorf("window should be empty, got %q", v.Text())
	}
}

func TestViewShrinkToRight(t *testing.T) {
	v := NewViewAt("hello world", 0, 5)

	v.ShrinkToRight()
	if !v.IsEmpty() {
		t.Error("expected empty window")
	}
	if v.Start() != 5 || v.End() != 5 {
		t.Errorf("expected window [5:5), got [%d:%d)", v.Start(), v.End())
	}

	// the collapsed window can re-grow in both directions
	if err := v.ExtendRight(1); err != nil {
		t.Fatalf("extend after shrink: %v", err)
	}
	if v.Text() != " " {
		t.Errorf("expected %q, got %q", " ", v.Text())
	}
}

func TestViewShrinkToLeft(t *testing.T) {
	v := NewViewAt("hello world", 6, 11)

	v.ShrinkToLeft()
	if v.Start() != 6 || v.End() != 6 {
		t.Errorf("expected window [6:6), got [%d:%d)", v.Start(), v.End())
	}
}

func TestViewCharAt(t *testing.T) {
	v := NewView("日本語")

	c, err := v.CharAt(3)
	if err != nil {
		t.Fatalf("CharAt failed: %v", err)
	}
	if c.Rune() != '本' {
		t.Errorf("expected 本, got %q", c.Rune())
	}

	if _, err := v.CharAt(1); !errors.Is(err, ErrNotSingleRune) {
		t.Errorf("mid-rune offset: expected ErrNotSingleRune, got %v", err)
	}
	if _, err := v.CharAt(-1); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("negative offset: expected ErrOffsetOutOfRange, got %v", err)
	}
	if _, err := v.CharAt(9); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("offset past window: expected ErrOffsetOutOfRange, got %v", err)
	}
}

func TestViewCharAtIsWindowRelative(t *testing.T) {
	v := NewViewAt("abcdef", 2, 5)

	c, err := v.CharAt(0)
	if err != nil {
		t.Fatalf("CharAt failed: %v", err)
	}
	if c.Rune() != 'c' {
		t.Errorf("expected c, got %q", c.Rune())
	}
}

func TestViewSpan(t *testing.T) {
	v := NewViewAt("hello world", 6, 11)

	sp := v.Span()
	if sp.Start != 6 || sp.End != 11 {
		t.Errorf("expected span [6:11), got %v", sp)
	}
	if sp.Len() != 5 {
		t.Errorf("expected span length 5, got %d", sp.Len())
	}
}

func TestViewCopiesDiverge(t *testing.T) {
	v := NewView("hello world")
	w := v

	if err := w.ReduceRight(6); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}
	if v.Text() != "hello world" {
		t.Errorf("copy's movement leaked into original: %q", v.Text())
	}
	if w.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", w.Text())
	}
}

func TestViewStringer(t *testing.T) {
	v := NewViewAt("hello world", 0, 5)
	if v.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", v.String())
	}
}
