package strview

import (
	"errors"
	"fmt"
)

// Side identifies one edge of a view, or of the base text around it.
type Side uint8

const (
	// SideLeft is the edge nearer the start of the base text.
	SideLeft Side = iota
	// SideRight is the edge nearer the end of the base text.
	SideRight
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Common errors. The typed errors below match ErrBaseTooShort and
// ErrViewTooShort through errors.Is, so callers that do not care which
// side failed can branch on the sentinel alone.
var (
	// ErrBaseTooShort reports an extend past the runes the base text
	// holds beyond the view's edge.
	ErrBaseTooShort = errors.New("base text too short")

	// ErrViewTooShort reports a reduce past the runes the view holds.
	ErrViewTooShort = errors.New("view too short")

	// ErrSizeMismatch reports a replacement whose encoding differs in
	// byte length from the span it would overwrite.
	ErrSizeMismatch = errors.New("replacement size mismatch")

	// ErrNotSingleRune reports a span that is not exactly one encoded
	// rune.
	ErrNotSingleRune = errors.New("span is not a single rune")

	// ErrOffsetOutOfRange reports a byte offset outside the addressed
	// text.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeBusy reports an exclusive acquisition that overlaps a
	// byte range already checked out of a Buffer.
	ErrRangeBusy = errors.New("byte range already checked out")
)

// BaseTooShortError reports that the base text ran out of runes on one
// side of the view before an extend consumed as many as requested.
type BaseTooShortError struct {
	// Side is the edge the extend moved.
	Side Side
}

// Error implements the error interface.
func (e *BaseTooShortError) Error() string {
	return fmt.Sprintf("base text too short on the %s side", e.Side)
}

// Is matches ErrBaseTooShort so errors.Is works without the type.
func (e *BaseTooShortError) Is(target error) bool {
	return target == ErrBaseTooShort
}

// ViewTooShortError reports that the view ran out of runes before a
// reduce at one edge consumed as many as requested.
type ViewTooShortError struct {
	// Side is the edge the reduce moved.
	Side Side
}

// Error implements the error interface.
func (e *ViewTooShortError) Error() string {
	return fmt.Sprintf("view too short on the %s side", e.Side)
}

// Is matches ErrViewTooShort so errors.Is works without the type.
func (e *ViewTooShortError) Is(target error) bool {
	return target == ErrViewTooShort
}

// must panics on a failed operation. The Must* methods use it to turn
// content-dependent errors into fatal contract violations when the
// caller has opted in.
func must(err error) {
	if err != nil {
		panic("strview: " + err.Error())
	}
}
