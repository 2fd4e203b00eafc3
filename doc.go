// Package strview provides zero-copy views over UTF-8 text and
// single-rune handles for in-place, size-preserving edits.
//
// A view is a (base, start, length) byte window whose edges always rest
// on rune boundaries. Views grow and shrink by whole runes in either
// direction without copying or allocating; a char handle addresses
// exactly one encoded rune and can overwrite it byte for byte when, and
// only when, the replacement encodes to the same length. Nothing in the
// package ever moves text or changes its length.
//
// Key features:
//   - View/ViewMut windows with per-rune edge arithmetic over string and []byte bases
//   - Char/CharMut handles with construction-time single-rune validation
//   - Size-preserving Replace, MakeUpper, and MakeLower using full Unicode case mappings
//   - Double-ended Chars/CharsMut iterators yielding disjoint in-place handles
//   - Buffer, a checked owner that leases write ranges so live writers never alias
//   - Bulk in-place helpers: MakeUpper, MakeLower, Fill, Overwrite, Trim
//
// Basic usage:
//
//	b := []byte("  HELLO World  ")
//	v := strview.TrimBytes(b, unicode.IsSpace) // windows "HELLO World"
//	v.MakeLower()                              // b is now "  hello world  "
//
//	c, _ := v.CharAt(0)
//	_ = c.Replace('j')                         // b is now "  jello world  "
//
// Failed operations never leave partial state: every fallible call
// either commits completely or reports an error with the text and the
// window exactly as they were. Contract violations by the caller, such
// as constructing a window that splits a rune, panic instead.
//
// Exclusivity of write handles is a contract, not a borrow: the raw
// constructors document what the caller must keep away from the bytes,
// and Buffer enforces the same rule at runtime for callers who want it
// checked.
package strview
