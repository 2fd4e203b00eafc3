// Package casemap applies full Unicode case mappings to single runes.
//
// The standard library's unicode tables carry only the simple 1:1
// mappings, which cannot tell that the uppercase of ß is "SS" or that
// lowering İ needs a combining dot. This package routes runes through
// golang.org/x/text/cases for the full, locale-independent mappings
// and reports whether a mapping stays a single rune, which is the
// question size-preserving replacement has to answer.
package casemap

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers are stateful and not safe for concurrent use, so each mapping
// direction recycles them through a pool.
var (
	upperPool = sync.Pool{New: func() any {
		c := cases.Upper(language.Und)
		return &c
	}}
	lowerPool = sync.Pool{New: func() any {
		c := cases.Lower(language.Und)
		return &c
	}}
)

// mapMax bounds a full case mapping: at most three runes, each at most
// utf8.UTFMax bytes.
const mapMax = 3 * utf8.UTFMax

// Upper returns the full uppercase mapping of r. single is false when
// the mapping expands to more than one rune; the first mapped rune is
// returned either way. Runes with no mapping return themselves with
// single == true.
func Upper(r rune) (mapped rune, single bool) {
	if r < utf8.RuneSelf {
		if 'a' <= r && r <= 'z' {
			return r - 'a' + 'A', true
		}
		return r, true
	}
	return transformRune(&upperPool, r)
}

// Lower returns the full lowercase mapping of r, with the same contract
// as Upper.
func Lower(r rune) (mapped rune, single bool) {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			return r - 'A' + 'a', true
		}
		return r, true
	}
	return transformRune(&lowerPool, r)
}

// transformRune feeds r's encoding through a pooled caser and decodes
// the result. Both buffers live on the stack; the pool keeps the caser
// state off the heap, so the steady state allocates nothing.
func transformRune(pool *sync.Pool, r rune) (rune, bool) {
	caser := pool.Get().(*cases.Caser)
	defer pool.Put(caser)

	var src [utf8.UTFMax]byte
	var dst [mapMax]byte
	n := utf8.EncodeRune(src[:], r)

	caser.Reset()
	nDst, _, err := caser.Transform(dst[:], src[:n], true)
	if err != nil || nDst == 0 {
		// A single rune with atEOF and a full-mapping-sized dst cannot
		// overflow; treat any residual failure as an identity mapping.
		return r, true
	}

	mapped, width := utf8.DecodeRune(dst[:nDst])
	return mapped, width == nDst
}
