package strview

import (
	"unicode/utf8"

	"github.com/dshills/strview/internal/casemap"
)

// MakeUpper uppercases b in place, rune by rune, using full Unicode
// mappings. Runes whose mapping would not fit their span byte-for-byte
// are skipped: multi-rune expansions (ß would become "SS") and
// width-changing mappings (ſ would become the 1-byte S) both stay as
// they are. Returns the number of runes changed.
func MakeUpper(b []byte) int {
	return foldRunes(b, casemap.Upper)
}

// MakeLower lowercases b in place with the same skipping rule as
// MakeUpper.
func MakeLower(b []byte) int {
	return foldRunes(b, casemap.Lower)
}

func foldRunes(b []byte, mapping func(rune) (rune, bool)) int {
	changed := 0
	for i := 0; i < len(b); {
		r, width := utf8.DecodeRune(b[i:])
		mapped, single := mapping(r)
		if single && mapped != r && utf8.RuneLen(mapped) == width {
			utf8.EncodeRune(b[i:i+width], mapped)
			changed++
		}
		i += width
	}
	return changed
}

// Fill replaces every rune in b with r. The whole text is validated
// before anything is written: if any rune's span differs in length from
// r's encoding, or r is not a valid rune, Fill fails with
// ErrSizeMismatch and b is untouched. An empty b trivially succeeds.
func Fill(b []byte, r rune) error {
	width := utf8.RuneLen(r)
	if width < 0 {
		return ErrSizeMismatch
	}
	for i := 0; i < len(b); {
		_, w := utf8.DecodeRune(b[i:])
		if w != width {
			return ErrSizeMismatch
		}
		i += w
	}
	for i := 0; i < len(b); i += width {
		utf8.EncodeRune(b[i:i+width], r)
	}
	return nil
}

// Overwrite replaces b with the bytes of s, which must have exactly
// b's length and be valid UTF-8. A length mismatch fails with
// ErrSizeMismatch and writes nothing; a 5-byte span cannot take a
// 6-byte replacement.
func Overwrite(b []byte, s string) error {
	if len(b) != len(s) {
		return ErrSizeMismatch
	}
	copy(b, s)
	return nil
}

// Trim returns a view of s with every leading and trailing rune
// satisfying pred trimmed away. Trim(s, unicode.IsSpace) is the
// allocation-free analog of strings.TrimSpace.
func Trim(s string, pred func(rune) bool) View {
	v := NewView(s)
	v.TrimWhile(pred)
	return v
}

// TrimBytes is Trim over a mutable base: the returned view windows the
// untrimmed middle and keeps its write surface.
func TrimBytes(b []byte, pred func(rune) bool) *ViewMut {
	v := NewViewMut(b)
	v.TrimWhile(pred)
	return v
}
