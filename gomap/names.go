package gomap

import (
	"strings"
	"unicode"
)

// SanitizeName reduces an arbitrary key to its alphanumeric canonical
// form: every non-alphanumeric rune is dropped and the rune after each
// dropped run is upper-cased, so "first-name" and "first name" both
// become "firstName".  The empty string sanitizes to itself.
func SanitizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upperNext := false
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = b.Len() > 0
			continue
		}
		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
