// Package sanitize coerces untrusted values from request bodies and model
// replies into plain Go values.
// Coercion follows loose JSON semantics: any decoded value can be turned into
// a string, tested for truthiness, or converted to a number.
package sanitize

import (
	"strings"
	"unicode"
)

// Text trims surrounding whitespace and leaves the rest of s untouched.
// The whitespace set is the one browsers and JSON clients trim: Unicode
// White_Space plus the byte order mark, without NEL (U+0085).
func Text(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// Field coerces a decoded JSON field to text. Absent and null become "".
func Field(v any) string {
	if v == nil {
		return ""
	}
	return Text(String(v))
}

func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
