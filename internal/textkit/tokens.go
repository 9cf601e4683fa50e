package textkit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words splits a line on whitespace.
func Words(s string) []string {
	return strings.Fields(s)
}

// ParseSymbols splits a user-entered chord or note list on commas and
// whitespace, dropping empty entries.
func ParseSymbols(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// wrap encloses a symbol in parentheses.
func wrap(s string) string {
	return "(" + s + ")"
}
