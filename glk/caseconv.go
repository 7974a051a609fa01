package glk

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CharToLower lowercases a single character.
func CharToLower(ch rune) rune {
	return unicode.ToLower(ch)
}

// CharToUpper uppercases a single character.
func CharToUpper(ch rune) rune {
	return unicode.ToUpper(ch)
}

// BufferToLowerCaseUni lowercases a string.
func BufferToLowerCaseUni(s string) string {
	return strings.ToLower(s)
}

// BufferToUpperCaseUni uppercases a string.
func BufferToUpperCaseUni(s string) string {
	return strings.ToUpper(s)
}

// BufferToTitleCaseUni title-cases the first character. With lowerRest
// set the remainder is lowercased; otherwise it is left alone.
func BufferToTitleCaseUni(s string, lowerRest bool) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	head := string(unicode.ToTitle(runes[0]))
	rest := string(runes[1:])
	if lowerRest {
		rest = strings.ToLower(rest)
	}
	return head + rest
}

// BufferCanonDecomposeUni decomposes a string to Unicode Normalization
// Form D.
func BufferCanonDecomposeUni(s string) string {
	return norm.NFD.String(s)
}

// BufferCanonNormalizeUni composes a string to Unicode Normalization
// Form C.
func BufferCanonNormalizeUni(s string) string {
	return norm.NFC.String(s)
}
