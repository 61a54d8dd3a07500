// Package textnorm canonicalizes OCR output for substring matching.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize folds raw OCR text into its canonical matching form:
// unicode NFKD, unicode spaces mapped to ASCII space, lowercase,
// whitespace runs collapsed. Empty input yields empty output.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := norm.NFKD.String(raw)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}
