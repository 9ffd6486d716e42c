package icons

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// AppName is the product name the default icon label derives from.
const AppName = "Service Translate"

// Derive returns the monogram for a product name: the first rune of
// each of its first two words, uppercased, with diacritics stripped.
// A blank name yields an empty monogram.
func Derive(name string) string {
	words := strings.Fields(foldDiacritics(name))
	if len(words) > 2 {
		words = words[:2]
	}

	var b strings.Builder
	for _, w := range words {
		r := []rune(w)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// foldDiacritics strips combining marks, so "É" becomes "E".
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
