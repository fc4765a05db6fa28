package player

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block (U+0300–U+036F)
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize strips diacritics and lowercases s so that "Târnovanu" and
// "tarnovanu" compare equal. The same function is applied to stored names and
// to incoming queries.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	result, _, err := transform.String(t, s)
	if err != nil {
		// transform only fails on invalid state; fall back to plain lowercasing
		return strings.ToLower(s)
	}
	return strings.ToLower(result)
}
