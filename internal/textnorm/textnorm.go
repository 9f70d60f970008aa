// Package textnorm normalizes and tokenizes corpus text for comparison.
//
// Two options are "the same" when their normalized payloads match: Arabic
// text compares without harakat and tatweel, free text compares case- and
// whitespace-insensitively.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// tatweel is the Arabic elongation character, typographic only.
const tatweel = 'ـ'

// stripMarks decomposes, removes combining marks (harakat, shadda, sukun,
// Quranic annotation signs), and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var folder = cases.Fold()

// StripDiacritics removes combining diacritics and tatweel from Arabic text.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.Map(func(r rune) rune {
		if r == tatweel {
			return -1
		}
		return r
	}, out)
}

// Arabic returns the comparison key for Arabic text: diacritics stripped
// and whitespace collapsed.
func Arabic(s string) string {
	return collapse(StripDiacritics(s))
}

// Text returns the comparison key for free text: case-folded and
// whitespace-collapsed.
func Text(s string) string {
	return collapse(folder.String(s))
}

// Tokenize splits text into whitespace-delimited tokens. Works for both
// Arabic script and Latin transliteration; empty input yields no tokens.
func Tokenize(s string) []string {
	return strings.Fields(s)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
