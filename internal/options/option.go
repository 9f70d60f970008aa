// Package options builds multiple-choice option sets: one correct answer
// plus up to three distractors drawn from the rest of the active corpus.
package options

import (
	"fmt"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/textnorm"
)

// Payload is the displayable content of an option: either free text or an
// Arabic/transliteration pair. Exactly one of the two shapes is populated.
type Payload struct {
	Text            string `json:"text,omitempty"`
	Arabic          string `json:"arabic,omitempty"`
	Transliteration string `json:"transliteration,omitempty"`
}

// TextPayload wraps free text (a translation or transliteration).
func TextPayload(s string) Payload {
	return Payload{Text: s}
}

// ArabicPayload wraps Arabic text displayed on its own.
func ArabicPayload(s string) Payload {
	return Payload{Arabic: s}
}

// PairPayload wraps an Arabic/transliteration pair displayed together.
func PairPayload(arabic, transliteration string) Payload {
	return Payload{Arabic: arabic, Transliteration: transliteration}
}

// Key returns the normalized comparison key used for de-duplication.
// Arabic payloads compare without diacritics and tatweel; free text compares
// case- and whitespace-insensitively.
func (p Payload) Key() string {
	if p.Arabic != "" {
		return textnorm.Arabic(p.Arabic)
	}
	return textnorm.Text(p.Text)
}

// IsEmpty reports whether the payload has no displayable content.
func (p Payload) IsEmpty() bool {
	return p.Key() == ""
}

// Display returns the payload's primary display string.
func (p Payload) Display() string {
	if p.Arabic != "" {
		if p.Transliteration != "" {
			return p.Arabic + "  " + p.Transliteration
		}
		return p.Arabic
	}
	return p.Text
}

// Option is one entry of a generated option set. IDs are content-derived
// and stable only within the generation call that produced them.
type Option struct {
	ID      string
	Payload Payload
	Correct bool
}

// idHash folds the normalized payload and final position into an option
// identifier via the same multiply-by-31 rolling hash the seed derivation
// uses.
func idHash(key string, pos int) string {
	var h uint32
	for _, r := range key {
		h = h*31 + uint32(r)
	}
	h = h*31 + uint32(pos)
	return fmt.Sprintf("opt-%08x", h)
}
