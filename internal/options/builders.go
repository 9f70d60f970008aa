package options

import (
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/randgen"
)

// The builders below specialize Build per question type. The pool is the
// rest of the active session's items; the correct item must be excluded by
// the caller.

// ForTranslation builds options over verse translations.
func ForTranslation(g *randgen.Generator, correct corpus.Question, pool []corpus.Question, size int) []Option {
	return Build(g, correct, pool, size, func(q corpus.Question) Payload {
		return TextPayload(q.Verse.Translation)
	})
}

// ForTransliteration builds options over verse transliterations.
func ForTransliteration(g *randgen.Generator, correct corpus.Question, pool []corpus.Question, size int) []Option {
	return Build(g, correct, pool, size, func(q corpus.Question) Payload {
		return TextPayload(q.Verse.Transliteration)
	})
}

// ForArabicVerse builds options over Arabic/transliteration verse pairs,
// shown when the prompt is the translation.
func ForArabicVerse(g *randgen.Generator, correct corpus.Question, pool []corpus.Question, size int) []Option {
	return Build(g, correct, pool, size, func(q corpus.Question) Payload {
		return PairPayload(q.Verse.Arabic, q.Verse.Transliteration)
	})
}

// ForWordMeaning builds options over word translations.
func ForWordMeaning(g *randgen.Generator, correct corpus.Word, pool []corpus.Word, size int) []Option {
	return Build(g, correct, pool, size, func(w corpus.Word) Payload {
		return TextPayload(w.Translation)
	})
}

// ForWordArabic builds options over Arabic/transliteration word pairs.
func ForWordArabic(g *randgen.Generator, correct corpus.Word, pool []corpus.Word, size int) []Option {
	return Build(g, correct, pool, size, func(w corpus.Word) Payload {
		return PairPayload(w.Arabic, w.Transliteration)
	})
}
