// Package corpus defines the read-only study material: surahs with their
// verses, and the vocabulary word list. The engine packages receive these
// records as plain slices and never load them from disk themselves.
package corpus

// Verse is a single ayah within a surah. Immutable; identified by Number
// within its surah.
type Verse struct {
	Number          int    `json:"number"`
	Arabic          string `json:"arabic"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
}

// Surah is a chapter with its full verse list.
type Surah struct {
	Number     int     `json:"number"`
	Name       string  `json:"name"`
	ArabicName string  `json:"arabicName"`
	Verses     []Verse `json:"verses"`
}

// Question pairs a verse with its surah context. One per verse, built once
// when a surah is selected.
type Question struct {
	Verse       Verse
	SurahNumber int
	SurahName   string
}

// Questions builds the question list for the surah in verse order.
func (s Surah) Questions() []Question {
	qs := make([]Question, len(s.Verses))
	for i, v := range s.Verses {
		qs[i] = Question{Verse: v, SurahNumber: s.Number, SurahName: s.Name}
	}
	return qs
}

// PartOfSpeech classifies a vocabulary word.
type PartOfSpeech string

const (
	PartVerb     PartOfSpeech = "verb"
	PartNoun     PartOfSpeech = "noun"
	PartParticle PartOfSpeech = "particle"
)

// DisplayName returns a human-readable label for the part of speech.
func (p PartOfSpeech) DisplayName() string {
	switch p {
	case PartVerb:
		return "Verb"
	case PartNoun:
		return "Noun"
	case PartParticle:
		return "Particle"
	default:
		return string(p)
	}
}

// VerseExample cites a verse in which a word occurs.
type VerseExample struct {
	SurahNumber int    `json:"surah"`
	VerseNumber int    `json:"verse"`
	Text        string `json:"text"`
}

// Word is a vocabulary item. ID is unique across the word list.
type Word struct {
	ID              string         `json:"id"`
	Arabic          string         `json:"arabic"`
	Transliteration string         `json:"transliteration"`
	Translation     string         `json:"translation"`
	PartOfSpeech    PartOfSpeech   `json:"partOfSpeech"`
	Frequency       int            `json:"frequency"`
	VerseExamples   []VerseExample `json:"verseExamples,omitempty"`
}
