package quiz

import "github.com/moh-dev-stack/quran-memorise-sub000/internal/scoring"

// Mode is the presentation mode of a quiz session.
type Mode string

const (
	// ModeReading presents verses in order for recitation practice.
	ModeReading Mode = "reading"
	// ModeTranslation asks for the translation of a shown verse.
	ModeTranslation Mode = "translation"
	// ModeTransliteration asks for the transliteration of a shown verse.
	ModeTransliteration Mode = "transliteration"
	// ModeArabic asks for the Arabic of a shown translation.
	ModeArabic Mode = "arabic"
	// ModeMissingWord blanks tokens of the Arabic text.
	ModeMissingWord Mode = "missing-word"
)

// AllModes returns the quiz modes in display order.
func AllModes() []Mode {
	return []Mode{ModeReading, ModeTranslation, ModeTransliteration, ModeArabic, ModeMissingWord}
}

// Sequential reports whether the mode keeps the corpus's natural verse
// order instead of shuffling.
func (m Mode) Sequential() bool {
	return m == ModeReading
}

// QuestionType returns the scoring type for questions in this mode.
func (m Mode) QuestionType() scoring.QuestionType {
	switch m {
	case ModeTranslation:
		return scoring.TypeTranslation
	case ModeTransliteration:
		return scoring.TypeTransliteration
	case ModeArabic:
		return scoring.TypeArabic
	case ModeMissingWord:
		return scoring.TypeMissingWord
	default:
		return scoring.TypeReading
	}
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeReading:
		return "Reading"
	case ModeTranslation:
		return "Translation"
	case ModeTransliteration:
		return "Transliteration"
	case ModeArabic:
		return "Arabic"
	case ModeMissingWord:
		return "Missing Word"
	default:
		return string(m)
	}
}
