// Package scoring maps answers to points with a fixed table per question
// type.
package scoring

// QuestionType identifies what a question asks for.
type QuestionType string

const (
	TypeTranslation     QuestionType = "translation"
	TypeTransliteration QuestionType = "transliteration"
	TypeArabic          QuestionType = "arabic"
	TypeMissingWord     QuestionType = "missing-word"
	TypeWordMeaning     QuestionType = "word-meaning"
	TypeWordArabic      QuestionType = "word-arabic"
	TypeReading         QuestionType = "reading"
)

// DisplayName returns a human-readable label for the question type.
func (t QuestionType) DisplayName() string {
	switch t {
	case TypeTranslation:
		return "Translation"
	case TypeTransliteration:
		return "Transliteration"
	case TypeArabic:
		return "Arabic"
	case TypeMissingWord:
		return "Missing Word"
	case TypeWordMeaning:
		return "Word Meaning"
	case TypeWordArabic:
		return "Word Arabic"
	case TypeReading:
		return "Reading"
	default:
		return string(t)
	}
}

// MaxPointsPerQuestion is the maximum for every question type.
const MaxPointsPerQuestion = 10

// Missing-word scores: revealing the answer still counts as correct but is
// penalized, and an unaided fill scores below a straight multiple-choice hit.
const (
	missingWordUnaided  = 8
	missingWordRevealed = 4
)

// ScoreResult is the outcome of one answered question. Points never exceed
// MaxPoints.
type ScoreResult struct {
	Points    int
	MaxPoints int
}

// Score returns the points for one answer. Most types award all or nothing;
// missing-word rewards an unaided fill over a revealed one.
func Score(questionType QuestionType, correct, hintUsed bool) ScoreResult {
	r := ScoreResult{MaxPoints: MaxPointsPerQuestion}
	if !correct {
		return r
	}

	switch questionType {
	case TypeMissingWord:
		if hintUsed {
			r.Points = missingWordRevealed
		} else {
			r.Points = missingWordUnaided
		}
	default:
		r.Points = MaxPointsPerQuestion
	}
	return r
}

// Total sums a session's score list.
func Total(scores []ScoreResult) (points, maxPoints int) {
	for _, s := range scores {
		points += s.Points
		maxPoints += s.MaxPoints
	}
	return points, maxPoints
}
