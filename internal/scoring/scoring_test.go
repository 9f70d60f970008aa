package scoring

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		qtype      QuestionType
		correct    bool
		hintUsed   bool
		wantPoints int
	}{
		{"translation correct", TypeTranslation, true, false, 10},
		{"translation incorrect", TypeTranslation, false, false, 0},
		{"arabic correct", TypeArabic, true, false, 10},
		{"word meaning correct", TypeWordMeaning, true, false, 10},
		{"missing word unaided", TypeMissingWord, true, false, 8},
		{"missing word revealed", TypeMissingWord, true, true, 4},
		{"missing word incorrect", TypeMissingWord, false, false, 0},
		{"missing word incorrect with hint", TypeMissingWord, false, true, 0},
		{"hint ignored for other types", TypeTranslation, true, true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.qtype, tt.correct, tt.hintUsed)
			if got.Points != tt.wantPoints {
				t.Errorf("Points = %d, want %d", got.Points, tt.wantPoints)
			}
			if got.MaxPoints != MaxPointsPerQuestion {
				t.Errorf("MaxPoints = %d, want %d", got.MaxPoints, MaxPointsPerQuestion)
			}
			if got.Points > got.MaxPoints {
				t.Errorf("Points %d exceeds MaxPoints %d", got.Points, got.MaxPoints)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	scores := []ScoreResult{
		{Points: 10, MaxPoints: 10},
		{Points: 8, MaxPoints: 10},
		{Points: 0, MaxPoints: 10},
	}
	points, maxPoints := Total(scores)
	if points != 18 || maxPoints != 30 {
		t.Errorf("Total = %d/%d, want 18/30", points, maxPoints)
	}

	points, maxPoints = Total(nil)
	if points != 0 || maxPoints != 0 {
		t.Errorf("Total(nil) = %d/%d, want 0/0", points, maxPoints)
	}
}
