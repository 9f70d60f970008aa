package quiz

import (
	"reflect"
	"testing"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
)

func testQuestions(n int) []corpus.Question {
	qs := make([]corpus.Question, n)
	for i := range qs {
		qs[i] = corpus.Question{
			Verse: corpus.Verse{
				Number:          i + 1,
				Arabic:          "آية",
				Transliteration: "ayah",
				Translation:     "verse",
			},
			SurahNumber: 1,
			SurahName:   "Al-Fatiha",
		}
	}
	return qs
}

func verseNumbers(qs []corpus.Question) []int {
	nums := make([]int, len(qs))
	for i, q := range qs {
		nums[i] = q.Verse.Number
	}
	return nums
}

func TestSelectCorpus(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3))
	if s.Phase != PhaseSelectMode {
		t.Errorf("Phase = %v, want PhaseSelectMode", s.Phase)
	}
	if len(s.Questions) != 3 {
		t.Errorf("question count = %d, want 3", len(s.Questions))
	}
}

func TestSelectCorpus_EmptyIsNoOp(t *testing.T) {
	s := NewSession()
	got := s.SelectCorpus(nil)
	if !reflect.DeepEqual(got, s) {
		t.Errorf("empty corpus changed state: %+v", got)
	}
}

func TestSelectMode_ShuffledIsPermutation(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(5)).SelectMode(ModeMissingWord)

	if s.Phase != PhaseAnswering {
		t.Fatalf("Phase = %v, want PhaseAnswering", s.Phase)
	}
	nums := verseNumbers(s.Questions)
	seen := make(map[int]bool)
	for _, n := range nums {
		seen[n] = true
	}
	for i := 1; i <= 5; i++ {
		if !seen[i] {
			t.Errorf("verse %d missing after shuffle: %v", i, nums)
		}
	}
}

func TestSelectMode_SequentialKeepsOrder(t *testing.T) {
	// Load out of order; reading mode must restore ascending verse order.
	qs := testQuestions(4)
	qs[0], qs[3] = qs[3], qs[0]

	s := NewSession().SelectCorpus(qs).SelectMode(ModeReading)

	want := []int{1, 2, 3, 4}
	if got := verseNumbers(s.Questions); !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSelectMode_WithoutCorpusIsNoOp(t *testing.T) {
	s := NewSession()
	got := s.SelectMode(ModeTranslation)
	if !reflect.DeepEqual(got, s) {
		t.Errorf("mode selection without corpus changed state")
	}
}

func TestSelectMode_SeedStableWithinDerivation(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(6)).selectMode(ModeTranslation, 12345)
	again := NewSession().SelectCorpus(testQuestions(6)).selectMode(ModeTranslation, 12345)

	if !reflect.DeepEqual(verseNumbers(s.Questions), verseNumbers(again.Questions)) {
		t.Error("same entropy gave different orders")
	}

	other := NewSession().SelectCorpus(testQuestions(6)).selectMode(ModeTranslation, 99999)
	if s.Seed == other.Seed {
		t.Error("different entropy gave identical seed")
	}
}

func TestSubmitAnswer_MissingWordScores(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3)).SelectMode(ModeMissingWord)

	s = s.SubmitAnswer(true, false)
	if len(s.Scores) != 1 {
		t.Fatalf("score count = %d, want 1", len(s.Scores))
	}
	if s.Scores[0].Points != 8 || s.Scores[0].MaxPoints != 10 {
		t.Errorf("score = %+v, want 8/10", s.Scores[0])
	}
	if !s.Answered || s.Phase != PhaseAnswered {
		t.Errorf("Answered=%v Phase=%v after submit", s.Answered, s.Phase)
	}
}

func TestSubmitAnswer_RevealPath(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3)).SelectMode(ModeMissingWord)
	s = s.SubmitAnswer(true, true)
	if s.Scores[0].Points != 4 || s.Scores[0].MaxPoints != 10 {
		t.Errorf("score = %+v, want 4/10", s.Scores[0])
	}
}

func TestSubmitAnswer_Idempotent(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3)).SelectMode(ModeTranslation)
	s = s.SubmitAnswer(true, false)

	again := s.SubmitAnswer(false, false)
	if !reflect.DeepEqual(again, s) {
		t.Errorf("second submit changed state")
	}
	if len(again.Scores) != 1 {
		t.Errorf("score count = %d, want 1", len(again.Scores))
	}
}

func TestSubmitAnswer_BeforeModeIsNoOp(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3))
	got := s.SubmitAnswer(true, false)
	if !reflect.DeepEqual(got, s) {
		t.Errorf("submit before mode selection changed state")
	}
}

func TestAdvance(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3)).SelectMode(ModeTranslation)
	s = s.SubmitAnswer(true, false)

	s = s.Advance()
	if s.Index != 1 {
		t.Errorf("Index = %d, want 1", s.Index)
	}
	if s.Answered || s.HintUsed || s.Phase != PhaseAnswering {
		t.Errorf("flags not cleared: Answered=%v HintUsed=%v Phase=%v", s.Answered, s.HintUsed, s.Phase)
	}
}

func TestAdvance_AtLastIsNoOp(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(2)).SelectMode(ModeTranslation)
	s = s.SubmitAnswer(true, false).Advance()
	s = s.SubmitAnswer(true, false)

	if !s.IsLast() {
		t.Fatal("expected cursor on last question")
	}
	got := s.Advance()
	if !reflect.DeepEqual(got, s) {
		t.Errorf("advance at last question changed state")
	}
}

func TestFinish(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(1)).SelectMode(ModeTranslation)
	s = s.SubmitAnswer(true, false).Finish()
	if s.Phase != PhaseComplete {
		t.Errorf("Phase = %v, want PhaseComplete", s.Phase)
	}

	points, maxPoints := s.Total()
	if points != 10 || maxPoints != 10 {
		t.Errorf("Total = %d/%d, want 10/10", points, maxPoints)
	}
}

func TestResetToModeSelection_KeepsCorpus(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3)).SelectMode(ModeArabic)
	s = s.SubmitAnswer(true, false)

	s = s.ResetToModeSelection()
	if s.Phase != PhaseSelectMode {
		t.Errorf("Phase = %v, want PhaseSelectMode", s.Phase)
	}
	if len(s.Questions) != 3 {
		t.Errorf("corpus discarded: %d questions", len(s.Questions))
	}
	if len(s.Scores) != 0 || s.Mode != "" || s.Index != 0 {
		t.Errorf("progress not discarded: %+v", s)
	}
}

func TestResetToCorpusSelection_DiscardsEverything(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3)).SelectMode(ModeArabic)
	s = s.ResetToCorpusSelection()
	if !reflect.DeepEqual(s, NewSession()) {
		t.Errorf("reset state = %+v", s)
	}
}

func TestCurrent(t *testing.T) {
	s := NewSession()
	if _, ok := s.Current(); ok {
		t.Error("Current before corpus selection should be false")
	}

	s = s.SelectCorpus(testQuestions(3)).SelectMode(ModeReading)
	q, ok := s.Current()
	if !ok {
		t.Fatal("expected active question")
	}
	if q.Verse.Number != 1 {
		t.Errorf("first reading question verse = %d, want 1", q.Verse.Number)
	}
}

func TestQuestionSeed_StablePerIndex(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3)).SelectMode(ModeTranslation)
	if s.QuestionSeed(0) != s.QuestionSeed(0) {
		t.Error("QuestionSeed not stable")
	}
	if s.QuestionSeed(0) == s.QuestionSeed(1) {
		t.Error("distinct questions share a seed")
	}
}

// Full scenario from the session contract: three items, shuffled mode,
// answer, advance, answer with reveal.
func TestScenario_ThreeItemMissingWord(t *testing.T) {
	s := NewSession().SelectCorpus(testQuestions(3)).SelectMode(ModeMissingWord)

	s = s.SubmitAnswer(true, false)
	if want := 8; s.Scores[0].Points != want {
		t.Errorf("first score = %d, want %d", s.Scores[0].Points, want)
	}

	s = s.Advance()
	if s.Index != 1 || s.Answered {
		t.Errorf("after advance: Index=%d Answered=%v", s.Index, s.Answered)
	}

	s = s.SubmitAnswer(true, true)
	if want := 4; s.Scores[1].Points != want {
		t.Errorf("second score = %d, want %d", s.Scores[1].Points, want)
	}
}
