package corpus

import "testing"

func TestSurahs_LoadAndValidate(t *testing.T) {
	surahs, err := Surahs()
	if err != nil {
		t.Fatalf("load surahs: %v", err)
	}
	if len(surahs) == 0 {
		t.Fatal("no surahs loaded")
	}

	for _, s := range surahs {
		if s.Number < 1 || s.Number > 114 {
			t.Errorf("surah number %d out of range", s.Number)
		}
		if len(s.Verses) == 0 {
			t.Errorf("surah %d has no verses", s.Number)
		}
		for i, v := range s.Verses {
			if v.Number != i+1 {
				t.Errorf("surah %d verse %d numbered %d", s.Number, i+1, v.Number)
			}
			if v.Arabic == "" || v.Transliteration == "" || v.Translation == "" {
				t.Errorf("surah %d verse %d has empty fields", s.Number, v.Number)
			}
		}
	}
}

func TestSurahs_SortedByNumber(t *testing.T) {
	surahs, err := Surahs()
	if err != nil {
		t.Fatalf("load surahs: %v", err)
	}
	for i := 1; i < len(surahs); i++ {
		if surahs[i].Number <= surahs[i-1].Number {
			t.Errorf("surahs not sorted at index %d: %d then %d",
				i, surahs[i-1].Number, surahs[i].Number)
		}
	}
}

func TestSurahByNumber(t *testing.T) {
	s, err := SurahByNumber(1)
	if err != nil {
		t.Fatalf("SurahByNumber(1): %v", err)
	}
	if s.Name != "Al-Fatiha" {
		t.Errorf("surah 1 name = %q", s.Name)
	}
	if len(s.Verses) != 7 {
		t.Errorf("Al-Fatiha verse count = %d, want 7", len(s.Verses))
	}

	if _, err := SurahByNumber(99); err == nil {
		t.Error("expected error for surah not in corpus")
	}
}

func TestQuestions_OnePerVerse(t *testing.T) {
	s, err := SurahByNumber(112)
	if err != nil {
		t.Fatalf("SurahByNumber(112): %v", err)
	}

	qs := s.Questions()
	if len(qs) != len(s.Verses) {
		t.Fatalf("question count = %d, want %d", len(qs), len(s.Verses))
	}
	for i, q := range qs {
		if q.SurahNumber != 112 || q.SurahName != "Al-Ikhlas" {
			t.Errorf("question %d surah context = %d %q", i, q.SurahNumber, q.SurahName)
		}
		if q.Verse != s.Verses[i] {
			t.Errorf("question %d verse mismatch", i)
		}
	}
}

func TestWords_LoadAndValidate(t *testing.T) {
	words, err := Words()
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) == 0 {
		t.Fatal("no words loaded")
	}

	seen := make(map[string]bool)
	for _, w := range words {
		if seen[w.ID] {
			t.Errorf("duplicate word id %q", w.ID)
		}
		seen[w.ID] = true
		if w.Frequency < 1 {
			t.Errorf("word %q frequency %d", w.ID, w.Frequency)
		}
		switch w.PartOfSpeech {
		case PartVerb, PartNoun, PartParticle:
		default:
			t.Errorf("word %q part of speech %q", w.ID, w.PartOfSpeech)
		}
	}
}
