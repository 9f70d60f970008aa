package options

import (
	"reflect"
	"testing"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/randgen"
)

func textProject(s string) Payload { return TextPayload(s) }

func TestBuild_ExactlyOneCorrect(t *testing.T) {
	g := randgen.New(1)
	pool := []string{"b", "c", "d", "e", "f"}

	set := Build(g, "a", pool, DefaultSetSize, textProject)

	correct := 0
	for _, o := range set {
		if o.Correct {
			correct++
			if o.Payload.Text != "a" {
				t.Errorf("correct option payload = %q, want %q", o.Payload.Text, "a")
			}
		}
	}
	if correct != 1 {
		t.Errorf("correct count = %d, want 1", correct)
	}
	if len(set) != DefaultSetSize {
		t.Errorf("set size = %d, want %d", len(set), DefaultSetSize)
	}
}

func TestBuild_NoDuplicateKeys(t *testing.T) {
	g := randgen.New(5)
	// Pool full of case/spacing variants of the same two payloads.
	pool := []string{"Mercy", "mercy", "MERCY", " mercy ", "Light", "light"}

	set := Build(g, "Guidance", pool, DefaultSetSize, textProject)

	seen := make(map[string]bool)
	for _, o := range set {
		k := o.Payload.Key()
		if seen[k] {
			t.Errorf("duplicate normalized payload %q", k)
		}
		seen[k] = true
	}
	// Only 2 unique distractors exist, so the set tops out at 3.
	if len(set) != 3 {
		t.Errorf("set size = %d, want 3", len(set))
	}
}

func TestBuild_EmptyCorrectPayload(t *testing.T) {
	g := randgen.New(1)
	if set := Build(g, "   ", []string{"a", "b"}, 4, textProject); set != nil {
		t.Errorf("expected nil set for blank correct payload, got %v", set)
	}
}

func TestBuild_EmptyPool(t *testing.T) {
	g := randgen.New(1)
	set := Build(g, "only", nil, 4, textProject)
	if len(set) != 1 || !set[0].Correct {
		t.Errorf("expected single correct option, got %v", set)
	}
}

func TestBuild_DeterministicUnderSeed(t *testing.T) {
	pool := []string{"b", "c", "d", "e", "f", "g", "h"}

	first := Build(randgen.New(77), "a", pool, 4, textProject)
	second := Build(randgen.New(77), "a", pool, 4, textProject)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different sets:\n%v\n%v", first, second)
	}
}

func TestBuild_CorrectPositionVaries(t *testing.T) {
	pool := []string{"b", "c", "d", "e", "f", "g", "h"}

	positions := make(map[int]bool)
	for seed := int64(0); seed < 20; seed++ {
		set := Build(randgen.New(seed), "a", pool, 4, textProject)
		positions[CorrectIndex(set)] = true
	}
	if len(positions) < 2 {
		t.Errorf("correct option landed in the same slot for 20 seeds: %v", positions)
	}
}

func TestBuild_IDsUniqueWithinSet(t *testing.T) {
	set := Build(randgen.New(3), "a", []string{"b", "c", "d"}, 4, textProject)
	seen := make(map[string]bool)
	for _, o := range set {
		if o.ID == "" {
			t.Error("empty option id")
		}
		if seen[o.ID] {
			t.Errorf("duplicate id %q", o.ID)
		}
		seen[o.ID] = true
	}
}

func TestPayloadKey_Arabic(t *testing.T) {
	a := PairPayload("الرَّحْمَٰنِ الرَّحِيمِ", "ar-rahmani r-rahim")
	b := PairPayload("الرحمن الرحيم", "different translit")
	if a.Key() != b.Key() {
		t.Errorf("Arabic keys differ: %q vs %q", a.Key(), b.Key())
	}
}

func TestForArabicVerse(t *testing.T) {
	surah := corpus.Surah{
		Number: 112,
		Name:   "Al-Ikhlas",
		Verses: []corpus.Verse{
			{Number: 1, Arabic: "قُلْ هُوَ اللَّهُ أَحَدٌ", Transliteration: "Qul huwa llahu ahad", Translation: "Say: He is Allah, who is One."},
			{Number: 2, Arabic: "اللَّهُ الصَّمَدُ", Transliteration: "Allahu s-samad", Translation: "Allah, the Eternal Refuge."},
			{Number: 3, Arabic: "لَمْ يَلِدْ وَلَمْ يُولَدْ", Transliteration: "Lam yalid wa-lam yulad", Translation: "He neither begets nor is born."},
			{Number: 4, Arabic: "وَلَمْ يَكُن لَّهُ كُفُوًا أَحَدٌ", Transliteration: "Wa-lam yakun lahu kufuwan ahad", Translation: "Nor is there to Him any equivalent."},
		},
	}
	qs := surah.Questions()

	set := ForArabicVerse(randgen.New(9), qs[0], qs[1:], 4)

	if len(set) != 4 {
		t.Fatalf("set size = %d, want 4", len(set))
	}
	idx := CorrectIndex(set)
	if idx < 0 {
		t.Fatal("no correct option")
	}
	if set[idx].Payload.Arabic != qs[0].Verse.Arabic {
		t.Errorf("correct payload = %q", set[idx].Payload.Arabic)
	}
	for _, o := range set {
		if o.Payload.Arabic == "" || o.Payload.Transliteration == "" {
			t.Errorf("pair payload incomplete: %+v", o.Payload)
		}
	}
}

func TestForWordMeaning_SmallPool(t *testing.T) {
	words := []corpus.Word{
		{ID: "w1", Arabic: "رَبّ", Transliteration: "rabb", Translation: "lord"},
		{ID: "w2", Arabic: "يَوْم", Transliteration: "yawm", Translation: "day"},
	}

	set := ForWordMeaning(randgen.New(2), words[0], words[1:], 4)

	if len(set) != 2 {
		t.Fatalf("set size = %d, want 2 (pool has one candidate)", len(set))
	}
	if CorrectIndex(set) < 0 {
		t.Error("no correct option")
	}
}
