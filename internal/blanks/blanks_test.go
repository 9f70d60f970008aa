package blanks

import (
	"reflect"
	"strings"
	"testing"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/randgen"
)

func TestBlankCount(t *testing.T) {
	tests := []struct {
		tokens int
		want   int
	}{
		{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1},
		{6, 2}, {7, 2}, {9, 2}, {20, 2},
	}
	for _, tt := range tests {
		if got := BlankCount(tt.tokens); got != tt.want {
			t.Errorf("BlankCount(%d) = %d, want %d", tt.tokens, got, tt.want)
		}
	}
}

func TestBuild_PlaceholderCountMatches(t *testing.T) {
	texts := []string{
		"قُلْ هُوَ اللَّهُ أَحَدٌ",
		"مِن شَرِّ مَا خَلَقَ",
		"صِرَاطَ الَّذِينَ أَنْعَمْتَ عَلَيْهِمْ غَيْرِ الْمَغْضُوبِ عَلَيْهِمْ وَلَا الضَّالِّينَ",
	}

	for _, text := range texts {
		n := len(strings.Fields(text))
		b := Build(text, nil, randgen.New(4))

		want := BlankCount(n)
		if got := strings.Count(b.BlankedText, Placeholder); got != want {
			t.Errorf("%q: placeholder count = %d, want %d", text, got, want)
		}
		if len(b.MissingWords) != want {
			t.Errorf("%q: missing words = %d, want %d", text, len(b.MissingWords), want)
		}
		if len(b.MissingIndices) != want {
			t.Errorf("%q: missing indices = %d, want %d", text, len(b.MissingIndices), want)
		}
	}
}

func TestBuild_SingleTokenFullyBlanked(t *testing.T) {
	b := Build("قُلْ", nil, randgen.New(1))
	if b.BlankedText != Placeholder {
		t.Errorf("BlankedText = %q, want %q", b.BlankedText, Placeholder)
	}
	if len(b.MissingWords) != 1 || b.MissingWords[0] != "قُلْ" {
		t.Errorf("MissingWords = %v", b.MissingWords)
	}
}

func TestBuild_MissingWordsInTextOrder(t *testing.T) {
	text := "one two three four five six seven"
	for seed := int64(0); seed < 10; seed++ {
		b := Build(text, nil, randgen.New(seed))
		for i := 1; i < len(b.MissingIndices); i++ {
			if b.MissingIndices[i] <= b.MissingIndices[i-1] {
				t.Fatalf("seed %d: indices not ascending: %v", seed, b.MissingIndices)
			}
		}
		fields := strings.Fields(text)
		for i, idx := range b.MissingIndices {
			if b.MissingWords[i] != fields[idx] {
				t.Fatalf("seed %d: word %d = %q, want %q", seed, i, b.MissingWords[i], fields[idx])
			}
		}
	}
}

func TestBuild_ReproducibleUnderSeed(t *testing.T) {
	text := "إِيَّاكَ نَعْبُدُ وَإِيَّاكَ نَسْتَعِينُ"

	a := Build(text, nil, randgen.New(55))
	b := Build(text, nil, randgen.New(55))

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different blanks:\n%+v\n%+v", a, b)
	}
}

func TestBuild_EmptyText(t *testing.T) {
	b := Build("   ", nil, randgen.New(1))
	if b.BlankedText != "" || b.MissingWords != nil || b.MissingIndices != nil {
		t.Errorf("expected zero Blank, got %+v", b)
	}
}

func TestMissingWordOptions(t *testing.T) {
	corpusTokens := CorpusTokens([]string{
		"قُلْ هُوَ اللَّهُ أَحَدٌ",
		"اللَّهُ الصَّمَدُ",
		"لَمْ يَلِدْ وَلَمْ يُولَدْ",
	}, nil)

	set := MissingWordOptions(randgen.New(8), []string{"هُوَ"}, corpusTokens, 4)

	if len(set) < 2 {
		t.Fatalf("set size = %d, want >= 2", len(set))
	}
	correct := 0
	seen := make(map[string]bool)
	for _, o := range set {
		if o.Correct {
			correct++
			if o.Payload.Arabic != "هُوَ" {
				t.Errorf("correct payload = %q", o.Payload.Arabic)
			}
		}
		k := o.Payload.Key()
		if seen[k] {
			t.Errorf("duplicate payload %q", k)
		}
		seen[k] = true
	}
	if correct != 1 {
		t.Errorf("correct count = %d, want 1", correct)
	}
}

func TestMissingWordOptions_ExcludesCorrectTokens(t *testing.T) {
	// Corpus tokens include the correct token under a vocalized variant;
	// it must not appear as a distractor.
	corpusTokens := []string{"اللَّهُ", "الله", "رَبِّ", "يَوْمِ", "الدِّينِ"}

	set := MissingWordOptions(randgen.New(3), []string{"اللَّهُ"}, corpusTokens, 4)

	for _, o := range set {
		if o.Correct {
			continue
		}
		if o.Payload.Key() == "الله" {
			t.Errorf("correct token leaked into distractors: %+v", o)
		}
	}
}

func TestCorpusTokens(t *testing.T) {
	got := CorpusTokens([]string{"a b", "c", ""}, nil)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CorpusTokens = %v, want %v", got, want)
	}
}
