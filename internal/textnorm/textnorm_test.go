package textnorm

import (
	"reflect"
	"testing"
)

func TestStripDiacritics(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fatha and kasra", "بِسْمِ", "بسم"},
		{"shadda and damma", "رَبُّ", "رب"},
		{"tatweel removed", "الرحمـــن", "الرحمن"},
		{"plain text unchanged", "الله", "الله"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripDiacritics(tt.in); got != tt.want {
				t.Errorf("StripDiacritics(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestArabic_EqualModuloDiacritics(t *testing.T) {
	a := Arabic("الْحَمْدُ لِلَّهِ")
	b := Arabic("الحمد لله")
	if a != b {
		t.Errorf("vocalized and bare forms differ: %q vs %q", a, b)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The  Most   Merciful", "the most merciful"},
		{"BISMILLAH", "bismillah"},
		{"  padded  ", "padded"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Text(tt.in); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("قُلْ هُوَ اللَّهُ أَحَدٌ")
	if len(got) != 4 {
		t.Fatalf("token count = %d, want 4 (%v)", len(got), got)
	}

	if got := Tokenize("   "); len(got) != 0 {
		t.Errorf("blank input gave %v", got)
	}

	want := []string{"one", "two"}
	if got := Tokenize(" one\ttwo\n"); !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}
