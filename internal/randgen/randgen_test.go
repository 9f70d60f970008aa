package randgen

import (
	"reflect"
	"testing"
)

func TestNext_SameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		av, bv := a.Next(), b.Next()
		if av != bv {
			t.Fatalf("draw %d: %v != %v", i, av, bv)
		}
		if av < 0 || av >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, av)
		}
	}
}

func TestNext_DifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 50; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 50 {
		t.Fatal("seeds 1 and 2 produced identical sequences")
	}
}

func TestNew_NegativeSeed(t *testing.T) {
	g := New(-7)
	v := g.Next()
	if v < 0 || v >= 1 {
		t.Fatalf("Next() = %v, want in [0,1)", v)
	}
}

func TestIntN_Bounds(t *testing.T) {
	g := New(99)
	for i := 0; i < 1000; i++ {
		v := g.IntN(3, 8)
		if v < 3 || v >= 8 {
			t.Fatalf("IntN(3,8) = %d", v)
		}
	}
}

func TestIntN_EmptyRange(t *testing.T) {
	g := New(1)
	if v := g.IntN(5, 5); v != 5 {
		t.Errorf("IntN(5,5) = %d, want 5", v)
	}
	if v := g.IntN(5, 2); v != 5 {
		t.Errorf("IntN(5,2) = %d, want 5", v)
	}
}

func TestShuffle_Deterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f"}

	first := Shuffle(New(7), items)
	second := Shuffle(New(7), items)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed gave different orders: %v vs %v", first, second)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	out := Shuffle(New(3), items)

	if len(out) != len(items) {
		t.Fatalf("len = %d, want %d", len(out), len(items))
	}
	seen := make(map[int]bool)
	for _, v := range out {
		seen[v] = true
	}
	for _, v := range items {
		if !seen[v] {
			t.Errorf("missing %d in %v", v, out)
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := make([]int, len(items))
	copy(orig, items)

	Shuffle(New(11), items)

	if !reflect.DeepEqual(items, orig) {
		t.Errorf("input mutated: %v", items)
	}
}

func TestSeedFromValues(t *testing.T) {
	tests := []struct {
		name  string
		a, b  []any
		equal bool
	}{
		{"same parts", []any{"missing-word", 5}, []any{"missing-word", 5}, true},
		{"different string", []any{"missing-word", 5}, []any{"translation", 5}, false},
		{"different int", []any{"missing-word", 5}, []any{"missing-word", 6}, false},
		{"order matters", []any{"a", "b"}, []any{"b", "a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sa, sb := SeedFromValues(tt.a...), SeedFromValues(tt.b...)
			if (sa == sb) != tt.equal {
				t.Errorf("SeedFromValues(%v)=%d, SeedFromValues(%v)=%d, want equal=%v",
					tt.a, sa, tt.b, sb, tt.equal)
			}
		})
	}
}

func TestSeedFromValues_StaysInRange(t *testing.T) {
	s := SeedFromValues("a very long string to overflow the accumulator many times over", int64(1<<62))
	if s < 0 || s >= modulus {
		t.Errorf("seed %d outside [0, 2^31)", s)
	}
}
