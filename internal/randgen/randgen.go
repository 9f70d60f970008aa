// Package randgen provides a deterministic pseudo-random source.
//
// Question ordering, option placement and blank positions must be
// reproducible from a semantic seed so that re-rendering a question does not
// reshuffle it. The generator is a linear congruential recurrence over
// integers reduced mod 2^31, which produces the same sequence on every
// platform and Go version — a guarantee math/rand does not make.
package randgen

// Linear congruential constants (glibc rand).
const (
	multiplier = 1103515245
	increment  = 12345
	modulus    = 1 << 31
)

// Generator is a seeded pseudo-random source. Two generators created with
// the same seed produce identical sequences across Next, IntN and Shuffle.
type Generator struct {
	state int64
}

// New creates a generator from an integer seed.
func New(seed int64) *Generator {
	s := seed % modulus
	if s < 0 {
		s += modulus
	}
	return &Generator{state: s}
}

// Next advances the recurrence and returns a float in [0, 1).
func (g *Generator) Next() float64 {
	g.state = (g.state*multiplier + increment) % modulus
	return float64(g.state) / float64(modulus)
}

// IntN returns an integer in [min, max). Returns min when the range is empty.
func (g *Generator) IntN(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(g.Next()*float64(max-min))
}

// Shuffle returns a new slice holding a Fisher–Yates permutation of items,
// driven entirely by IntN. The input is not modified.
func Shuffle[T any](g *Generator, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := g.IntN(0, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SeedFromValues folds strings and integers into a single seed with a
// rolling multiply-by-31 hash. Callers derive reproducible seeds from
// semantic keys (surah number, mode name, question index) instead of
// wall-clock time when stability across re-renders is required.
func SeedFromValues(parts ...any) int64 {
	var h int64
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			for _, r := range v {
				h = (h*31 + int64(r)) % modulus
			}
		case int:
			h = (h*31 + int64(v)%modulus) % modulus
		case int64:
			h = (h*31 + v%modulus) % modulus
		}
	}
	if h < 0 {
		h += modulus
	}
	return h
}
