package options

import (
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/randgen"
)

// DefaultSetSize is the target option count when the pool allows it.
const DefaultSetSize = 4

// refillAttempts caps the extra draws made when the first pass over the
// pool leaves the set under-sized.
const refillAttempts = 10

// Build constructs the option set for one question.
//
// correct supplies the single correct option; pool holds the candidate
// distractors (the correct item must not be in it); project extracts the
// comparable payload for the question type. Candidates whose normalized
// payload duplicates an already-included option are skipped.
//
// Returns nil when the correct payload is blank. The result has exactly one
// correct member, no duplicate normalized payloads, and
// min(size, 1+unique candidates) entries; callers must treat a set smaller
// than 2 as "cannot ask this question."
func Build[T any](g *randgen.Generator, correct T, pool []T, size int, project func(T) Payload) []Option {
	if size < 2 {
		size = DefaultSetSize
	}

	correctPayload := project(correct)
	if correctPayload.IsEmpty() {
		return nil
	}

	seen := map[string]bool{correctPayload.Key(): true}
	set := []Option{{Payload: correctPayload, Correct: true}}

	for _, c := range randgen.Shuffle(g, pool) {
		if len(set) >= size {
			break
		}
		p := project(c)
		if p.IsEmpty() || seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		set = append(set, Option{Payload: p})
	}

	// The shuffled pass can exhaust without filling when projections
	// collide; a few bounded draws with replacement try to close the gap.
	for attempt := 0; attempt < refillAttempts && len(set) < size && len(pool) > 0; attempt++ {
		p := project(pool[g.IntN(0, len(pool))])
		if p.IsEmpty() || seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		set = append(set, Option{Payload: p})
	}

	set = randgen.Shuffle(g, set)
	for i := range set {
		set[i].ID = idHash(set[i].Payload.Key(), i)
	}
	return set
}

// CorrectIndex returns the position of the correct option, or -1 for an
// empty set.
func CorrectIndex(set []Option) int {
	for i, o := range set {
		if o.Correct {
			return i
		}
	}
	return -1
}
