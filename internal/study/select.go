package study

import (
	"sort"
	"time"

	"github.com/moh-dev-stack/quran-memorise-sub000/internal/corpus"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/srs"
)

// BuildLearningSet orders words for a study session: due words first, most
// overdue leading, then words that have never been reviewed, then the rest
// by next review date. States are keyed by word ID; a missing entry means
// the word has not entered the review cycle. limit > 0 truncates the set.
func BuildLearningSet(words []corpus.Word, states map[string]srs.ReviewState, now time.Time, limit int) []corpus.Word {
	var due, fresh, rest []corpus.Word

	for _, w := range words {
		state, tracked := states[w.ID]
		switch {
		case !tracked:
			fresh = append(fresh, w)
		case srs.IsDue(&state, now):
			due = append(due, w)
		default:
			rest = append(rest, w)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		si, sj := states[due[i].ID], states[due[j].ID]
		oi, oj := srs.OverdueDays(&si, now), srs.OverdueDays(&sj, now)
		if oi != oj {
			return oi > oj
		}
		return due[i].ID < due[j].ID
	})
	sort.SliceStable(rest, func(i, j int) bool {
		return states[rest[i].ID].NextReview.Before(states[rest[j].ID].NextReview)
	})

	out := append(append(due, fresh...), rest...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CountDue returns how many words are due for review right now, counting
// words that have never been reviewed.
func CountDue(words []corpus.Word, states map[string]srs.ReviewState, now time.Time) int {
	n := 0
	for _, w := range words {
		state, tracked := states[w.ID]
		if !tracked || srs.IsDue(&state, now) {
			n++
		}
	}
	return n
}
