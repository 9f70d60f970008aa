package store

import (
	"context"
	"fmt"

	"github.com/moh-dev-stack/quran-memorise-sub000/ent"
	"github.com/moh-dev-stack/quran-memorise-sub000/ent/reviewrecord"
	"github.com/moh-dev-stack/quran-memorise-sub000/internal/srs"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) All(ctx context.Context) (map[string]srs.ReviewState, error) {
	records, err := r.client.ReviewRecord.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review records: %w", err)
	}

	states := make(map[string]srs.ReviewState, len(records))
	for _, rec := range records {
		states[rec.WordID] = srs.ReviewState{
			EaseFactor:  rec.EaseFactor,
			Interval:    rec.IntervalDays,
			Repetitions: rec.Repetitions,
			NextReview:  rec.NextReview,
		}
	}
	return states, nil
}

func (r *reviewRepo) Save(ctx context.Context, wordID string, state srs.ReviewState) error {
	existing, err := r.client.ReviewRecord.Query().
		Where(reviewrecord.WordID(wordID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query review record: %w", err)
	}

	if existing == nil {
		_, err = r.client.ReviewRecord.Create().
			SetWordID(wordID).
			SetEaseFactor(state.EaseFactor).
			SetIntervalDays(state.Interval).
			SetRepetitions(state.Repetitions).
			SetNextReview(state.NextReview).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create review record: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetEaseFactor(state.EaseFactor).
		SetIntervalDays(state.Interval).
		SetRepetitions(state.Repetitions).
		SetNextReview(state.NextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update review record: %w", err)
	}
	return nil
}
