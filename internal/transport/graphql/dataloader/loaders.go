package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/feedbackhub/backend/internal/domain"
)

func newFeedbacksByEventBatchFn(repo feedbackRepo) dataloader.BatchFunc[uuid.UUID, []*domain.Feedback] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.Feedback] {
		feedbacks, err := repo.ListByEventIDs(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.Feedback](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.Feedback, len(keys))
		for _, fb := range feedbacks {
			grouped[fb.EventID] = append(grouped[fb.EventID], fb)
		}

		return mapResults(keys, grouped, emptySlice[*domain.Feedback])
	}
}

func newFeedbacksByUserBatchFn(repo feedbackRepo) dataloader.BatchFunc[uuid.UUID, []*domain.Feedback] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]*domain.Feedback] {
		feedbacks, err := repo.ListByUserIDs(ctx, keys)
		if err != nil {
			return errorResults[[]*domain.Feedback](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]*domain.Feedback, len(keys))
		for _, fb := range feedbacks {
			grouped[fb.UserID] = append(grouped[fb.UserID], fb)
		}

		return mapResults(keys, grouped, emptySlice[*domain.Feedback])
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
