// Package dataloader provides per-request DataLoaders for batching
// GraphQL resolver queries into single SQL calls. DataLoaders call the
// feedback repository directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/feedbackhub/backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type feedbackRepo interface {
	ListByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*domain.Feedback, error)
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Feedback, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Feedback feedbackRepo
}

// Loaders contains all per-request DataLoader instances. Created
// per-request via NewLoaders.
type Loaders struct {
	FeedbacksByEventID *dataloader.Loader[uuid.UUID, []*domain.Feedback]
	FeedbacksByUserID  *dataloader.Loader[uuid.UUID, []*domain.Feedback]
}

// NewLoaders creates a new set of DataLoaders backed by the given
// repositories. Must be called per-request (loaders cache results
// within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		FeedbacksByEventID: newLoader(newFeedbacksByEventBatchFn(repos.Feedback)),
		FeedbacksByUserID:  newLoader(newFeedbacksByUserBatchFn(repos.Feedback)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context - is middleware configured?")
	}
	return l
}
