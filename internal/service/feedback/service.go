// Package feedback implements feedback operations: create, update and
// the cursor-paginated listing backing both queries and the live feed.
package feedback

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

type feedbackRepo interface {
	Create(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error)
	Update(ctx context.Context, id uuid.UUID, params domain.FeedbackUpdateParams, createdAt time.Time) (*domain.Feedback, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	List(ctx context.Context, filter domain.FeedbackFilter, cursor *uuid.UUID, limit int) ([]*domain.Feedback, error)
	Count(ctx context.Context, filter domain.FeedbackFilter) (int, error)
}

type publisher interface {
	Publish(fb *domain.Feedback)
}

// Service provides feedback operations.
type Service struct {
	feedbacks feedbackRepo
	pub       publisher
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Feedback service.
func NewService(log *slog.Logger, feedbacks feedbackRepo, pub publisher) *Service {
	return &Service{
		feedbacks: feedbacks,
		pub:       pub,
		log:       log.With("service", "feedback"),
		now:       time.Now,
	}
}

// Create persists a new feedback record and broadcasts it to live
// subscribers. The broadcast happens only after a successful persist,
// so subscribers never observe feedback that failed to store.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Feedback, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fb, err := s.feedbacks.Create(ctx, domain.FeedbackCreateParams{
		EventID:   input.EventID,
		UserID:    input.UserID,
		Text:      input.Text,
		Rating:    input.Rating,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}

	s.pub.Publish(fb)

	s.log.InfoContext(ctx, "feedback created",
		slog.String("feedback_id", fb.ID.String()),
		slog.String("event_id", fb.EventID.String()),
		slog.Int("rating", fb.Rating),
	)

	return fb, nil
}

// Update overwrites a feedback record. The creation timestamp is
// refreshed, so an updated record surfaces at the top of the recency
// ordering again. Updates are not broadcast.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Feedback, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	fb, err := s.feedbacks.Update(ctx, input.ID, domain.FeedbackUpdateParams{
		EventID: input.EventID,
		UserID:  input.UserID,
		Text:    input.Text,
		Rating:  input.Rating,
	}, s.now())
	if err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}

	return fb, nil
}

// Get returns a feedback record by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	fb, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return fb, nil
}
