package resolver

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
	"github.com/feedbackhub/backend/internal/service/event"
	"github.com/feedbackhub/backend/internal/service/feedback"
	"github.com/feedbackhub/backend/internal/service/stream"
	"github.com/feedbackhub/backend/internal/service/user"
)

func (r *mutationResolver) CreateUser(ctx context.Context, email, name string) (*domain.User, error) {
	return r.user.Create(ctx, user.CreateInput{Email: email, Name: name})
}

func (r *mutationResolver) UpdateUser(ctx context.Context, id uuid.UUID, email, name string) (*domain.User, error) {
	return r.user.Update(ctx, user.UpdateInput{ID: id, Email: email, Name: name})
}

func (r *mutationResolver) CreateEvent(ctx context.Context, name string, description *string) (*domain.Event, error) {
	return r.event.Create(ctx, event.CreateInput{
		Name:        name,
		Description: deref(description),
	})
}

func (r *mutationResolver) UpdateEvent(ctx context.Context, id uuid.UUID, name string, description *string) (*domain.Event, error) {
	return r.event.Update(ctx, event.UpdateInput{
		ID:          id,
		Name:        name,
		Description: deref(description),
	})
}

func (r *mutationResolver) CreateFeedback(ctx context.Context, eventID, userID uuid.UUID, text string, rating int) (*domain.Feedback, error) {
	return r.feedback.Create(ctx, feedback.CreateInput{
		EventID: eventID,
		UserID:  userID,
		Text:    text,
		Rating:  rating,
	})
}

func (r *mutationResolver) UpdateFeedback(ctx context.Context, id, eventID, userID uuid.UUID, text string, rating int) (*domain.Feedback, error) {
	return r.feedback.Update(ctx, feedback.UpdateInput{
		ID:      id,
		EventID: eventID,
		UserID:  userID,
		Text:    text,
		Rating:  rating,
	})
}

func (r *mutationResolver) StartFeedbackStream(ctx context.Context, intervalMs *int, eventID *uuid.UUID, ratingGte *int) (bool, error) {
	input := stream.StartInput{
		EventID:   eventID,
		MinRating: ratingGte,
	}
	if intervalMs != nil {
		input.Interval = time.Duration(*intervalMs) * time.Millisecond
	}
	return r.stream.Start(input)
}

func (r *mutationResolver) StopFeedbackStream(ctx context.Context) (bool, error) {
	return r.stream.Stop(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
