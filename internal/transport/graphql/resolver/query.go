package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
	"github.com/feedbackhub/backend/internal/service/feedback"
	"github.com/feedbackhub/backend/internal/transport/graphql/model"
)

func (r *queryResolver) Users(ctx context.Context) ([]*domain.User, error) {
	return r.user.List(ctx)
}

func (r *queryResolver) User(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.user.Get(ctx, id)
}

func (r *queryResolver) Events(ctx context.Context) ([]*domain.Event, error) {
	return r.event.List(ctx)
}

func (r *queryResolver) Event(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return r.event.Get(ctx, id)
}

func (r *queryResolver) Feedback(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	return r.feedback.Get(ctx, id)
}

func (r *queryResolver) Feedbacks(ctx context.Context, first *int, after *string, eventID *uuid.UUID, ratingGte *int) (*model.FeedbackConnection, error) {
	input := feedback.ListInput{
		EventID:   eventID,
		MinRating: ratingGte,
	}
	if first != nil {
		input.First = *first
	}
	if after != nil {
		cursor, err := decodeCursor(*after)
		if err != nil {
			return nil, err
		}
		input.After = &cursor
	}

	res, err := r.feedback.List(ctx, input)
	if err != nil {
		return nil, err
	}

	return toConnection(res), nil
}

func toConnection(res *feedback.ListResult) *model.FeedbackConnection {
	edges := make([]*model.FeedbackEdge, len(res.Items))
	for i, fb := range res.Items {
		edges[i] = &model.FeedbackEdge{
			Cursor: encodeCursor(fb.ID),
			Node:   fb,
		}
	}

	pageInfo := &model.PageInfo{HasNextPage: res.HasNextPage}
	if res.EndCursor != nil {
		cursor := encodeCursor(*res.EndCursor)
		pageInfo.EndCursor = &cursor
	}

	return &model.FeedbackConnection{
		Edges:    edges,
		PageInfo: pageInfo,
		Count:    res.TotalCount,
	}
}
