package resolver

import (
	"context"

	"github.com/feedbackhub/backend/internal/domain"
	"github.com/feedbackhub/backend/internal/transport/graphql/dataloader"
)

// Feedback rows fetched from storage carry event and user snapshots from
// the join, so these resolvers usually return without another query. The
// service fallback covers values assembled outside the joined read path.

func (r *feedbackResolver) Event(ctx context.Context, obj *domain.Feedback) (*domain.Event, error) {
	if obj.Event != nil {
		return obj.Event, nil
	}
	return r.event.Get(ctx, obj.EventID)
}

func (r *feedbackResolver) User(ctx context.Context, obj *domain.Feedback) (*domain.User, error) {
	if obj.User != nil {
		return obj.User, nil
	}
	return r.user.Get(ctx, obj.UserID)
}

func (r *eventResolver) Feedbacks(ctx context.Context, obj *domain.Event) ([]*domain.Feedback, error) {
	return dataloader.FromContext(ctx).FeedbacksByEventID.Load(ctx, obj.ID)()
}

func (r *userResolver) Feedbacks(ctx context.Context, obj *domain.User) ([]*domain.Feedback, error) {
	return dataloader.FromContext(ctx).FeedbacksByUserID.Load(ctx, obj.ID)()
}
