package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

// FeedbackAdded streams newly created feedback matching the filter. The
// filter is fixed for the lifetime of the subscription; the channel is
// closed when the client disconnects.
func (r *subscriptionResolver) FeedbackAdded(ctx context.Context, eventID *uuid.UUID, ratingGte *int) (<-chan *domain.Feedback, error) {
	if ratingGte != nil && (*ratingGte < domain.MinRating || *ratingGte > domain.MaxRating) {
		return nil, domain.NewValidationError("ratingGte", "must be between 1 and 5")
	}

	sub := r.subs.Subscribe(ctx, domain.FeedbackFilter{
		EventID:   eventID,
		MinRating: ratingGte,
	})

	return sub.C(), nil
}
