package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
	"github.com/feedbackhub/backend/internal/pubsub"
	"github.com/feedbackhub/backend/internal/service/event"
	"github.com/feedbackhub/backend/internal/service/feedback"
	"github.com/feedbackhub/backend/internal/service/stream"
	"github.com/feedbackhub/backend/internal/service/user"
)

// userService defines what resolver needs from User service.
type userService interface {
	Create(ctx context.Context, input user.CreateInput) (*domain.User, error)
	Update(ctx context.Context, input user.UpdateInput) (*domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// eventService defines what resolver needs from Event service.
type eventService interface {
	Create(ctx context.Context, input event.CreateInput) (*domain.Event, error)
	Update(ctx context.Context, input event.UpdateInput) (*domain.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

// feedbackService defines what resolver needs from Feedback service.
type feedbackService interface {
	Create(ctx context.Context, input feedback.CreateInput) (*domain.Feedback, error)
	Update(ctx context.Context, input feedback.UpdateInput) (*domain.Feedback, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	List(ctx context.Context, input feedback.ListInput) (*feedback.ListResult, error)
}

// streamService defines what resolver needs from the synthetic stream.
type streamService interface {
	Start(input stream.StartInput) (bool, error)
	Stop() bool
}

// subscriber defines what resolver needs from the broadcast hub.
type subscriber interface {
	Subscribe(ctx context.Context, filter domain.FeedbackFilter) *pubsub.Subscription
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	user     userService
	event    eventService
	feedback feedbackService
	stream   streamService
	subs     subscriber
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	user userService,
	event eventService,
	feedback feedbackService,
	stream streamService,
	subs subscriber,
) *Resolver {
	return &Resolver{
		user:     user,
		event:    event,
		feedback: feedback,
		stream:   stream,
		subs:     subs,
		log:      log.With("component", "graphql"),
	}
}
