package resolver

import (
	"github.com/feedbackhub/backend/internal/transport/graphql/generated"
)

// Binding methods connecting the root resolver to the generated
// executable schema.

func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

func (r *Resolver) Subscription() generated.SubscriptionResolver { return &subscriptionResolver{r} }

func (r *Resolver) Feedback() generated.FeedbackResolver { return &feedbackResolver{r} }

func (r *Resolver) Event() generated.EventResolver { return &eventResolver{r} }

func (r *Resolver) User() generated.UserResolver { return &userResolver{r} }

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type subscriptionResolver struct{ *Resolver }
type feedbackResolver struct{ *Resolver }
type eventResolver struct{ *Resolver }
type userResolver struct{ *Resolver }
