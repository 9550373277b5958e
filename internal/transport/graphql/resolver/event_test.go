package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhub/backend/internal/domain"
	"github.com/feedbackhub/backend/internal/service/event"
)

func TestEvents_Success(t *testing.T) {
	t.Parallel()

	expected := []*domain.Event{
		{ID: uuid.New(), Name: "GopherCon"},
	}

	mock := &eventServiceMock{
		ListFunc: func(ctx context.Context) ([]*domain.Event, error) {
			return expected, nil
		},
	}

	resolver := &queryResolver{&Resolver{event: mock}}

	result, err := resolver.Events(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "GopherCon", result[0].Name)
}

func TestCreateEvent_NilDescription(t *testing.T) {
	t.Parallel()

	mock := &eventServiceMock{
		CreateFunc: func(ctx context.Context, input event.CreateInput) (*domain.Event, error) {
			require.Equal(t, "Meetup", input.Name)
			require.Empty(t, input.Description)
			return &domain.Event{ID: uuid.New(), Name: input.Name}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{event: mock}}

	result, err := resolver.CreateEvent(context.Background(), "Meetup", nil)

	require.NoError(t, err)
	require.Equal(t, "Meetup", result.Name)
}

func TestUpdateEvent_Success(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	description := "updated description"

	mock := &eventServiceMock{
		UpdateFunc: func(ctx context.Context, input event.UpdateInput) (*domain.Event, error) {
			require.Equal(t, id, input.ID)
			require.Equal(t, description, input.Description)
			return &domain.Event{ID: id, Name: input.Name, Description: input.Description}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{event: mock}}

	result, err := resolver.UpdateEvent(context.Background(), id, "Renamed", &description)

	require.NoError(t, err)
	require.Equal(t, "Renamed", result.Name)
}
