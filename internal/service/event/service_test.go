package event

//go:generate moq -out event_repo_mock_test.go -pkg event . eventRepo

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhub/backend/internal/domain"
)

func TestService_Create_Success(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	mock := &eventRepoMock{
		CreateFunc: func(ctx context.Context, name, description string) (*domain.Event, error) {
			return &domain.Event{ID: id, Name: name, Description: description}, nil
		},
	}

	svc := NewService(slog.Default(), mock)
	got, err := svc.Create(context.Background(), CreateInput{Name: "GopherCon", Description: "annual Go conference"})

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	require.Len(t, mock.CreateCalls(), 1)
	assert.Equal(t, "GopherCon", mock.CreateCalls()[0].Name)
}

func TestService_Create_EmptyDescriptionAllowed(t *testing.T) {
	t.Parallel()

	mock := &eventRepoMock{
		CreateFunc: func(ctx context.Context, name, description string) (*domain.Event, error) {
			return &domain.Event{ID: uuid.New(), Name: name}, nil
		},
	}

	svc := NewService(slog.Default(), mock)
	_, err := svc.Create(context.Background(), CreateInput{Name: "Meetup"})
	require.NoError(t, err)
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &eventRepoMock{})

	_, err := svc.Create(context.Background(), CreateInput{Name: "  "})
	require.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 1)
	assert.Equal(t, "name", ve.Errors[0].Field)
}

func TestService_Update_NotFound(t *testing.T) {
	t.Parallel()

	mock := &eventRepoMock{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := NewService(slog.Default(), mock)
	_, err := svc.Update(context.Background(), UpdateInput{
		ID:   uuid.New(),
		Name: "renamed",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Update_RejectsNilID(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &eventRepoMock{})
	_, err := svc.Update(context.Background(), UpdateInput{Name: "renamed"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_List_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	mock := &eventRepoMock{
		ListFunc: func(ctx context.Context) ([]*domain.Event, error) { return nil, boom },
	}

	svc := NewService(slog.Default(), mock)
	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, boom)
}
