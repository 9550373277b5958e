package user

//go:generate moq -out user_repo_mock_test.go -pkg user . userRepo

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
	mock := &userRepoMock{
		CreateFunc: func(ctx context.Context, email, name string) (*domain.User, error) {
			return &domain.User{ID: id, Email: email, Name: name}, nil
		},
	}

	svc := NewService(slog.Default(), mock)
	got, err := svc.Create(context.Background(), CreateInput{Email: "ada@example.com", Name: "Ada"})

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	require.Len(t, mock.CreateCalls(), 1)
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &userRepoMock{})

	_, err := svc.Create(context.Background(), CreateInput{Email: "  ", Name: ""})
	require.ErrorIs(t, err, domain.ErrValidation)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 2)
}

func TestService_Update_NotFound(t *testing.T) {
	t.Parallel()

	mock := &userRepoMock{
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := NewService(slog.Default(), mock)
	_, err := svc.Update(context.Background(), UpdateInput{
		ID:    uuid.New(),
		Email: "x@example.com",
		Name:  "X",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Update_RejectsNilID(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &userRepoMock{})
	_, err := svc.Update(context.Background(), UpdateInput{Email: "x@example.com", Name: "X"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_List_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	mock := &userRepoMock{
		ListFunc: func(ctx context.Context) ([]*domain.User, error) { return nil, boom },
	}

	svc := NewService(slog.Default(), mock)
	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, boom)
}
