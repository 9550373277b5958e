// Package user implements user management operations.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, email, name string) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// Service provides user management operations.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "user"),
	}
}

// Create creates a new user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, input.Email, input.Name)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	return user, nil
}

// Update overwrites a user's email and name.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.Update(ctx, input.ID, domain.UserUpdateParams{
		Email: input.Email,
		Name:  input.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// List returns all users, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
