// Package event implements event management operations.
package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

type eventRepo interface {
	Create(ctx context.Context, name, description string) (*domain.Event, error)
	Update(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

// Service provides event management operations.
type Service struct {
	events eventRepo
	log    *slog.Logger
}

// NewService creates a new Event service.
func NewService(log *slog.Logger, events eventRepo) *Service {
	return &Service{
		events: events,
		log:    log.With("service", "event"),
	}
}

// Create creates a new event.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.Create(ctx, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.InfoContext(ctx, "event created",
		slog.String("event_id", event.ID.String()),
		slog.String("name", event.Name),
	)

	return event, nil
}

// Update overwrites an event's name and description.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	event, err := s.events.Update(ctx, input.ID, domain.EventUpdateParams{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

// Get returns an event by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// List returns all events, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
