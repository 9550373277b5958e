package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
	"github.com/feedbackhub/backend/internal/service/event"
	"github.com/feedbackhub/backend/internal/service/feedback"
	"github.com/feedbackhub/backend/internal/service/stream"
	"github.com/feedbackhub/backend/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	CreateFunc func(ctx context.Context, input user.CreateInput) (*domain.User, error)
	UpdateFunc func(ctx context.Context, input user.UpdateInput) (*domain.User, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFunc   func(ctx context.Context) ([]*domain.User, error)
}

func (m *userServiceMock) Create(ctx context.Context, input user.CreateInput) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userServiceMock.CreateFunc: method is nil but userService.Create was just called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *userServiceMock) Update(ctx context.Context, input user.UpdateInput) (*domain.User, error) {
	if m.UpdateFunc == nil {
		panic("userServiceMock.UpdateFunc: method is nil but userService.Update was just called")
	}
	return m.UpdateFunc(ctx, input)
}

func (m *userServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetFunc == nil {
		panic("userServiceMock.GetFunc: method is nil but userService.Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *userServiceMock) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFunc == nil {
		panic("userServiceMock.ListFunc: method is nil but userService.List was just called")
	}
	return m.ListFunc(ctx)
}

var _ eventService = &eventServiceMock{}

type eventServiceMock struct {
	CreateFunc func(ctx context.Context, input event.CreateInput) (*domain.Event, error)
	UpdateFunc func(ctx context.Context, input event.UpdateInput) (*domain.Event, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListFunc   func(ctx context.Context) ([]*domain.Event, error)
}

func (m *eventServiceMock) Create(ctx context.Context, input event.CreateInput) (*domain.Event, error) {
	if m.CreateFunc == nil {
		panic("eventServiceMock.CreateFunc: method is nil but eventService.Create was just called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *eventServiceMock) Update(ctx context.Context, input event.UpdateInput) (*domain.Event, error) {
	if m.UpdateFunc == nil {
		panic("eventServiceMock.UpdateFunc: method is nil but eventService.Update was just called")
	}
	return m.UpdateFunc(ctx, input)
}

func (m *eventServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if m.GetFunc == nil {
		panic("eventServiceMock.GetFunc: method is nil but eventService.Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *eventServiceMock) List(ctx context.Context) ([]*domain.Event, error) {
	if m.ListFunc == nil {
		panic("eventServiceMock.ListFunc: method is nil but eventService.List was just called")
	}
	return m.ListFunc(ctx)
}

var _ feedbackService = &feedbackServiceMock{}

type feedbackServiceMock struct {
	CreateFunc func(ctx context.Context, input feedback.CreateInput) (*domain.Feedback, error)
	UpdateFunc func(ctx context.Context, input feedback.UpdateInput) (*domain.Feedback, error)
	GetFunc    func(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	ListFunc   func(ctx context.Context, input feedback.ListInput) (*feedback.ListResult, error)
}

func (m *feedbackServiceMock) Create(ctx context.Context, input feedback.CreateInput) (*domain.Feedback, error) {
	if m.CreateFunc == nil {
		panic("feedbackServiceMock.CreateFunc: method is nil but feedbackService.Create was just called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *feedbackServiceMock) Update(ctx context.Context, input feedback.UpdateInput) (*domain.Feedback, error) {
	if m.UpdateFunc == nil {
		panic("feedbackServiceMock.UpdateFunc: method is nil but feedbackService.Update was just called")
	}
	return m.UpdateFunc(ctx, input)
}

func (m *feedbackServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	if m.GetFunc == nil {
		panic("feedbackServiceMock.GetFunc: method is nil but feedbackService.Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *feedbackServiceMock) List(ctx context.Context, input feedback.ListInput) (*feedback.ListResult, error) {
	if m.ListFunc == nil {
		panic("feedbackServiceMock.ListFunc: method is nil but feedbackService.List was just called")
	}
	return m.ListFunc(ctx, input)
}

var _ streamService = &streamServiceMock{}

type streamServiceMock struct {
	StartFunc func(input stream.StartInput) (bool, error)
	StopFunc  func() bool
}

func (m *streamServiceMock) Start(input stream.StartInput) (bool, error) {
	if m.StartFunc == nil {
		panic("streamServiceMock.StartFunc: method is nil but streamService.Start was just called")
	}
	return m.StartFunc(input)
}

func (m *streamServiceMock) Stop() bool {
	if m.StopFunc == nil {
		panic("streamServiceMock.StopFunc: method is nil but streamService.Stop was just called")
	}
	return m.StopFunc()
}
