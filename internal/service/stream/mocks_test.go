package stream

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc       func(ctx context.Context, name, description string) (*domain.Event, error)
	CreateWithIDFunc func(ctx context.Context, id uuid.UUID, name, description string) (*domain.Event, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	CountFunc        func(ctx context.Context) (int, error)
	GetByOffsetFunc  func(ctx context.Context, offset int) (*domain.Event, error)

	calls struct {
		Create []struct {
			Ctx         context.Context
			Name        string
			Description string
		}
		CreateWithID []struct {
			Ctx         context.Context
			ID          uuid.UUID
			Name        string
			Description string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Count []struct {
			Ctx context.Context
		}
		GetByOffset []struct {
			Ctx    context.Context
			Offset int
		}
	}
	lock sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, name, description string) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx         context.Context
		Name        string
		Description string
	}{Ctx: ctx, Name: name, Description: description})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, name, description)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx         context.Context
	Name        string
	Description string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *eventRepoMock) CreateWithID(ctx context.Context, id uuid.UUID, name, description string) (*domain.Event, error) {
	if mock.CreateWithIDFunc == nil {
		panic("eventRepoMock.CreateWithIDFunc: method is nil but eventRepo.CreateWithID was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateWithID = append(mock.calls.CreateWithID, struct {
		Ctx         context.Context
		ID          uuid.UUID
		Name        string
		Description string
	}{Ctx: ctx, ID: id, Name: name, Description: description})
	mock.lock.Unlock()
	return mock.CreateWithIDFunc(ctx, id, name, description)
}

func (mock *eventRepoMock) CreateWithIDCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	Name        string
	Description string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateWithID
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *eventRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *eventRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("eventRepoMock.CountFunc: method is nil but eventRepo.Count was just called")
	}
	mock.lock.Lock()
	mock.calls.Count = append(mock.calls.Count, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lock.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *eventRepoMock) GetByOffset(ctx context.Context, offset int) (*domain.Event, error) {
	if mock.GetByOffsetFunc == nil {
		panic("eventRepoMock.GetByOffsetFunc: method is nil but eventRepo.GetByOffset was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByOffset = append(mock.calls.GetByOffset, struct {
		Ctx    context.Context
		Offset int
	}{Ctx: ctx, Offset: offset})
	mock.lock.Unlock()
	return mock.GetByOffsetFunc(ctx, offset)
}

func (mock *eventRepoMock) GetByOffsetCalls() []struct {
	Ctx    context.Context
	Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByOffset
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc      func(ctx context.Context, email, name string) (*domain.User, error)
	CountFunc       func(ctx context.Context) (int, error)
	GetByOffsetFunc func(ctx context.Context, offset int) (*domain.User, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Email string
			Name  string
		}
		Count []struct {
			Ctx context.Context
		}
		GetByOffset []struct {
			Ctx    context.Context
			Offset int
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, email, name string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx   context.Context
		Email string
		Name  string
	}{Ctx: ctx, Email: email, Name: name})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, email, name)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Email string
	Name  string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	mock.lock.Lock()
	mock.calls.Count = append(mock.calls.Count, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lock.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userRepoMock) GetByOffset(ctx context.Context, offset int) (*domain.User, error) {
	if mock.GetByOffsetFunc == nil {
		panic("userRepoMock.GetByOffsetFunc: method is nil but userRepo.GetByOffset was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByOffset = append(mock.calls.GetByOffset, struct {
		Ctx    context.Context
		Offset int
	}{Ctx: ctx, Offset: offset})
	mock.lock.Unlock()
	return mock.GetByOffsetFunc(ctx, offset)
}

func (mock *userRepoMock) GetByOffsetCalls() []struct {
	Ctx    context.Context
	Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByOffset
}

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc func(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Params domain.FeedbackCreateParams
		}
	}
	lock sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx    context.Context
		Params domain.FeedbackCreateParams
	}{Ctx: ctx, Params: params})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, params)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Params domain.FeedbackCreateParams
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

var _ publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(fb *domain.Feedback)

	calls struct {
		Publish []struct {
			Fb *domain.Feedback
		}
	}
	lock sync.RWMutex
}

func (mock *publisherMock) Publish(fb *domain.Feedback) {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but publisher.Publish was just called")
	}
	mock.lock.Lock()
	mock.calls.Publish = append(mock.calls.Publish, struct {
		Fb *domain.Feedback
	}{Fb: fb})
	mock.lock.Unlock()
	mock.PublishFunc(fb)
}

func (mock *publisherMock) PublishCalls() []struct {
	Fb *domain.Feedback
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Publish
}
