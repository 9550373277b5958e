package event

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc  func(ctx context.Context, name, description string) (*domain.Event, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ListFunc    func(ctx context.Context) ([]*domain.Event, error)

	calls struct {
		Create []struct {
			Ctx         context.Context
			Name        string
			Description string
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.EventUpdateParams
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, name, description string) (*domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Name        string
		Description string
	}{Ctx: ctx, Name: name, Description: description}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, name, description)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	Ctx         context.Context
	Name        string
	Description string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.EventUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *eventRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.EventUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *eventRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *eventRepoMock) List(ctx context.Context) ([]*domain.Event, error) {
	if mock.ListFunc == nil {
		panic("eventRepoMock.ListFunc: method is nil but eventRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *eventRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
