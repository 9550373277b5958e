package user

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc  func(ctx context.Context, email, name string) (*domain.User, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFunc    func(ctx context.Context) ([]*domain.User, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Email string
			Name  string
		}
		Update []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.UserUpdateParams
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

func (mock *userRepoMock) Create(ctx context.Context, email, name string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
		Name  string
	}{Ctx: ctx, Email: email, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, email, name)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Email string
	Name  string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.UserUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.UserUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context) ([]*domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
