package feedback

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/domain"
)

var _ feedbackRepo = &feedbackRepoMock{}

type feedbackRepoMock struct {
	CreateFunc  func(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, params domain.FeedbackUpdateParams, createdAt time.Time) (*domain.Feedback, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Feedback, error)
	ListFunc    func(ctx context.Context, filter domain.FeedbackFilter, cursor *uuid.UUID, limit int) ([]*domain.Feedback, error)
	CountFunc   func(ctx context.Context, filter domain.FeedbackFilter) (int, error)

	calls struct {
		Create []struct {
			Ctx    context.Context
			Params domain.FeedbackCreateParams
		}
		Update []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Params    domain.FeedbackUpdateParams
			CreatedAt time.Time
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.FeedbackFilter
			Cursor *uuid.UUID
			Limit  int
		}
		Count []struct {
			Ctx    context.Context
			Filter domain.FeedbackFilter
		}
	}
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCount   sync.RWMutex
}

func (mock *feedbackRepoMock) Create(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error) {
	if mock.CreateFunc == nil {
		panic("feedbackRepoMock.CreateFunc: method is nil but feedbackRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Params domain.FeedbackCreateParams
	}{Ctx: ctx, Params: params}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, params)
}

func (mock *feedbackRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	Params domain.FeedbackCreateParams
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.FeedbackUpdateParams, createdAt time.Time) (*domain.Feedback, error) {
	if mock.UpdateFunc == nil {
		panic("feedbackRepoMock.UpdateFunc: method is nil but feedbackRepo.Update was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Params    domain.FeedbackUpdateParams
		CreatedAt time.Time
	}{Ctx: ctx, ID: id, Params: params, CreatedAt: createdAt}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params, createdAt)
}

func (mock *feedbackRepoMock) UpdateCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Params    domain.FeedbackUpdateParams
	CreatedAt time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	if mock.GetByIDFunc == nil {
		panic("feedbackRepoMock.GetByIDFunc: method is nil but feedbackRepo.GetByID was just called")
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

func (mock *feedbackRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) List(ctx context.Context, filter domain.FeedbackFilter, cursor *uuid.UUID, limit int) ([]*domain.Feedback, error) {
	if mock.ListFunc == nil {
		panic("feedbackRepoMock.ListFunc: method is nil but feedbackRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.FeedbackFilter
		Cursor *uuid.UUID
		Limit  int
	}{Ctx: ctx, Filter: filter, Cursor: cursor, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter, cursor, limit)
}

func (mock *feedbackRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.FeedbackFilter
	Cursor *uuid.UUID
	Limit  int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *feedbackRepoMock) Count(ctx context.Context, filter domain.FeedbackFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("feedbackRepoMock.CountFunc: method is nil but feedbackRepo.Count was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.FeedbackFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, filter)
}

func (mock *feedbackRepoMock) CountCalls() []struct {
	Ctx    context.Context
	Filter domain.FeedbackFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

var _ publisher = &publisherMock{}

type publisherMock struct {
	PublishFunc func(fb *domain.Feedback)

	calls struct {
		Publish []struct {
			Fb *domain.Feedback
		}
	}
	lockPublish sync.RWMutex
}

func (mock *publisherMock) Publish(fb *domain.Feedback) {
	if mock.PublishFunc == nil {
		panic("publisherMock.PublishFunc: method is nil but publisher.Publish was just called")
	}
	callInfo := struct {
		Fb *domain.Feedback
	}{Fb: fb}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(fb)
}

func (mock *publisherMock) PublishCalls() []struct {
	Fb *domain.Feedback
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
