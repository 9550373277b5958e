package stream

//go:generate moq -out mocks_test.go -pkg stream . eventRepo userRepo feedbackRepo publisher

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhub/backend/internal/config"
	"github.com/feedbackhub/backend/internal/domain"
)

func testConfig() config.StreamConfig {
	return config.StreamConfig{
		DefaultInterval: 3 * time.Second,
		MinInterval:     time.Millisecond,
	}
}

func newTestService(events *eventRepoMock, users *userRepoMock, feedbacks *feedbackRepoMock, pub *publisherMock) *Service {
	if pub == nil {
		pub = &publisherMock{PublishFunc: func(fb *domain.Feedback) {}}
	}
	svc := NewService(slog.Default(), testConfig(), events, users, feedbacks, pub)
	svc.rng = rand.New(rand.NewPCG(1, 2))
	return svc
}

// freshOnly forces the fabricate path for both event and user, making a
// cycle deterministic regardless of the reuse draw.
func freshOnly() (*eventRepoMock, *userRepoMock) {
	events := &eventRepoMock{
		CountFunc: func(ctx context.Context) (int, error) { return 0, nil },
		CreateFunc: func(ctx context.Context, name, description string) (*domain.Event, error) {
			return &domain.Event{ID: uuid.New(), Name: name, Description: description}, nil
		},
	}
	users := &userRepoMock{
		CountFunc: func(ctx context.Context) (int, error) { return 0, nil },
		CreateFunc: func(ctx context.Context, email, name string) (*domain.User, error) {
			return &domain.User{ID: uuid.New(), Email: email, Name: name}, nil
		},
	}
	return events, users
}

func TestService_StartStop(t *testing.T) {
	events, users := freshOnly()
	feedbacks := &feedbackRepoMock{
		CreateFunc: func(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error) {
			return &domain.Feedback{ID: uuid.New()}, nil
		},
	}
	svc := newTestService(events, users, feedbacks, nil)

	started, err := svc.Start(StartInput{Interval: time.Hour})
	require.NoError(t, err)
	assert.True(t, started)
	assert.True(t, svc.Running())

	started, err = svc.Start(StartInput{Interval: time.Hour})
	require.NoError(t, err)
	assert.False(t, started, "second start must be a no-op")

	assert.True(t, svc.Stop())
	assert.False(t, svc.Running())
	assert.False(t, svc.Stop(), "second stop must be a no-op")
}

func TestService_Start_IntervalBelowMinimum(t *testing.T) {
	svc := newTestService(&eventRepoMock{}, &userRepoMock{}, &feedbackRepoMock{}, nil)
	svc.cfg.MinInterval = 100 * time.Millisecond

	started, err := svc.Start(StartInput{Interval: 10 * time.Millisecond})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, started)
	assert.False(t, svc.Running())
}

func TestService_GeneratesUntilStopped(t *testing.T) {
	events, users := freshOnly()

	created := make(chan struct{}, 100)
	feedbacks := &feedbackRepoMock{
		CreateFunc: func(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error) {
			created <- struct{}{}
			return &domain.Feedback{ID: uuid.New(), EventID: params.EventID, Rating: params.Rating}, nil
		},
	}
	pub := &publisherMock{PublishFunc: func(fb *domain.Feedback) {}}
	svc := newTestService(events, users, feedbacks, pub)

	started, err := svc.Start(StartInput{Interval: 2 * time.Millisecond})
	require.NoError(t, err)
	require.True(t, started)

	for range 3 {
		select {
		case <-created:
		case <-time.After(2 * time.Second):
			t.Fatal("generator produced no feedback in time")
		}
	}

	require.True(t, svc.Stop())
	time.Sleep(50 * time.Millisecond) // let an in-flight cycle finish

	n := len(feedbacks.CreateCalls())
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, n, len(feedbacks.CreateCalls()), "cycles must not continue after stop")
	assert.Equal(t, len(feedbacks.CreateCalls()), len(pub.PublishCalls()))
}

func TestCycle_PinnedEvent_CreatesPlaceholder(t *testing.T) {
	pinned := uuid.New()

	events := &eventRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
			return nil, domain.ErrNotFound
		},
		CreateWithIDFunc: func(ctx context.Context, id uuid.UUID, name, description string) (*domain.Event, error) {
			return &domain.Event{ID: id, Name: name, Description: description}, nil
		},
	}
	_, users := freshOnly()
	feedbacks := &feedbackRepoMock{
		CreateFunc: func(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error) {
			return &domain.Feedback{ID: uuid.New(), EventID: params.EventID}, nil
		},
	}
	pub := &publisherMock{PublishFunc: func(fb *domain.Feedback) {}}

	svc := newTestService(events, users, feedbacks, pub)
	svc.eventID = &pinned
	svc.floor = domain.MinRating

	svc.cycle()

	require.Len(t, events.CreateWithIDCalls(), 1)
	call := events.CreateWithIDCalls()[0]
	assert.Equal(t, pinned, call.ID)
	assert.Equal(t, "Simulated Event", call.Name)
	assert.Equal(t, "Auto-created", call.Description)

	require.Len(t, feedbacks.CreateCalls(), 1)
	assert.Equal(t, pinned, feedbacks.CreateCalls()[0].Params.EventID)
	require.Len(t, pub.PublishCalls(), 1)
}

func TestCycle_PinnedEvent_LosesCreationRace(t *testing.T) {
	pinned := uuid.New()
	existing := &domain.Event{ID: pinned, Name: "GopherCon"}

	var gets int
	events := &eventRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
			gets++
			if gets == 1 {
				return nil, domain.ErrNotFound
			}
			return existing, nil
		},
		CreateWithIDFunc: func(ctx context.Context, id uuid.UUID, name, description string) (*domain.Event, error) {
			return nil, domain.ErrAlreadyExists
		},
	}

	svc := newTestService(events, &userRepoMock{}, &feedbackRepoMock{}, nil)
	svc.eventID = &pinned

	event, err := svc.resolveEvent(context.Background())
	require.NoError(t, err)
	assert.Same(t, existing, event)
	assert.Equal(t, 2, gets)
}

func TestResolveEvent_MixesReuseAndFabrication(t *testing.T) {
	events := &eventRepoMock{
		CountFunc: func(ctx context.Context) (int, error) { return 3, nil },
		GetByOffsetFunc: func(ctx context.Context, offset int) (*domain.Event, error) {
			return &domain.Event{ID: uuid.New()}, nil
		},
		CreateFunc: func(ctx context.Context, name, description string) (*domain.Event, error) {
			return &domain.Event{ID: uuid.New(), Name: name}, nil
		},
	}

	svc := newTestService(events, &userRepoMock{}, &feedbackRepoMock{}, nil)

	for range 300 {
		_, err := svc.resolveEvent(context.Background())
		require.NoError(t, err)
	}

	assert.NotEmpty(t, events.GetByOffsetCalls(), "reuse path never taken")
	assert.NotEmpty(t, events.CreateCalls(), "fabrication path never taken")
	for _, call := range events.GetByOffsetCalls() {
		assert.Less(t, call.Offset, 3)
	}
}

func TestNextRating_BiasedTowardFloor(t *testing.T) {
	svc := newTestService(&eventRepoMock{}, &userRepoMock{}, &feedbackRepoMock{}, nil)
	svc.floor = 3
	svc.biased = true

	const draws = 500
	exact := 0
	for range draws {
		rating := svc.nextRating()
		require.GreaterOrEqual(t, rating, 3)
		require.LessOrEqual(t, rating, domain.MaxRating)
		if rating == 3 {
			exact++
		}
	}

	// About 80% of draws land exactly on the floor (70% bias plus the
	// uniform draw occasionally hitting it too).
	assert.Greater(t, exact, draws/2)
}

func TestNextRating_UniformWithoutFloor(t *testing.T) {
	events, users := freshOnly()
	feedbacks := &feedbackRepoMock{
		CreateFunc: func(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error) {
			return &domain.Feedback{ID: uuid.New()}, nil
		},
	}
	svc := newTestService(events, users, feedbacks, nil)

	started, err := svc.Start(StartInput{Interval: time.Hour})
	require.NoError(t, err)
	require.True(t, started)

	svc.Stop()
	time.Sleep(50 * time.Millisecond) // let the immediate cycle finish

	const draws = 5000
	seen := make(map[int]int)
	for range draws {
		rating := svc.nextRating()
		require.GreaterOrEqual(t, rating, domain.MinRating)
		require.LessOrEqual(t, rating, domain.MaxRating)
		seen[rating]++
	}

	// No floor was requested, so every rating shows up and none
	// dominates the way the floor bias would (a 70% bias would put
	// three quarters of the draws on rating 1).
	for r := domain.MinRating; r <= domain.MaxRating; r++ {
		assert.Greater(t, seen[r], draws/10, "rating %d underrepresented", r)
	}
	assert.Less(t, seen[domain.MinRating], draws/2)
}

func TestStart_ClampsRatingFloor(t *testing.T) {
	events, users := freshOnly()
	feedbacks := &feedbackRepoMock{
		CreateFunc: func(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error) {
			return &domain.Feedback{ID: uuid.New()}, nil
		},
	}
	svc := newTestService(events, users, feedbacks, nil)

	started, err := svc.Start(StartInput{Interval: time.Hour, MinRating: ptr(9)})
	require.NoError(t, err)
	require.True(t, started)

	svc.Stop()
	time.Sleep(50 * time.Millisecond) // let the immediate cycle finish

	assert.Equal(t, domain.MaxRating, svc.floor)
	assert.Equal(t, domain.MaxRating, svc.nextRating())
}

func TestJitter_Bounds(t *testing.T) {
	svc := newTestService(&eventRepoMock{}, &userRepoMock{}, &feedbackRepoMock{}, nil)

	base := 100 * time.Millisecond
	for range 500 {
		d := svc.jitter(base)
		require.GreaterOrEqual(t, d, 80*time.Millisecond)
		require.LessOrEqual(t, d, 120*time.Millisecond)
		require.Zero(t, d%time.Millisecond, "jitter must be whole milliseconds")
	}
}

func TestJitter_Floor(t *testing.T) {
	svc := newTestService(&eventRepoMock{}, &userRepoMock{}, &feedbackRepoMock{}, nil)

	for range 100 {
		require.GreaterOrEqual(t, svc.jitter(time.Millisecond), time.Millisecond)
	}
}

func TestCycle_StorageFailureAbsorbed(t *testing.T) {
	events, users := freshOnly()
	feedbacks := &feedbackRepoMock{
		CreateFunc: func(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error) {
			return nil, errors.New("db down")
		},
	}
	pub := &publisherMock{PublishFunc: func(fb *domain.Feedback) {}}

	svc := newTestService(events, users, feedbacks, pub)
	svc.floor = domain.MinRating

	svc.cycle() // must not panic

	assert.Empty(t, pub.PublishCalls(), "failed persist must not broadcast")
}

func ptr[T any](v T) *T { return &v }
