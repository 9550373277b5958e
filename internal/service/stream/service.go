// Package stream implements the synthetic feedback generator: a single
// process-wide loop that periodically fabricates a feedback record,
// persists it and broadcasts it like any organically created one.
package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/config"
	"github.com/feedbackhub/backend/internal/domain"
	"github.com/feedbackhub/backend/internal/synth"
)

const (
	// reuseProbability is the chance a cycle reuses an existing event or
	// user instead of fabricating a new one. Drawn independently for each.
	reuseProbability = 0.7

	// floorBiasProbability is the chance a cycle emits exactly the rating
	// floor instead of a uniform draw from [floor, max].
	floorBiasProbability = 0.7

	jitterFraction = 0.2

	placeholderEventName        = "Simulated Event"
	placeholderEventDescription = "Auto-created"
)

type eventRepo interface {
	Create(ctx context.Context, name, description string) (*domain.Event, error)
	CreateWithID(ctx context.Context, id uuid.UUID, name, description string) (*domain.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	Count(ctx context.Context) (int, error)
	GetByOffset(ctx context.Context, offset int) (*domain.Event, error)
}

type userRepo interface {
	Create(ctx context.Context, email, name string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
	GetByOffset(ctx context.Context, offset int) (*domain.User, error)
}

type feedbackRepo interface {
	Create(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error)
}

type publisher interface {
	Publish(fb *domain.Feedback)
}

// StartInput configures a generation run.
type StartInput struct {
	// Interval is the base delay between cycles. Zero selects the
	// configured default. The effective delay is jittered per cycle.
	Interval time.Duration

	// EventID pins every generated feedback to one event. A pinned id
	// with no backing row gets a placeholder event created for it.
	EventID *uuid.UUID

	// MinRating floors generated ratings. Values outside [1, 5] are
	// clamped, not rejected.
	MinRating *int
}

// Service runs at most one generation loop per process.
type Service struct {
	events    eventRepo
	users     userRepo
	feedbacks feedbackRepo
	pub       publisher
	cfg       config.StreamConfig
	log       *slog.Logger

	mu       sync.Mutex
	running  bool
	timer    *time.Timer
	interval time.Duration
	eventID  *uuid.UUID
	floor    int
	biased   bool

	rng *rand.Rand
	now func() time.Time
}

// NewService creates a stopped generator.
func NewService(log *slog.Logger, cfg config.StreamConfig, events eventRepo, users userRepo, feedbacks feedbackRepo, pub publisher) *Service {
	return &Service{
		events:    events,
		users:     users,
		feedbacks: feedbacks,
		pub:       pub,
		cfg:       cfg,
		log:       log.With("service", "stream"),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:       time.Now,
	}
}

// Start begins the generation loop: one cycle immediately, then one per
// jittered interval. It reports whether a new run was started; calling
// Start while a run is active is a no-op that returns false.
func (s *Service) Start(input StartInput) (bool, error) {
	interval := input.Interval
	if interval == 0 {
		interval = s.cfg.DefaultInterval
	}
	if interval < s.cfg.MinInterval {
		return false, domain.NewValidationError("intervalMs",
			fmt.Sprintf("must be at least %s", s.cfg.MinInterval))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false, nil
	}

	s.running = true
	s.interval = interval
	s.eventID = input.EventID
	s.floor = domain.MinRating
	s.biased = input.MinRating != nil
	if s.biased {
		s.floor = clamp(*input.MinRating, domain.MinRating, domain.MaxRating)
	}

	go s.run()

	s.log.Info("feedback stream started",
		slog.Duration("interval", interval),
		slog.Int("rating_floor", s.floor),
	)

	return true, nil
}

// Stop cancels the pending timer and ends the run. A cycle already in
// flight completes; it just does not schedule a successor. Reports
// whether a run was actually stopped.
func (s *Service) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return false
	}

	s.running = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.log.Info("feedback stream stopped")
	return true
}

// Running reports whether a generation loop is active.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// run executes one cycle, then schedules the next. The next timer is
// armed only after the cycle finishes, so cycles never overlap no
// matter how slow the storage round trips are.
func (s *Service) run() {
	s.cycle()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.timer = time.AfterFunc(s.jitter(s.interval), s.run)
}

// cycle fabricates and persists one feedback record. Every failure is
// logged and absorbed; the loop keeps going.
func (s *Service) cycle() {
	ctx := context.Background()

	event, err := s.resolveEvent(ctx)
	if err != nil {
		s.log.Error("resolve event", slog.Any("error", err))
		return
	}

	user, err := s.resolveUser(ctx)
	if err != nil {
		s.log.Error("resolve user", slog.Any("error", err))
		return
	}

	fb, err := s.feedbacks.Create(ctx, domain.FeedbackCreateParams{
		EventID:   event.ID,
		UserID:    user.ID,
		Text:      synth.Sentence(s.rng),
		Rating:    s.nextRating(),
		CreatedAt: s.now(),
	})
	if err != nil {
		s.log.Error("create synthetic feedback", slog.Any("error", err))
		return
	}

	s.pub.Publish(fb)

	s.log.Debug("synthetic feedback generated",
		slog.String("feedback_id", fb.ID.String()),
		slog.String("event_id", fb.EventID.String()),
		slog.Int("rating", fb.Rating),
	)
}

func (s *Service) resolveEvent(ctx context.Context) (*domain.Event, error) {
	if s.eventID != nil {
		return s.pinnedEvent(ctx, *s.eventID)
	}

	if s.rng.Float64() < reuseProbability {
		count, err := s.events.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			event, err := s.events.GetByOffset(ctx, s.rng.IntN(count))
			if err == nil {
				return event, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			// Row vanished between count and fetch; fabricate instead.
		}
	}

	return s.events.Create(ctx, synth.CatchPhrase(s.rng), synth.CatchPhraseDescriptor(s.rng))
}

// pinnedEvent returns the pinned event, materializing a placeholder row
// under that exact id when none exists. A concurrent creator winning the
// race is fine; the row is fetched again.
func (s *Service) pinnedEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	event, err = s.events.CreateWithID(ctx, id, placeholderEventName, placeholderEventDescription)
	if err == nil {
		return event, nil
	}
	if errors.Is(err, domain.ErrAlreadyExists) {
		return s.events.GetByID(ctx, id)
	}
	return nil, err
}

func (s *Service) resolveUser(ctx context.Context) (*domain.User, error) {
	if s.rng.Float64() < reuseProbability {
		count, err := s.users.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			user, err := s.users.GetByOffset(ctx, s.rng.IntN(count))
			if err == nil {
				return user, nil
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
		}
	}

	return s.users.Create(ctx, synth.Email(s.rng), synth.FullName(s.rng))
}

// nextRating draws a rating. With no rating floor configured the draw is
// uniform over [1, max]. With a floor, it is the floor itself most of the
// time and otherwise uniform over [floor, max].
func (s *Service) nextRating() int {
	if s.biased && s.rng.Float64() < floorBiasProbability {
		return s.floor
	}
	return s.floor + s.rng.IntN(domain.MaxRating-s.floor+1)
}

// jitter spreads the delay by up to ±20%, rounded to whole milliseconds
// with a one-millisecond floor.
func (s *Service) jitter(d time.Duration) time.Duration {
	ms := float64(d.Milliseconds())
	out := math.Round(ms + (s.rng.Float64()*2-1)*jitterFraction*ms)
	if out < 1 {
		out = 1
	}
	return time.Duration(out) * time.Millisecond
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
