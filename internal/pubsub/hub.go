// Package pubsub implements the in-process broadcast hub that fans newly
// created feedback out to active subscribers.
//
// Each subscription owns an unbounded FIFO queue drained by a dedicated
// delivery goroutine, so a slow or stuck consumer never blocks the
// publisher or other subscribers. The subscription's filter is captured
// at subscribe time and evaluated at delivery time; changing a filter
// means re-subscribing.
package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"github.com/feedbackhub/backend/internal/domain"
)

// Hub broadcasts feedback-created events to active subscriptions.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
	log  *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		subs: make(map[*Subscription]struct{}),
		log:  log.With("component", "pubsub"),
	}
}

// Subscription is one listener's view of the hub. Events matching the
// filter arrive on C in publish order. C is closed when the subscription
// ends (Unsubscribe or context cancellation).
type Subscription struct {
	filter domain.FeedbackFilter
	out    chan *domain.Feedback
	done   chan struct{}

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []*domain.Feedback
	closed bool
}

// C returns the delivery channel.
func (s *Subscription) C() <-chan *domain.Feedback { return s.out }

// Subscribe registers a listener whose filter is fixed for the lifetime
// of the subscription. The subscription ends when ctx is done.
func (h *Hub) Subscribe(ctx context.Context, filter domain.FeedbackFilter) *Subscription {
	sub := &Subscription{
		filter: filter,
		out:    make(chan *domain.Feedback),
		done:   make(chan struct{}),
	}
	sub.cond = sync.NewCond(&sub.mu)

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go h.deliver(sub)
	go func() {
		select {
		case <-ctx.Done():
			h.Unsubscribe(sub)
		case <-sub.done:
		}
	}()

	return sub
}

// Unsubscribe removes the subscription and closes its channel. Idempotent.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()

	sub.mu.Lock()
	if !sub.closed {
		sub.closed = true
		close(sub.done)
		sub.cond.Broadcast()
	}
	sub.mu.Unlock()
}

// Publish enqueues fb for every active subscription. It never blocks on
// a consumer and never fails the caller: filtering and delivery happen
// on each subscription's own goroutine.
func (h *Hub) Publish(fb *domain.Feedback) {
	h.mu.Lock()
	targets := make([]*Subscription, 0, len(h.subs))
	for sub := range h.subs {
		targets = append(targets, sub)
	}
	h.mu.Unlock()

	for _, sub := range targets {
		sub.mu.Lock()
		if !sub.closed {
			sub.queue = append(sub.queue, fb)
			sub.cond.Broadcast()
		}
		sub.mu.Unlock()
	}
}

// deliver drains the subscription queue in FIFO order, applying the
// filter per event. A panic while handling one event is logged and only
// that event is dropped for this subscriber.
func (h *Hub) deliver(sub *Subscription) {
	defer close(sub.out)

	for {
		sub.mu.Lock()
		for len(sub.queue) == 0 && !sub.closed {
			sub.cond.Wait()
		}
		if sub.closed {
			sub.mu.Unlock()
			return
		}
		fb := sub.queue[0]
		sub.queue = sub.queue[1:]
		sub.mu.Unlock()

		h.deliverOne(sub, fb)
	}
}

func (h *Hub) deliverOne(sub *Subscription, fb *domain.Feedback) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("subscriber delivery panic",
				slog.Any("panic", r),
				slog.String("feedback_id", fb.ID.String()),
			)
		}
	}()

	if !sub.filter.Matches(fb) {
		return
	}

	// The send blocks only this subscription's delivery goroutine; the
	// queue keeps absorbing publishes meanwhile. An unsubscribe aborts
	// the pending send.
	select {
	case sub.out <- fb:
	case <-sub.done:
	}
}
