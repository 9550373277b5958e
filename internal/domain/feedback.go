package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for feedback.
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a single rating left by a user for an event.
// Event and User are snapshots joined by read paths; they are nil on
// write paths that only carry the foreign keys.
type Feedback struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	UserID    uuid.UUID
	Text      string
	Rating    int
	CreatedAt time.Time

	Event *Event
	User  *User
}

// FeedbackCreateParams holds the fields of a new feedback record.
type FeedbackCreateParams struct {
	EventID   uuid.UUID
	UserID    uuid.UUID
	Text      string
	Rating    int
	CreatedAt time.Time
}

// FeedbackUpdateParams holds the mutable fields of a feedback record.
// CreatedAt is refreshed on update, which moves the record to the top
// of the recency ordering.
type FeedbackUpdateParams struct {
	EventID uuid.UUID
	UserID  uuid.UUID
	Text    string
	Rating  int
}

// FeedbackFilter narrows feedback listings and subscriptions.
// A nil field means "no constraint".
type FeedbackFilter struct {
	EventID   *uuid.UUID
	MinRating *int
}

// Matches reports whether fb satisfies the filter. Both the broadcast
// hub and the live-feed merge evaluate the same predicate.
func (f FeedbackFilter) Matches(fb *Feedback) bool {
	if f.EventID != nil && fb.EventID != *f.EventID {
		return false
	}
	if f.MinRating != nil && fb.Rating < *f.MinRating {
		return false
	}
	return true
}

// RatingFirst reports whether the filter selects the rating-first
// ordering mode. Listings constrained by a minimum rating surface the
// lowest qualifying ratings first; unconstrained listings are ordered
// by recency.
func (f FeedbackFilter) RatingFirst() bool {
	return f.MinRating != nil
}

// CompareFeedback orders two feedback records for pagination and
// live-feed merging. It returns a negative value when a sorts before b.
//
// Recency mode (ratingFirst=false): (CreatedAt desc, ID desc).
// Rating mode (ratingFirst=true): (Rating asc, CreatedAt desc, ID desc).
//
// CreatedAt alone is not unique (synthetic generation can produce
// same-millisecond timestamps), so ties always fall through to the ID.
// Every ordered path must use this comparison or clients observe
// inconsistent ordering.
func CompareFeedback(a, b *Feedback, ratingFirst bool) int {
	if ratingFirst && a.Rating != b.Rating {
		if a.Rating < b.Rating {
			return -1
		}
		return 1
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.After(b.CreatedAt) {
			return -1
		}
		return 1
	}
	return compareIDDesc(a.ID, b.ID)
}

func compareIDDesc(a, b uuid.UUID) int {
	for i := range a {
		switch {
		case a[i] > b[i]:
			return -1
		case a[i] < b[i]:
			return 1
		}
	}
	return 0
}

// ValidateRating checks that rating is within [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return NewValidationError("rating", "must be between 1 and 5")
	}
	return nil
}
