package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/feedbackhub/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.Name, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}

	return user
}

// SeedEvent inserts an event row and returns the filled domain.Event.
func SeedEvent(t *testing.T, pool *pgxpool.Pool) domain.Event {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	event := domain.Event{
		ID:          uuid.New(),
		Name:        "Test Event " + suffix,
		Description: "Seeded event " + suffix,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, name, description, created_at) VALUES ($1, $2, $3, $4)`,
		event.ID, event.Name, event.Description, event.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed event: %v", err)
	}

	return event
}

// SeedFeedback inserts a feedback row for the given event and user with the
// provided rating and creation time, and returns the filled domain.Feedback.
func SeedFeedback(t *testing.T, pool *pgxpool.Pool, eventID, userID uuid.UUID, rating int, createdAt time.Time) domain.Feedback {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	fb := domain.Feedback{
		ID:        uuid.New(),
		EventID:   eventID,
		UserID:    userID,
		Text:      "Seeded feedback " + suffix,
		Rating:    rating,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO feedbacks (id, event_id, user_id, text, rating, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		fb.ID, fb.EventID, fb.UserID, fb.Text, fb.Rating, fb.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed feedback: %v", err)
	}

	return fb
}
