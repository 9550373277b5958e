// Package feedback implements the Feedback repository using PostgreSQL.
//
// Listing supports two ordering modes sharing one keyset-cursor scheme:
// recency (created_at DESC, id DESC) when no minimum rating is set, and
// rating-first (rating ASC, created_at DESC, id DESC) when one is. The
// cursor names the last-seen row; the next page starts strictly after it.
package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/feedbackhub/backend/internal/adapter/postgres"
	"github.com/feedbackhub/backend/internal/domain"
)

const table = "feedbacks"

// joinedColumns selects a feedback row together with its event and user snapshots.
var joinedColumns = []string{
	"f.id", "f.event_id", "f.user_id", "f.text", "f.rating", "f.created_at",
	"e.name AS event_name", "e.description AS event_description", "e.created_at AS event_created_at",
	"u.email AS user_email", "u.name AS user_name", "u.created_at AS user_created_at",
}

type joinedRow struct {
	ID        uuid.UUID `db:"id"`
	EventID   uuid.UUID `db:"event_id"`
	UserID    uuid.UUID `db:"user_id"`
	Text      string    `db:"text"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`

	EventName        string    `db:"event_name"`
	EventDescription string    `db:"event_description"`
	EventCreatedAt   time.Time `db:"event_created_at"`

	UserEmail     string    `db:"user_email"`
	UserName      string    `db:"user_name"`
	UserCreatedAt time.Time `db:"user_created_at"`
}

func (r joinedRow) toDomain() *domain.Feedback {
	return &domain.Feedback{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Text:      r.Text,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		Event: &domain.Event{
			ID:          r.EventID,
			Name:        r.EventName,
			Description: r.EventDescription,
			CreatedAt:   r.EventCreatedAt,
		},
		User: &domain.User{
			ID:        r.UserID,
			Email:     r.UserEmail,
			Name:      r.UserName,
			CreatedAt: r.UserCreatedAt,
		},
	}
}

// Repo provides feedback persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new feedback repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a feedback row and returns it joined with its event and user.
// A dangling event or user reference maps to domain.ErrNotFound (FK violation).
func (r *Repo) Create(ctx context.Context, params domain.FeedbackCreateParams) (*domain.Feedback, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("event_id", "user_id", "text", "rating", "created_at").
		Values(params.EventID, params.UserID, params.Text, params.Rating, params.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert feedback: %w", err)
	}

	var id uuid.UUID
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	return r.GetByID(ctx, id)
}

// Update overwrites the mutable fields of a feedback row and refreshes
// created_at, moving the row to the top of the recency ordering.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.FeedbackUpdateParams, createdAt time.Time) (*domain.Feedback, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("event_id", params.EventID).
		Set("user_id", params.UserID).
		Set("text", params.Text).
		Set("rating", params.Rating).
		Set("created_at", createdAt).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update feedback: %w", err)
	}

	var updated uuid.UUID
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&updated); err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	return r.GetByID(ctx, updated)
}

// GetByID returns a feedback row joined with its event and user.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feedback, error) {
	sql, args, err := r.selectJoined().
		Where(squirrel.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select feedback: %w", err)
	}

	var res joinedRow
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	return res.toDomain(), nil
}

// List returns at most limit feedback rows matching the filter, ordered by
// the filter's mode, starting strictly after the cursor row when cursor is
// non-nil. A cursor naming a vanished row yields domain.ErrNotFound; the
// caller restarts from the first page.
func (r *Repo) List(ctx context.Context, filter domain.FeedbackFilter, cursor *uuid.UUID, limit int) ([]*domain.Feedback, error) {
	query := r.selectJoined().Limit(uint64(limit))
	query = applyFilter(query, filter)

	if filter.RatingFirst() {
		query = query.OrderBy("f.rating ASC", "f.created_at DESC", "f.id DESC")
	} else {
		query = query.OrderBy("f.created_at DESC", "f.id DESC")
	}

	if cursor != nil {
		anchor, err := r.anchor(ctx, *cursor)
		if err != nil {
			return nil, err
		}
		query = query.Where(afterAnchor(anchor, filter.RatingFirst()))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list feedback: %w", err)
	}

	var rows []joinedRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	items := make([]*domain.Feedback, len(rows))
	for i, rw := range rows {
		items[i] = rw.toDomain()
	}

	return items, nil
}

// Count returns the number of feedback rows matching the filter,
// independent of any pagination window.
func (r *Repo) Count(ctx context.Context, filter domain.FeedbackFilter) (int, error) {
	query := postgres.Builder().
		Select("COUNT(*)").
		From(table + " f")
	query = applyFilter(query, filter)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count feedback: %w", err)
	}

	var count int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "feedback")
	}

	return count, nil
}

// ListByEventIDs returns all feedback for the given events, newest first.
// Batch read for the Event.feedbacks dataloader.
func (r *Repo) ListByEventIDs(ctx context.Context, eventIDs []uuid.UUID) ([]*domain.Feedback, error) {
	return r.listByColumn(ctx, "f.event_id", eventIDs)
}

// ListByUserIDs returns all feedback for the given users, newest first.
// Batch read for the User.feedbacks dataloader.
func (r *Repo) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Feedback, error) {
	return r.listByColumn(ctx, "f.user_id", userIDs)
}

func (r *Repo) listByColumn(ctx context.Context, column string, ids []uuid.UUID) ([]*domain.Feedback, error) {
	if len(ids) == 0 {
		return []*domain.Feedback{}, nil
	}

	sql, args, err := r.selectJoined().
		Where(squirrel.Eq{column: ids}).
		OrderBy("f.created_at DESC", "f.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch list feedback: %w", err)
	}

	var rows []joinedRow
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "feedback")
	}

	items := make([]*domain.Feedback, len(rows))
	for i, rw := range rows {
		items[i] = rw.toDomain()
	}

	return items, nil
}

func (r *Repo) selectJoined() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(joinedColumns...).
		From(table + " f").
		Join("events e ON e.id = f.event_id").
		Join("users u ON u.id = f.user_id")
}

// anchorRow is the ordering key of the cursor row.
type anchorRow struct {
	ID        uuid.UUID `db:"id"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *Repo) anchor(ctx context.Context, id uuid.UUID) (anchorRow, error) {
	sql, args, err := postgres.Builder().
		Select("id", "rating", "created_at").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return anchorRow{}, fmt.Errorf("build cursor anchor: %w", err)
	}

	var a anchorRow
	if err := pgxscan.Get(ctx, r.q, &a, sql, args...); err != nil {
		return anchorRow{}, postgres.MapError(err, "feedback cursor")
	}

	return a, nil
}

// afterAnchor builds the keyset predicate selecting rows strictly after the
// anchor in the active ordering.
func afterAnchor(a anchorRow, ratingFirst bool) squirrel.Sqlizer {
	// (created_at, id) < (anchor) matches created_at DESC, id DESC.
	recency := squirrel.Expr("(f.created_at, f.id) < (?, ?)", a.CreatedAt, a.ID)
	if !ratingFirst {
		return recency
	}

	// rating ASC is the primary key of the rating-first mode, so the tuple
	// directions are mixed and the predicate must be spelled out.
	return squirrel.Or{
		squirrel.Expr("f.rating > ?", a.Rating),
		squirrel.And{
			squirrel.Expr("f.rating = ?", a.Rating),
			recency,
		},
	}
}

func applyFilter(query squirrel.SelectBuilder, filter domain.FeedbackFilter) squirrel.SelectBuilder {
	if filter.EventID != nil {
		query = query.Where(squirrel.Eq{"f.event_id": *filter.EventID})
	}
	if filter.MinRating != nil {
		query = query.Where(squirrel.GtOrEq{"f.rating": *filter.MinRating})
	}
	return query
}
