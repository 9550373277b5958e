// Package event implements the Event repository using PostgreSQL.
package event

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

const table = "events"

var columns = []string{"id", "name", "description", "created_at"}

const returning = "id, name, description, created_at"

type row struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Event {
	return &domain.Event{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new event repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts an event and returns the stored row.
func (r *Repo) Create(ctx context.Context, name, description string) (*domain.Event, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "description").
		Values(name, description).
		Suffix("RETURNING " + returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert event: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event")
	}

	return res.toDomain(), nil
}

// CreateWithID inserts an event with a caller-chosen id. The synthetic
// generator uses this to materialize a placeholder for a pinned event id
// that does not exist yet.
func (r *Repo) CreateWithID(ctx context.Context, id uuid.UUID, name, description string) (*domain.Event, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "name", "description").
		Values(id, name, description).
		Suffix("RETURNING " + returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert event: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event")
	}

	return res.toDomain(), nil
}

// Update overwrites the mutable fields of an event.
// Returns domain.ErrNotFound if the id is unknown.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.EventUpdateParams) (*domain.Event, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("name", params.Name).
		Set("description", params.Description).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update event: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event")
	}

	return res.toDomain(), nil
}

// GetByID returns an event by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select event: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event")
	}

	return res.toDomain(), nil
}

// List returns all events ordered by creation time, newest first.
func (r *Repo) List(ctx context.Context) ([]*domain.Event, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "events")
	}

	events := make([]*domain.Event, len(rows))
	for i, rw := range rows {
		events[i] = rw.toDomain()
	}

	return events, nil
}

// Count returns the total number of events.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count events: %w", err)
	}

	var count int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "events")
	}

	return count, nil
}

// GetByOffset returns the event at the given offset in a stable ordering,
// or domain.ErrNotFound when the offset is past the end.
func (r *Repo) GetByOffset(ctx context.Context, offset int) (*domain.Event, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC").
		Offset(uint64(offset)).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build event by offset: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "event")
	}

	return res.toDomain(), nil
}
