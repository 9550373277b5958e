// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{"id", "email", "name", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.User {
	return &domain.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new user repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a user and returns the stored row.
func (r *Repo) Create(ctx context.Context, email, name string) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("email", "name").
		Values(email, name).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return res.toDomain(), nil
}

// Update overwrites the mutable fields of a user.
// Returns domain.ErrNotFound if the id is unknown.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("email", params.Email).
		Set("name", params.Name).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return res.toDomain(), nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return res.toDomain(), nil
}

// List returns all users ordered by creation time, newest first.
func (r *Repo) List(ctx context.Context) ([]*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "users")
	}

	users := make([]*domain.User, len(rows))
	for i, rw := range rows {
		users[i] = rw.toDomain()
	}

	return users, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().
		Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var count int
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "users")
	}

	return count, nil
}

// GetByOffset returns the user at the given offset in a stable ordering,
// or domain.ErrNotFound when the offset is past the end. Random-skip
// selection primitive for the synthetic generator.
func (r *Repo) GetByOffset(ctx context.Context, offset int) (*domain.User, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC").
		Offset(uint64(offset)).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user by offset: %w", err)
	}

	var res row
	if err := pgxscan.Get(ctx, r.q, &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return res.toDomain(), nil
}

func joinColumns() string {
	return "id, email, name, created_at"
}
