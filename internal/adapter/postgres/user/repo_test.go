package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedbackhub/backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func userRows(id uuid.UUID, email, name string, createdAt time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "email", "name", "created_at"}).
		AddRow(id, email, name, createdAt)
}

func TestRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("ada@example.com", "Ada Lovelace").
		WillReturnRows(userRows(id, "ada@example.com", "Ada Lovelace", now))

	got, err := repo.Create(context.Background(), "ada@example.com", "Ada Lovelace")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, "Ada Lovelace", got.Name)
}

func TestRepo_Update_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	id := uuid.New()
	mock.ExpectQuery(`UPDATE users`).
		WithArgs("new@example.com", "New Name", id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Update(context.Background(), id, domain.UserUpdateParams{
		Email: "new@example.com",
		Name:  "New Name",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	id := uuid.New()
	mock.ExpectQuery(`SELECT id, email, name, created_at FROM users`).
		WithArgs(id).
		WillReturnRows(userRows(id, "ada@example.com", "Ada Lovelace", time.Now()))

	got, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestRepo_Count(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestRepo_GetByOffset_PastEnd(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT id, email, name, created_at FROM users`).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByOffset(context.Background(), 7)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_List_Empty(t *testing.T) {
	mock := newMock(t)
	repo := New(mock)

	mock.ExpectQuery(`SELECT id, email, name, created_at FROM users ORDER BY created_at DESC, id DESC`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "name", "created_at"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
