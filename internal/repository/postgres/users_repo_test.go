package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/storefront-backend/internal/models"
	"github.com/baharkarakas/storefront-backend/internal/repository"
)

const (
	annID = "0f8fad5b-d9cb-469f-a165-70867728950e"
	bobID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

var userCols = []string{"id", "name", "email", "password_hash", "role", "created_at", "updated_at"}

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

func TestUsersCreate(t *testing.T) {
	mock := newMock(t)
	r := NewUsers(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "Ann", "ann@x.com", "$2a$hash", "admin").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("id-1", "Ann", "ann@x.com", "$2a$hash", "admin", now, now))

	u, err := r.Create(context.Background(), models.User{
		Name: "Ann", Email: "ann@x.com", PasswordHash: "$2a$hash", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", u.ID)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestUsersCreateDuplicate(t *testing.T) {
	mock := newMock(t)
	r := NewUsers(mock)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "Ann", "ann@x.com", "h", "user").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	_, err := r.Create(context.Background(), models.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUsersGetByEmailNotFound(t *testing.T) {
	mock := newMock(t)
	r := NewUsers(mock)

	mock.ExpectQuery(`FROM users WHERE email=\$1`).
		WithArgs("ghost@x.com").
		WillReturnError(pgx.ErrNoRows)

	_, err := r.GetByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsersGetByIDRejectsUnknownRole(t *testing.T) {
	mock := newMock(t)
	r := NewUsers(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM users WHERE id=\$1`).
		WithArgs(annID).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow(annID, "Ann", "ann@x.com", "h", "root", now, now))

	_, err := r.GetByID(context.Background(), annID)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestUsersList(t *testing.T) {
	mock := newMock(t)
	r := NewUsers(mock)
	now := time.Now()

	mock.ExpectQuery(`SELECT .* FROM users ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("id-2", "Bob", "bob@x.com", "h2", "user", now, now).
			AddRow("id-1", "Ann", "ann@x.com", "h1", "admin", now, now))

	users, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob@x.com", users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[1].Role)
}

func TestUsersUpdate(t *testing.T) {
	mock := newMock(t)
	r := NewUsers(mock)
	now := time.Now()

	mock.ExpectQuery(`UPDATE users SET`).
		WithArgs("id-1", "Ann", "ann@x.com", "h1", "user").
		WillReturnRows(pgxmock.NewRows(userCols).
			AddRow("id-1", "Ann", "ann@x.com", "h1", "user", now, now))
	mock.ExpectQuery(`UPDATE users SET`).
		WithArgs("missing", "Ann", "ann@x.com", "h1", "user").
		WillReturnError(pgx.ErrNoRows)

	u := models.User{ID: "id-1", Name: "Ann", Email: "ann@x.com", PasswordHash: "h1"}
	_, err := r.Update(context.Background(), u)
	require.NoError(t, err)

	u.ID = "missing"
	_, err = r.Update(context.Background(), u)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsersDelete(t *testing.T) {
	mock := newMock(t)
	r := NewUsers(mock)

	mock.ExpectExec(`DELETE FROM users`).WithArgs(annID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM users`).WithArgs(annID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec(`DELETE FROM users`).WithArgs(bobID).
		WillReturnError(errors.New("conn reset"))

	require.NoError(t, r.Delete(context.Background(), annID))
	assert.ErrorIs(t, r.Delete(context.Background(), annID), repository.ErrNotFound)
	assert.EqualError(t, r.Delete(context.Background(), bobID), "conn reset")
}

func TestUsersUnparsableIDIsNotFound(t *testing.T) {
	mock := newMock(t)
	r := NewUsers(mock)

	_, err := r.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, r.Delete(context.Background(), "not-a-uuid"), repository.ErrNotFound)
}
