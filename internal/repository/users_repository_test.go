package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/internal/repository"
	"github.com/astralune/trackstar/pkg/entity"
)

var userColumns = []string{"name", "email", "picture", "settings", "last_login", "created_at"}

func TestUpsertUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	usersRepo := repository.NewUsersRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO users (id, name, email, picture, settings, last_login)`)
	user := &entity.User{
		ID:       userID,
		Name:     "Test User",
		Email:    "test@example.com",
		Picture:  "https://example.com/p.png",
		Settings: map[string]any{"theme": "dark"},
	}

	t.Run("successful", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID, "Test User", "test@example.com", "https://example.com/p.png", pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, usersRepo.Upsert(context.Background(), user))
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID, "Test User", "test@example.com", "https://example.com/p.png", pgxmock.AnyArg()).
			WillReturnError(errors.New("db error"))
		err := usersRepo.Upsert(context.Background(), user)
		assert.EqualError(t, err, "upserting user db error: db error")
	})

	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, usersRepo.Upsert(context.Background(), nil))
	})
}

func TestFindUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	usersRepo := repository.NewUsersRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT name, email, picture, settings, last_login, created_at FROM users WHERE id = $1;`)
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	t.Run("successful", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow("Test User", "test@example.com", "https://example.com/p.png", []byte(`{"theme":"dark"}`), now, now)
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)

		user, err := usersRepo.FindByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "Test User", user.Name)
		assert.Equal(t, map[string]any{"theme": "dark"}, user.Settings)
	})

	t.Run("empty settings left nil", func(t *testing.T) {
		rows := pgxmock.NewRows(userColumns).
			AddRow("Test User", "test@example.com", "", []byte(nil), now, now)
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)

		user, err := usersRepo.FindByID(context.Background(), userID)
		require.NoError(t, err)
		assert.Nil(t, user.Settings)
	})

	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("missing").WillReturnError(pgx.ErrNoRows)
		_, err := usersRepo.FindByID(context.Background(), "missing")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestUpdateUserProfile(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	usersRepo := repository.NewUsersRepoWithConn(mock)
	updateQuery := regexp.QuoteMeta(`UPDATE users SET name = COALESCE($2, name),`)
	selectQuery := regexp.QuoteMeta(`SELECT name, email, picture, settings, last_login, created_at FROM users WHERE id = $1;`)
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	name := "New Name"

	t.Run("successful", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs(userID, &name, (*string)(nil), []byte(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		rows := pgxmock.NewRows(userColumns).
			AddRow(name, "test@example.com", "", []byte(`{"theme":"dark"}`), now, now)
		mock.ExpectQuery(selectQuery).WithArgs(userID).WillReturnRows(rows)

		user, err := usersRepo.UpdateProfile(context.Background(), userID, entity.ProfilePatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, user.Name)
	})

	t.Run("unknown user", func(t *testing.T) {
		mock.ExpectExec(updateQuery).
			WithArgs("missing", &name, (*string)(nil), []byte(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		_, err := usersRepo.UpdateProfile(context.Background(), "missing", entity.ProfilePatch{Name: &name})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
