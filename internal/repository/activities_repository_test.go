package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/internal/repository"
	"github.com/astralune/trackstar/pkg/entity"
)

var activityColumns = []string{"id", "user_id", "name", "icon", "created_at"}

func TestFindActivityByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	activitiesRepo := repository.NewActivitiesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, name, icon, created_at FROM activity_types`)
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("global match", func(t *testing.T) {
		id := uuid.New()
		rows := pgxmock.NewRows(activityColumns).
			AddRow(id, (*string)(nil), "Running", "run", createdAt)
		mock.ExpectQuery(query).WithArgs("running", userID).WillReturnRows(rows)

		activity, err := activitiesRepo.FindByName(context.Background(), userID, "running")
		require.NoError(t, err)
		assert.Equal(t, id, activity.ID)
		assert.Nil(t, activity.UserID)
		assert.Equal(t, "Running", activity.Name)
	})

	t.Run("user owned match", func(t *testing.T) {
		uid := userID
		rows := pgxmock.NewRows(activityColumns).
			AddRow(uuid.New(), &uid, "Fencing", "", createdAt)
		mock.ExpectQuery(query).WithArgs("Fencing", userID).WillReturnRows(rows)

		activity, err := activitiesRepo.FindByName(context.Background(), userID, "Fencing")
		require.NoError(t, err)
		require.NotNil(t, activity.UserID)
		assert.Equal(t, userID, *activity.UserID)
	})

	t.Run("unknown name", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs("Juggling", userID).WillReturnError(pgx.ErrNoRows)
		_, err := activitiesRepo.FindByName(context.Background(), userID, "Juggling")
		assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
	})
}

func TestCreateActivity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	activitiesRepo := repository.NewActivitiesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO activity_types (id, user_id, name, icon) VALUES ($1, $2, $3, $4);`)
	uid := userID
	activity := &entity.ActivityType{
		ID:     uuid.New(),
		UserID: &uid,
		Name:   "Fencing",
	}

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(activity.ID, activity.UserID, "Fencing", "").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc:  "duplicate name",
			Error: errorvalues.ErrActivityExists,
			MockPrepFunc: func() {
				mock.ExpectExec(query).WithArgs(activity.ID, activity.UserID, "Fencing", "").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := activitiesRepo.Create(context.Background(), activity)
			assert.ErrorIs(t, err, tc.Error)
		})
	}

	t.Run("nil activity", func(t *testing.T) {
		assert.Error(t, activitiesRepo.Create(context.Background(), nil))
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(activity.ID, activity.UserID, "Fencing", "").
			WillReturnError(errors.New("db error"))
		err := activitiesRepo.Create(context.Background(), activity)
		assert.EqualError(t, err, "creating activity db error: db error")
	})
}

func TestListActivitiesForUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	activitiesRepo := repository.NewActivitiesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, user_id, name, icon, created_at FROM activity_types`)
	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("globals and own activities", func(t *testing.T) {
		uid := userID
		rows := pgxmock.NewRows(activityColumns).
			AddRow(uuid.New(), &uid, "Fencing", "", createdAt).
			AddRow(uuid.New(), (*string)(nil), "Running", "run", createdAt)
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)

		activities, err := activitiesRepo.ListForUser(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, activities, 2)
		assert.Equal(t, "Fencing", activities[0].Name)
		assert.Equal(t, "Running", activities[1].Name)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := activitiesRepo.ListForUser(context.Background(), userID)
		assert.EqualError(t, err, "listing activities error: db error")
	})
}

func TestDeleteUserActivity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	activitiesRepo := repository.NewActivitiesRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM activity_types WHERE id = $1 AND user_id = $2;`)
	activityID := uuid.New()

	t.Run("successful", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(activityID, userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, activitiesRepo.DeleteUserActivity(context.Background(), userID, activityID))
	})

	t.Run("global or foreign activity untouched", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(activityID, userID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := activitiesRepo.DeleteUserActivity(context.Background(), userID, activityID)
		assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
	})
}
