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

const userID = "108234567890"

var dayColumns = []string{"day_id", "date", "planned_activity", "is_rest_day", "status", "extras"}

func TestLoadRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	daysRepo := repository.NewDaysRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT day_id, date, planned_activity, is_rest_day, status, extras`)
	noon := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	t.Run("successful", func(t *testing.T) {
		rows := pgxmock.NewRows(dayColumns).
			AddRow("2026-01-05", noon, "Run", false, entity.StatusCompleted, []string{"Walk"}).
			AddRow("2026-01-06", noon.AddDate(0, 0, 1), "Plan", true, entity.StatusPending, []string{})
		mock.ExpectQuery(query).WithArgs(userID, "2026-01-05", "2026-01-11").WillReturnRows(rows)

		days, err := daysRepo.LoadRange(context.Background(), userID, "2026-01-05", "2026-01-11")
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, "2026-01-05", days[0].ID)
		assert.Equal(t, userID, days[0].UserID)
		assert.Equal(t, []string{"Walk"}, days[0].Extras)
		assert.True(t, days[1].IsRestDay)
	})

	t.Run("empty range", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, "2026-02-02", "2026-02-08").
			WillReturnRows(pgxmock.NewRows(dayColumns))
		days, err := daysRepo.LoadRange(context.Background(), userID, "2026-02-02", "2026-02-08")
		require.NoError(t, err)
		assert.Empty(t, days)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, "2026-01-05", "2026-01-11").
			WillReturnError(errors.New("db error"))
		_, err := daysRepo.LoadRange(context.Background(), userID, "2026-01-05", "2026-01-11")
		assert.EqualError(t, err, "loading day range error: db error")
	})
}

func TestGetDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	daysRepo := repository.NewDaysRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT date, planned_activity, is_rest_day, status, extras`)
	noon := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	t.Run("successful", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"date", "planned_activity", "is_rest_day", "status", "extras"}).
			AddRow(noon, "Run", false, entity.StatusCompleted, []string{})
		mock.ExpectQuery(query).WithArgs(userID, "2026-01-05").WillReturnRows(rows)

		day, err := daysRepo.Get(context.Background(), userID, "2026-01-05")
		require.NoError(t, err)
		assert.Equal(t, "2026-01-05", day.ID)
		assert.Equal(t, entity.StatusCompleted, day.Status)
	})

	t.Run("unknown day", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, "2026-01-06").WillReturnError(pgx.ErrNoRows)
		_, err := daysRepo.Get(context.Background(), userID, "2026-01-06")
		assert.ErrorIs(t, err, errorvalues.ErrDayNotFound)
	})
}

func TestSaveDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	daysRepo := repository.NewDaysRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO days (user_id, day_id, date, planned_activity, is_rest_day, status, extras)`)
	noon := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	day := &entity.DayRecord{
		UserID:          userID,
		ID:              "2026-01-05",
		Date:            noon,
		PlannedActivity: "Run",
		IsRestDay:       false,
		Status:          entity.StatusCompleted,
		Extras:          []string{"Walk"},
	}

	t.Run("successful", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID, "2026-01-05", noon, "Run", false, entity.StatusCompleted, []string{"Walk"}).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, daysRepo.SaveDay(context.Background(), day))
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(userID, "2026-01-05", noon, "Run", false, entity.StatusCompleted, []string{"Walk"}).
			WillReturnError(errors.New("db error"))
		assert.EqualError(t, daysRepo.SaveDay(context.Background(), day), "saving day error: db error")
	})

	t.Run("nil day", func(t *testing.T) {
		assert.Error(t, daysRepo.SaveDay(context.Background(), nil))
	})
}
