package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/pkg/cleanup"
	"github.com/astralune/trackstar/pkg/entity"
)

type DaysRepository struct {
	conn PgConnection
}

func NewDaysRepo(cfg DBConfig) *DaysRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for daysRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for daysRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DaysRepository{
		conn: pool,
	}
}

func NewDaysRepoWithConn(conn PgConnection) *DaysRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for daysRepo: " + err.Error())
	}
	return &DaysRepository{
		conn: conn,
	}
}

func (dr *DaysRepository) LoadRange(ctx context.Context, userID, startID, endID string) ([]entity.DayRecord, error) {
	days := make([]entity.DayRecord, 0, 7)
	rows, err := dr.conn.Query(ctx, `SELECT day_id, date, planned_activity, is_rest_day, status, extras
		FROM days WHERE user_id = $1 AND day_id >= $2 AND day_id <= $3 ORDER BY day_id ASC;`, userID, startID, endID)
	if err != nil {
		return nil, errors.New("loading day range error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		d := entity.DayRecord{UserID: userID}
		err = rows.Scan(&d.ID, &d.Date, &d.PlannedActivity, &d.IsRestDay, &d.Status, &d.Extras)
		if err != nil {
			return nil, errors.New("day row parsing error: " + err.Error())
		}
		days = append(days, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected day rows error: " + rows.Err().Error())
	}
	return days, nil
}

func (dr *DaysRepository) Get(ctx context.Context, userID, dayID string) (*entity.DayRecord, error) {
	d := entity.DayRecord{UserID: userID, ID: dayID}
	row := dr.conn.QueryRow(ctx, `SELECT date, planned_activity, is_rest_day, status, extras
		FROM days WHERE user_id = $1 AND day_id = $2;`, userID, dayID)
	if err := row.Scan(&d.Date, &d.PlannedActivity, &d.IsRestDay, &d.Status, &d.Extras); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDayNotFound
		}
		return nil, errors.New("getting day error: " + err.Error())
	}
	return &d, nil
}

func (dr *DaysRepository) SaveDay(ctx context.Context, day *entity.DayRecord) error {
	if day == nil {
		return errors.New("day is nil")
	}
	_, err := dr.conn.Exec(ctx, `INSERT INTO days (user_id, day_id, date, planned_activity, is_rest_day, status, extras)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, day_id) DO UPDATE SET planned_activity = EXCLUDED.planned_activity,
			is_rest_day = EXCLUDED.is_rest_day, status = EXCLUDED.status, extras = EXCLUDED.extras;`,
		day.UserID,
		day.ID,
		day.Date,
		day.PlannedActivity,
		day.IsRestDay,
		day.Status,
		day.Extras,
	)
	if err != nil {
		return errors.New("saving day error: " + err.Error())
	}
	return nil
}
