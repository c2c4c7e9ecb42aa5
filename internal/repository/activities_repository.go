package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/pkg/cleanup"
	"github.com/astralune/trackstar/pkg/entity"
)

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(cfg DBConfig) *ActivitiesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for activitiesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ActivitiesRepository{
		conn: pool,
	}
}

func NewActivitiesRepoWithConn(conn PgConnection) *ActivitiesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) FindByName(ctx context.Context, userID, name string) (*entity.ActivityType, error) {
	var activity entity.ActivityType
	row := ar.conn.QueryRow(ctx, `SELECT id, user_id, name, icon, created_at FROM activity_types
		WHERE LOWER(name) = LOWER($1) AND (user_id IS NULL OR user_id = $2)
		ORDER BY user_id NULLS FIRST LIMIT 1;`, name, userID)
	if err := row.Scan(&activity.ID, &activity.UserID, &activity.Name, &activity.Icon, &activity.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrActivityNotFound
		}
		return nil, errors.New("searching activity by name error: " + err.Error())
	}
	return &activity, nil
}

func (ar *ActivitiesRepository) Create(ctx context.Context, activity *entity.ActivityType) error {
	if activity == nil {
		return errors.New("activity is nil")
	}
	_, err := ar.conn.Exec(ctx, `INSERT INTO activity_types (id, user_id, name, icon) VALUES ($1, $2, $3, $4);`,
		activity.ID,
		activity.UserID,
		activity.Name,
		activity.Icon,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrActivityExists
			}
		}
		return errors.New("creating activity db error: " + err.Error())
	}
	return nil
}

func (ar *ActivitiesRepository) ListForUser(ctx context.Context, userID string) ([]entity.ActivityType, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, user_id, name, icon, created_at FROM activity_types
		WHERE user_id IS NULL OR user_id = $1 ORDER BY name ASC;`, userID)
	if err != nil {
		return nil, errors.New("listing activities error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ActivityType, 0)
	for rows.Next() {
		a := entity.ActivityType{}
		err = rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Icon, &a.CreatedAt)
		if err != nil {
			return nil, errors.New("activity row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected activity rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (ar *ActivitiesRepository) DeleteUserActivity(ctx context.Context, userID string, id uuid.UUID) error {
	ct, err := ar.conn.Exec(ctx, `DELETE FROM activity_types WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return errors.New("deleting activity error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActivityNotFound
	}
	return nil
}
