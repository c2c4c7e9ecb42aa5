package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/astralune/trackstar/pkg/entity"
)

type DaysRepositoryI interface {
	// Returns persisted days with id in [startID, endID], ascending by id.
	// Missing days are not synthesized
	LoadRange(ctx context.Context, userID, startID, endID string) ([]entity.DayRecord, error)
	// Looks up one day keyed by user and day id
	Get(ctx context.Context, userID, dayID string) (*entity.DayRecord, error)
	// Inserts or overwrites the day keyed by (user_id, day_id)
	SaveDay(ctx context.Context, day *entity.DayRecord) error
}

type ActivitiesRepositoryI interface {
	// Case-insensitive lookup among global and user-owned types.
	// Global types win when both match
	FindByName(ctx context.Context, userID, name string) (*entity.ActivityType, error)
	// Creates a user-owned activity type
	Create(ctx context.Context, activity *entity.ActivityType) error
	// Lists global plus user-owned types sorted by name
	ListForUser(ctx context.Context, userID string) ([]entity.ActivityType, error)
	// Deletes a type owned by userID. Global types are never touched here
	DeleteUserActivity(ctx context.Context, userID string, id uuid.UUID) error
}

type UsersRepositoryI interface {
	// Creates the user or refreshes profile fields on login.
	// Settings are only written for brand-new rows
	Upsert(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// Applies the non-nil patch fields and returns the stored profile
	UpdateProfile(ctx context.Context, id string, patch entity.ProfilePatch) (*entity.User, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
