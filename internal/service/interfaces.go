package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/astralune/trackstar/pkg/entity"
	"github.com/astralune/trackstar/pkg/stats"
)

// DayPatch is the whitelisted field set a day update may carry.
// Nil means "field absent".
type DayPatch struct {
	PlannedActivity *string
	IsRestDay       *bool
	Status          *string
	Extras          *[]string
}

func (p DayPatch) Empty() bool {
	return p.PlannedActivity == nil && p.IsRestDay == nil && p.Status == nil && p.Extras == nil
}

type StatsRequest struct {
	Start string `validate:"required,day_id"`
	End   string `validate:"required,day_id"`
}

// Profile is the trusted identity resolved by the auth collaborator.
type Profile struct {
	ID      string
	Name    string
	Email   string
	Picture string
}

type DaysServiceI interface {
	// Resolves the Monday..Sunday week containing anchor, creating missing
	// days and applying the status correction pass. Reads may write
	GetWeek(ctx context.Context, userID string, anchor time.Time) ([]entity.DayRecord, error)
	// Applies a whitelisted patch to one day, then re-derives its status
	UpdateDay(ctx context.Context, userID, dayID string, patch DayPatch) (*entity.DayRecord, error)
	// Returns persisted days in [startID, endID]; never synthesizes
	GetDaysInRange(ctx context.Context, userID, startID, endID string) ([]entity.DayRecord, error)
	// Validates the range and aggregates it through pkg/stats
	GetStats(ctx context.Context, userID, startID, endID string) (*stats.Result, error)
}

type ActivitiesServiceI interface {
	List(ctx context.Context, userID string) ([]entity.ActivityType, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

type UserServiceI interface {
	// Creates or refreshes the user row on session creation
	EnsureUser(ctx context.Context, profile *Profile) (*entity.User, error)
	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, patch entity.ProfilePatch) (*entity.User, error)
}
