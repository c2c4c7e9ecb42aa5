package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlaceholderActivity is the "unset" value of a day's planned activity.
const PlaceholderActivity = "Plan"

type DayStatus string

const (
	StatusPending   DayStatus = "pending"
	StatusCompleted DayStatus = "completed"
	StatusSkipped   DayStatus = "skipped"
)

func (s DayStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

// DayRecord is one calendar day of one user. ID is the canonical
// YYYY-MM-DD form, so lexical order equals chronological order.
type DayRecord struct {
	UserID          string    `json:"-"`
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	DayName         string    `json:"dayName"`
	PlannedActivity string    `json:"plannedActivity"`
	IsRestDay       bool      `json:"isRestDay"`
	Status          DayStatus `json:"status"`
	Extras          []string  `json:"extras"`
}

// ActivityType is a named activity category. UserID == nil marks a
// global type shared read-only by every user.
type ActivityType struct {
	ID        uuid.UUID `json:"id"`
	UserID    *string   `json:"userId"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Picture   string         `json:"picture"`
	Settings  map[string]any `json:"settings"`
	LastLogin time.Time      `json:"lastLogin"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ProfilePatch carries the updatable profile fields. Nil means
// "leave unchanged".
type ProfilePatch struct {
	Name     *string
	Picture  *string
	Settings map[string]any
}

func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Picture == nil && p.Settings == nil
}
