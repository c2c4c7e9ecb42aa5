package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/pkg/entity"
)

// MemoryStore is the in-process storage backend. It implements every
// repository interface and backs dev mode and handler-level tests, so
// the services never know which backend is active.
type MemoryStore struct {
	mu         sync.RWMutex
	days       map[string]map[string]entity.DayRecord
	activities []entity.ActivityType
	users      map[string]entity.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		days:  make(map[string]map[string]entity.DayRecord),
		users: make(map[string]entity.User),
	}
}

// SeedGlobalActivity registers a global activity type, mirroring the
// seed data every deployment starts with.
func (ms *MemoryStore) SeedGlobalActivity(name, icon string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.activities = append(ms.activities, entity.ActivityType{
		ID:        uuid.New(),
		UserID:    nil,
		Name:      name,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	})
}

func copyDay(d entity.DayRecord) entity.DayRecord {
	out := d
	out.Extras = append([]string(nil), d.Extras...)
	return out
}

func (ms *MemoryStore) LoadRange(ctx context.Context, userID, startID, endID string) ([]entity.DayRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	result := make([]entity.DayRecord, 0, 7)
	for id, day := range ms.days[userID] {
		if id >= startID && id <= endID {
			result = append(result, copyDay(day))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (ms *MemoryStore) Get(ctx context.Context, userID, dayID string) (*entity.DayRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	day, ok := ms.days[userID][dayID]
	if !ok {
		return nil, errorvalues.ErrDayNotFound
	}
	out := copyDay(day)
	return &out, nil
}

func (ms *MemoryStore) SaveDay(ctx context.Context, day *entity.DayRecord) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if ms.days[day.UserID] == nil {
		ms.days[day.UserID] = make(map[string]entity.DayRecord)
	}
	ms.days[day.UserID][day.ID] = copyDay(*day)
	return nil
}

func (ms *MemoryStore) FindByName(ctx context.Context, userID, name string) (*entity.ActivityType, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	var userMatch *entity.ActivityType
	for i := range ms.activities {
		a := ms.activities[i]
		if !strings.EqualFold(a.Name, name) {
			continue
		}
		// global types win over user-owned ones
		if a.UserID == nil {
			out := a
			return &out, nil
		}
		if *a.UserID == userID && userMatch == nil {
			out := a
			userMatch = &out
		}
	}
	if userMatch != nil {
		return userMatch, nil
	}
	return nil, errorvalues.ErrActivityNotFound
}

func (ms *MemoryStore) Create(ctx context.Context, activity *entity.ActivityType) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for _, a := range ms.activities {
		if !strings.EqualFold(a.Name, activity.Name) {
			continue
		}
		if a.UserID == nil || (activity.UserID != nil && *a.UserID == *activity.UserID) {
			return errorvalues.ErrActivityExists
		}
	}
	stored := *activity
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	ms.activities = append(ms.activities, stored)
	return nil
}

func (ms *MemoryStore) ListForUser(ctx context.Context, userID string) ([]entity.ActivityType, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	result := make([]entity.ActivityType, 0, len(ms.activities))
	for _, a := range ms.activities {
		if a.UserID == nil || *a.UserID == userID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (ms *MemoryStore) DeleteUserActivity(ctx context.Context, userID string, id uuid.UUID) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i, a := range ms.activities {
		if a.ID == id && a.UserID != nil && *a.UserID == userID {
			ms.activities = append(ms.activities[:i], ms.activities[i+1:]...)
			return nil
		}
	}
	return errorvalues.ErrActivityNotFound
}

func (ms *MemoryStore) Upsert(ctx context.Context, user *entity.User) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	stored, exists := ms.users[user.ID]
	if !exists {
		stored = *user
		stored.CreatedAt = time.Now().UTC()
	} else {
		stored.Name = user.Name
		stored.Email = user.Email
		stored.Picture = user.Picture
	}
	stored.LastLogin = time.Now().UTC()
	ms.users[user.ID] = stored
	return nil
}

func (ms *MemoryStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	user, ok := ms.users[id]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	return &user, nil
}

func (ms *MemoryStore) UpdateProfile(ctx context.Context, id string, patch entity.ProfilePatch) (*entity.User, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	user, ok := ms.users[id]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Picture != nil {
		user.Picture = *patch.Picture
	}
	if patch.Settings != nil {
		user.Settings = patch.Settings
	}
	ms.users[id] = user
	return &user, nil
}
