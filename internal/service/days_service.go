package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/internal/repository"
	"github.com/astralune/trackstar/pkg/dateutil"
	"github.com/astralune/trackstar/pkg/entity"
	"github.com/astralune/trackstar/pkg/sanitize"
	"github.com/astralune/trackstar/pkg/stats"
)

type DaysService struct {
	days       repository.DaysRepositoryI
	activities repository.ActivitiesRepositoryI
}

func NewDaysService(daysRepo repository.DaysRepositoryI, activitiesRepo repository.ActivitiesRepositoryI) *DaysService {
	if daysRepo == nil || activitiesRepo == nil {
		log.Fatal("on days service provided nil repos")
	}
	return &DaysService{
		days:       daysRepo,
		activities: activitiesRepo,
	}
}

// applyStatusRules runs the status correction pass on a materialized day.
// Rest days can never be skipped; untouched past days become skipped.
// The rest-day rule wins. Idempotent. Reports whether status changed.
func applyStatusRules(day *entity.DayRecord, todayID string) bool {
	updated := day.Status
	if day.IsRestDay && day.Status == entity.StatusSkipped {
		updated = entity.StatusPending
	} else if day.ID < todayID && day.Status == entity.StatusPending && !day.IsRestDay {
		updated = entity.StatusSkipped
	}
	if updated != day.Status {
		day.Status = updated
		return true
	}
	return false
}

func newDefaultDay(userID, id string, date time.Time) entity.DayRecord {
	return entity.DayRecord{
		UserID:          userID,
		ID:              id,
		Date:            dateutil.Noon(date),
		PlannedActivity: entity.PlaceholderActivity,
		IsRestDay:       false,
		Status:          entity.StatusPending,
		Extras:          []string{},
	}
}

func (ds *DaysService) GetWeek(ctx context.Context, userID string, anchor time.Time) ([]entity.DayRecord, error) {
	monday := dateutil.Monday(anchor)
	startID := dateutil.DayID(monday)
	endID := dateutil.DayID(monday.AddDate(0, 0, 6))
	stored, err := ds.days.LoadRange(ctx, userID, startID, endID)
	if err != nil {
		return nil, errors.New("days repository error: " + err.Error())
	}
	byID := make(map[string]entity.DayRecord, len(stored))
	for _, d := range stored {
		byID[d.ID] = d
	}

	todayID := dateutil.TodayID()
	week := make([]entity.DayRecord, 0, 7)
	for i := 0; i < 7; i++ {
		date := monday.AddDate(0, 0, i)
		id := dateutil.DayID(date)
		day, ok := byID[id]
		changed := false
		if !ok {
			day = newDefaultDay(userID, id, date)
			changed = true
		}
		if applyStatusRules(&day, todayID) {
			changed = true
		}
		day.DayName = dateutil.DayName(day.Date)
		if changed {
			if err := ds.days.SaveDay(ctx, &day); err != nil {
				return nil, errors.New("days repository error: " + err.Error())
			}
		}
		week = append(week, day)
	}
	return week, nil
}

func (ds *DaysService) UpdateDay(ctx context.Context, userID, dayID string, patch DayPatch) (*entity.DayRecord, error) {
	day, err := ds.days.Get(ctx, userID, dayID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return nil, err
		}
		return nil, errors.New("days repository error: " + err.Error())
	}

	if patch.PlannedActivity != nil {
		name := sanitize.String(*patch.PlannedActivity)
		day.PlannedActivity = name
		if name != "" && name != entity.PlaceholderActivity {
			canonical, err := ds.resolveActivityType(ctx, userID, name)
			if err != nil {
				return nil, err
			}
			day.PlannedActivity = canonical
		}
	}
	if patch.IsRestDay != nil {
		day.IsRestDay = *patch.IsRestDay
	}
	if patch.Status != nil {
		// unknown status values keep the stored one
		if st := entity.DayStatus(*patch.Status); st.Valid() {
			day.Status = st
		}
	}
	if patch.Extras != nil {
		day.Extras = sanitize.Strings(*patch.Extras)
	}

	applyStatusRules(day, dateutil.TodayID())
	day.DayName = dateutil.DayName(day.Date)
	if err := ds.days.SaveDay(ctx, day); err != nil {
		return nil, errors.New("days repository error: " + err.Error())
	}
	return day, nil
}

// resolveActivityType finds the canonical activity type matching name
// case-insensitively, creating a user-owned one on a miss. Returns the
// canonical display name for the day record.
func (ds *DaysService) resolveActivityType(ctx context.Context, userID, name string) (string, error) {
	existing, err := ds.activities.FindByName(ctx, userID, name)
	if err == nil {
		return existing.Name, nil
	}
	if !errors.Is(err, errorvalues.ErrActivityNotFound) {
		return "", errors.New("activities repository error: " + err.Error())
	}
	uid := userID
	err = ds.activities.Create(ctx, &entity.ActivityType{
		ID:     uuid.New(),
		UserID: &uid,
		Name:   name,
	})
	if err == nil {
		return name, nil
	}
	if errors.Is(err, errorvalues.ErrActivityExists) {
		// lost the race against a concurrent request proposing the same name
		existing, err := ds.activities.FindByName(ctx, userID, name)
		if err != nil {
			return "", errors.New("activities repository error: " + err.Error())
		}
		return existing.Name, nil
	}
	return "", errors.New("activities repository error: " + err.Error())
}

func (ds *DaysService) GetDaysInRange(ctx context.Context, userID, startID, endID string) ([]entity.DayRecord, error) {
	days, err := ds.days.LoadRange(ctx, userID, startID, endID)
	if err != nil {
		return nil, errors.New("days repository error: " + err.Error())
	}
	todayID := dateutil.TodayID()
	for i := range days {
		if applyStatusRules(&days[i], todayID) {
			if err := ds.days.SaveDay(ctx, &days[i]); err != nil {
				return nil, errors.New("days repository error: " + err.Error())
			}
		}
		days[i].DayName = dateutil.DayName(days[i].Date)
	}
	return days, nil
}

func (ds *DaysService) GetStats(ctx context.Context, userID, startID, endID string) (*stats.Result, error) {
	if err := validate.Struct(StatsRequest{Start: startID, End: endID}); err != nil {
		return nil, errorvalues.ErrInvalidDateRange
	}
	days, err := ds.GetDaysInRange(ctx, userID, startID, endID)
	if err != nil {
		return nil, err
	}
	result := stats.Calculate(days, startID, endID)
	return &result, nil
}
