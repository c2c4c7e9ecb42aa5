// Package stats computes day-record aggregates. It is the single shared
// implementation of the summary/streak algorithm: every consumer (API
// layer, exports, dashboards) goes through Calculate so the numbers can
// never drift apart.
package stats

import (
	"math"
	"sort"

	"github.com/astralune/trackstar/pkg/dateutil"
	"github.com/astralune/trackstar/pkg/entity"
)

type Summary struct {
	TotalDays            int `json:"totalDays"`
	Completed            int `json:"completed"`
	Skipped              int `json:"skipped"`
	RestDays             int `json:"restDays"`
	ExtraActivitiesCount int `json:"extraActivitiesCount"`
	Consistency          int `json:"consistency"`
}

type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type ActivityCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Result struct {
	Summary    Summary            `json:"summary"`
	Streaks    Streaks            `json:"streaks"`
	Activities []ActivityCount    `json:"activities"`
	RawDays    []entity.DayRecord `json:"rawDays"`
}

// Calculate aggregates days into a stats result. Summary counts cover
// only ids inside [startID, endID]; streaks run over every day given.
// Total over any well-typed input, never errors.
func Calculate(days []entity.DayRecord, startID, endID string) Result {
	inRange := make([]entity.DayRecord, 0, len(days))
	for _, d := range days {
		if d.ID >= startID && d.ID <= endID {
			inRange = append(inRange, d)
		}
	}

	summary := Summary{TotalDays: len(inRange)}
	counts := make(map[string]int)
	order := make([]string, 0)
	bump := func(name string) {
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	for _, d := range inRange {
		switch {
		case d.IsRestDay:
			summary.RestDays++
		case d.Status == entity.StatusCompleted:
			summary.Completed++
			if d.PlannedActivity != "" {
				bump(d.PlannedActivity)
			}
		case d.Status == entity.StatusSkipped:
			summary.Skipped++
		}
		summary.ExtraActivitiesCount += len(d.Extras)
		for _, extra := range d.Extras {
			bump(extra)
		}
	}

	trackable := summary.TotalDays - summary.RestDays
	if trackable > 0 {
		summary.Consistency = int(math.Round(float64(summary.Completed) / float64(trackable) * 100))
	}

	activities := make([]ActivityCount, 0, len(order))
	for _, name := range order {
		activities = append(activities, ActivityCount{Name: name, Count: counts[name]})
	}
	// ties keep first-encounter order
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Count > activities[j].Count
	})

	return Result{
		Summary:    summary,
		Streaks:    calculateStreaks(days),
		Activities: activities,
		RawDays:    inRange,
	}
}

func calculateStreaks(days []entity.DayRecord) Streaks {
	sorted := make([]entity.DayRecord, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var longest, temp int
	for _, d := range sorted {
		switch {
		case d.Status == entity.StatusCompleted || d.IsRestDay:
			temp++
		case d.Status == entity.StatusSkipped:
			if temp > longest {
				longest = temp
			}
			temp = 0
		}
		// pending days are neutral here; the correction pass turns past
		// pending days into skipped before they normally reach us
	}
	if temp > longest {
		longest = temp
	}

	todayID := dateutil.TodayID()
	var current int
	for i := len(sorted) - 1; i >= 0; i-- {
		d := sorted[i]
		if d.ID > todayID {
			continue
		}
		if d.Status == entity.StatusCompleted || d.IsRestDay {
			current++
		} else if d.Status == entity.StatusSkipped || (d.ID < todayID && d.Status == entity.StatusPending) {
			break
		}
	}

	return Streaks{Current: current, Longest: longest}
}
