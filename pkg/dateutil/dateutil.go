package dateutil

import "time"

// Layout of canonical day identifiers.
const Layout = "2006-01-02"

// DayID formats t as the YYYY-MM-DD day identifier of its UTC date.
func DayID(t time.Time) string {
	return t.UTC().Format(Layout)
}

// ParseDayID resolves a day id into its canonical instant: midday UTC,
// so timezone boundaries can never shift the calendar date.
func ParseDayID(id string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, id, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return Noon(t), nil
}

// Noon normalizes t to 12:00:00 UTC on the same UTC calendar date.
func Noon(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// Monday returns the Monday of the week containing t, at midday UTC.
// Sunday counts as the end of its week, so it maps 6 days back.
func Monday(t time.Time) time.Time {
	t = Noon(t)
	offset := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		offset = 6
	}
	return t.AddDate(0, 0, -offset)
}

// TodayID is the day id of the current UTC date.
func TodayID() string {
	return DayID(time.Now())
}

// DayName is the English weekday name used in day payloads.
func DayName(t time.Time) string {
	return t.UTC().Weekday().String()
}
