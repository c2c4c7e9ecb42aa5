package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralune/trackstar/pkg/dateutil"
)

func TestDayIDRoundTrip(t *testing.T) {
	parsed, err := dateutil.ParseDayID("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, "2026-01-05", dateutil.DayID(parsed))
}

func TestParseDayIDRejectsGarbage(t *testing.T) {
	for _, input := range []string{"not-a-date", "2026-13-01", "2026-1-5", "05-01-2026", ""} {
		_, err := dateutil.ParseDayID(input)
		assert.Error(t, err, input)
	}
}

func TestNoonNormalizesAcrossTimezones(t *testing.T) {
	// 23:30 in UTC+2 is 21:30 UTC, still the same UTC date
	loc := time.FixedZone("UTC+2", 2*60*60)
	late := time.Date(2026, 1, 5, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC), dateutil.Noon(late))
}

func TestMonday(t *testing.T) {
	testCases := []struct {
		Desc   string
		Input  string
		Monday string
	}{
		{Desc: "monday maps to itself", Input: "2026-01-05", Monday: "2026-01-05"},
		{Desc: "wednesday maps back", Input: "2026-01-07", Monday: "2026-01-05"},
		{Desc: "saturday maps back", Input: "2026-01-10", Monday: "2026-01-05"},
		{Desc: "sunday is end of week", Input: "2026-01-11", Monday: "2026-01-05"},
		{Desc: "next monday starts a new week", Input: "2026-01-12", Monday: "2026-01-12"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			input, err := dateutil.ParseDayID(tc.Input)
			require.NoError(t, err)
			monday := dateutil.Monday(input)
			assert.Equal(t, tc.Monday, dateutil.DayID(monday))
			assert.Equal(t, time.Monday, monday.Weekday())
		})
	}
}

func TestDayName(t *testing.T) {
	d, err := dateutil.ParseDayID("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, "Monday", dateutil.DayName(d))
}

func TestLexicalOrderMatchesChronological(t *testing.T) {
	earlier := dateutil.DayID(time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC))
	later := dateutil.DayID(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	assert.Less(t, earlier, later)
}
