package ramadan_test

import (
	"testing"
	"time"

	"github.com/karam/musabaqa/internal/ramadan"
	"github.com/karam/musabaqa/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cairoSettings(t *testing.T) *entity.GroupSettings {
	t.Helper()
	loc, err := time.LoadLocation("Africa/Cairo")
	require.NoError(t, err)
	return &entity.GroupSettings{
		RamadanStartDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, loc),
		NumDays:              30,
		Timezone:             "Africa/Cairo",
		ResetRule:            entity.ResetMidnight,
		TaraweehCap:          11,
		TahajjudCap:          11,
		QuranPagesCap:        20,
		PointsWeightTaraweeh: 1,
		PointsWeightTahajjud: 1,
		PointsWeightQuran:    1,
	}
}

func TestCurrentDayNumber(t *testing.T) {
	settings := cairoSettings(t)
	start := settings.RamadanStartDate
	testCases := []struct {
		Desc string
		Now  time.Time
		Day  int
		OK   bool
	}{
		{
			Desc: "start instant is day 1",
			Now:  start,
			Day:  1,
			OK:   true,
		},
		{
			Desc: "late evening of day 1",
			Now:  start.Add(23 * time.Hour),
			Day:  1,
			OK:   true,
		},
		{
			Desc: "just past local midnight is day 2",
			Now:  start.Add(24*time.Hour + time.Minute),
			Day:  2,
			OK:   true,
		},
		{
			Desc: "last day",
			Now:  start.AddDate(0, 0, 29).Add(12 * time.Hour),
			Day:  30,
			OK:   true,
		},
		{
			Desc: "before the start",
			Now:  start.Add(-time.Hour),
			OK:   false,
		},
		{
			Desc: "start far in the future",
			Now:  start.AddDate(0, -2, 0),
			OK:   false,
		},
		{
			Desc: "after the competition ended",
			Now:  start.AddDate(0, 0, 30).Add(time.Hour),
			OK:   false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			day, ok := ramadan.CurrentDayNumber(settings, tc.Now)
			assert.Equal(t, tc.OK, ok)
			if tc.OK {
				assert.Equal(t, tc.Day, day)
			}
		})
	}
}

func TestCurrentDayNumberRespectsTimezone(t *testing.T) {
	// 2025-03-01 00:30 in Cairo is still 2025-02-28 in UTC; the group's
	// configured zone decides the day, not the server clock.
	cairo := cairoSettings(t)
	utc := cairoSettings(t)
	utc.Timezone = "UTC"
	utc.RamadanStartDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	now := time.Date(2025, 2, 28, 22, 30, 0, 0, time.UTC)

	day, ok := ramadan.CurrentDayNumber(cairo, now)
	assert.True(t, ok)
	assert.Equal(t, 1, day)

	_, ok = ramadan.CurrentDayNumber(utc, now)
	assert.False(t, ok)
}

func TestCurrentDayNumberShortCompetition(t *testing.T) {
	settings := cairoSettings(t)
	settings.NumDays = 29
	now := settings.RamadanStartDate.AddDate(0, 0, 29).Add(time.Hour)
	_, ok := ramadan.CurrentDayNumber(settings, now)
	assert.False(t, ok)
}

func TestCanEditLog(t *testing.T) {
	settings := cairoSettings(t)
	now := settings.RamadanStartDate.AddDate(0, 0, 4).Add(10 * time.Hour) // day 5
	testCases := []struct {
		Desc     string
		Day      int
		Override bool
		Want     bool
	}{
		{Desc: "today is editable", Day: 5, Want: true},
		{Desc: "yesterday is read-only", Day: 4, Want: false},
		{Desc: "tomorrow is read-only", Day: 6, Want: false},
		{Desc: "admin override on a past day", Day: 1, Override: true, Want: true},
		{Desc: "admin override outside the window", Day: 300, Override: true, Want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Want, ramadan.CanEditLog(tc.Day, settings, now, tc.Override))
		})
	}
}

func TestCanEditLogOutsideCompetition(t *testing.T) {
	settings := cairoSettings(t)
	now := settings.RamadanStartDate.AddDate(0, 0, 60)
	for day := 1; day <= settings.NumDays; day++ {
		assert.False(t, ramadan.CanEditLog(day, settings, now, false))
	}
}

func TestDay(t *testing.T) {
	settings := cairoSettings(t)
	now := settings.RamadanStartDate.AddDate(0, 0, 2).Add(15 * time.Hour) // day 3
	locked := []int{2, 7}

	day3 := ramadan.Day(3, settings, locked, now)
	assert.Equal(t, entity.DayInfo{
		DayNumber: 3,
		Date:      "2025-03-03",
		IsToday:   true,
		IsLocked:  false,
		CanEdit:   true,
	}, day3)

	day2 := ramadan.Day(2, settings, locked, now)
	assert.Equal(t, "2025-03-02", day2.Date)
	assert.False(t, day2.IsToday)
	assert.True(t, day2.IsLocked)
	assert.False(t, day2.CanEdit)
}

func TestDayLockedToday(t *testing.T) {
	// A lock on the live day beats the edit window.
	settings := cairoSettings(t)
	now := settings.RamadanStartDate.Add(6 * time.Hour)
	day := ramadan.Day(1, settings, []int{1}, now)
	assert.True(t, day.IsToday)
	assert.True(t, day.IsLocked)
	assert.False(t, day.CanEdit)
}

func TestAllDays(t *testing.T) {
	settings := cairoSettings(t)
	now := settings.RamadanStartDate.Add(time.Hour)
	locked := []int{1, 15, 30}

	days := ramadan.AllDays(settings, locked, now)
	require.Len(t, days, settings.NumDays)
	for i, day := range days {
		assert.Equal(t, i+1, day.DayNumber)
		wantLocked := day.DayNumber == 1 || day.DayNumber == 15 || day.DayNumber == 30
		assert.Equal(t, wantLocked, day.IsLocked)
	}
	assert.Equal(t, "2025-03-01", days[0].Date)
	assert.Equal(t, "2025-03-30", days[29].Date)
}

func TestAllDaysDeterministic(t *testing.T) {
	settings := cairoSettings(t)
	now := settings.RamadanStartDate.AddDate(0, 0, 10)
	first := ramadan.AllDays(settings, []int{3}, now)
	second := ramadan.AllDays(settings, []int{3}, now)
	assert.Equal(t, first, second)
}
