// Package ramadan holds the calendar and scoring engine: pure functions
// mapping instants to competition day numbers and raw daily counts to
// points and rankings. Nothing here touches storage or the clock.
package ramadan

import (
	"time"

	"github.com/karam/musabaqa/pkg/entity"
)

const dayLength = 24 * time.Hour

// location resolves the group's IANA timezone. An unresolvable zone falls
// back to UTC rather than failing: settings are validated at admission.
func location(settings *entity.GroupSettings) *time.Location {
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// toWallClock shifts an instant by its UTC offset in loc, so that
// subtracting two shifted instants yields the wall-clock difference.
func toWallClock(t time.Time, loc *time.Location) time.Time {
	_, offset := t.In(loc).Zone()
	return t.Add(time.Duration(offset) * time.Second)
}

// CurrentDayNumber returns the 1-based day of the competition that now
// falls on in the group's timezone. The start date itself is day 1.
// ok is false when the competition has not started or has already ended.
func CurrentDayNumber(settings *entity.GroupSettings, now time.Time) (int, bool) {
	loc := location(settings)
	elapsed := toWallClock(now, loc).Sub(toWallClock(settings.RamadanStartDate, loc))
	if elapsed < 0 {
		return 0, false
	}
	dayNumber := int(elapsed/dayLength) + 1
	if dayNumber > settings.NumDays {
		return 0, false
	}
	return dayNumber, true
}

// CanEditLog reports whether a log for dayNumber may be written. Admins
// bypass the day window entirely; everyone else may only edit the live
// "today". Day locks are a separate restriction applied by callers.
func CanEditLog(dayNumber int, settings *entity.GroupSettings, now time.Time, isAdminOverride bool) bool {
	if isAdminOverride {
		return true
	}
	current, ok := CurrentDayNumber(settings, now)
	return ok && current == dayNumber
}

// Day derives the calendar metadata for one day number. CanEdit here never
// reflects an admin override: callers needing the bypass special-case it.
func Day(dayNumber int, settings *entity.GroupSettings, lockedDays []int, now time.Time) entity.DayInfo {
	loc := location(settings)
	date := settings.RamadanStartDate.In(loc).AddDate(0, 0, dayNumber-1)

	current, ok := CurrentDayNumber(settings, now)
	isToday := ok && current == dayNumber
	isLocked := containsDay(lockedDays, dayNumber)

	return entity.DayInfo{
		DayNumber: dayNumber,
		Date:      date.Format("2006-01-02"),
		IsToday:   isToday,
		IsLocked:  isLocked,
		CanEdit:   !isLocked && CanEditLog(dayNumber, settings, now, false),
	}
}

// AllDays lists every day of the competition, 1..NumDays in order.
func AllDays(settings *entity.GroupSettings, lockedDays []int, now time.Time) []entity.DayInfo {
	days := make([]entity.DayInfo, 0, settings.NumDays)
	for n := 1; n <= settings.NumDays; n++ {
		days = append(days, Day(n, settings, lockedDays, now))
	}
	return days
}

func containsDay(days []int, n int) bool {
	for _, d := range days {
		if d == n {
			return true
		}
	}
	return false
}
