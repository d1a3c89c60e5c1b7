package calendar

import "time"

// StartOfDay truncates an instant to its calendar-day boundary in loc.
// A nil location falls back to the local zone.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// AddDays shifts a normalized day by n calendar days, re-normalizing so that
// DST transitions cannot leave the result off the day boundary.
func AddDays(day time.Time, n int, loc *time.Location) time.Time {
	return StartOfDay(day.AddDate(0, 0, n), loc)
}

// DaysBetween returns the number of calendar days from a to b (positive when
// b is later). The count is taken over civil dates, so DST days of 23 or 25
// hours still count as one day.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	from := a.In(loc)
	to := b.In(loc)
	fromUTC := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toUTC := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toUTC.Sub(fromUTC).Hours() / 24)
}
