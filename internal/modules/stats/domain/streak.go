package domain

import (
	"sort"
	"time"

	"goalt/internal/platform/calendar"
)

// MetByDay reduces daily statuses to a day -> met map under the global rule:
// a day counts as met when at least one topic met its goal. Days with no
// sessions have no entry at all.
func MetByDay(statuses []DailyStatus) map[time.Time]bool {
	met := make(map[time.Time]bool, len(statuses))
	for _, status := range statuses {
		met[status.Day] = status.AnyMet()
	}
	return met
}

// MetByDayForTopic reduces daily statuses to a day -> met map for one topic.
// A day where other topics studied but this one did not is present and false,
// which is different from a day with no sessions at all (no entry).
func MetByDayForTopic(statuses []DailyStatus, topicID string) map[time.Time]bool {
	met := make(map[time.Time]bool, len(statuses))
	for _, status := range statuses {
		entry, ok := status.Entry(topicID)
		met[status.Day] = ok && entry.Met
	}
	return met
}

// LongestStreak scans the recorded days in ascending order and returns the
// longest run of consecutive met days. A missing day is a gap and breaks any
// run spanning it; duplicate day keys cannot occur in a map but the gap<=0
// branch keeps the scan defensive should normalization ever regress.
func LongestStreak(metByDay map[time.Time]bool, loc *time.Location) int {
	days := make([]time.Time, 0, len(metByDay))
	for day := range metByDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest := 0
	current := 0
	var previous time.Time

	for i, day := range days {
		met := metByDay[day]
		switch {
		case i == 0:
			if met {
				current = 1
			} else {
				current = 0
			}
		default:
			gap := calendar.DaysBetween(previous, day, loc)
			switch {
			case gap == 1:
				if met {
					current++
				} else {
					current = 0
				}
			case gap > 1:
				if met {
					current = 1
				} else {
					current = 0
				}
			default:
				// Non-advancing day: never extends a run, never resets one.
				if met && current == 0 {
					current = 1
				}
			}
		}
		if current > longest {
			longest = current
		}
		previous = day
	}
	return longest
}

// CurrentStreak counts met days walking backward from the anchor. The anchor
// is today when today is recorded and met; otherwise yesterday, so an
// unfinished today does not spoil the run. Any absent day stops the walk:
// a day without sessions is a failure, not a pause.
func CurrentStreak(metByDay map[time.Time]bool, now time.Time, loc *time.Location) int {
	today := calendar.StartOfDay(now, loc)
	anchor := calendar.AddDays(today, -1, loc)
	if metByDay[today] {
		anchor = today
	}

	streak := 0
	for day := anchor; ; day = calendar.AddDays(day, -1, loc) {
		met, ok := metByDay[day]
		if !ok || !met {
			break
		}
		streak++
	}
	return streak
}
