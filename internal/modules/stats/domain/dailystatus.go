package domain

import (
	"sort"
	"time"

	sessiondomain "goalt/internal/modules/session/domain"
	"goalt/internal/platform/calendar"
)

// GoalResolver reports the goal minutes active for a topic on a given day,
// and whether any snapshot applies at all.
type GoalResolver func(topicID string, day time.Time) (minutes int, known bool)

// TopicStatus is one topic's aggregate for a single day.
type TopicStatus struct {
	TopicID      string
	TotalMinutes int
	GoalMinutes  int
	GoalKnown    bool
	Met          bool
}

// DailyStatus aggregates one calendar day's sessions per topic. It is derived
// on every call; goal snapshots can appear after sessions exist, so nothing
// here may be cached.
type DailyStatus struct {
	Day     time.Time
	Entries []TopicStatus
}

// Entry returns the status for a topic, if the topic studied that day.
func (d DailyStatus) Entry(topicID string) (TopicStatus, bool) {
	for _, entry := range d.Entries {
		if entry.TopicID == topicID {
			return entry, true
		}
	}
	return TopicStatus{}, false
}

// AnyMet reports whether at least one topic met its goal that day.
func (d DailyStatus) AnyMet() bool {
	for _, entry := range d.Entries {
		if entry.Met {
			return true
		}
	}
	return false
}

// ComputeDailyStatus aggregates a batch of sessions into per-topic totals and
// goal attainment. The second return is false for an empty batch (no zero
// DailyStatus exists).
//
// Callers must pass sessions from a single calendar day; the day anchors to
// the first session's normalized day and is not re-verified here. Entries
// keep first-seen topic order. A topic with no applicable goal snapshot gets
// GoalKnown=false and is never met, whatever the total.
func ComputeDailyStatus(sessions []sessiondomain.StudySession, resolve GoalResolver, loc *time.Location) (DailyStatus, bool) {
	if len(sessions) == 0 {
		return DailyStatus{}, false
	}

	day := sessions[0].Day(loc)

	order := []string{}
	totals := map[string]int{}
	for _, session := range sessions {
		if _, seen := totals[session.TopicID]; !seen {
			order = append(order, session.TopicID)
		}
		totals[session.TopicID] += session.DurationMinutes()
	}

	entries := make([]TopicStatus, 0, len(order))
	for _, topicID := range order {
		total := totals[topicID]
		goal, known := resolve(topicID, day)
		entries = append(entries, TopicStatus{
			TopicID:      topicID,
			TotalMinutes: total,
			GoalMinutes:  goal,
			GoalKnown:    known,
			Met:          known && total >= goal,
		})
	}
	return DailyStatus{Day: day, Entries: entries}, true
}

// DailyStatuses groups sessions by normalized day and computes one
// DailyStatus per day, sorted ascending.
func DailyStatuses(sessions []sessiondomain.StudySession, resolve GoalResolver, loc *time.Location) []DailyStatus {
	grouped := map[time.Time][]sessiondomain.StudySession{}
	for _, session := range sessions {
		day := session.Day(loc)
		grouped[day] = append(grouped[day], session)
	}

	statuses := make([]DailyStatus, 0, len(grouped))
	for _, daySessions := range grouped {
		if status, ok := ComputeDailyStatus(daySessions, resolve, loc); ok {
			statuses = append(statuses, status)
		}
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Day.Before(statuses[j].Day) })
	return statuses
}

// SameDay reports whether two instants share a calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return calendar.StartOfDay(a, loc).Equal(calendar.StartOfDay(b, loc))
}
