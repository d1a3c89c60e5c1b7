package service

import (
	"time"

	sessiondomain "goalt/internal/modules/session/domain"
	"goalt/internal/modules/stats/domain"
	topicdomain "goalt/internal/modules/topic/domain"
	"goalt/internal/platform/calendar"
	"goalt/internal/platform/clock"
)

// StatsService runs the derived computations: daily aggregation and streaks.
// Everything recomputes from the supplied records on each call.
type StatsService struct {
	clock clock.Clock
	loc   *time.Location
}

func NewStatsService(clk clock.Clock, loc *time.Location) *StatsService {
	return &StatsService{clock: clk, loc: loc}
}

// Resolver builds a GoalResolver over a per-topic snapshot history.
func (s *StatsService) Resolver(changesByTopic map[string][]topicdomain.GoalChange) domain.GoalResolver {
	return func(topicID string, day time.Time) (int, bool) {
		return topicdomain.ResolveGoal(changesByTopic[topicID], day, s.loc)
	}
}

// StatusFor aggregates the sessions falling on day; ok is false when none do.
func (s *StatsService) StatusFor(sessions []sessiondomain.StudySession, resolve domain.GoalResolver, day time.Time) (domain.DailyStatus, bool) {
	batch := []sessiondomain.StudySession{}
	for _, session := range sessions {
		if domain.SameDay(session.StartedAt, day, s.loc) {
			batch = append(batch, session)
		}
	}
	return domain.ComputeDailyStatus(batch, resolve, s.loc)
}

// Streaks computes current and longest streaks over all sessions. An empty
// topicID selects the global rule (a day is met when any topic met); a
// specific topic counts only its own attainment.
func (s *StatsService) Streaks(sessions []sessiondomain.StudySession, resolve domain.GoalResolver, topicID string) (current, longest int) {
	statuses := domain.DailyStatuses(sessions, resolve, s.loc)

	var metByDay map[time.Time]bool
	if topicID == "" {
		metByDay = domain.MetByDay(statuses)
	} else {
		metByDay = domain.MetByDayForTopic(statuses, topicID)
	}

	current = domain.CurrentStreak(metByDay, s.clock.Now(), s.loc)
	longest = domain.LongestStreak(metByDay, s.loc)
	return current, longest
}

// TotalMinutes sums all recorded study minutes for one topic.
func (s *StatsService) TotalMinutes(sessions []sessiondomain.StudySession, topicID string) int {
	total := 0
	for _, session := range sessions {
		if session.TopicID == topicID {
			total += session.DurationMinutes()
		}
	}
	return total
}

func (s *StatsService) Today() time.Time {
	return calendar.StartOfDay(s.clock.Now(), s.loc)
}
