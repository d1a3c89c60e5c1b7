package domain

import (
	"fmt"
	"time"

	"goalt/internal/platform/calendar"
	apperrors "goalt/internal/platform/errors"
)

// ActiveSession is the single in-flight timer persisted between `session
// start` and `session end`.
type ActiveSession struct {
	SessionID string    `json:"session_id"`
	TopicID   string    `json:"topic_id"`
	TopicName string    `json:"topic_name"`
	StartedAt time.Time `json:"started_at"`
}

// StudySession is one completed study event for a topic. It is the source of
// truth for time tracking; daily totals and streaks are derived from sessions
// on every read, never stored. Immutable once created except for Note.
type StudySession struct {
	ID        string
	TopicID   string
	StartedAt time.Time
	EndedAt   time.Time
	Note      string
}

func (s StudySession) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session id is required: %w", apperrors.ErrInvalidInput)
	}
	if s.TopicID == "" {
		return fmt.Errorf("session topic id is required: %w", apperrors.ErrInvalidInput)
	}
	if s.EndedAt.Before(s.StartedAt) {
		return fmt.Errorf("session end precedes start: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

// DurationMinutes is the whole minutes elapsed, truncated, never negative.
func (s StudySession) DurationMinutes() int {
	seconds := s.EndedAt.Sub(s.StartedAt).Seconds()
	if seconds <= 0 {
		return 0
	}
	return int(seconds / 60)
}

// Day is the session's calendar day, anchored to its start instant.
func (s StudySession) Day(loc *time.Location) time.Time {
	return calendar.StartOfDay(s.StartedAt, loc)
}
