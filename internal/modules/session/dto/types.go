package dto

import "time"

type StartInput struct {
	TopicID string
}

type StartOutput struct {
	SessionID string
	TopicID   string
	TopicName string
	StartedAt time.Time
}

type EndInput struct {
	Note string
}

type EndOutput struct {
	SessionID       string
	TopicID         string
	DurationMinutes int
	// Discarded reports that the timer elapsed under one minute and nothing
	// was persisted.
	Discarded bool
}

type LogInput struct {
	TopicID   string
	StartedAt time.Time
	EndedAt   time.Time
	Note      string
}

type SessionOutput struct {
	ID              string
	TopicID         string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationMinutes int
	Note            string
}

type ActiveSessionOutput struct {
	SessionID string
	TopicID   string
	TopicName string
	StartedAt time.Time
}
