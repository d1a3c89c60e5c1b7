package dto

import "time"

type CreateInput struct {
	Name        string
	GoalMinutes int
}

type TopicOutput struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

type SetGoalInput struct {
	TopicID string
	Minutes int
}

type GoalChangeOutput struct {
	ID               string
	TopicID          string
	Minutes          int
	EffectiveAt      time.Time
	EffectiveFromDay time.Time
}

type ResolveGoalInput struct {
	TopicID string
	Day     time.Time
}

type GoalOutput struct {
	TopicID string
	Day     time.Time
	Minutes int
	Known   bool
}
