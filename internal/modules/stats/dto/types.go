package dto

import "time"

type TopicStatusOutput struct {
	TopicID      string
	TopicName    string
	TotalMinutes int
	GoalMinutes  int
	GoalKnown    bool
	Met          bool
}

type StatusOutput struct {
	Day     time.Time
	Entries []TopicStatusOutput
}

type StreakOutput struct {
	TopicID string
	Current int
	Longest int
}

type SummaryRow struct {
	TopicID       string
	TopicName     string
	TotalMinutes  int
	TodayMinutes  int
	GoalMinutes   int
	GoalKnown     bool
	CurrentStreak int
	LongestStreak int
}
