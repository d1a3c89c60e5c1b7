package domain_test

import (
	"testing"
	"time"

	"goalt/internal/modules/migration/domain"
)

func legacyDay(day int) time.Time {
	return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestSeedGoalsDeduplicatesByMinutesAndDay(t *testing.T) {
	t.Parallel()
	topics := []domain.LegacyTopic{{ID: "t1", Name: "Go"}}
	goals := map[string]domain.LegacyGoal{
		"g1": {ID: "g1", Minutes: 60, CreatedAt: legacyDay(1)},
		"g2": {ID: "g2", Minutes: 60, CreatedAt: legacyDay(1)},
		"g3": {ID: "g3", Minutes: 30, CreatedAt: legacyDay(3)},
	}
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sessions := []domain.LegacySession{
		{ID: "s1", TopicID: "t1", GoalID: "g1", StartedAt: start, EndedAt: start.Add(time.Hour)},
		{ID: "s2", TopicID: "t1", GoalID: "g2", StartedAt: start.Add(24 * time.Hour), EndedAt: start.Add(25 * time.Hour)},
		{ID: "s3", TopicID: "t1", GoalID: "g3", StartedAt: start.Add(48 * time.Hour), EndedAt: start.Add(49 * time.Hour)},
	}

	seeds := domain.SeedGoals(topics, sessions, goals, 60, legacyDay(10))["t1"]
	if len(seeds) != 2 {
		t.Fatalf("expected 2 distinct seeds, got %d: %v", len(seeds), seeds)
	}
	if seeds[0].Minutes != 60 || !seeds[0].EffectiveAt.Equal(legacyDay(1)) {
		t.Fatalf("first seed = %v, want 60 minutes effective day 1", seeds[0])
	}
	if seeds[1].Minutes != 30 || !seeds[1].EffectiveAt.Equal(legacyDay(3)) {
		t.Fatalf("second seed = %v, want 30 minutes effective day 3", seeds[1])
	}
}

func TestSeedGoalsDefaultsSessionlessTopic(t *testing.T) {
	t.Parallel()
	topics := []domain.LegacyTopic{{ID: "t1", Name: "Idle"}}
	today := legacyDay(10)

	seeds := domain.SeedGoals(topics, nil, nil, 60, today)["t1"]
	if len(seeds) != 1 {
		t.Fatalf("expected exactly one default seed, got %d", len(seeds))
	}
	if seeds[0].Minutes != 60 || !seeds[0].EffectiveAt.Equal(today) {
		t.Fatalf("default seed = %v, want 60 minutes effective today", seeds[0])
	}
}

func TestSeedGoalsSkipsDanglingGoalReferences(t *testing.T) {
	t.Parallel()
	topics := []domain.LegacyTopic{{ID: "t1", Name: "Go"}}
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sessions := []domain.LegacySession{
		{ID: "s1", TopicID: "t1", GoalID: "missing", StartedAt: start, EndedAt: start.Add(time.Hour)},
	}

	// All references dangle, so the topic falls back to the default seed.
	seeds := domain.SeedGoals(topics, sessions, nil, 45, legacyDay(10))["t1"]
	if len(seeds) != 1 || seeds[0].Minutes != 45 {
		t.Fatalf("expected default fallback, got %v", seeds)
	}
}
