package service

import (
	"time"

	"goalt/internal/modules/migration/domain"
	"goalt/internal/platform/calendar"
	"goalt/internal/platform/clock"
)

// Migrator holds the pure half of the migration: turning a fully read legacy
// store into the staged transfer value.
type Migrator struct {
	clock          clock.Clock
	loc            *time.Location
	defaultMinutes int
}

func NewMigrator(clk clock.Clock, loc *time.Location, defaultMinutes int) *Migrator {
	return &Migrator{clock: clk, loc: loc, defaultMinutes: defaultMinutes}
}

// Stage builds the transfer value from legacy records. After this returns,
// phase 2 works from the staged value alone.
func (m *Migrator) Stage(
	topics []domain.LegacyTopic,
	goals map[string]domain.LegacyGoal,
	sessions []domain.LegacySession,
) domain.Staged {
	today := calendar.StartOfDay(m.clock.Now(), m.loc)

	staged := domain.Staged{
		Topics:       make([]domain.StagedTopic, 0, len(topics)),
		Sessions:     make([]domain.StagedSession, 0, len(sessions)),
		SeedsByTopic: domain.SeedGoals(topics, sessions, goals, m.defaultMinutes, today),
	}
	for _, topic := range topics {
		staged.Topics = append(staged.Topics, domain.StagedTopic{ID: topic.ID, Name: topic.Name})
	}
	// Sessions carry over unchanged in timing and topic; the per-session
	// goal reference is dropped, goals resolve by day from now on.
	for _, session := range sessions {
		staged.Sessions = append(staged.Sessions, domain.StagedSession{
			ID:        session.ID,
			TopicID:   session.TopicID,
			StartedAt: session.StartedAt,
			EndedAt:   session.EndedAt,
		})
	}
	return staged
}
