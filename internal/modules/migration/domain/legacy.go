package domain

import (
	"sort"
	"time"
)

// Legacy (pre-snapshot) records. In the old shape every session pointed at a
// mutable goal object; goals were not versioned per day.
type LegacyTopic struct {
	ID   string
	Name string
}

type LegacyGoal struct {
	ID      string
	Minutes int
	// CreatedAt was already normalized to a day boundary when the legacy
	// record was written.
	CreatedAt time.Time
}

type LegacySession struct {
	ID        string
	TopicID   string
	GoalID    string
	StartedAt time.Time
	EndedAt   time.Time
}

// GoalSeed is one goal snapshot to be created in the new shape.
type GoalSeed struct {
	Minutes     int
	EffectiveAt time.Time
}

// Staged is the transfer value that crosses the migration's phase boundary.
// It is the only thing phase 2 may read: the legacy and new shapes are never
// observable at the same time, so everything the write side needs must be
// extracted here first.
type Staged struct {
	Topics       []StagedTopic
	Sessions     []StagedSession
	SeedsByTopic map[string][]GoalSeed
}

type StagedTopic struct {
	ID   string
	Name string
}

type StagedSession struct {
	ID        string
	TopicID   string
	StartedAt time.Time
	EndedAt   time.Time
}

// SeedGoals derives, per legacy topic, the distinct (minutes, day) goal pairs
// its sessions referenced, ordered ascending by effective day. A topic whose
// sessions never existed gets exactly one seed at the default minutes,
// effective from the start of today, so it still resolves to some goal in
// the new shape.
func SeedGoals(
	topics []LegacyTopic,
	sessions []LegacySession,
	goals map[string]LegacyGoal,
	defaultMinutes int,
	today time.Time,
) map[string][]GoalSeed {
	sessionsByTopic := map[string][]LegacySession{}
	for _, session := range sessions {
		sessionsByTopic[session.TopicID] = append(sessionsByTopic[session.TopicID], session)
	}

	type seedKey struct {
		minutes int
		day     int64
	}

	seedsByTopic := make(map[string][]GoalSeed, len(topics))
	for _, topic := range topics {
		distinct := map[seedKey]GoalSeed{}
		for _, session := range sessionsByTopic[topic.ID] {
			goal, ok := goals[session.GoalID]
			if !ok {
				continue
			}
			key := seedKey{minutes: goal.Minutes, day: goal.CreatedAt.Unix()}
			distinct[key] = GoalSeed{Minutes: goal.Minutes, EffectiveAt: goal.CreatedAt}
		}
		if len(distinct) == 0 {
			distinct[seedKey{minutes: defaultMinutes, day: today.Unix()}] = GoalSeed{Minutes: defaultMinutes, EffectiveAt: today}
		}

		seeds := make([]GoalSeed, 0, len(distinct))
		for _, seed := range distinct {
			seeds = append(seeds, seed)
		}
		sort.Slice(seeds, func(i, j int) bool {
			if !seeds[i].EffectiveAt.Equal(seeds[j].EffectiveAt) {
				return seeds[i].EffectiveAt.Before(seeds[j].EffectiveAt)
			}
			return seeds[i].Minutes < seeds[j].Minutes
		})
		seedsByTopic[topic.ID] = seeds
	}
	return seedsByTopic
}
