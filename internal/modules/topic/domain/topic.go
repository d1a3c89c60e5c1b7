package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"goalt/internal/platform/calendar"
	apperrors "goalt/internal/platform/errors"
)

// Topic is a user-defined subject whose study time is tracked against a
// daily-minutes goal. Its goal history and sessions cascade-delete with it.
type Topic struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func (t Topic) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("topic id is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("topic name is required: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

// GoalChange is an immutable goal snapshot. Changing a topic's goal always
// appends a new snapshot; past days keep resolving against the snapshots
// that were already effective back then.
type GoalChange struct {
	ID      string
	TopicID string
	Minutes int

	// EffectiveAt is the exact instant the change was made; it breaks ties
	// between snapshots created on the same calendar day.
	EffectiveAt time.Time

	// EffectiveFromDay is EffectiveAt normalized to its day boundary.
	EffectiveFromDay time.Time
}

func (c GoalChange) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("goal change id is required: %w", apperrors.ErrInvalidInput)
	}
	if c.TopicID == "" {
		return fmt.Errorf("goal change topic id is required: %w", apperrors.ErrInvalidInput)
	}
	if c.Minutes <= 0 {
		return fmt.Errorf("goal minutes must be positive, got %d: %w", c.Minutes, apperrors.ErrInvalidInput)
	}
	return nil
}

// ResolveGoal returns the goal minutes active for day, or ok=false when no
// snapshot was effective yet ("unknown", distinct from zero).
//
// Among snapshots with EffectiveFromDay <= startOfDay(day), the one with the
// latest EffectiveFromDay wins; same-day snapshots are broken by EffectiveAt
// and finally by ID, so equal keys resolve deterministically regardless of
// input order.
func ResolveGoal(changes []GoalChange, day time.Time, loc *time.Location) (int, bool) {
	targetDay := calendar.StartOfDay(day, loc)

	applicable := make([]GoalChange, 0, len(changes))
	for _, change := range changes {
		if !change.EffectiveFromDay.After(targetDay) {
			applicable = append(applicable, change)
		}
	}
	if len(applicable) == 0 {
		return 0, false
	}

	sort.Slice(applicable, func(i, j int) bool {
		a, b := applicable[i], applicable[j]
		if !a.EffectiveFromDay.Equal(b.EffectiveFromDay) {
			return a.EffectiveFromDay.Before(b.EffectiveFromDay)
		}
		if !a.EffectiveAt.Equal(b.EffectiveAt) {
			return a.EffectiveAt.Before(b.EffectiveAt)
		}
		return a.ID < b.ID
	})
	return applicable[len(applicable)-1].Minutes, true
}
