package out

import (
	"context"

	"goalt/internal/modules/migration/domain"
)

// LegacyStore reads the old, pre-snapshot shape. Nothing here may be called
// once writing to the new shape has begun.
type LegacyStore interface {
	DetectLegacy(ctx context.Context) (bool, error)
	Topics(ctx context.Context) ([]domain.LegacyTopic, error)
	Goals(ctx context.Context) (map[string]domain.LegacyGoal, error)
	Sessions(ctx context.Context) ([]domain.LegacySession, error)
}

// NewShapeWriter writes the current shape from staged values only.
type NewShapeWriter interface {
	// ReplaceLegacySchema drops the legacy tables and creates the current
	// ones. Must run inside the same transaction as the inserts.
	ReplaceLegacySchema(ctx context.Context) error
	InsertTopic(ctx context.Context, topic domain.StagedTopic) error
	InsertSession(ctx context.Context, session domain.StagedSession) error
	InsertGoalChange(ctx context.Context, topicID string, seed domain.GoalSeed) error
}
