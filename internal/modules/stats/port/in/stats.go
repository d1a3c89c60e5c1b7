package in

import (
	"context"
	"time"

	"goalt/internal/modules/stats/dto"
)

type Usecase interface {
	// Status aggregates one day; ok is false when the day has no sessions.
	Status(ctx context.Context, day time.Time) (dto.StatusOutput, bool, error)
	// Streaks computes current and longest streaks, globally when topicID is
	// empty or scoped to one topic otherwise.
	Streaks(ctx context.Context, topicID string) (dto.StreakOutput, error)
	Summary(ctx context.Context) ([]dto.SummaryRow, error)
}
