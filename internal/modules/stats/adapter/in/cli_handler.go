package in

import (
	"context"
	"time"

	"goalt/internal/modules/stats/dto"
	statsin "goalt/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context, day time.Time) (dto.StatusOutput, bool, error) {
	return h.usecase.Status(ctx, day)
}

func (h CLIHandler) Streaks(ctx context.Context, topicID string) (dto.StreakOutput, error) {
	return h.usecase.Streaks(ctx, topicID)
}

func (h CLIHandler) Summary(ctx context.Context) ([]dto.SummaryRow, error) {
	return h.usecase.Summary(ctx)
}
