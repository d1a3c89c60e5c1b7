package in

import (
	"context"
	"time"

	"goalt/internal/modules/topic/dto"
	topicin "goalt/internal/modules/topic/port/in"
)

type CLIHandler struct {
	usecase topicin.Usecase
}

func NewCLIHandler(usecase topicin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Create(ctx context.Context, name string, goalMinutes int) (dto.TopicOutput, error) {
	return h.usecase.Create(ctx, dto.CreateInput{Name: name, GoalMinutes: goalMinutes})
}

func (h CLIHandler) List(ctx context.Context) ([]dto.TopicOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Remove(ctx context.Context, topicID string) error {
	return h.usecase.Remove(ctx, topicID)
}

func (h CLIHandler) SetGoal(ctx context.Context, topicID string, minutes int) (dto.GoalChangeOutput, error) {
	return h.usecase.SetGoal(ctx, dto.SetGoalInput{TopicID: topicID, Minutes: minutes})
}

func (h CLIHandler) ResolveGoal(ctx context.Context, topicID string, day time.Time) (dto.GoalOutput, error) {
	return h.usecase.ResolveGoal(ctx, dto.ResolveGoalInput{TopicID: topicID, Day: day})
}
