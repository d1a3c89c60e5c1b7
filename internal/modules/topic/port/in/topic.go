package in

import (
	"context"

	"goalt/internal/modules/topic/dto"
)

type Usecase interface {
	Create(ctx context.Context, input dto.CreateInput) (dto.TopicOutput, error)
	List(ctx context.Context) ([]dto.TopicOutput, error)
	Get(ctx context.Context, topicID string) (dto.TopicOutput, error)
	Remove(ctx context.Context, topicID string) error
	SetGoal(ctx context.Context, input dto.SetGoalInput) (dto.GoalChangeOutput, error)
	ResolveGoal(ctx context.Context, input dto.ResolveGoalInput) (dto.GoalOutput, error)
}
