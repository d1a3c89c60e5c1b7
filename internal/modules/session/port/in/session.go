package in

import (
	"context"

	"goalt/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	End(ctx context.Context, input dto.EndInput) (dto.EndOutput, error)
	Log(ctx context.Context, input dto.LogInput) (dto.SessionOutput, error)
	List(ctx context.Context, topicID string) ([]dto.SessionOutput, error)
	GetActive(ctx context.Context) (dto.ActiveSessionOutput, error)
}
