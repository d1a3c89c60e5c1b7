package in

import (
	"context"
	"time"

	sessiondto "goalt/internal/modules/session/dto"
	sessionin "goalt/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, topicID string) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{TopicID: topicID})
}

func (h CLIHandler) End(ctx context.Context, note string) (sessiondto.EndOutput, error) {
	return h.usecase.End(ctx, sessiondto.EndInput{Note: note})
}

func (h CLIHandler) Log(ctx context.Context, topicID string, startedAt, endedAt time.Time, note string) (sessiondto.SessionOutput, error) {
	return h.usecase.Log(ctx, sessiondto.LogInput{TopicID: topicID, StartedAt: startedAt, EndedAt: endedAt, Note: note})
}

func (h CLIHandler) List(ctx context.Context, topicID string) ([]sessiondto.SessionOutput, error) {
	return h.usecase.List(ctx, topicID)
}

func (h CLIHandler) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	return h.usecase.GetActive(ctx)
}
