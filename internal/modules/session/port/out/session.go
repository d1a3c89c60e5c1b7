package out

import (
	"context"

	"goalt/internal/modules/session/domain"
)

type SessionStore interface {
	Insert(ctx context.Context, session domain.StudySession) error
	List(ctx context.Context) ([]domain.StudySession, error)
	ListByTopic(ctx context.Context, topicID string) ([]domain.StudySession, error)
}

type ActiveSessionStore interface {
	SaveActive(ctx context.Context, session domain.ActiveSession) error
	LoadActive(ctx context.Context) (domain.ActiveSession, error)
	ClearActive(ctx context.Context) error
}
