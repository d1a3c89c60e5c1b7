package out

import (
	"context"

	sessiondomain "goalt/internal/modules/session/domain"
	topicdomain "goalt/internal/modules/topic/domain"
)

// SessionSource supplies the raw session list the derivations run over.
type SessionSource interface {
	List(ctx context.Context) ([]sessiondomain.StudySession, error)
}

type TopicSource interface {
	List(ctx context.Context) ([]topicdomain.Topic, error)
}

type GoalChangeSource interface {
	ListByTopic(ctx context.Context, topicID string) ([]topicdomain.GoalChange, error)
}
