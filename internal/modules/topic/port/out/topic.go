package out

import (
	"context"

	"goalt/internal/modules/topic/domain"
)

type TopicStore interface {
	Insert(ctx context.Context, topic domain.Topic) error
	Get(ctx context.Context, topicID string) (domain.Topic, error)
	List(ctx context.Context) ([]domain.Topic, error)
	Delete(ctx context.Context, topicID string) error
}

type GoalChangeStore interface {
	Insert(ctx context.Context, change domain.GoalChange) error
	ListByTopic(ctx context.Context, topicID string) ([]domain.GoalChange, error)
}
