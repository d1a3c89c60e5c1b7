package service

import (
	"strings"
	"time"

	"goalt/internal/modules/topic/domain"
	"goalt/internal/platform/calendar"
	"goalt/internal/platform/clock"
	"goalt/internal/platform/id"
)

// TopicService builds validated topic and goal-snapshot values. Persistence
// stays with the usecase layer.
type TopicService struct {
	clock clock.Clock
	idGen id.Generator
	loc   *time.Location
}

func NewTopicService(clk clock.Clock, idGen id.Generator, loc *time.Location) *TopicService {
	return &TopicService{clock: clk, idGen: idGen, loc: loc}
}

func (s *TopicService) NewTopic(name string) (domain.Topic, error) {
	topic := domain.Topic{
		ID:        s.idGen.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: s.clock.Now(),
	}
	if err := topic.Validate(); err != nil {
		return domain.Topic{}, err
	}
	return topic, nil
}

// NewGoalChange snapshots a goal value effective from now. The snapshot is
// immutable once stored.
func (s *TopicService) NewGoalChange(topicID string, minutes int) (domain.GoalChange, error) {
	now := s.clock.Now()
	change := domain.GoalChange{
		ID:               s.idGen.New(),
		TopicID:          topicID,
		Minutes:          minutes,
		EffectiveAt:      now,
		EffectiveFromDay: calendar.StartOfDay(now, s.loc),
	}
	if err := change.Validate(); err != nil {
		return domain.GoalChange{}, err
	}
	return change, nil
}

// ResolveGoal reports the goal minutes active for day, if any snapshot
// applies.
func (s *TopicService) ResolveGoal(changes []domain.GoalChange, day time.Time) (int, bool) {
	return domain.ResolveGoal(changes, day, s.loc)
}
