package usecase

import (
	"context"
	"fmt"

	"goalt/internal/modules/topic/dto"
	topicin "goalt/internal/modules/topic/port/in"
	topicout "goalt/internal/modules/topic/port/out"
	"goalt/internal/modules/topic/service"
)

type Interactor struct {
	svc     *service.TopicService
	topics  topicout.TopicStore
	changes topicout.GoalChangeStore
}

func NewInteractor(svc *service.TopicService, topics topicout.TopicStore, changes topicout.GoalChangeStore) topicin.Usecase {
	return &Interactor{svc: svc, topics: topics, changes: changes}
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateInput) (dto.TopicOutput, error) {
	topic, err := i.svc.NewTopic(input.Name)
	if err != nil {
		return dto.TopicOutput{}, err
	}
	if err := i.topics.Insert(ctx, topic); err != nil {
		return dto.TopicOutput{}, fmt.Errorf("insert topic: %w", err)
	}
	if input.GoalMinutes > 0 {
		if _, err := i.SetGoal(ctx, dto.SetGoalInput{TopicID: topic.ID, Minutes: input.GoalMinutes}); err != nil {
			return dto.TopicOutput{}, err
		}
	}
	return dto.TopicOutput{ID: topic.ID, Name: topic.Name, CreatedAt: topic.CreatedAt}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.TopicOutput, error) {
	topics, err := i.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	out := make([]dto.TopicOutput, 0, len(topics))
	for _, topic := range topics {
		out = append(out, dto.TopicOutput{ID: topic.ID, Name: topic.Name, CreatedAt: topic.CreatedAt})
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, topicID string) (dto.TopicOutput, error) {
	topic, err := i.topics.Get(ctx, topicID)
	if err != nil {
		return dto.TopicOutput{}, err
	}
	return dto.TopicOutput{ID: topic.ID, Name: topic.Name, CreatedAt: topic.CreatedAt}, nil
}

// Remove deletes a topic; its sessions and goal snapshots go with it.
func (i *Interactor) Remove(ctx context.Context, topicID string) error {
	if _, err := i.topics.Get(ctx, topicID); err != nil {
		return err
	}
	if err := i.topics.Delete(ctx, topicID); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	return nil
}

func (i *Interactor) SetGoal(ctx context.Context, input dto.SetGoalInput) (dto.GoalChangeOutput, error) {
	if _, err := i.topics.Get(ctx, input.TopicID); err != nil {
		return dto.GoalChangeOutput{}, err
	}
	change, err := i.svc.NewGoalChange(input.TopicID, input.Minutes)
	if err != nil {
		return dto.GoalChangeOutput{}, err
	}
	if err := i.changes.Insert(ctx, change); err != nil {
		return dto.GoalChangeOutput{}, fmt.Errorf("insert goal change: %w", err)
	}
	return dto.GoalChangeOutput{
		ID:               change.ID,
		TopicID:          change.TopicID,
		Minutes:          change.Minutes,
		EffectiveAt:      change.EffectiveAt,
		EffectiveFromDay: change.EffectiveFromDay,
	}, nil
}

// ResolveGoal answers "what goal was active for this topic on that day".
// No applicable snapshot is a normal unknown result, not an error.
func (i *Interactor) ResolveGoal(ctx context.Context, input dto.ResolveGoalInput) (dto.GoalOutput, error) {
	if _, err := i.topics.Get(ctx, input.TopicID); err != nil {
		return dto.GoalOutput{}, err
	}
	changes, err := i.changes.ListByTopic(ctx, input.TopicID)
	if err != nil {
		return dto.GoalOutput{}, fmt.Errorf("list goal changes: %w", err)
	}
	minutes, known := i.svc.ResolveGoal(changes, input.Day)
	return dto.GoalOutput{TopicID: input.TopicID, Day: input.Day, Minutes: minutes, Known: known}, nil
}
