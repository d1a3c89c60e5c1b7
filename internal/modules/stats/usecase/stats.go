package usecase

import (
	"context"
	"fmt"
	"time"

	"goalt/internal/modules/stats/domain"
	"goalt/internal/modules/stats/dto"
	statsin "goalt/internal/modules/stats/port/in"
	statsout "goalt/internal/modules/stats/port/out"
	"goalt/internal/modules/stats/service"
	topicdomain "goalt/internal/modules/topic/domain"
)

type Interactor struct {
	svc      *service.StatsService
	sessions statsout.SessionSource
	topics   statsout.TopicSource
	changes  statsout.GoalChangeSource
}

func NewInteractor(svc *service.StatsService, sessions statsout.SessionSource, topics statsout.TopicSource, changes statsout.GoalChangeSource) statsin.Usecase {
	return &Interactor{svc: svc, sessions: sessions, topics: topics, changes: changes}
}

func (i *Interactor) Status(ctx context.Context, day time.Time) (dto.StatusOutput, bool, error) {
	sessions, err := i.sessions.List(ctx)
	if err != nil {
		return dto.StatusOutput{}, false, fmt.Errorf("list sessions: %w", err)
	}
	resolve, names, err := i.resolverAndNames(ctx)
	if err != nil {
		return dto.StatusOutput{}, false, err
	}

	status, ok := i.svc.StatusFor(sessions, resolve, day)
	if !ok {
		return dto.StatusOutput{}, false, nil
	}

	out := dto.StatusOutput{Day: status.Day}
	for _, entry := range status.Entries {
		out.Entries = append(out.Entries, dto.TopicStatusOutput{
			TopicID:      entry.TopicID,
			TopicName:    names[entry.TopicID],
			TotalMinutes: entry.TotalMinutes,
			GoalMinutes:  entry.GoalMinutes,
			GoalKnown:    entry.GoalKnown,
			Met:          entry.Met,
		})
	}
	return out, true, nil
}

func (i *Interactor) Streaks(ctx context.Context, topicID string) (dto.StreakOutput, error) {
	sessions, err := i.sessions.List(ctx)
	if err != nil {
		return dto.StreakOutput{}, fmt.Errorf("list sessions: %w", err)
	}
	resolve, _, err := i.resolverAndNames(ctx)
	if err != nil {
		return dto.StreakOutput{}, err
	}
	current, longest := i.svc.Streaks(sessions, resolve, topicID)
	return dto.StreakOutput{TopicID: topicID, Current: current, Longest: longest}, nil
}

func (i *Interactor) Summary(ctx context.Context) ([]dto.SummaryRow, error) {
	sessions, err := i.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	topics, err := i.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	resolve, _, err := i.resolverAndNames(ctx)
	if err != nil {
		return nil, err
	}

	today := i.svc.Today()
	rows := make([]dto.SummaryRow, 0, len(topics))
	for _, topic := range topics {
		todayMinutes := 0
		if status, ok := i.svc.StatusFor(sessions, resolve, today); ok {
			if entry, found := status.Entry(topic.ID); found {
				todayMinutes = entry.TotalMinutes
			}
		}
		goal, known := resolve(topic.ID, today)
		current, longest := i.svc.Streaks(sessions, resolve, topic.ID)
		rows = append(rows, dto.SummaryRow{
			TopicID:       topic.ID,
			TopicName:     topic.Name,
			TotalMinutes:  i.svc.TotalMinutes(sessions, topic.ID),
			TodayMinutes:  todayMinutes,
			GoalMinutes:   goal,
			GoalKnown:     known,
			CurrentStreak: current,
			LongestStreak: longest,
		})
	}
	return rows, nil
}

func (i *Interactor) resolverAndNames(ctx context.Context) (domain.GoalResolver, map[string]string, error) {
	topics, err := i.topics.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list topics: %w", err)
	}
	names := make(map[string]string, len(topics))
	changesByTopic := make(map[string][]topicdomain.GoalChange, len(topics))
	for _, topic := range topics {
		names[topic.ID] = topic.Name
		changes, err := i.changes.ListByTopic(ctx, topic.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("list goal changes: %w", err)
		}
		changesByTopic[topic.ID] = changes
	}
	return i.svc.Resolver(changesByTopic), names, nil
}
