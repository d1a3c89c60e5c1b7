package usecase

import (
	"context"
	"errors"
	"fmt"

	"goalt/internal/modules/session/domain"
	sessiondto "goalt/internal/modules/session/dto"
	sessionin "goalt/internal/modules/session/port/in"
	sessionout "goalt/internal/modules/session/port/out"
	"goalt/internal/modules/session/service"
	topicin "goalt/internal/modules/topic/port/in"
	apperrors "goalt/internal/platform/errors"
)

type Interactor struct {
	svc         *service.SessionService
	topics      topicin.Usecase
	store       sessionout.SessionStore
	activeStore sessionout.ActiveSessionStore
}

func NewInteractor(svc *service.SessionService, topics topicin.Usecase, store sessionout.SessionStore, activeStore sessionout.ActiveSessionStore) sessionin.Usecase {
	return &Interactor{svc: svc, topics: topics, store: store, activeStore: activeStore}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StartOutput, error) {
	_, err := i.activeStore.LoadActive(ctx)
	if err == nil {
		return sessiondto.StartOutput{}, apperrors.ErrActiveSessionExists
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return sessiondto.StartOutput{}, err
	}

	topic, err := i.topics.Get(ctx, input.TopicID)
	if err != nil {
		return sessiondto.StartOutput{}, err
	}

	active := i.svc.Start(topic.ID, topic.Name)
	if err := i.activeStore.SaveActive(ctx, active); err != nil {
		return sessiondto.StartOutput{}, err
	}
	return sessiondto.StartOutput{
		SessionID: active.SessionID,
		TopicID:   active.TopicID,
		TopicName: active.TopicName,
		StartedAt: active.StartedAt,
	}, nil
}

func (i *Interactor) End(ctx context.Context, input sessiondto.EndInput) (sessiondto.EndOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.EndOutput{}, err
	}

	session, err := i.svc.End(active, input.Note)
	if errors.Is(err, apperrors.ErrZeroDuration) {
		// Under a minute of study: drop the record, free the timer.
		if clearErr := i.activeStore.ClearActive(ctx); clearErr != nil {
			return sessiondto.EndOutput{}, clearErr
		}
		return sessiondto.EndOutput{SessionID: active.SessionID, TopicID: active.TopicID, Discarded: true}, nil
	}
	if err != nil {
		return sessiondto.EndOutput{}, err
	}

	if err := i.store.Insert(ctx, session); err != nil {
		return sessiondto.EndOutput{}, fmt.Errorf("insert session: %w", err)
	}
	if err := i.activeStore.ClearActive(ctx); err != nil {
		return sessiondto.EndOutput{}, err
	}
	return sessiondto.EndOutput{
		SessionID:       session.ID,
		TopicID:         session.TopicID,
		DurationMinutes: session.DurationMinutes(),
	}, nil
}

func (i *Interactor) Log(ctx context.Context, input sessiondto.LogInput) (sessiondto.SessionOutput, error) {
	topic, err := i.topics.Get(ctx, input.TopicID)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	session, err := i.svc.Log(topic.ID, input.StartedAt, input.EndedAt, input.Note)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	if err := i.store.Insert(ctx, session); err != nil {
		return sessiondto.SessionOutput{}, fmt.Errorf("insert session: %w", err)
	}
	return sessionOutput(session), nil
}

func (i *Interactor) List(ctx context.Context, topicID string) ([]sessiondto.SessionOutput, error) {
	var (
		sessions []domain.StudySession
		err      error
	)
	if topicID == "" {
		sessions, err = i.store.List(ctx)
	} else {
		sessions, err = i.store.ListByTopic(ctx, topicID)
	}
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]sessiondto.SessionOutput, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, sessionOutput(session))
	}
	return out, nil
}

func (i *Interactor) GetActive(ctx context.Context) (sessiondto.ActiveSessionOutput, error) {
	active, err := i.activeStore.LoadActive(ctx)
	if err != nil {
		return sessiondto.ActiveSessionOutput{}, err
	}
	return sessiondto.ActiveSessionOutput{
		SessionID: active.SessionID,
		TopicID:   active.TopicID,
		TopicName: active.TopicName,
		StartedAt: active.StartedAt,
	}, nil
}

func sessionOutput(session domain.StudySession) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		ID:              session.ID,
		TopicID:         session.TopicID,
		StartedAt:       session.StartedAt,
		EndedAt:         session.EndedAt,
		DurationMinutes: session.DurationMinutes(),
		Note:            session.Note,
	}
}
