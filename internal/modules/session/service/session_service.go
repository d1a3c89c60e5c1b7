package service

import (
	"time"

	"goalt/internal/modules/session/domain"
	"goalt/internal/platform/clock"
	apperrors "goalt/internal/platform/errors"
	"goalt/internal/platform/id"
)

type SessionService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSessionService(clk clock.Clock, idGen id.Generator) *SessionService {
	return &SessionService{clock: clk, idGen: idGen}
}

func (s *SessionService) Start(topicID, topicName string) domain.ActiveSession {
	return domain.ActiveSession{
		SessionID: s.idGen.New(),
		TopicID:   topicID,
		TopicName: topicName,
		StartedAt: s.clock.Now(),
	}
}

// End closes an active timer. Sessions that elapsed under one whole minute
// are never persisted; callers get ErrZeroDuration and drop the record.
func (s *SessionService) End(active domain.ActiveSession, note string) (domain.StudySession, error) {
	session := domain.StudySession{
		ID:        active.SessionID,
		TopicID:   active.TopicID,
		StartedAt: active.StartedAt,
		EndedAt:   s.clock.Now(),
		Note:      note,
	}
	if err := session.Validate(); err != nil {
		return domain.StudySession{}, err
	}
	if session.DurationMinutes() == 0 {
		return domain.StudySession{}, apperrors.ErrZeroDuration
	}
	return session, nil
}

// Log records a session with explicit bounds, for backfilling past study
// time. The same zero-duration rule applies.
func (s *SessionService) Log(topicID string, startedAt, endedAt time.Time, note string) (domain.StudySession, error) {
	session := domain.StudySession{
		ID:        s.idGen.New(),
		TopicID:   topicID,
		StartedAt: startedAt,
		EndedAt:   endedAt,
		Note:      note,
	}
	if err := session.Validate(); err != nil {
		return domain.StudySession{}, err
	}
	if session.DurationMinutes() == 0 {
		return domain.StudySession{}, apperrors.ErrZeroDuration
	}
	return session, nil
}
