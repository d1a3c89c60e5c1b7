package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"goalt/internal/modules/migration/domain"
	migrationout "goalt/internal/modules/migration/port/out"
)

const timeLayout = time.RFC3339Nano

// SQLiteLegacyStore reads the pre-snapshot schema: topics, goals, and
// sessions that each reference one goal.
type SQLiteLegacyStore struct {
	db *sql.DB
}

func NewSQLiteLegacyStore(db *sql.DB) migrationout.LegacyStore {
	return &SQLiteLegacyStore{db: db}
}

// DetectLegacy reports whether the database still carries the legacy shape.
// The goals table only exists there; the current shape uses goal_changes.
func (s *SQLiteLegacyStore) DetectLegacy(ctx context.Context) (bool, error) {
	const stmt = `SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'goals'`
	var count int
	if err := s.db.QueryRowContext(ctx, stmt).Scan(&count); err != nil {
		return false, fmt.Errorf("inspect schema: %w", err)
	}
	return count > 0, nil
}

func (s *SQLiteLegacyStore) Topics(ctx context.Context) ([]domain.LegacyTopic, error) {
	const stmt = `SELECT id, name FROM topics ORDER BY id`
	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("query legacy topics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	topics := []domain.LegacyTopic{}
	for rows.Next() {
		var topic domain.LegacyTopic
		if err := rows.Scan(&topic.ID, &topic.Name); err != nil {
			return nil, fmt.Errorf("scan legacy topic: %w", err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate legacy topics: %w", err)
	}
	return topics, nil
}

func (s *SQLiteLegacyStore) Goals(ctx context.Context) (map[string]domain.LegacyGoal, error) {
	const stmt = `SELECT id, minutes, created_at FROM goals`
	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("query legacy goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	goals := map[string]domain.LegacyGoal{}
	for rows.Next() {
		var goal domain.LegacyGoal
		var createdAt string
		if err := rows.Scan(&goal.ID, &goal.Minutes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan legacy goal: %w", err)
		}
		goal.CreatedAt, err = time.Parse(timeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse legacy goal created_at: %w", err)
		}
		goals[goal.ID] = goal
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate legacy goals: %w", err)
	}
	return goals, nil
}

func (s *SQLiteLegacyStore) Sessions(ctx context.Context) ([]domain.LegacySession, error) {
	const stmt = `SELECT id, topic_id, goal_id, started_at, ended_at FROM sessions ORDER BY started_at, id`
	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("query legacy sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sessions := []domain.LegacySession{}
	for rows.Next() {
		var session domain.LegacySession
		var startedAt, endedAt string
		if err := rows.Scan(&session.ID, &session.TopicID, &session.GoalID, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("scan legacy session: %w", err)
		}
		session.StartedAt, err = time.Parse(timeLayout, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse legacy session started_at: %w", err)
		}
		session.EndedAt, err = time.Parse(timeLayout, endedAt)
		if err != nil {
			return nil, fmt.Errorf("parse legacy session ended_at: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate legacy sessions: %w", err)
	}
	return sessions, nil
}
