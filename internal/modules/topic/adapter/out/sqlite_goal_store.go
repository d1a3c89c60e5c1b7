package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"goalt/internal/modules/topic/domain"
	topicout "goalt/internal/modules/topic/port/out"
	"goalt/internal/platform/tx"
)

type SQLiteGoalChangeStore struct {
	db *sql.DB
}

func NewSQLiteGoalChangeStore(db *sql.DB) (topicout.GoalChangeStore, error) {
	store := &SQLiteGoalChangeStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteGoalChangeStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS goal_changes (
  id TEXT PRIMARY KEY,
  topic_id TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
  minutes INTEGER NOT NULL,
  effective_at TEXT NOT NULL,
  effective_from_day TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_goal_changes_topic ON goal_changes(topic_id);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create goal_changes table: %w", err)
	}
	return nil
}

func (s *SQLiteGoalChangeStore) Insert(ctx context.Context, change domain.GoalChange) error {
	const stmt = `
INSERT INTO goal_changes (id, topic_id, minutes, effective_at, effective_from_day)
VALUES (?, ?, ?, ?, ?)`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		change.ID,
		change.TopicID,
		change.Minutes,
		change.EffectiveAt.Format(timeLayout),
		change.EffectiveFromDay.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert goal change: %w", err)
	}
	return nil
}

func (s *SQLiteGoalChangeStore) ListByTopic(ctx context.Context, topicID string) ([]domain.GoalChange, error) {
	const stmt = `
SELECT id, topic_id, minutes, effective_at, effective_from_day
FROM goal_changes WHERE topic_id = ?
ORDER BY effective_from_day, effective_at, id`
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, stmt, topicID)
	if err != nil {
		return nil, fmt.Errorf("list goal changes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	changes := []domain.GoalChange{}
	for rows.Next() {
		var change domain.GoalChange
		var effectiveAt, effectiveFromDay string
		if err := rows.Scan(&change.ID, &change.TopicID, &change.Minutes, &effectiveAt, &effectiveFromDay); err != nil {
			return nil, fmt.Errorf("scan goal change: %w", err)
		}
		change.EffectiveAt, err = time.Parse(timeLayout, effectiveAt)
		if err != nil {
			return nil, fmt.Errorf("parse effective_at: %w", err)
		}
		change.EffectiveFromDay, err = time.Parse(timeLayout, effectiveFromDay)
		if err != nil {
			return nil, fmt.Errorf("parse effective_from_day: %w", err)
		}
		changes = append(changes, change)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goal changes: %w", err)
	}
	return changes, nil
}
