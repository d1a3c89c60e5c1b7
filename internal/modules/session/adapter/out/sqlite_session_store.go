package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"goalt/internal/modules/session/domain"
	sessionout "goalt/internal/modules/session/port/out"
	"goalt/internal/platform/tx"
)

const timeLayout = time.RFC3339Nano

type SQLiteSessionStore struct {
	db *sql.DB
}

func NewSQLiteSessionStore(db *sql.DB) (sessionout.SessionStore, error) {
	store := &SQLiteSessionStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSessionStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  topic_id TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL,
  note TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_sessions_topic ON sessions(topic_id);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) Insert(ctx context.Context, session domain.StudySession) error {
	const stmt = `INSERT INTO sessions (id, topic_id, started_at, ended_at, note) VALUES (?, ?, ?, ?, ?)`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt,
		session.ID,
		session.TopicID,
		session.StartedAt.Format(timeLayout),
		session.EndedAt.Format(timeLayout),
		session.Note,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionStore) List(ctx context.Context) ([]domain.StudySession, error) {
	const stmt = `SELECT id, topic_id, started_at, ended_at, note FROM sessions ORDER BY started_at, id`
	return s.query(ctx, stmt)
}

func (s *SQLiteSessionStore) ListByTopic(ctx context.Context, topicID string) ([]domain.StudySession, error) {
	const stmt = `SELECT id, topic_id, started_at, ended_at, note FROM sessions WHERE topic_id = ? ORDER BY started_at, id`
	return s.query(ctx, stmt, topicID)
}

func (s *SQLiteSessionStore) query(ctx context.Context, stmt string, args ...any) ([]domain.StudySession, error) {
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sessions := []domain.StudySession{}
	for rows.Next() {
		var session domain.StudySession
		var startedAt, endedAt string
		if err := rows.Scan(&session.ID, &session.TopicID, &startedAt, &endedAt, &session.Note); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		session.StartedAt, err = time.Parse(timeLayout, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		session.EndedAt, err = time.Parse(timeLayout, endedAt)
		if err != nil {
			return nil, fmt.Errorf("parse ended_at: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}
