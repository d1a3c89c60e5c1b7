package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"goalt/internal/modules/topic/domain"
	topicout "goalt/internal/modules/topic/port/out"
	apperrors "goalt/internal/platform/errors"
	"goalt/internal/platform/tx"
)

const timeLayout = time.RFC3339Nano

type SQLiteTopicStore struct {
	db *sql.DB
}

func NewSQLiteTopicStore(db *sql.DB) (topicout.TopicStore, error) {
	store := &SQLiteTopicStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteTopicStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS topics (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create topics table: %w", err)
	}
	return nil
}

func (s *SQLiteTopicStore) Insert(ctx context.Context, topic domain.Topic) error {
	const stmt = `INSERT INTO topics (id, name, created_at) VALUES (?, ?, ?)`
	_, err := tx.From(ctx, s.db).ExecContext(ctx, stmt, topic.ID, topic.Name, topic.CreatedAt.Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert topic: %w", err)
	}
	return nil
}

func (s *SQLiteTopicStore) Get(ctx context.Context, topicID string) (domain.Topic, error) {
	const stmt = `SELECT id, name, created_at FROM topics WHERE id = ?`
	row := tx.From(ctx, s.db).QueryRowContext(ctx, stmt, topicID)
	topic, err := scanTopic(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Topic{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Topic{}, fmt.Errorf("get topic: %w", err)
	}
	return topic, nil
}

func (s *SQLiteTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	const stmt = `SELECT id, name, created_at FROM topics ORDER BY created_at, id`
	rows, err := tx.From(ctx, s.db).QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	topics := []domain.Topic{}
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}
	return topics, nil
}

func (s *SQLiteTopicStore) Delete(ctx context.Context, topicID string) error {
	const stmt = `DELETE FROM topics WHERE id = ?`
	if _, err := tx.From(ctx, s.db).ExecContext(ctx, stmt, topicID); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTopic(row rowScanner) (domain.Topic, error) {
	var topic domain.Topic
	var createdAt string
	if err := row.Scan(&topic.ID, &topic.Name, &createdAt); err != nil {
		return domain.Topic{}, err
	}
	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return domain.Topic{}, fmt.Errorf("parse created_at: %w", err)
	}
	topic.CreatedAt = parsed
	return topic, nil
}
