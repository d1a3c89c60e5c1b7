package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"goalt/internal/modules/migration/domain"
	migrationout "goalt/internal/modules/migration/port/out"
	"goalt/internal/platform/calendar"
	"goalt/internal/platform/clock"
	"goalt/internal/platform/id"
	"goalt/internal/platform/tx"
)

// SQLiteNewShapeWriter replaces the legacy schema with the current one and
// fills it from staged values. All methods run inside the migration
// transaction via the tx-aware querier.
type SQLiteNewShapeWriter struct {
	db    *sql.DB
	clock clock.Clock
	idGen id.Generator
	loc   *time.Location
}

func NewSQLiteNewShapeWriter(db *sql.DB, clk clock.Clock, idGen id.Generator, loc *time.Location) migrationout.NewShapeWriter {
	return &SQLiteNewShapeWriter{db: db, clock: clk, idGen: idGen, loc: loc}
}

func (w *SQLiteNewShapeWriter) ReplaceLegacySchema(ctx context.Context) error {
	const ddl = `
DROP TABLE IF EXISTS sessions;
DROP TABLE IF EXISTS goals;
DROP TABLE IF EXISTS topics;
CREATE TABLE topics (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE TABLE goal_changes (
  id TEXT PRIMARY KEY,
  topic_id TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
  minutes INTEGER NOT NULL,
  effective_at TEXT NOT NULL,
  effective_from_day TEXT NOT NULL
);
CREATE INDEX idx_goal_changes_topic ON goal_changes(topic_id);
CREATE TABLE sessions (
  id TEXT PRIMARY KEY,
  topic_id TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL,
  note TEXT NOT NULL DEFAULT ''
);
CREATE INDEX idx_sessions_topic ON sessions(topic_id);
`
	if _, err := tx.From(ctx, w.db).ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("replace legacy schema: %w", err)
	}
	return nil
}

func (w *SQLiteNewShapeWriter) InsertTopic(ctx context.Context, topic domain.StagedTopic) error {
	const stmt = `INSERT INTO topics (id, name, created_at) VALUES (?, ?, ?)`
	_, err := tx.From(ctx, w.db).ExecContext(ctx, stmt, topic.ID, topic.Name, w.clock.Now().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("insert migrated topic: %w", err)
	}
	return nil
}

func (w *SQLiteNewShapeWriter) InsertSession(ctx context.Context, session domain.StagedSession) error {
	const stmt = `INSERT INTO sessions (id, topic_id, started_at, ended_at, note) VALUES (?, ?, ?, ?, '')`
	_, err := tx.From(ctx, w.db).ExecContext(ctx, stmt,
		session.ID,
		session.TopicID,
		session.StartedAt.Format(timeLayout),
		session.EndedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert migrated session: %w", err)
	}
	return nil
}

func (w *SQLiteNewShapeWriter) InsertGoalChange(ctx context.Context, topicID string, seed domain.GoalSeed) error {
	const stmt = `
INSERT INTO goal_changes (id, topic_id, minutes, effective_at, effective_from_day)
VALUES (?, ?, ?, ?, ?)`
	_, err := tx.From(ctx, w.db).ExecContext(ctx, stmt,
		w.idGen.New(),
		topicID,
		seed.Minutes,
		seed.EffectiveAt.Format(timeLayout),
		calendar.StartOfDay(seed.EffectiveAt, w.loc).Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert migrated goal change: %w", err)
	}
	return nil
}
