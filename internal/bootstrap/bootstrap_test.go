package bootstrap_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"goalt/internal/bootstrap"
	"goalt/internal/platform/config"
	"goalt/internal/platform/sqlitedb"
)

// seedLegacyDB writes a database in the pre-snapshot shape: goals as mutable
// rows, sessions referencing a goal by id.
func seedLegacyDB(t *testing.T, path string) {
	t.Helper()
	db, err := sqlitedb.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	const ddl = `
CREATE TABLE topics (id TEXT PRIMARY KEY, name TEXT NOT NULL);
CREATE TABLE goals (id TEXT PRIMARY KEY, minutes INTEGER NOT NULL, created_at TEXT NOT NULL);
CREATE TABLE sessions (
  id TEXT PRIMARY KEY,
  topic_id TEXT NOT NULL,
  goal_id TEXT NOT NULL,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL
);
`
	if _, err := db.Exec(ddl); err != nil {
		t.Fatalf("create legacy schema: %v", err)
	}

	goalDay := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	stmts := []struct {
		stmt string
		args []any
	}{
		{`INSERT INTO topics (id, name) VALUES (?, ?)`, []any{"t1", "Go"}},
		{`INSERT INTO topics (id, name) VALUES (?, ?)`, []any{"t2", "Idle"}},
		{`INSERT INTO goals (id, minutes, created_at) VALUES (?, ?, ?)`,
			[]any{"g1", 60, goalDay.Format(time.RFC3339Nano)}},
		{`INSERT INTO sessions (id, topic_id, goal_id, started_at, ended_at) VALUES (?, ?, ?, ?, ?)`,
			[]any{"s1", "t1", "g1", start.Format(time.RFC3339Nano), start.Add(time.Hour).Format(time.RFC3339Nano)}},
	}
	for _, s := range stmts {
		if _, err := db.Exec(s.stmt, s.args...); err != nil {
			t.Fatalf("seed legacy data: %v", err)
		}
	}
}

func TestNewMigratesLegacyStoreOnce(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := config.Config{
		DataDir:            dir,
		DBPath:             filepath.Join(dir, "goalt.db"),
		DefaultGoalMinutes: 60,
		Location:           time.UTC,
	}
	seedLegacyDB(t, cfg.DBPath)
	ctx := context.Background()

	app, err := bootstrap.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	topics, err := app.TopicCLI.List(ctx)
	if err != nil {
		t.Fatalf("List topics: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("topics = %d, want 2", len(topics))
	}

	sessions, err := app.SessionCLI.List(ctx, "t1")
	if err != nil {
		t.Fatalf("List sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].DurationMinutes != 60 {
		t.Fatalf("sessions = %+v, want one 60-minute session", sessions)
	}

	// The referenced legacy goal became a snapshot effective from its day.
	goal, err := app.TopicCLI.ResolveGoal(ctx, "t1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ResolveGoal: %v", err)
	}
	if !goal.Known || goal.Minutes != 60 {
		t.Fatalf("goal = (%d, %t), want (60, true)", goal.Minutes, goal.Known)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// A second bootstrap sees the current shape and does not migrate again.
	app, err = bootstrap.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New again: %v", err)
	}
	defer app.Close()

	result, err := app.MigrationCLI.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Migrated {
		t.Fatalf("second run must be a no-op")
	}
	topics, err = app.TopicCLI.List(ctx)
	if err != nil {
		t.Fatalf("List topics: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("topics after reopen = %d, want 2", len(topics))
	}
}

func TestNewOnFreshStore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := config.Config{
		DataDir:            dir,
		DBPath:             filepath.Join(dir, "goalt.db"),
		DefaultGoalMinutes: 60,
		Location:           time.UTC,
	}

	app, err := bootstrap.New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer app.Close()
	ctx := context.Background()

	topic, err := app.TopicCLI.Create(ctx, "Go", 45)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	topics, err := app.TopicCLI.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(topics) != 1 || topics[0].ID != topic.ID {
		t.Fatalf("topics = %+v", topics)
	}
}
