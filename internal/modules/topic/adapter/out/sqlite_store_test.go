package out_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	adapterout "goalt/internal/modules/topic/adapter/out"
	"goalt/internal/modules/topic/domain"
	topicout "goalt/internal/modules/topic/port/out"
	apperrors "goalt/internal/platform/errors"
	"goalt/internal/platform/sqlitedb"
)

func openStores(t *testing.T) (topicout.TopicStore, topicout.GoalChangeStore) {
	t.Helper()
	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "goalt.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	topics, err := adapterout.NewSQLiteTopicStore(db)
	if err != nil {
		t.Fatalf("topic store: %v", err)
	}
	changes, err := adapterout.NewSQLiteGoalChangeStore(db)
	if err != nil {
		t.Fatalf("goal change store: %v", err)
	}
	return topics, changes
}

func TestTopicRoundTrip(t *testing.T) {
	t.Parallel()
	topics, _ := openStores(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 10, 14, 30, 45, 123456789, time.UTC)
	want := domain.Topic{ID: "t1", Name: "Go", CreatedAt: created}
	if err := topics.Insert(ctx, want); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := topics.Get(ctx, "t1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name || !got.CreatedAt.Equal(created) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTopicGetUnknown(t *testing.T) {
	t.Parallel()
	topics, _ := openStores(t)
	if _, err := topics.Get(context.Background(), "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteCascadesToGoalChanges(t *testing.T) {
	t.Parallel()
	topics, changes := openStores(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	if err := topics.Insert(ctx, domain.Topic{ID: "t1", Name: "Go", CreatedAt: now}); err != nil {
		t.Fatalf("Insert topic: %v", err)
	}
	change := domain.GoalChange{
		ID:               "c1",
		TopicID:          "t1",
		Minutes:          60,
		EffectiveAt:      now,
		EffectiveFromDay: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	if err := changes.Insert(ctx, change); err != nil {
		t.Fatalf("Insert change: %v", err)
	}

	if err := topics.Delete(ctx, "t1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	left, err := changes.ListByTopic(ctx, "t1")
	if err != nil {
		t.Fatalf("ListByTopic: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("goal changes must cascade with their topic, got %+v", left)
	}
}

func TestGoalChangeRoundTripKeepsOrder(t *testing.T) {
	t.Parallel()
	topics, changes := openStores(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	if err := topics.Insert(ctx, domain.Topic{ID: "t1", Name: "Go", CreatedAt: now}); err != nil {
		t.Fatalf("Insert topic: %v", err)
	}
	for i, minutes := range []int{60, 30} {
		change := domain.GoalChange{
			ID:               string(rune('a' + i)),
			TopicID:          "t1",
			Minutes:          minutes,
			EffectiveAt:      now.Add(time.Duration(i) * time.Hour),
			EffectiveFromDay: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		}
		if err := changes.Insert(ctx, change); err != nil {
			t.Fatalf("Insert change: %v", err)
		}
	}

	got, err := changes.ListByTopic(ctx, "t1")
	if err != nil {
		t.Fatalf("ListByTopic: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("changes = %d, want 2", len(got))
	}
	if got[0].Minutes != 60 || got[1].Minutes != 30 {
		t.Fatalf("changes out of insertion order: %+v", got)
	}
}
