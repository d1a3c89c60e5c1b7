package usecase_test

import (
	"context"
	"testing"
	"time"

	sessiondomain "goalt/internal/modules/session/domain"
	statsin "goalt/internal/modules/stats/port/in"
	"goalt/internal/modules/stats/service"
	"goalt/internal/modules/stats/usecase"
	topicdomain "goalt/internal/modules/topic/domain"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

type fakeSessionSource struct {
	sessions []sessiondomain.StudySession
}

func (f *fakeSessionSource) List(context.Context) ([]sessiondomain.StudySession, error) {
	return f.sessions, nil
}

type fakeTopicSource struct {
	topics []topicdomain.Topic
}

func (f *fakeTopicSource) List(context.Context) ([]topicdomain.Topic, error) {
	return f.topics, nil
}

type fakeGoalChangeSource struct {
	changesByTopic map[string][]topicdomain.GoalChange
}

func (f *fakeGoalChangeSource) ListByTopic(_ context.Context, topicID string) ([]topicdomain.GoalChange, error) {
	return f.changesByTopic[topicID], nil
}

type fixture struct {
	uc       statsin.Usecase
	sessions *fakeSessionSource
	changes  *fakeGoalChangeSource
}

func newFixture(now time.Time) *fixture {
	sessions := &fakeSessionSource{}
	topics := &fakeTopicSource{topics: []topicdomain.Topic{
		{ID: "t1", Name: "Go", CreatedAt: now},
	}}
	changes := &fakeGoalChangeSource{changesByTopic: map[string][]topicdomain.GoalChange{}}
	svc := service.NewStatsService(fakeClock{now: now}, time.UTC)
	return &fixture{
		uc:       usecase.NewInteractor(svc, sessions, topics, changes),
		sessions: sessions,
		changes:  changes,
	}
}

func (f *fixture) addSession(topicID string, start time.Time, minutes int) {
	f.sessions.sessions = append(f.sessions.sessions, sessiondomain.StudySession{
		ID:        start.Format(time.RFC3339),
		TopicID:   topicID,
		StartedAt: start,
		EndedAt:   start.Add(time.Duration(minutes) * time.Minute),
	})
}

func (f *fixture) setGoal(topicID string, minutes int, fromDay time.Time) {
	f.changes.changesByTopic[topicID] = append(f.changes.changesByTopic[topicID], topicdomain.GoalChange{
		ID:               fromDay.Format(time.RFC3339),
		TopicID:          topicID,
		Minutes:          minutes,
		EffectiveAt:      fromDay,
		EffectiveFromDay: fromDay,
	})
}

func TestStatusAbsentWithoutSessions(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)

	_, ok, err := f.uc.Status(context.Background(), now)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if ok {
		t.Fatalf("day without sessions must have no status")
	}
}

func TestStatusHonorsGoalRevisionHistory(t *testing.T) {
	t.Parallel()
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	f := newFixture(now)
	f.setGoal("t1", 60, day1)
	f.setGoal("t1", 30, day3)
	// 45 minutes on day 2 and again on day 3.
	f.addSession("t1", day2.Add(9*time.Hour), 45)
	f.addSession("t1", day3.Add(9*time.Hour), 45)
	ctx := context.Background()

	// Day 2 resolves against the 60-minute goal in force back then.
	status, ok, err := f.uc.Status(ctx, day2)
	if err != nil || !ok {
		t.Fatalf("Status day2: ok=%t err=%v", ok, err)
	}
	if e := status.Entries[0]; e.GoalMinutes != 60 || e.Met {
		t.Fatalf("day2 entry = %+v, want 45 of 60, not met", e)
	}

	// Day 3 resolves against the revised 30-minute goal.
	status, ok, err = f.uc.Status(ctx, day3)
	if err != nil || !ok {
		t.Fatalf("Status day3: ok=%t err=%v", ok, err)
	}
	if e := status.Entries[0]; e.GoalMinutes != 30 || !e.Met {
		t.Fatalf("day3 entry = %+v, want 45 of 30, met", e)
	}
	if status.Entries[0].TopicName != "Go" {
		t.Fatalf("entry must carry the topic name, got %q", status.Entries[0].TopicName)
	}
}

func TestStreaksOverSessionHistory(t *testing.T) {
	t.Parallel()
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)

	f := newFixture(now)
	f.setGoal("t1", 30, day1)
	// Met on the 1st, 2nd and 4th; the 3rd has no sessions.
	f.addSession("t1", day1.Add(9*time.Hour), 30)
	f.addSession("t1", day1.Add(33*time.Hour), 30)
	f.addSession("t1", day1.Add(81*time.Hour), 30)

	out, err := f.uc.Streaks(context.Background(), "")
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if out.Longest != 2 || out.Current != 1 {
		t.Fatalf("streaks = current %d longest %d, want 1 and 2", out.Current, out.Longest)
	}
}

func TestStreaksWithNoHistoryAreZero(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)
	f := newFixture(now)

	out, err := f.uc.Streaks(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Streaks: %v", err)
	}
	if out.Current != 0 || out.Longest != 0 {
		t.Fatalf("streaks = %+v, want zeros", out)
	}
}

func TestSummaryAggregatesPerTopic(t *testing.T) {
	t.Parallel()
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	f := newFixture(now)
	f.setGoal("t1", 30, day1)
	f.addSession("t1", day1.Add(9*time.Hour), 45)
	f.addSession("t1", now.Add(-2*time.Hour), 30)

	rows, err := f.uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.TopicName != "Go" || row.TotalMinutes != 75 || row.TodayMinutes != 30 {
		t.Fatalf("row = %+v", row)
	}
	if !row.GoalKnown || row.GoalMinutes != 30 {
		t.Fatalf("row goal = (%d, %t), want (30, true)", row.GoalMinutes, row.GoalKnown)
	}
	if row.CurrentStreak != 2 || row.LongestStreak != 2 {
		t.Fatalf("row streaks = %+v, want 2 and 2", row)
	}
}
