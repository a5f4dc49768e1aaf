package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Progress: &ProgressSnapshotData{
				UserID:     "learner",
				Experience: 120,
				Level:      "beginner",
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Progress == nil || snap.Data.Progress.Experience != 120 {
		t.Errorf("progress data not round-tripped: %+v", snap.Data.Progress)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestLessonCompletionAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLessonCompletion(ctx, LessonCompletionData{
			SessionID:        "sess-1",
			LessonID:         "lesson-a",
			CourseID:         "course-1",
			Category:         "financial",
			Difficulty:       "beginner",
			Score:            75,
			TimeSpentMinutes: 10,
			QuestionsTotal:   4,
			QuestionsCorrect: 3,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLessonCompletions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	// Newest first.
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", records[0].Sequence, records[1].Sequence)
	}
	if records[0].Category != "financial" || records[0].Score != 75 {
		t.Errorf("record fields not round-tripped: %+v", records[0])
	}

	limited, err := repo.QueryLessonCompletions(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited records = %d, want 2", len(limited))
	}
}

func TestCourseIDsByAction(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []CourseEventData{
		{CourseID: "c1", Action: CourseActionUnlocked},
		{CourseID: "c2", Action: CourseActionUnlocked},
		{CourseID: "c1", Action: CourseActionUnlocked}, // duplicate unlock
		{CourseID: "c3", Action: CourseActionCompleted},
	}
	for _, e := range events {
		if err := repo.AppendCourseEvent(ctx, e); err != nil {
			t.Fatalf("append %+v: %v", e, err)
		}
	}

	ids, err := repo.CourseIDsByAction(ctx, CourseActionUnlocked)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(ids) != 2 || ids[0] != "c1" || ids[1] != "c2" {
		t.Errorf("unlocked ids = %v, want [c1 c2]", ids)
	}

	completed, err := repo.CourseIDsByAction(ctx, CourseActionCompleted)
	if err != nil {
		t.Fatalf("query completed: %v", err)
	}
	if len(completed) != 1 || completed[0] != "c3" {
		t.Errorf("completed ids = %v, want [c3]", completed)
	}
}

func TestAchievementAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAchievement(ctx, AchievementEventData{
		Title:     "7 Day Streak",
		Category:  "streak",
		Icon:      "flame",
		Milestone: 7,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().AchievementEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("achievement events = %d, want 1", count)
	}
}
