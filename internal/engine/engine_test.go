package engine

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/finlingo/finlingo/internal/catalog"
	"github.com/finlingo/finlingo/internal/progress"
	"github.com/finlingo/finlingo/internal/session"
	"github.com/finlingo/finlingo/internal/store"
)

type memSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (r *memSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	r.snapshots = append(r.snapshots, snap)
	return nil
}

func (r *memSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(r.snapshots) == 0 {
		return nil, nil
	}
	return r.snapshots[len(r.snapshots)-1], nil
}

func (r *memSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }

type memEventRepo struct {
	seq          int64
	lessons      []store.LessonCompletionRecord
	courseEvents []store.CourseEventData
	achievements []store.AchievementEventData
	llmRequests  []store.LLMRequestEventData
	now          time.Time
	queryErr     error
}

func (r *memEventRepo) AppendLessonCompletion(_ context.Context, data store.LessonCompletionData) error {
	r.seq++
	r.lessons = append(r.lessons, store.LessonCompletionRecord{
		LessonCompletionData: data,
		Sequence:             r.seq,
		Timestamp:            r.now,
	})
	return nil
}

func (r *memEventRepo) AppendCourseEvent(_ context.Context, data store.CourseEventData) error {
	r.courseEvents = append(r.courseEvents, data)
	return nil
}

func (r *memEventRepo) AppendAchievement(_ context.Context, data store.AchievementEventData) error {
	r.achievements = append(r.achievements, data)
	return nil
}

func (r *memEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.llmRequests = append(r.llmRequests, data)
	return nil
}

func (r *memEventRepo) QueryLessonCompletions(_ context.Context, opts store.QueryOpts) ([]store.LessonCompletionRecord, error) {
	if r.queryErr != nil {
		return nil, r.queryErr
	}
	var out []store.LessonCompletionRecord
	for _, rec := range r.lessons {
		if !opts.From.IsZero() && rec.Timestamp.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && rec.Timestamp.After(opts.To) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *memEventRepo) CourseIDsByAction(_ context.Context, action string) ([]string, error) {
	var ids []string
	seen := map[string]bool{}
	for _, ev := range r.courseEvents {
		if ev.Action == action && !seen[ev.CourseID] {
			seen[ev.CourseID] = true
			ids = append(ids, ev.CourseID)
		}
	}
	return ids, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestEngine(t *testing.T) (*Engine, *memEventRepo, *progress.Store) {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	clock := fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	events := &memEventRepo{now: clock.now}
	snapshots := &memSnapshotRepo{}
	progressStore := progress.NewStore(snapshots, events, clock)

	e, err := New(context.Background(), cat, progressStore, events, clock, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e, events, progressStore
}

func firstCourse(t *testing.T, e *Engine) *catalog.Course {
	t.Helper()
	courses := e.Catalog().Courses()
	for i := range courses {
		if !courses[i].Locked && len(courses[i].Lessons) > 0 {
			return &courses[i]
		}
	}
	t.Fatal("no unlocked course with lessons in catalog")
	return nil
}

func completeLesson(t *testing.T, e *Engine, courseID, lessonID string) session.Result {
	t.Helper()
	s, err := e.StartLesson(courseID, lessonID)
	if err != nil {
		t.Fatalf("start lesson: %v", err)
	}
	for s.Status() == session.StatusInProgress {
		if q := s.CurrentQuestion(); q != nil {
			if err := s.SelectAnswer(q.CorrectIndex); err != nil {
				t.Fatalf("select answer: %v", err)
			}
		}
		if err := s.Next(); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	res, err := s.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	return res
}

func TestOnLessonCompleted(t *testing.T) {
	e, events, progressStore := newTestEngine(t)
	ctx := context.Background()
	course := firstCourse(t, e)

	res := completeLesson(t, e, course.ID, course.Lessons[0].ID)
	res.TimeSpentMinutes = 12
	if err := e.OnLessonCompleted(ctx, res); err != nil {
		t.Fatalf("on lesson completed: %v", err)
	}

	p := e.Progress()
	if p.TotalLessonsCompleted != 1 {
		t.Errorf("lessons = %d, want 1", p.TotalLessonsCompleted)
	}
	if p.TotalTimeSpentMinutes != 12 {
		t.Errorf("time = %d, want 12", p.TotalTimeSpentMinutes)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", p.CurrentStreak)
	}
	if len(events.lessons) != 1 {
		t.Fatalf("lesson events = %d, want 1", len(events.lessons))
	}
	if events.lessons[0].Category != string(course.Category) {
		t.Errorf("event category = %s, want %s", events.lessons[0].Category, course.Category)
	}
	if progressStore.LastSaveErr() != nil {
		t.Errorf("unexpected save error: %v", progressStore.LastSaveErr())
	}
}

func TestOnLessonCompletedUnknownCourse(t *testing.T) {
	e, _, _ := newTestEngine(t)
	err := e.OnLessonCompleted(context.Background(), session.Result{
		SessionID: "s", LessonID: "l", CourseID: "nope",
	})
	if err == nil {
		t.Fatal("expected error for unknown course")
	}
}

func TestCourseCompletionWhenAllLessonsDone(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	course := firstCourse(t, e)

	for i, lesson := range course.Lessons {
		res := completeLesson(t, e, course.ID, lesson.ID)
		if err := e.OnLessonCompleted(ctx, res); err != nil {
			t.Fatalf("lesson %d: %v", i, err)
		}

		p := e.Progress()
		completed := p.HasCompletedCourse(course.ID)
		last := i == len(course.Lessons)-1
		if completed != last {
			t.Errorf("after lesson %d: course completed = %v, want %v", i, completed, last)
		}
	}

	// Repeating a lesson never double-credits the course.
	res := completeLesson(t, e, course.ID, course.Lessons[0].ID)
	if err := e.OnLessonCompleted(ctx, res); err != nil {
		t.Fatalf("repeat lesson: %v", err)
	}
	p := e.Progress()
	count := 0
	for _, id := range p.CompletedCourses {
		if id == course.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("course appears %d times in completed set, want 1", count)
	}
}

func TestLessonCreditSurvivesCompletionQueryError(t *testing.T) {
	e, events, _ := newTestEngine(t)
	ctx := context.Background()
	course := firstCourse(t, e)

	res := completeLesson(t, e, course.ID, course.Lessons[0].ID)
	events.queryErr = errors.New("database is locked")

	// A failing course-completion check must not fail the lesson or
	// award course credit.
	if err := e.OnLessonCompleted(ctx, res); err != nil {
		t.Fatalf("on lesson completed: %v", err)
	}
	p := e.Progress()
	if p.TotalLessonsCompleted != 1 {
		t.Errorf("lessons = %d, want 1", p.TotalLessonsCompleted)
	}
	if p.HasCompletedCourse(course.ID) {
		t.Error("course credited despite unverifiable completion state")
	}
}

func TestOnCourseSelected(t *testing.T) {
	e, events, _ := newTestEngine(t)
	ctx := context.Background()
	course := firstCourse(t, e)

	if err := e.OnCourseSelected(ctx, course.ID); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := e.Progress().CurrentCourseID; got != course.ID {
		t.Errorf("current course = %s, want %s", got, course.ID)
	}
	if len(events.courseEvents) == 0 || events.courseEvents[0].Action != store.CourseActionSelected {
		t.Error("missing selected event")
	}

	if err := e.OnCourseSelected(ctx, "missing"); err == nil {
		t.Error("expected error for unknown course")
	}
}

func TestUnlockCoursePersistsAcrossRestart(t *testing.T) {
	e, events, progressStore := newTestEngine(t)
	ctx := context.Background()

	var locked *catalog.Course
	courses := e.Catalog().Courses()
	for i := range courses {
		if courses[i].Locked {
			locked = &courses[i]
		}
	}
	if locked == nil {
		t.Skip("catalog has no locked course")
	}

	if e.IsUnlocked(locked) {
		t.Fatal("course should start locked")
	}
	if err := e.UnlockCourse(ctx, locked.ID); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !e.IsUnlocked(locked) {
		t.Error("course should be unlocked")
	}

	// Second unlock is a no-op and appends nothing.
	before := len(events.courseEvents)
	if err := e.UnlockCourse(ctx, locked.ID); err != nil {
		t.Fatalf("re-unlock: %v", err)
	}
	if len(events.courseEvents) != before {
		t.Error("duplicate unlock event appended")
	}

	// A fresh engine over the same event log sees the unlock.
	e2, err := New(ctx, e.Catalog(), progressStore, events, fixedClock{now: time.Now()}, nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if !e2.IsUnlocked(locked) {
		t.Error("unlock must survive restart via the event log")
	}
}

func TestGetRecommendationsAndTip(t *testing.T) {
	e, _, _ := newTestEngine(t)

	recs := e.GetRecommendations(3)
	if len(recs) == 0 || len(recs) > 3 {
		t.Errorf("recommendations = %d, want 1..3", len(recs))
	}

	tip := e.GetDailyTip()
	if tip.Title == "" {
		t.Error("empty tip")
	}
}

func TestExportProgressReport(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	course := firstCourse(t, e)

	res := completeLesson(t, e, course.ID, course.Lessons[0].ID)
	res.TimeSpentMinutes = 10
	if err := e.OnLessonCompleted(ctx, res); err != nil {
		t.Fatalf("complete: %v", err)
	}

	report, err := e.ExportProgressReport(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, want := range []string{"Progress Report", "Streak: 1", "Weekly:"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGetChallenges(t *testing.T) {
	e, _, _ := newTestEngine(t)
	challenges := e.GetChallenges()
	if len(challenges) == 0 {
		t.Fatal("no challenges")
	}
	for _, c := range challenges {
		if c.IsCompleted {
			t.Errorf("fresh profile completed challenge %s", c.ID)
		}
	}
}
