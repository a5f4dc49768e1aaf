package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finlingo/finlingo/internal/catalog"
	"github.com/finlingo/finlingo/internal/store"
)

// manualClock is a settable clock for calendar-day tests.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) advanceDays(n int) {
	c.now = c.now.AddDate(0, 0, n)
}

// memSnapshotRepo is an in-memory SnapshotRepo.
type memSnapshotRepo struct {
	snapshots []*store.Snapshot
	saveErr   error
	latestErr error
}

func (r *memSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.snapshots = append(r.snapshots, snap)
	return nil
}

func (r *memSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if r.latestErr != nil {
		return nil, r.latestErr
	}
	if len(r.snapshots) == 0 {
		return nil, nil
	}
	return r.snapshots[len(r.snapshots)-1], nil
}

func (r *memSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }

func newTestStore(t *testing.T) (*Store, *manualClock, *memSnapshotRepo) {
	t.Helper()
	clock := &manualClock{now: time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)}
	repo := &memSnapshotRepo{}
	return NewStore(repo, nil, clock), clock, repo
}

func TestLevelForExperience(t *testing.T) {
	tests := []struct {
		experience int
		want       UserLevel
	}{
		{0, LevelNovice},
		{99, LevelNovice},
		{100, LevelBeginner},
		{299, LevelBeginner},
		{300, LevelIntermediate},
		{600, LevelAdvanced},
		{1000, LevelExpert},
		{1499, LevelExpert},
		{1500, LevelMaster},
		{99999, LevelMaster},
	}

	for _, tt := range tests {
		got := LevelForExperience(tt.experience)
		if got != tt.want {
			t.Errorf("LevelForExperience(%d) = %s, want %s", tt.experience, got, tt.want)
		}
	}
}

func TestAddExperienceLevelInvariant(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	// Level always equals the highest threshold met; never decreases.
	increments := []int{30, 30, 30, 30, 200, 0, 500, 100, 700}
	total := 0
	prevRank := 0
	for _, inc := range increments {
		s.AddExperience(ctx, inc)
		total += inc
		p := s.Progress()
		if p.Experience != total {
			t.Fatalf("experience = %d, want %d", p.Experience, total)
		}
		if p.Level != LevelForExperience(total) {
			t.Errorf("level = %s after %d xp, want %s", p.Level, total, LevelForExperience(total))
		}
		if p.Level.Rank() < prevRank {
			t.Errorf("level rank decreased: %d -> %d", prevRank, p.Level.Rank())
		}
		prevRank = p.Level.Rank()
	}
}

func TestAddExperienceNegativeIgnored(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.AddExperience(context.Background(), -10)
	if got := s.Progress().Experience; got != 0 {
		t.Errorf("experience = %d, want 0", got)
	}
}

func TestCompleteLessonSameDayStreak(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.CompleteLesson(ctx)
	s.CompleteLesson(ctx)

	p := s.Progress()
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d after two same-day lessons, want 1", p.CurrentStreak)
	}
	if p.TotalLessonsCompleted != 2 {
		t.Errorf("lessons = %d, want 2", p.TotalLessonsCompleted)
	}
	if p.Experience != 2*LessonExperience {
		t.Errorf("experience = %d, want %d", p.Experience, 2*LessonExperience)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	s, clock, _ := newTestStore(t)
	ctx := context.Background()

	for day := 0; day < 3; day++ {
		s.CompleteLesson(ctx)
		clock.advanceDays(1)
	}

	p := s.Progress()
	if p.CurrentStreak != 3 {
		t.Errorf("streak = %d after 3 consecutive days, want 3", p.CurrentStreak)
	}
	if p.LongestStreak != 3 {
		t.Errorf("longest = %d, want 3", p.LongestStreak)
	}
}

func TestStreakGapResets(t *testing.T) {
	s, clock, _ := newTestStore(t)
	ctx := context.Background()

	s.CompleteLesson(ctx)
	s.CompleteLesson(ctx)
	clock.advanceDays(3)
	s.CompleteLesson(ctx)

	p := s.Progress()
	if p.CurrentStreak != 1 {
		t.Errorf("streak = %d after 3-day gap, want 1", p.CurrentStreak)
	}
	if p.LongestStreak != 1 {
		t.Errorf("longest = %d, want 1", p.LongestStreak)
	}
}

func TestStreakTimeOfDayIrrelevant(t *testing.T) {
	s, clock, _ := newTestStore(t)
	ctx := context.Background()

	// Late evening, then early next morning: still one calendar day apart.
	clock.now = time.Date(2025, 3, 10, 23, 50, 0, 0, time.UTC)
	s.CompleteLesson(ctx)
	clock.now = time.Date(2025, 3, 11, 0, 10, 0, 0, time.UTC)
	s.CompleteLesson(ctx)

	if got := s.Progress().CurrentStreak; got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// US spring-forward 2026 is Mar 8: that local day is 23 hours long.
	tests := []struct {
		a, b time.Time
		want int
	}{
		{time.Date(2026, 3, 8, 9, 0, 0, 0, loc), time.Date(2026, 3, 9, 9, 0, 0, 0, loc), 1},
		{time.Date(2026, 3, 7, 9, 0, 0, 0, loc), time.Date(2026, 3, 8, 9, 0, 0, 0, loc), 1},
		{time.Date(2026, 3, 7, 9, 0, 0, 0, loc), time.Date(2026, 3, 9, 9, 0, 0, 0, loc), 2},
		// US fall-back 2026 is Nov 1: a 25-hour local day.
		{time.Date(2026, 10, 31, 9, 0, 0, 0, loc), time.Date(2026, 11, 1, 9, 0, 0, 0, loc), 1},
		{time.Date(2026, 11, 1, 9, 0, 0, 0, loc), time.Date(2026, 11, 1, 23, 0, 0, 0, loc), 0},
	}

	for _, tt := range tests {
		if got := daysBetween(tt.a, tt.b); got != tt.want {
			t.Errorf("daysBetween(%s, %s) = %d, want %d",
				tt.a.Format(time.DateOnly), tt.b.Format(time.DateOnly), got, tt.want)
		}
	}
}

func TestStreakAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	s, clock, _ := newTestStore(t)
	ctx := context.Background()

	// Three consecutive local days straddling the DST transition.
	for _, day := range []int{7, 8, 9} {
		clock.now = time.Date(2026, 3, day, 9, 0, 0, 0, loc)
		s.CompleteLesson(ctx)
	}

	if got := s.Progress().CurrentStreak; got != 3 {
		t.Errorf("streak = %d across spring-forward, want 3", got)
	}
}

func TestStreakMilestoneFiresOnce(t *testing.T) {
	s, clock, _ := newTestStore(t)
	ctx := context.Background()

	// Reach a 7-day streak.
	for day := 0; day < 7; day++ {
		s.CompleteLesson(ctx)
		clock.advanceDays(1)
	}

	count := 0
	for _, a := range s.Progress().Achievements {
		if a.Title == "7 Day Streak" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("7 Day Streak achievements = %d, want 1", count)
	}

	// Break the streak and climb back to 7: milestone must not refire.
	clock.advanceDays(5)
	for day := 0; day < 7; day++ {
		s.CompleteLesson(ctx)
		clock.advanceDays(1)
	}

	count = 0
	for _, a := range s.Progress().Achievements {
		if a.Title == "7 Day Streak" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("7 Day Streak achievements after re-reach = %d, want 1", count)
	}
}

func TestCompleteCourseIdempotent(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	if !s.CompleteCourse(ctx, "es-basics-1", catalog.CategoryVocabulary) {
		t.Fatal("first completion should report true")
	}
	if s.CompleteCourse(ctx, "es-basics-1", catalog.CategoryVocabulary) {
		t.Fatal("second completion should report false")
	}

	p := s.Progress()
	if len(p.CompletedCourses) != 1 {
		t.Errorf("completed courses = %d, want 1", len(p.CompletedCourses))
	}
	if p.Experience != CourseExperience {
		t.Errorf("experience = %d, want %d (no duplicate XP)", p.Experience, CourseExperience)
	}

	count := 0
	for _, a := range p.Achievements {
		if a.Title == "1 Course Completed" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("1 Course Completed achievements = %d, want 1", count)
	}
}

func TestCourseMilestones(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		s.CompleteCourse(ctx, string(rune('a'+i)), catalog.CategoryGrammar)
	}

	p := s.Progress()
	if !p.HasAchievement("1 Course Completed") {
		t.Error("missing 1 Course Completed")
	}
	if !p.HasAchievement("5 Courses Completed") {
		t.Error("missing 5 Courses Completed")
	}
	if p.HasAchievement("10 Courses Completed") {
		t.Error("unexpected 10 Courses Completed")
	}
}

func TestFirstFinancialCourseAchievement(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.CompleteCourse(ctx, "fin-1", catalog.CategoryFinancial)
	s.CompleteCourse(ctx, "fin-2", catalog.CategoryFinancial)

	count := 0
	for _, a := range s.Progress().Achievements {
		if a.Category == AchievementFinancial {
			count++
		}
	}
	if count != 1 {
		t.Errorf("financial achievements = %d, want 1", count)
	}
}

func TestTimeMilestones(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.AddTimeSpent(ctx, 45)
	if s.Progress().HasAchievement("60 Minutes Studied") {
		t.Error("milestone fired early")
	}
	s.AddTimeSpent(ctx, 30)
	if !s.Progress().HasAchievement("60 Minutes Studied") {
		t.Error("missing 60 Minutes Studied")
	}
	s.AddTimeSpent(ctx, 10)
	count := 0
	for _, a := range s.Progress().Achievements {
		if a.Title == "60 Minutes Studied" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("60 Minutes Studied achievements = %d, want 1", count)
	}
}

func TestTenPerfectLessonsReachBeginner(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		p := s.Progress()
		if i < 9 && p.Level != LevelNovice {
			t.Fatalf("level = %s before 10th lesson, want novice", p.Level)
		}
		s.CompleteLesson(ctx)
	}

	p := s.Progress()
	if p.Experience != 100 {
		t.Errorf("experience = %d, want 100", p.Experience)
	}
	if p.Level != LevelBeginner {
		t.Errorf("level = %s, want beginner", p.Level)
	}

	levelUps := 0
	for _, a := range p.Achievements {
		if a.Title == "Level Up!" {
			levelUps++
		}
	}
	if levelUps != 1 {
		t.Errorf("Level Up! achievements = %d, want exactly 1", levelUps)
	}
}

func TestSaveFailureRetained(t *testing.T) {
	s, _, repo := newTestStore(t)
	ctx := context.Background()

	s.CompleteLesson(ctx)

	repo.saveErr = errors.New("disk full")
	err := s.Save(ctx)
	if err == nil {
		t.Fatal("expected save error")
	}
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *PersistenceError", err)
	}
	if s.LastSaveErr() == nil {
		t.Error("expected retained save error")
	}

	// The in-memory result survives the failed save.
	if got := s.Progress().TotalLessonsCompleted; got != 1 {
		t.Errorf("lessons = %d after failed save, want 1", got)
	}

	// Retry succeeds and clears the flag.
	repo.saveErr = nil
	if err := s.Save(ctx); err != nil {
		t.Fatalf("retry save: %v", err)
	}
	if s.LastSaveErr() != nil {
		t.Error("expected cleared save error after successful retry")
	}
}

func TestLoadMissingSeedsDefault(t *testing.T) {
	s, _, _ := newTestStore(t)

	p := s.Load(context.Background())
	if p.Level != LevelNovice || p.Experience != 0 {
		t.Errorf("default profile = level %s, xp %d", p.Level, p.Experience)
	}
	if p.DailyGoalMinutes <= 0 {
		t.Error("default daily goal must be positive")
	}
}

func TestLoadErrorSeedsDefault(t *testing.T) {
	s, _, repo := newTestStore(t)
	repo.latestErr = errors.New("corrupt database")

	p := s.Load(context.Background())
	if p == nil || p.Level != LevelNovice {
		t.Errorf("expected fresh default profile on load error, got %+v", p)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, clock, repo := newTestStore(t)
	ctx := context.Background()

	s.CompleteLesson(ctx)
	s.AddTimeSpent(ctx, 25)
	s.CompleteCourse(ctx, "es-basics-1", catalog.CategoryVocabulary)
	s.SetCurrentCourse(ctx, "es-grammar-1")
	s.SetDailyGoal(20)

	if err := s.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded := NewStore(repo, nil, clock)
	p := reloaded.Load(ctx)

	orig := s.Progress()
	if p.Experience != orig.Experience ||
		p.Level != orig.Level ||
		p.CurrentStreak != orig.CurrentStreak ||
		p.TotalTimeSpentMinutes != orig.TotalTimeSpentMinutes ||
		p.CurrentCourseID != orig.CurrentCourseID ||
		p.WeeklyGoalMinutes != orig.WeeklyGoalMinutes ||
		len(p.Achievements) != len(orig.Achievements) ||
		len(p.CompletedCourses) != len(orig.CompletedCourses) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", p, orig)
	}

	// Saving the reloaded aggregate produces structurally equal state.
	if err := reloaded.Save(ctx); err != nil {
		t.Fatalf("save reloaded: %v", err)
	}
	again := reloaded.Load(ctx)
	if again.Experience != p.Experience || len(again.Achievements) != len(p.Achievements) {
		t.Errorf("save(load()) not idempotent: %+v vs %+v", again, p)
	}
}

func TestProgressSnapshotIsolation(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.CompleteCourse(ctx, "c1", catalog.CategoryGrammar)
	p := s.Progress()
	p.CompletedCourses[0] = "mutated"
	p.Experience = 9999

	fresh := s.Progress()
	if fresh.CompletedCourses[0] != "c1" || fresh.Experience == 9999 {
		t.Error("reader mutation leaked into the aggregate")
	}
}
