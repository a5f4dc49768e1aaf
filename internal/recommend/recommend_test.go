package recommend

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/finlingo/finlingo/internal/catalog"
	"github.com/finlingo/finlingo/internal/progress"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func basePrefs() progress.Preferences {
	return progress.Preferences{
		DifficultyPreference: catalog.DifficultyBeginner,
		ShowFinancialTips:    false,
		LessonLengthMinutes:  15,
	}
}

func TestScoreCourseDiscardsBelowThreshold(t *testing.T) {
	// No rule triggers: intermediate course, long duration, no streak,
	// some completions. Base 0.5 < 0.6.
	course := &catalog.Course{
		ID:               "c1",
		Category:         catalog.CategoryGrammar,
		Difficulty:       catalog.DifficultyIntermediate,
		EstimatedMinutes: 60,
	}
	r := ScoreCourse(course, progress.LevelNovice, 1, 0, basePrefs())
	if r != nil {
		t.Errorf("expected discard, got confidence %v", r.Confidence)
	}
}

func TestScoreCourseDifficultyMatch(t *testing.T) {
	course := &catalog.Course{
		ID:               "c1",
		Category:         catalog.CategoryGrammar,
		Difficulty:       catalog.DifficultyBeginner,
		EstimatedMinutes: 60,
	}
	// Difficulty match only: 0.5 + 0.3 = 0.8.
	r := ScoreCourse(course, progress.LevelNovice, 1, 0, basePrefs())
	if r == nil {
		t.Fatal("expected a recommendation")
	}
	if !almostEqual(r.Confidence, 0.8) {
		t.Errorf("confidence = %v, want 0.8", r.Confidence)
	}
	if r.Priority != PriorityMedium {
		t.Errorf("priority = %s, want Medium", r.Priority)
	}
	if strings.Contains(r.Reason, reasonSeparator) {
		t.Errorf("single reason must not contain separator: %q", r.Reason)
	}
}

func TestScoreCourseFinancialEscalatesPriority(t *testing.T) {
	course := &catalog.Course{
		ID:               "fin",
		Category:         catalog.CategoryFinancial,
		Difficulty:       catalog.DifficultyIntermediate,
		EstimatedMinutes: 60,
	}
	prefs := basePrefs()
	prefs.ShowFinancialTips = true

	// Financial rule only: 0.5 + 0.2 = 0.7, priority High.
	r := ScoreCourse(course, progress.LevelNovice, 1, 0, prefs)
	if r == nil {
		t.Fatal("expected a recommendation")
	}
	if !almostEqual(r.Confidence, 0.7) {
		t.Errorf("confidence = %v, want 0.7", r.Confidence)
	}
	if r.Priority != PriorityHigh {
		t.Errorf("priority = %s, want High", r.Priority)
	}

	// With financial tips off, the rule is silent and the course drops.
	prefs.ShowFinancialTips = false
	if r := ScoreCourse(course, progress.LevelNovice, 1, 0, prefs); r != nil {
		t.Errorf("expected discard with tips off, got %v", r.Confidence)
	}
}

func TestScoreCourseColdStart(t *testing.T) {
	course := &catalog.Course{
		ID:               "c1",
		Category:         catalog.CategoryVocabulary,
		Difficulty:       catalog.DifficultyBeginner,
		EstimatedMinutes: 20,
	}
	// Difficulty match 0.3 + duration 0.1 + cold start 0.25 = 1.15.
	r := ScoreCourse(course, progress.LevelNovice, 0, 0, basePrefs())
	if r == nil {
		t.Fatal("expected a recommendation")
	}
	if !almostEqual(r.Confidence, 1.15) {
		t.Errorf("confidence = %v, want 1.15", r.Confidence)
	}
	if r.Priority != PriorityHigh {
		t.Errorf("priority = %s, want High", r.Priority)
	}
	if got := strings.Count(r.Reason, reasonSeparator); got != 2 {
		t.Errorf("reason separators = %d, want 2: %q", got, r.Reason)
	}
}

func TestScoreCourseStreakBonus(t *testing.T) {
	course := &catalog.Course{
		ID:               "c1",
		Category:         catalog.CategoryGrammar,
		Difficulty:       catalog.DifficultyBeginner,
		EstimatedMinutes: 60,
	}
	// Streak of exactly 7 does not trigger; 8 does.
	r7 := ScoreCourse(course, progress.LevelNovice, 1, 7, basePrefs())
	r8 := ScoreCourse(course, progress.LevelNovice, 1, 8, basePrefs())
	if r7 == nil || r8 == nil {
		t.Fatal("expected recommendations")
	}
	if !almostEqual(r8.Confidence-r7.Confidence, 0.15) {
		t.Errorf("streak bonus = %v, want 0.15", r8.Confidence-r7.Confidence)
	}
}

func TestScoreCourseProgressiveDifficulty(t *testing.T) {
	course := &catalog.Course{
		ID:               "c1",
		Category:         catalog.CategoryGrammar,
		Difficulty:       catalog.DifficultyIntermediate,
		EstimatedMinutes: 20,
	}
	// Duration 0.1 + progressive 0.2 = 0.8 with 3 completions.
	r := ScoreCourse(course, progress.LevelNovice, 3, 0, basePrefs())
	if r == nil {
		t.Fatal("expected a recommendation")
	}
	if !almostEqual(r.Confidence, 0.8) {
		t.Errorf("confidence = %v, want 0.8", r.Confidence)
	}

	// Same difficulty as preference is not "strictly above".
	same := &catalog.Course{
		ID:               "c2",
		Category:         catalog.CategoryGrammar,
		Difficulty:       catalog.DifficultyBeginner,
		EstimatedMinutes: 20,
	}
	rSame := ScoreCourse(same, progress.LevelNovice, 3, 0, basePrefs())
	if rSame == nil {
		t.Fatal("expected a recommendation")
	}
	// Difficulty match 0.3 + duration 0.1 = 0.9, no progressive bonus.
	if !almostEqual(rSame.Confidence, 0.9) {
		t.Errorf("confidence = %v, want 0.9", rSame.Confidence)
	}
}

func TestScoreCourseBusinessLevelGate(t *testing.T) {
	course := &catalog.Course{
		ID:               "biz",
		Category:         catalog.CategoryBusiness,
		Difficulty:       catalog.DifficultyBeginner,
		EstimatedMinutes: 20,
	}
	below := ScoreCourse(course, progress.LevelBeginner, 1, 0, basePrefs())
	at := ScoreCourse(course, progress.LevelIntermediate, 1, 0, basePrefs())
	if below == nil || at == nil {
		t.Fatal("expected recommendations")
	}
	if !almostEqual(at.Confidence-below.Confidence, 0.15) {
		t.Errorf("business bonus = %v, want 0.15", at.Confidence-below.Confidence)
	}
}

func TestPriorityNeverDemoted(t *testing.T) {
	// Financial escalates to High early; later rules leave it there.
	course := &catalog.Course{
		ID:               "fin",
		Category:         catalog.CategoryFinancial,
		Difficulty:       catalog.DifficultyBeginner,
		EstimatedMinutes: 20,
	}
	prefs := basePrefs()
	prefs.ShowFinancialTips = true

	r := ScoreCourse(course, progress.LevelMaster, 5, 30, prefs)
	if r == nil {
		t.Fatal("expected a recommendation")
	}
	if r.Priority != PriorityHigh {
		t.Errorf("priority = %s, want High", r.Priority)
	}
}

func TestRecommendOrderingAndLockedFilter(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	p := progress.NewUserProgress("learner")
	engine := NewEngine(cat, nil)

	recs := engine.Recommend(p, 0)
	if len(recs) == 0 {
		t.Fatal("expected recommendations for a fresh profile")
	}

	for i, r := range recs {
		if r.Course.Locked {
			t.Errorf("locked course %s recommended", r.Course.ID)
		}
		if i > 0 {
			prev := recs[i-1]
			if r.Priority > prev.Priority {
				t.Errorf("priority order violated at %d", i)
			}
			if r.Priority == prev.Priority && r.Confidence > prev.Confidence {
				t.Errorf("confidence tiebreak violated at %d", i)
			}
		}
	}

	limited := engine.Recommend(p, 2)
	if len(limited) > 2 {
		t.Errorf("limit ignored: got %d", len(limited))
	}
}

func TestRecommendUnlockOverlay(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	var lockedID string
	courses := cat.Courses()
	for i := range courses {
		if courses[i].Locked {
			lockedID = courses[i].ID
		}
	}
	if lockedID == "" {
		t.Skip("catalog has no locked course")
	}

	p := progress.NewUserProgress("learner")
	p.Preferences.DifficultyPreference = catalog.DifficultyAdvanced

	unlocked := catalog.NewUnlockState([]string{lockedID})
	engine := NewEngine(cat, unlocked)

	found := false
	for _, r := range engine.Recommend(p, 0) {
		if r.Course.ID == lockedID {
			found = true
		}
	}
	if !found {
		t.Errorf("unlocked course %s missing from recommendations", lockedID)
	}
}

func TestDailyTipDeterministicWithSeed(t *testing.T) {
	a := DailyTip(rand.New(rand.NewSource(42)))
	b := DailyTip(rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("same seed produced different tips: %q vs %q", a.Title, b.Title)
	}
	if a.Title == "" || a.Body == "" {
		t.Error("tip must have title and body")
	}
}

func TestChallengeProgressRawRatio(t *testing.T) {
	p := progress.NewUserProgress("learner")
	p.CurrentStreak = 14
	p.TotalLessonsCompleted = 10
	p.CompletedCourses = []string{"a"}

	byID := map[string]LearningChallenge{}
	for _, c := range ChallengeProgress(p) {
		byID[c.ID] = c
	}

	streak := byID["streak-7"]
	if !streak.IsCompleted || !almostEqual(streak.Progress, 2.0) {
		t.Errorf("streak challenge = %+v, want completed with raw ratio 2.0", streak)
	}

	lessons := byID["lessons-20"]
	if lessons.IsCompleted || !almostEqual(lessons.Progress, 0.5) {
		t.Errorf("lessons challenge = %+v, want incomplete at 0.5", lessons)
	}

	courses := byID["courses-3"]
	if courses.Current != 1 || courses.IsCompleted {
		t.Errorf("courses challenge = %+v, want 1/3 incomplete", courses)
	}
}
