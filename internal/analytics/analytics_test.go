package analytics

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/finlingo/finlingo/internal/progress"
	"github.com/finlingo/finlingo/internal/store"
)

// fakeEvents serves canned lesson completion records with QueryOpts
// time filtering applied.
type fakeEvents struct {
	records []store.LessonCompletionRecord
}

func (f *fakeEvents) QueryLessonCompletions(_ context.Context, opts store.QueryOpts) ([]store.LessonCompletionRecord, error) {
	var out []store.LessonCompletionRecord
	for _, r := range f.records {
		if !opts.From.IsZero() && r.Timestamp.Before(opts.From) {
			continue
		}
		if !opts.To.IsZero() && r.Timestamp.After(opts.To) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func record(ts time.Time, category, difficulty string, score float64, minutes int) store.LessonCompletionRecord {
	return store.LessonCompletionRecord{
		LessonCompletionData: store.LessonCompletionData{
			Category:         category,
			Difficulty:       difficulty,
			Score:            score,
			TimeSpentMinutes: minutes,
		},
		Timestamp: ts,
	}
}

func TestStudyFrequencyBands(t *testing.T) {
	tests := []struct {
		streak int
		want   StudyFrequency
	}{
		{0, FrequencyRare},
		{2, FrequencyRare},
		{3, FrequencyOccasional},
		{6, FrequencyOccasional},
		{7, FrequencyModerate},
		{13, FrequencyModerate},
		{14, FrequencyFrequent},
		{29, FrequencyFrequent},
		{30, FrequencyDaily},
		{100, FrequencyDaily},
	}
	for _, tt := range tests {
		if got := StudyFrequencyFor(tt.streak); got != tt.want {
			t.Errorf("StudyFrequencyFor(%d) = %s, want %s", tt.streak, got, tt.want)
		}
	}
}

func TestConsistencyScoreCaps(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 0},
		{4, 40},
		{10, 100},
		{50, 100},
	}
	for _, tt := range tests {
		if got := ConsistencyScore(tt.streak); got != tt.want {
			t.Errorf("ConsistencyScore(%d) = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestLearningVelocity(t *testing.T) {
	if got := LearningVelocity(10, 5); got != 2.0 {
		t.Errorf("velocity = %v, want 2.0", got)
	}
	// Zero streak divides by one, not zero.
	if got := LearningVelocity(7, 0); got != 7.0 {
		t.Errorf("velocity with zero streak = %v, want 7.0", got)
	}
}

func TestConsistencyRatingBands(t *testing.T) {
	tests := []struct {
		streak int
		want   ConsistencyRating
	}{
		{0, ConsistencyNeedsImprovement},
		{6, ConsistencyNeedsImprovement},
		{7, ConsistencyFair},
		{13, ConsistencyFair},
		{14, ConsistencyGood},
		{29, ConsistencyGood},
		{30, ConsistencyExcellent},
	}
	for _, tt := range tests {
		if got := ConsistencyRatingFor(tt.streak); got != tt.want {
			t.Errorf("ConsistencyRatingFor(%d) = %s, want %s", tt.streak, got, tt.want)
		}
	}
}

func TestAnalyzeStreak(t *testing.T) {
	p := progress.NewUserProgress("learner")
	p.CurrentStreak = 15
	p.LongestStreak = 20
	p.TotalLessonsCompleted = 30

	a := NewAggregator(nil)
	s := a.AnalyzeStreak(p)

	if s.StudyFrequency != FrequencyFrequent {
		t.Errorf("frequency = %s, want Frequent", s.StudyFrequency)
	}
	if s.ConsistencyScore != 100 {
		t.Errorf("consistency = %d, want 100", s.ConsistencyScore)
	}
	if s.ConsistencyRating != ConsistencyGood {
		t.Errorf("rating = %s, want Good", s.ConsistencyRating)
	}
	if s.LearningVelocity != 2.0 {
		t.Errorf("velocity = %v, want 2.0", s.LearningVelocity)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	events := &fakeEvents{records: []store.LessonCompletionRecord{
		record(now, "vocabulary", "beginner", 80, 10),
		record(now.Add(time.Hour), "vocabulary", "beginner", 100, 12),
		record(now.Add(2*time.Hour), "grammar", "intermediate", 60, 15),
	}}

	a := NewAggregator(events)
	breakdown, err := a.CategoryBreakdown(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if len(breakdown) != 2 {
		t.Fatalf("categories = %d, want 2", len(breakdown))
	}

	vocab := breakdown[0]
	if vocab.Category != "vocabulary" || vocab.Lessons != 2 || vocab.AverageScore != 90 || vocab.TimeSpentMinutes != 22 {
		t.Errorf("vocabulary = %+v", vocab)
	}
	grammar := breakdown[1]
	if grammar.Category != "grammar" || grammar.Lessons != 1 || grammar.AverageScore != 60 {
		t.Errorf("grammar = %+v", grammar)
	}
}

func TestDifficultyBreakdown(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	events := &fakeEvents{records: []store.LessonCompletionRecord{
		record(now, "vocabulary", "beginner", 50, 10),
		record(now, "grammar", "beginner", 100, 10),
	}}

	a := NewAggregator(events)
	breakdown, err := a.DifficultyBreakdown(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if len(breakdown) != 1 {
		t.Fatalf("difficulties = %d, want 1", len(breakdown))
	}
	if breakdown[0].AverageScore != 75 || breakdown[0].Lessons != 2 {
		t.Errorf("beginner = %+v", breakdown[0])
	}
}

func TestWeeklyReportDeltas(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	events := &fakeEvents{records: []store.LessonCompletionRecord{
		// Previous week: one lesson.
		record(now.AddDate(0, 0, -10), "vocabulary", "beginner", 70, 10),
		// Current week: three lessons over two days.
		record(now.AddDate(0, 0, -2), "vocabulary", "beginner", 80, 10),
		record(now.AddDate(0, 0, -2).Add(time.Hour), "grammar", "beginner", 90, 12),
		record(now.AddDate(0, 0, -1), "vocabulary", "beginner", 100, 8),
	}}

	a := NewAggregator(events)
	r, err := a.WeeklyReport(context.Background(), now)
	if err != nil {
		t.Fatalf("weekly report: %v", err)
	}

	if r.LessonsCompleted != 3 {
		t.Errorf("lessons = %d, want 3", r.LessonsCompleted)
	}
	if r.TimeSpentMinutes != 30 {
		t.Errorf("time = %d, want 30", r.TimeSpentMinutes)
	}
	if r.AverageScore != 90 {
		t.Errorf("avg score = %v, want 90", r.AverageScore)
	}
	if r.ActiveDays != 2 {
		t.Errorf("active days = %d, want 2", r.ActiveDays)
	}
	if r.LessonsDelta != 2 {
		t.Errorf("lessons delta = %d, want +2", r.LessonsDelta)
	}
	if r.TimeDelta != 20 {
		t.Errorf("time delta = %d, want +20", r.TimeDelta)
	}
}

func TestExportTextIncludesSections(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	events := &fakeEvents{records: []store.LessonCompletionRecord{
		record(now.AddDate(0, 0, -1), "financial", "beginner", 85, 20),
	}}

	p := progress.NewUserProgress("learner")
	p.Experience = 120
	p.Level = progress.LevelBeginner
	p.CurrentStreak = 5
	p.TotalLessonsCompleted = 12

	a := NewAggregator(events)
	text, err := a.ExportText(context.Background(), p, now)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	for _, want := range []string{
		"Progress Report (2025-03-15)",
		"Level: Beginner (120 XP)",
		"Streak: 5 days",
		"financial",
		"Weekly:",
		"Monthly:",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}
