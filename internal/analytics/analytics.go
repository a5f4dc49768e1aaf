package analytics

import (
	"context"
	"fmt"

	"github.com/finlingo/finlingo/internal/progress"
	"github.com/finlingo/finlingo/internal/store"
)

// EventSource is the slice of the event log the aggregator reads.
type EventSource interface {
	QueryLessonCompletions(ctx context.Context, opts store.QueryOpts) ([]store.LessonCompletionRecord, error)
}

// StudyFrequency classifies how often the learner studies, derived from
// the current streak.
type StudyFrequency string

const (
	FrequencyDaily      StudyFrequency = "Daily"
	FrequencyFrequent   StudyFrequency = "Frequent"
	FrequencyModerate   StudyFrequency = "Moderate"
	FrequencyOccasional StudyFrequency = "Occasional"
	FrequencyRare       StudyFrequency = "Rare"
)

// ConsistencyRating grades streak quality.
type ConsistencyRating string

const (
	ConsistencyExcellent        ConsistencyRating = "Excellent"
	ConsistencyGood             ConsistencyRating = "Good"
	ConsistencyFair             ConsistencyRating = "Fair"
	ConsistencyNeedsImprovement ConsistencyRating = "NeedsImprovement"
)

// StudyFrequencyFor classifies the streak into a frequency band.
func StudyFrequencyFor(currentStreak int) StudyFrequency {
	switch {
	case currentStreak >= 30:
		return FrequencyDaily
	case currentStreak >= 14:
		return FrequencyFrequent
	case currentStreak >= 7:
		return FrequencyModerate
	case currentStreak >= 3:
		return FrequencyOccasional
	default:
		return FrequencyRare
	}
}

// ConsistencyScore maps the streak onto a 0-100 scale, capped at 100.
func ConsistencyScore(currentStreak int) int {
	score := currentStreak * 10
	if score > 100 {
		score = 100
	}
	return score
}

// LearningVelocity is lessons completed per streak day.
func LearningVelocity(totalLessons, currentStreak int) float64 {
	days := currentStreak
	if days < 1 {
		days = 1
	}
	return float64(totalLessons) / float64(days)
}

// ConsistencyRatingFor grades the streak.
func ConsistencyRatingFor(currentStreak int) ConsistencyRating {
	switch {
	case currentStreak >= 30:
		return ConsistencyExcellent
	case currentStreak >= 14:
		return ConsistencyGood
	case currentStreak >= 7:
		return ConsistencyFair
	default:
		return ConsistencyNeedsImprovement
	}
}

// StreakAnalysis summarizes streak-derived metrics.
type StreakAnalysis struct {
	CurrentStreak     int
	LongestStreak     int
	StudyFrequency    StudyFrequency
	ConsistencyScore  int
	ConsistencyRating ConsistencyRating
	LearningVelocity  float64
}

// CategoryPerformance aggregates lesson results for one course category.
type CategoryPerformance struct {
	Category         string
	Lessons          int
	AverageScore     float64
	TimeSpentMinutes int
}

// DifficultyPerformance aggregates lesson results for one difficulty.
type DifficultyPerformance struct {
	Difficulty       string
	Lessons          int
	AverageScore     float64
	TimeSpentMinutes int
}

// Aggregator derives analytics from the progress aggregate and the
// historical event log. All computations are pure reads and safe to run
// concurrently with each other.
type Aggregator struct {
	events EventSource
}

// NewAggregator creates an aggregator over the given event source. A
// nil source disables event-derived breakdowns; streak metrics still
// work from the aggregate alone.
func NewAggregator(events EventSource) *Aggregator {
	return &Aggregator{events: events}
}

// AnalyzeStreak derives all streak metrics from the aggregate.
func (a *Aggregator) AnalyzeStreak(p *progress.UserProgress) StreakAnalysis {
	return StreakAnalysis{
		CurrentStreak:     p.CurrentStreak,
		LongestStreak:     p.LongestStreak,
		StudyFrequency:    StudyFrequencyFor(p.CurrentStreak),
		ConsistencyScore:  ConsistencyScore(p.CurrentStreak),
		ConsistencyRating: ConsistencyRatingFor(p.CurrentStreak),
		LearningVelocity:  LearningVelocity(p.TotalLessonsCompleted, p.CurrentStreak),
	}
}

// CategoryBreakdown aggregates lesson completions by course category,
// in first-seen order.
func (a *Aggregator) CategoryBreakdown(ctx context.Context, opts store.QueryOpts) ([]CategoryPerformance, error) {
	records, err := a.query(ctx, opts)
	if err != nil {
		return nil, err
	}

	var order []string
	sums := map[string]*CategoryPerformance{}
	scoreTotals := map[string]float64{}
	for _, r := range records {
		perf := sums[r.Category]
		if perf == nil {
			perf = &CategoryPerformance{Category: r.Category}
			sums[r.Category] = perf
			order = append(order, r.Category)
		}
		perf.Lessons++
		perf.TimeSpentMinutes += r.TimeSpentMinutes
		scoreTotals[r.Category] += r.Score
	}

	out := make([]CategoryPerformance, 0, len(order))
	for _, cat := range order {
		perf := sums[cat]
		perf.AverageScore = scoreTotals[cat] / float64(perf.Lessons)
		out = append(out, *perf)
	}
	return out, nil
}

// DifficultyBreakdown aggregates lesson completions by difficulty, in
// first-seen order.
func (a *Aggregator) DifficultyBreakdown(ctx context.Context, opts store.QueryOpts) ([]DifficultyPerformance, error) {
	records, err := a.query(ctx, opts)
	if err != nil {
		return nil, err
	}

	var order []string
	sums := map[string]*DifficultyPerformance{}
	scoreTotals := map[string]float64{}
	for _, r := range records {
		perf := sums[r.Difficulty]
		if perf == nil {
			perf = &DifficultyPerformance{Difficulty: r.Difficulty}
			sums[r.Difficulty] = perf
			order = append(order, r.Difficulty)
		}
		perf.Lessons++
		perf.TimeSpentMinutes += r.TimeSpentMinutes
		scoreTotals[r.Difficulty] += r.Score
	}

	out := make([]DifficultyPerformance, 0, len(order))
	for _, d := range order {
		perf := sums[d]
		perf.AverageScore = scoreTotals[d] / float64(perf.Lessons)
		out = append(out, *perf)
	}
	return out, nil
}

func (a *Aggregator) query(ctx context.Context, opts store.QueryOpts) ([]store.LessonCompletionRecord, error) {
	if a.events == nil {
		return nil, nil
	}
	records, err := a.events.QueryLessonCompletions(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying lesson completions: %w", err)
	}
	return records, nil
}
