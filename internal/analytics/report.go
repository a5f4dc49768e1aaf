package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finlingo/finlingo/internal/progress"
	"github.com/finlingo/finlingo/internal/store"
)

// PeriodReport summarizes lesson activity for one time window with
// deltas against the immediately preceding window of the same length.
type PeriodReport struct {
	Label            string
	From             time.Time
	To               time.Time
	LessonsCompleted int
	TimeSpentMinutes int
	AverageScore     float64
	ActiveDays       int

	// Deltas against the previous period.
	LessonsDelta int
	TimeDelta    int
}

// WeeklyReport summarizes the trailing 7 days ending at now.
func (a *Aggregator) WeeklyReport(ctx context.Context, now time.Time) (*PeriodReport, error) {
	return a.periodReport(ctx, "Weekly", now, 7*24*time.Hour)
}

// MonthlyReport summarizes the trailing 30 days ending at now.
func (a *Aggregator) MonthlyReport(ctx context.Context, now time.Time) (*PeriodReport, error) {
	return a.periodReport(ctx, "Monthly", now, 30*24*time.Hour)
}

func (a *Aggregator) periodReport(ctx context.Context, label string, now time.Time, window time.Duration) (*PeriodReport, error) {
	from := now.Add(-window)
	current, err := a.query(ctx, store.QueryOpts{From: from, To: now})
	if err != nil {
		return nil, err
	}
	previous, err := a.query(ctx, store.QueryOpts{From: from.Add(-window), To: from})
	if err != nil {
		return nil, err
	}

	report := &PeriodReport{Label: label, From: from, To: now}

	days := map[string]bool{}
	scoreTotal := 0.0
	for _, r := range current {
		report.LessonsCompleted++
		report.TimeSpentMinutes += r.TimeSpentMinutes
		scoreTotal += r.Score
		days[r.Timestamp.Format(time.DateOnly)] = true
	}
	if report.LessonsCompleted > 0 {
		report.AverageScore = scoreTotal / float64(report.LessonsCompleted)
	}
	report.ActiveDays = len(days)

	prevLessons, prevTime := 0, 0
	for _, r := range previous {
		prevLessons++
		prevTime += r.TimeSpentMinutes
	}
	report.LessonsDelta = report.LessonsCompleted - prevLessons
	report.TimeDelta = report.TimeSpentMinutes - prevTime

	return report, nil
}

// ExportText renders a plain-text progress report combining the
// aggregate, streak metrics, and event-derived breakdowns.
func (a *Aggregator) ExportText(ctx context.Context, p *progress.UserProgress, now time.Time) (string, error) {
	streak := a.AnalyzeStreak(p)
	categories, err := a.CategoryBreakdown(ctx, store.QueryOpts{})
	if err != nil {
		return "", err
	}
	weekly, err := a.WeeklyReport(ctx, now)
	if err != nil {
		return "", err
	}
	monthly, err := a.MonthlyReport(ctx, now)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Progress Report (%s)\n", now.Format(time.DateOnly))
	fmt.Fprintf(&b, "Level: %s (%d XP)\n", p.Level.DisplayName(), p.Experience)
	fmt.Fprintf(&b, "Lessons completed: %d\n", p.TotalLessonsCompleted)
	fmt.Fprintf(&b, "Courses completed: %d\n", len(p.CompletedCourses))
	fmt.Fprintf(&b, "Time studied: %d min\n", p.TotalTimeSpentMinutes)
	fmt.Fprintf(&b, "Achievements: %d\n", len(p.Achievements))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Streak: %d days (longest %d)\n", streak.CurrentStreak, streak.LongestStreak)
	fmt.Fprintf(&b, "Study frequency: %s\n", streak.StudyFrequency)
	fmt.Fprintf(&b, "Consistency: %d/100 (%s)\n", streak.ConsistencyScore, streak.ConsistencyRating)
	fmt.Fprintf(&b, "Learning velocity: %.1f lessons/day\n", streak.LearningVelocity)

	if len(categories) > 0 {
		b.WriteString("\nBy category:\n")
		for _, c := range categories {
			fmt.Fprintf(&b, "  %-14s %3d lessons, avg %.0f%%, %d min\n",
				c.Category, c.Lessons, c.AverageScore, c.TimeSpentMinutes)
		}
	}

	for _, r := range []*PeriodReport{weekly, monthly} {
		fmt.Fprintf(&b, "\n%s: %d lessons (%+d), %d min (%+d), %d active days",
			r.Label, r.LessonsCompleted, r.LessonsDelta, r.TimeSpentMinutes, r.TimeDelta, r.ActiveDays)
		if r.LessonsCompleted > 0 {
			fmt.Fprintf(&b, ", avg %.0f%%", r.AverageScore)
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}
