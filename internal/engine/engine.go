package engine

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/finlingo/finlingo/internal/analytics"
	"github.com/finlingo/finlingo/internal/catalog"
	"github.com/finlingo/finlingo/internal/progress"
	"github.com/finlingo/finlingo/internal/recommend"
	"github.com/finlingo/finlingo/internal/session"
	"github.com/finlingo/finlingo/internal/store"
)

// Engine is the facade the UI layer talks to. It owns the wiring
// between the catalog, the progress store, the event log, and the
// derived read models. All permanent state changes flow through the
// progress store; the engine never mutates the aggregate directly.
type Engine struct {
	catalog     *catalog.Catalog
	unlocked    *catalog.UnlockState
	progress    *progress.Store
	events      store.EventRepo
	recommender *recommend.Engine
	analytics   *analytics.Aggregator
	clock       progress.Clock
	rng         *rand.Rand
}

// New wires an engine. The unlock overlay is rebuilt from the event
// log so unlocks survive restarts. A nil clock uses the system clock;
// a nil rng uses the shared global source for tip selection.
func New(ctx context.Context, cat *catalog.Catalog, progressStore *progress.Store, events store.EventRepo, clock progress.Clock, rng *rand.Rand) (*Engine, error) {
	if clock == nil {
		clock = progress.SystemClock{}
	}

	var unlockedIDs []string
	if events != nil {
		ids, err := events.CourseIDsByAction(ctx, store.CourseActionUnlocked)
		if err != nil {
			return nil, fmt.Errorf("rebuilding unlock state: %w", err)
		}
		unlockedIDs = ids
	}
	unlocked := catalog.NewUnlockState(unlockedIDs)

	var eventSource analytics.EventSource
	if events != nil {
		eventSource = events
	}

	return &Engine{
		catalog:     cat,
		unlocked:    unlocked,
		progress:    progressStore,
		events:      events,
		recommender: recommend.NewEngine(cat, unlocked),
		analytics:   analytics.NewAggregator(eventSource),
		clock:       clock,
		rng:         rng,
	}, nil
}

// Progress returns a consistent snapshot of the learner aggregate.
func (e *Engine) Progress() *progress.UserProgress {
	return e.progress.Progress()
}

// Catalog returns the content catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// IsUnlocked reports whether the course is currently offerable.
func (e *Engine) IsUnlocked(course *catalog.Course) bool {
	return e.unlocked.IsUnlocked(course)
}

// OnLessonCompleted applies the durable effects of a finished lesson:
// the completion event, lesson credit, study time, and, when every
// lesson in the course now has a completion on record, course credit.
// The returned error is a persistence failure only; the in-memory
// aggregate always reflects the result and a later save may succeed.
func (e *Engine) OnLessonCompleted(ctx context.Context, res session.Result) error {
	course, err := e.catalog.Course(res.CourseID)
	if err != nil {
		return fmt.Errorf("recording lesson completion: %w", err)
	}

	if e.events != nil {
		data := store.LessonCompletionData{
			SessionID:        res.SessionID,
			LessonID:         res.LessonID,
			CourseID:         res.CourseID,
			Category:         string(course.Category),
			Difficulty:       string(course.Difficulty),
			Score:            res.Score,
			TimeSpentMinutes: res.TimeSpentMinutes,
			QuestionsTotal:   res.QuestionsTotal,
			QuestionsCorrect: res.QuestionsCorrect,
		}
		if err := e.events.AppendLessonCompletion(ctx, data); err != nil {
			return fmt.Errorf("recording lesson completion: %w", err)
		}
	}

	e.progress.CompleteLesson(ctx)
	e.progress.AddTimeSpent(ctx, res.TimeSpentMinutes)

	if done, err := e.courseFullyCompleted(ctx, course); err != nil {
		fmt.Fprintf(os.Stderr, "warning: checking course completion: %v\n", err)
	} else if done {
		e.progress.CompleteCourse(ctx, course.ID, course.Category)
	}

	return e.progress.Save(ctx)
}

// courseFullyCompleted reports whether every lesson in the course has
// at least one completion event.
func (e *Engine) courseFullyCompleted(ctx context.Context, course *catalog.Course) (bool, error) {
	if e.events == nil || len(course.Lessons) == 0 {
		return false, nil
	}

	records, err := e.events.QueryLessonCompletions(ctx, store.QueryOpts{})
	if err != nil {
		return false, err
	}

	seen := map[string]bool{}
	for _, r := range records {
		if r.CourseID == course.ID {
			seen[r.LessonID] = true
		}
	}
	for _, lesson := range course.Lessons {
		if !seen[lesson.ID] {
			return false, nil
		}
	}
	return true, nil
}

// OnCourseSelected records the course the learner switched to.
func (e *Engine) OnCourseSelected(ctx context.Context, courseID string) error {
	if _, err := e.catalog.Course(courseID); err != nil {
		return fmt.Errorf("selecting course: %w", err)
	}
	e.progress.SetCurrentCourse(ctx, courseID)
	return e.progress.Save(ctx)
}

// UnlockCourse marks a locked course as offerable and records the
// unlock. Unlocking an already-unlocked course is a no-op.
func (e *Engine) UnlockCourse(ctx context.Context, courseID string) error {
	if _, err := e.catalog.Course(courseID); err != nil {
		return fmt.Errorf("unlocking course: %w", err)
	}
	if !e.unlocked.Unlock(courseID) {
		return nil
	}
	if e.events != nil {
		if err := e.events.AppendCourseEvent(ctx, store.CourseEventData{
			CourseID: courseID,
			Action:   store.CourseActionUnlocked,
		}); err != nil {
			return fmt.Errorf("recording unlock: %w", err)
		}
	}
	return nil
}

// GetRecommendations returns up to limit course recommendations for
// the current profile.
func (e *Engine) GetRecommendations(limit int) []recommend.Recommendation {
	return e.recommender.Recommend(e.progress.Progress(), limit)
}

// GetDailyTip returns a tip from the curated pool.
func (e *Engine) GetDailyTip() recommend.Tip {
	return recommend.DailyTip(e.rng)
}

// GetChallenges returns the learner's standing on every challenge.
func (e *Engine) GetChallenges() []recommend.LearningChallenge {
	return recommend.ChallengeProgress(e.progress.Progress())
}

// AnalyzeStreak returns streak-derived metrics for the current profile.
func (e *Engine) AnalyzeStreak() analytics.StreakAnalysis {
	return e.analytics.AnalyzeStreak(e.progress.Progress())
}

// ExportProgressReport renders the plain-text progress report.
func (e *Engine) ExportProgressReport(ctx context.Context) (string, error) {
	return e.analytics.ExportText(ctx, e.progress.Progress(), e.clock.Now())
}

// CategoryBreakdown aggregates historical lesson results by category.
func (e *Engine) CategoryBreakdown(ctx context.Context) ([]analytics.CategoryPerformance, error) {
	return e.analytics.CategoryBreakdown(ctx, store.QueryOpts{})
}

// WeeklyReport summarizes the trailing week.
func (e *Engine) WeeklyReport(ctx context.Context) (*analytics.PeriodReport, error) {
	return e.analytics.WeeklyReport(ctx, e.clock.Now())
}

// MonthlyReport summarizes the trailing month.
func (e *Engine) MonthlyReport(ctx context.Context) (*analytics.PeriodReport, error) {
	return e.analytics.MonthlyReport(ctx, e.clock.Now())
}

// StartLesson creates a session for the given lesson.
func (e *Engine) StartLesson(courseID, lessonID string) (*session.Session, error) {
	lesson, err := e.catalog.Lesson(courseID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("starting lesson: %w", err)
	}
	s := session.New(lesson, courseID)
	s.Start()
	return s, nil
}
