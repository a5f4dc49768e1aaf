package progress

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/finlingo/finlingo/internal/catalog"
	"github.com/finlingo/finlingo/internal/store"
)

// Experience awards per completed unit.
const (
	LessonExperience = 10
	CourseExperience = 50
)

// defaultUserID names the single local profile.
const defaultUserID = "learner"

// Store is the single source of truth for durable learner state. It is
// the only writer of the UserProgress aggregate; all mutations are
// serialized through its methods. Readers get consistent deep copies.
//
// Persistence is best-effort: score and experience are applied to the
// in-memory aggregate first, and a failed save is retained on the store
// rather than propagated across the learning-flow boundary.
type Store struct {
	mu        sync.Mutex
	snapshots store.SnapshotRepo
	events    store.EventRepo // optional; appends are best-effort
	clock     Clock

	progress    *UserProgress
	lastSaveErr *PersistenceError
}

// NewStore creates a progress store. The aggregate starts as a fresh
// default until Load is called. A nil clock defaults to the system clock.
func NewStore(snapshots store.SnapshotRepo, events store.EventRepo, clock Clock) *Store {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Store{
		snapshots: snapshots,
		events:    events,
		clock:     clock,
		progress:  NewUserProgress(defaultUserID),
	}
}

// Load restores the aggregate from the latest snapshot. Missing or
// corrupt state silently seeds a fresh default profile; load never
// fails the caller.
func (s *Store) Load(ctx context.Context) *UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: loading progress failed, starting fresh: %v\n", err)
		s.progress = NewUserProgress(defaultUserID)
		return s.progress.Clone()
	}
	if snap == nil || snap.Data.Progress == nil {
		s.progress = NewUserProgress(defaultUserID)
		return s.progress.Clone()
	}

	s.progress = fromSnapshotData(snap.Data.Progress)
	return s.progress.Clone()
}

// Save persists the full aggregate as a new snapshot. On failure the
// error is returned and retained; the in-memory aggregate is untouched
// and a later Save may succeed.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx)
}

func (s *Store) saveLocked(ctx context.Context) error {
	snap := &store.Snapshot{
		Timestamp: s.clock.Now(),
		Data: store.SnapshotData{
			Version:  snapshotVersion,
			Progress: s.progress.toSnapshotData(),
		},
	}
	if err := s.snapshots.Save(ctx, snap); err != nil {
		s.lastSaveErr = &PersistenceError{Op: "save", Err: err}
		return s.lastSaveErr
	}
	s.lastSaveErr = nil
	return nil
}

// LastSaveErr returns the most recent save failure, or nil after a
// successful save.
func (s *Store) LastSaveErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastSaveErr == nil {
		return nil
	}
	return s.lastSaveErr
}

// Progress returns a deep copy of the current aggregate for readers.
func (s *Store) Progress() *UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress.Clone()
}

// AddExperience increments experience and recomputes the level. When the
// recomputed level is higher than the stored one, a "Level Up!"
// achievement tagged with the new level's icon is appended. Levels never
// downgrade.
func (s *Store) AddExperience(ctx context.Context, points int) {
	if points < 0 {
		points = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addExperienceLocked(ctx, points)
}

func (s *Store) addExperienceLocked(ctx context.Context, points int) {
	p := s.progress
	p.Experience += points

	newLevel := LevelForExperience(p.Experience)
	if newLevel.Rank() > p.Level.Rank() {
		p.Level = newLevel
		s.appendAchievementLocked(ctx, levelUpAchievement(newLevel, s.clock.Now()))
	}
}

// CompleteLesson applies the durable effects of one finished lesson:
// completion count, lesson experience, and the daily streak.
func (s *Store) CompleteLesson(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress.TotalLessonsCompleted++
	s.addExperienceLocked(ctx, LessonExperience)
	s.updateStreakLocked(ctx)
}

// AddTimeSpent accumulates study time and checks time milestones.
func (s *Store) AddTimeSpent(ctx context.Context, minutes int) {
	if minutes <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.progress.TotalTimeSpentMinutes
	s.progress.TotalTimeSpentMinutes = before + minutes

	for _, m := range timeMilestones {
		if before < m && s.progress.TotalTimeSpentMinutes >= m {
			s.unlockMilestoneLocked(ctx, timeAchievement(m, s.clock.Now()))
		}
	}
}

// CompleteCourse adds the course to the completed set, awards course
// experience, and evaluates completion milestones. Calling it again with
// the same ID is a no-op. Returns true when the completion was new.
func (s *Store) CompleteCourse(ctx context.Context, courseID string, category catalog.Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.progress
	if p.HasCompletedCourse(courseID) {
		return false
	}
	p.CompletedCourses = append(p.CompletedCourses, courseID)
	s.addExperienceLocked(ctx, CourseExperience)

	count := len(p.CompletedCourses)
	for _, m := range courseMilestones {
		if count == m {
			s.unlockMilestoneLocked(ctx, courseAchievement(m, s.clock.Now()))
		}
	}

	if category == catalog.CategoryFinancial {
		s.unlockMilestoneLocked(ctx, financialAchievement(s.clock.Now()))
	}

	if s.events != nil {
		_ = s.events.AppendCourseEvent(ctx, store.CourseEventData{
			CourseID: courseID,
			Action:   store.CourseActionCompleted,
		})
	}
	return true
}

// UpdateStreak advances the daily streak using calendar-day granularity.
func (s *Store) UpdateStreak(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateStreakLocked(ctx)
}

func (s *Store) updateStreakLocked(ctx context.Context) {
	p := s.progress
	today := dateOf(s.clock.Now())

	switch {
	case p.LastActivityDate.IsZero():
		// First-ever activity.
		p.CurrentStreak = 1
	case daysBetween(p.LastActivityDate, today) == 0:
		// Second activity on the same day never inflates the streak.
	case daysBetween(p.LastActivityDate, today) == 1:
		p.CurrentStreak++
	default:
		p.CurrentStreak = 1
	}

	p.LastActivityDate = today
	if p.CurrentStreak > p.LongestStreak {
		p.LongestStreak = p.CurrentStreak
	}

	for _, m := range streakMilestones {
		if p.CurrentStreak == m {
			s.unlockMilestoneLocked(ctx, streakAchievement(m, s.clock.Now()))
		}
	}
}

// SetCurrentCourse records the course the learner is working on. The
// reference is weak: it stays valid even if the catalog later drops the
// course.
func (s *Store) SetCurrentCourse(ctx context.Context, courseID string) {
	s.mu.Lock()
	s.progress.CurrentCourseID = courseID
	s.mu.Unlock()

	if s.events != nil {
		_ = s.events.AppendCourseEvent(ctx, store.CourseEventData{
			CourseID: courseID,
			Action:   store.CourseActionSelected,
		})
	}
}

// SetDailyGoal updates the daily study goal and keeps the weekly goal at
// the conventional 7x multiple.
func (s *Store) SetDailyGoal(minutes int) {
	if minutes <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress.DailyGoalMinutes = minutes
	s.progress.WeeklyGoalMinutes = minutes * 7
}

// UpdatePreferences replaces the learner preferences.
func (s *Store) UpdatePreferences(prefs Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress.Preferences = prefs
}

// Reset discards the aggregate and persists a fresh default profile.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = NewUserProgress(defaultUserID)
	return s.saveLocked(ctx)
}

// unlockMilestoneLocked appends a milestone achievement unless one with
// the same title already exists.
func (s *Store) unlockMilestoneLocked(ctx context.Context, a Achievement) {
	if s.progress.HasAchievement(a.Title) {
		return
	}
	s.appendAchievementLocked(ctx, a)
}

// appendAchievementLocked appends unconditionally and mirrors the unlock
// to the event log, best-effort.
func (s *Store) appendAchievementLocked(ctx context.Context, a Achievement) {
	s.progress.Achievements = append(s.progress.Achievements, a)

	if s.events != nil {
		if err := s.events.AppendAchievement(ctx, store.AchievementEventData{
			Title:       a.Title,
			Description: a.Description,
			Category:    string(a.Category),
			Icon:        a.Icon,
			Milestone:   a.Milestone,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log achievement event: %v\n", err)
		}
	}
}
