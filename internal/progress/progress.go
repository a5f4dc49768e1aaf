package progress

import (
	"slices"
	"time"

	"github.com/finlingo/finlingo/internal/catalog"
	"github.com/finlingo/finlingo/internal/store"
)

// snapshotVersion is the current serialization version for the aggregate.
const snapshotVersion = 1

// Preferences is the learner's nested configuration.
type Preferences struct {
	PreferredLanguages   []string
	DifficultyPreference catalog.Difficulty
	ShowFinancialTips    bool
	Notifications        bool
	Sound                bool
	Haptics              bool
	LessonLengthMinutes  int
}

// UserProgress is the single durable learner aggregate. The Store is its
// only writer; readers get deep copies.
type UserProgress struct {
	UserID                string
	TotalLessonsCompleted int
	TotalTimeSpentMinutes int
	CurrentStreak         int
	LongestStreak         int
	Level                 UserLevel
	Experience            int
	Achievements          []Achievement
	CompletedCourses      []string
	CurrentCourseID       string
	DailyGoalMinutes      int
	WeeklyGoalMinutes     int
	LastActivityDate      time.Time // zero when no activity yet
	Preferences           Preferences
}

// NewUserProgress returns a fresh default aggregate, used on first run
// and when persisted state is missing or corrupt.
func NewUserProgress(userID string) *UserProgress {
	return &UserProgress{
		UserID:           userID,
		Level:            LevelNovice,
		DailyGoalMinutes: 15,
		WeeklyGoalMinutes: 105,
		Preferences: Preferences{
			PreferredLanguages:   []string{"es"},
			DifficultyPreference: catalog.DifficultyBeginner,
			ShowFinancialTips:    true,
			Notifications:        true,
			Sound:                true,
			Haptics:              true,
			LessonLengthMinutes:  15,
		},
	}
}

// HasCompletedCourse reports whether the course is in the completed set.
func (p *UserProgress) HasCompletedCourse(courseID string) bool {
	return slices.Contains(p.CompletedCourses, courseID)
}

// HasAchievement reports whether an achievement with the given title exists.
func (p *UserProgress) HasAchievement(title string) bool {
	for _, a := range p.Achievements {
		if a.Title == title {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the aggregate.
func (p *UserProgress) Clone() *UserProgress {
	cp := *p
	cp.Achievements = slices.Clone(p.Achievements)
	cp.CompletedCourses = slices.Clone(p.CompletedCourses)
	cp.Preferences.PreferredLanguages = slices.Clone(p.Preferences.PreferredLanguages)
	return &cp
}

// toSnapshotData converts the aggregate to its persisted form.
func (p *UserProgress) toSnapshotData() *store.ProgressSnapshotData {
	data := &store.ProgressSnapshotData{
		UserID:                p.UserID,
		TotalLessonsCompleted: p.TotalLessonsCompleted,
		TotalTimeSpentMinutes: p.TotalTimeSpentMinutes,
		CurrentStreak:         p.CurrentStreak,
		LongestStreak:         p.LongestStreak,
		Level:                 string(p.Level),
		Experience:            p.Experience,
		CompletedCourses:      slices.Clone(p.CompletedCourses),
		CurrentCourseID:       p.CurrentCourseID,
		DailyGoalMinutes:      p.DailyGoalMinutes,
		WeeklyGoalMinutes:     p.WeeklyGoalMinutes,
		Preferences: store.PreferencesData{
			PreferredLanguages:   slices.Clone(p.Preferences.PreferredLanguages),
			DifficultyPreference: string(p.Preferences.DifficultyPreference),
			ShowFinancialTips:    p.Preferences.ShowFinancialTips,
			NotificationsEnabled: p.Preferences.Notifications,
			SoundEnabled:         p.Preferences.Sound,
			HapticsEnabled:       p.Preferences.Haptics,
			LessonLengthMinutes:  p.Preferences.LessonLengthMinutes,
		},
	}

	if !p.LastActivityDate.IsZero() {
		data.LastActivityDate = p.LastActivityDate.Format(time.DateOnly)
	}

	data.Achievements = make([]store.AchievementData, len(p.Achievements))
	for i, a := range p.Achievements {
		data.Achievements[i] = store.AchievementData{
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Category:    string(a.Category),
			UnlockedAt:  a.UnlockedAt,
			Milestone:   a.Milestone,
		}
	}

	return data
}

// fromSnapshotData rebuilds the aggregate from its persisted form.
func fromSnapshotData(data *store.ProgressSnapshotData) *UserProgress {
	p := &UserProgress{
		UserID:                data.UserID,
		TotalLessonsCompleted: data.TotalLessonsCompleted,
		TotalTimeSpentMinutes: data.TotalTimeSpentMinutes,
		CurrentStreak:         data.CurrentStreak,
		LongestStreak:         data.LongestStreak,
		Level:                 UserLevel(data.Level),
		Experience:            data.Experience,
		CompletedCourses:      slices.Clone(data.CompletedCourses),
		CurrentCourseID:       data.CurrentCourseID,
		DailyGoalMinutes:      data.DailyGoalMinutes,
		WeeklyGoalMinutes:     data.WeeklyGoalMinutes,
		Preferences: Preferences{
			PreferredLanguages:   slices.Clone(data.Preferences.PreferredLanguages),
			DifficultyPreference: catalog.Difficulty(data.Preferences.DifficultyPreference),
			ShowFinancialTips:    data.Preferences.ShowFinancialTips,
			Notifications:        data.Preferences.NotificationsEnabled,
			Sound:                data.Preferences.SoundEnabled,
			Haptics:              data.Preferences.HapticsEnabled,
			LessonLengthMinutes:  data.Preferences.LessonLengthMinutes,
		},
	}

	if data.LastActivityDate != "" {
		if t, err := time.ParseInLocation(time.DateOnly, data.LastActivityDate, time.Local); err == nil {
			p.LastActivityDate = t
		}
	}

	// The stored level is advisory; the threshold invariant wins.
	if p.Level.Rank() == 0 || LevelForExperience(p.Experience).Rank() > p.Level.Rank() {
		p.Level = LevelForExperience(p.Experience)
	}

	p.Achievements = make([]Achievement, len(data.Achievements))
	for i, a := range data.Achievements {
		p.Achievements[i] = Achievement{
			Title:       a.Title,
			Description: a.Description,
			Icon:        a.Icon,
			Category:    AchievementCategory(a.Category),
			UnlockedAt:  a.UnlockedAt,
			Milestone:   a.Milestone,
		}
	}

	return p
}
