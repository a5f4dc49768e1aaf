package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the serialized form of the learner state stored in a
// snapshot. The progress package converts its aggregate to and from this
// representation so the store stays free of domain imports.
type SnapshotData struct {
	Version  int                   `json:"version"`
	Progress *ProgressSnapshotData `json:"progress,omitempty"`
}

// ProgressSnapshotData mirrors the UserProgress aggregate.
type ProgressSnapshotData struct {
	UserID                string            `json:"user_id"`
	TotalLessonsCompleted int               `json:"total_lessons_completed"`
	TotalTimeSpentMinutes int               `json:"total_time_spent_minutes"`
	CurrentStreak         int               `json:"current_streak"`
	LongestStreak         int               `json:"longest_streak"`
	Level                 string            `json:"level"`
	Experience            int               `json:"experience"`
	Achievements          []AchievementData `json:"achievements"`
	CompletedCourses      []string          `json:"completed_courses"`
	CurrentCourseID       string            `json:"current_course_id,omitempty"`
	DailyGoalMinutes      int               `json:"daily_goal_minutes"`
	WeeklyGoalMinutes     int               `json:"weekly_goal_minutes"`
	LastActivityDate      string            `json:"last_activity_date,omitempty"` // YYYY-MM-DD
	Preferences           PreferencesData   `json:"preferences"`
}

// AchievementData is the serialized form of a single achievement.
type AchievementData struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Category    string    `json:"category"`
	UnlockedAt  time.Time `json:"unlocked_at"`
	Milestone   int       `json:"milestone,omitempty"`
}

// PreferencesData is the serialized form of learner preferences.
type PreferencesData struct {
	PreferredLanguages   []string `json:"preferred_languages"`
	DifficultyPreference string   `json:"difficulty_preference"`
	ShowFinancialTips    bool     `json:"show_financial_tips"`
	NotificationsEnabled bool     `json:"notifications_enabled"`
	SoundEnabled         bool     `json:"sound_enabled"`
	HapticsEnabled       bool     `json:"haptics_enabled"`
	LessonLengthMinutes  int      `json:"lesson_length_minutes"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LessonCompletionData captures a finished lesson attempt for the event log.
type LessonCompletionData struct {
	SessionID        string
	LessonID         string
	CourseID         string
	Category         string
	Difficulty       string
	Score            float64
	TimeSpentMinutes int
	QuestionsTotal   int
	QuestionsCorrect int
}

// LessonCompletionRecord is a queried lesson completion event.
type LessonCompletionRecord struct {
	LessonCompletionData
	Sequence  int64
	Timestamp time.Time
}

// CourseEventData captures a course lifecycle transition.
type CourseEventData struct {
	CourseID string
	Action   string // CourseActionSelected, CourseActionCompleted, CourseActionUnlocked
}

// Course event actions.
const (
	CourseActionSelected  = "selected"
	CourseActionCompleted = "completed"
	CourseActionUnlocked  = "unlocked"
)

// AchievementEventData captures an achievement unlock.
type AchievementEventData struct {
	Title       string
	Description string
	Category    string
	Icon        string
	Milestone   int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLessonCompletion records a finished lesson attempt.
	AppendLessonCompletion(ctx context.Context, data LessonCompletionData) error

	// AppendCourseEvent records a course lifecycle transition.
	AppendCourseEvent(ctx context.Context, data CourseEventData) error

	// AppendAchievement records an achievement unlock.
	AppendAchievement(ctx context.Context, data AchievementEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLessonCompletions returns lesson completions, newest first.
	QueryLessonCompletions(ctx context.Context, opts QueryOpts) ([]LessonCompletionRecord, error)

	// CourseIDsByAction returns the distinct course IDs that have an event
	// with the given action, in first-occurrence order.
	CourseIDsByAction(ctx context.Context, action string) ([]string, error)
}
