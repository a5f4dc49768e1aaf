package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/finlingo/finlingo/internal/catalog"
)

// Status is the lifecycle phase of a lesson attempt.
type Status int

const (
	StatusNotStarted Status = iota // Created but not yet started
	StatusInProgress               // Serving questions
	StatusCompleted                // Scored; terminal until Retry
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// unanswered is the sentinel stored for a question position the learner
// skipped. It never equals a valid option index.
const unanswered = -1

// Session tracks the runtime state of one lesson attempt. It is
// ephemeral: permanent effects happen only when the caller reports the
// terminal Result to the progress store. A Session is not safe for
// concurrent use.
type Session struct {
	// ID is the UUID for this attempt. Retry keeps the same ID.
	ID string

	lesson   *catalog.Lesson
	courseID string

	cursor  int
	answers []int
	score   float64
	status  Status

	startedAt   time.Time
	completedAt time.Time

	// now is the clock, swappable for time-spent tests.
	now func() time.Time
}

// Result is the terminal outcome reported to the progress store.
type Result struct {
	SessionID        string
	LessonID         string
	CourseID         string
	Score            float64
	TimeSpentMinutes int
	QuestionsTotal   int
	QuestionsCorrect int
}

// New creates a session for the given lesson in the NotStarted state.
func New(lesson *catalog.Lesson, courseID string) *Session {
	return &Session{
		ID:       uuid.NewString(),
		lesson:   lesson,
		courseID: courseID,
		status:   StatusNotStarted,
		now:      time.Now,
	}
}

// Status returns the current lifecycle phase.
func (s *Session) Status() Status { return s.status }

// Score returns the final score. Zero until the session completes.
func (s *Session) Score() float64 { return s.score }

// CurrentQuestionIndex returns the zero-based question cursor.
func (s *Session) CurrentQuestionIndex() int { return s.cursor }

// CurrentQuestion returns the question at the cursor, or nil when the
// session is not in progress or the lesson has no questions.
func (s *Session) CurrentQuestion() *catalog.Question {
	if s.status != StatusInProgress || s.cursor >= len(s.lesson.Questions) {
		return nil
	}
	return &s.lesson.Questions[s.cursor]
}

// SelectedAnswer returns the recorded answer at the given position, or
// -1 when the position was never answered.
func (s *Session) SelectedAnswer(position int) int {
	if position < 0 || position >= len(s.answers) {
		return unanswered
	}
	return s.answers[position]
}
