package coach

// NoteInput carries the learner context used to personalize a note.
type NoteInput struct {
	Level            string
	Experience       int
	CurrentStreak    int
	LessonsCompleted int
	CoursesCompleted int
	TargetLanguages  []string

	// RecentResults are short descriptions of the latest lesson
	// attempts, newest first.
	RecentResults []string

	// WeakCategories are course categories with below-average scores.
	WeakCategories []string
}

// StudyNote is a generated personalized coaching note.
type StudyNote struct {
	Title         string
	Body          string
	FocusArea     string
	Encouragement string
}
