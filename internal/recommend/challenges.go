package recommend

import "github.com/finlingo/finlingo/internal/progress"

// LearningChallenge is one fixed challenge with the learner's progress
// against it. Progress is the raw ratio currentValue/target and may
// exceed 1.0; display layers clamp, the engine does not.
type LearningChallenge struct {
	ID          string
	Title       string
	Description string
	Target      int
	Current     int
	Progress    float64
	IsCompleted bool
}

// challengeDef is a fixed challenge definition with an extractor for
// the tracked value.
type challengeDef struct {
	id          string
	title       string
	description string
	target      int
	value       func(*progress.UserProgress) int
}

var challengeDefs = []challengeDef{
	{
		id:          "streak-7",
		title:       "Week Warrior",
		description: "Study 7 days in a row",
		target:      7,
		value:       func(p *progress.UserProgress) int { return p.CurrentStreak },
	},
	{
		id:          "lessons-20",
		title:       "Lesson Machine",
		description: "Complete 20 lessons",
		target:      20,
		value:       func(p *progress.UserProgress) int { return p.TotalLessonsCompleted },
	},
	{
		id:          "courses-3",
		title:       "Course Collector",
		description: "Finish 3 courses",
		target:      3,
		value:       func(p *progress.UserProgress) int { return len(p.CompletedCourses) },
	},
	{
		id:          "minutes-300",
		title:       "Time Keeper",
		description: "Study for 300 minutes total",
		target:      300,
		value:       func(p *progress.UserProgress) int { return p.TotalTimeSpentMinutes },
	},
}

// ChallengeProgress computes the learner's standing against every fixed
// challenge definition.
func ChallengeProgress(p *progress.UserProgress) []LearningChallenge {
	out := make([]LearningChallenge, 0, len(challengeDefs))
	for _, def := range challengeDefs {
		current := def.value(p)
		out = append(out, LearningChallenge{
			ID:          def.id,
			Title:       def.title,
			Description: def.description,
			Target:      def.target,
			Current:     current,
			Progress:    float64(current) / float64(def.target),
			IsCompleted: current >= def.target,
		})
	}
	return out
}
