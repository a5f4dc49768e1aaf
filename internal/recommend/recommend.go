package recommend

import (
	"sort"
	"strings"

	"github.com/finlingo/finlingo/internal/catalog"
	"github.com/finlingo/finlingo/internal/progress"
)

// Priority orders recommendations for display. Scoring rules may
// escalate priority but never demote it.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// String returns a human-readable priority label.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return "Unknown"
	}
}

// minConfidence is the discard threshold for scored courses.
const minConfidence = 0.6

// reasonSeparator joins the triggered justifications into one line.
const reasonSeparator = " • "

// Recommendation is one scored course suggestion.
type Recommendation struct {
	Course     *catalog.Course
	Reason     string
	Confidence float64
	Priority   Priority
}

// Engine scores catalog courses against the learner profile. It holds
// no state of its own and is recomputed on demand; all methods are pure
// reads over a consistent progress snapshot.
type Engine struct {
	catalog  *catalog.Catalog
	unlocked *catalog.UnlockState
}

// NewEngine creates a recommendation engine over the given catalog.
// The unlock overlay may be nil when no courses have been unlocked.
func NewEngine(cat *catalog.Catalog, unlocked *catalog.UnlockState) *Engine {
	return &Engine{catalog: cat, unlocked: unlocked}
}

// ScoreCourse evaluates one course against the learner profile.
// Returns nil when the course does not clear the confidence threshold.
// Locked courses must be excluded by the caller before scoring.
func ScoreCourse(course *catalog.Course, level progress.UserLevel, completedCourses int, currentStreak int, prefs progress.Preferences) *Recommendation {
	confidence := 0.5
	priority := PriorityMedium
	var reasons []string

	escalate := func(to Priority) {
		if to > priority {
			priority = to
		}
	}

	if course.Difficulty == prefs.DifficultyPreference {
		confidence += 0.3
		reasons = append(reasons, "Matches your preferred difficulty")
	}

	if course.Category == catalog.CategoryFinancial && prefs.ShowFinancialTips {
		confidence += 0.2
		escalate(PriorityHigh)
		reasons = append(reasons, "Builds your financial vocabulary")
	}

	if course.EstimatedMinutes <= prefs.LessonLengthMinutes+10 {
		confidence += 0.1
		reasons = append(reasons, "Fits your preferred lesson length")
	}

	if currentStreak > 7 {
		confidence += 0.15
		reasons = append(reasons, "Keep your streak momentum going")
	}

	if completedCourses == 0 && course.Difficulty == catalog.DifficultyBeginner {
		confidence += 0.25
		escalate(PriorityHigh)
		reasons = append(reasons, "Great starting point for new learners")
	}

	if completedCourses > 2 && course.Difficulty.Rank() > prefs.DifficultyPreference.Rank() {
		confidence += 0.2
		reasons = append(reasons, "Ready for a bigger challenge")
	}

	if level.Rank() >= progress.LevelIntermediate.Rank() && course.Category == catalog.CategoryBusiness {
		confidence += 0.15
		reasons = append(reasons, "Business skills match your level")
	}

	if confidence < minConfidence {
		return nil
	}

	return &Recommendation{
		Course:     course,
		Reason:     strings.Join(reasons, reasonSeparator),
		Confidence: confidence,
		Priority:   priority,
	}
}

// Recommend scores every unlocked course and returns up to limit
// recommendations, ordered by priority then confidence, both
// descending. Only locked courses are excluded before scoring. A limit
// of 0 or less returns all.
func (e *Engine) Recommend(p *progress.UserProgress, limit int) []Recommendation {
	var recs []Recommendation
	courses := e.catalog.Courses()
	for i := range courses {
		course := &courses[i]
		if !e.isOfferable(course) {
			continue
		}
		r := ScoreCourse(course, p.Level, len(p.CompletedCourses), p.CurrentStreak, p.Preferences)
		if r != nil {
			recs = append(recs, *r)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Priority != recs[j].Priority {
			return recs[i].Priority > recs[j].Priority
		}
		return recs[i].Confidence > recs[j].Confidence
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func (e *Engine) isOfferable(course *catalog.Course) bool {
	if e.unlocked != nil {
		return e.unlocked.IsUnlocked(course)
	}
	return !course.Locked
}
