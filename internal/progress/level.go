package progress

// UserLevel is the ordered learner level scale. Levels only advance;
// there is no regression path.
type UserLevel string

const (
	LevelNovice       UserLevel = "novice"
	LevelBeginner     UserLevel = "beginner"
	LevelIntermediate UserLevel = "intermediate"
	LevelAdvanced     UserLevel = "advanced"
	LevelExpert       UserLevel = "expert"
	LevelMaster       UserLevel = "master"
)

// levelOrder lists levels from lowest to highest with their experience
// thresholds.
var levelOrder = []struct {
	level      UserLevel
	experience int
}{
	{LevelNovice, 0},
	{LevelBeginner, 100},
	{LevelIntermediate, 300},
	{LevelAdvanced, 600},
	{LevelExpert, 1000},
	{LevelMaster, 1500},
}

// LevelForExperience returns the highest level whose threshold is met by
// the given experience, scanning from highest to lowest.
func LevelForExperience(experience int) UserLevel {
	for i := len(levelOrder) - 1; i >= 0; i-- {
		if experience >= levelOrder[i].experience {
			return levelOrder[i].level
		}
	}
	return LevelNovice
}

// ExperienceRequired returns the threshold for the given level.
func (l UserLevel) ExperienceRequired() int {
	for _, e := range levelOrder {
		if e.level == l {
			return e.experience
		}
	}
	return 0
}

// Next returns the level above this one, or false at the top.
func (l UserLevel) Next() (UserLevel, bool) {
	for i, e := range levelOrder {
		if e.level == l && i+1 < len(levelOrder) {
			return levelOrder[i+1].level, true
		}
	}
	return l, false
}

// Rank returns the ordinal position of the level (novice = 1).
func (l UserLevel) Rank() int {
	for i, e := range levelOrder {
		if e.level == l {
			return i + 1
		}
	}
	return 0
}

// DisplayName returns a human-readable label for the level.
func (l UserLevel) DisplayName() string {
	switch l {
	case LevelNovice:
		return "Novice"
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	case LevelExpert:
		return "Expert"
	case LevelMaster:
		return "Master"
	default:
		return string(l)
	}
}

// Icon returns the display icon for the level.
func (l UserLevel) Icon() string {
	switch l {
	case LevelNovice:
		return "seedling"
	case LevelBeginner:
		return "sprout"
	case LevelIntermediate:
		return "leaf"
	case LevelAdvanced:
		return "tree"
	case LevelExpert:
		return "star"
	case LevelMaster:
		return "crown"
	default:
		return "dot"
	}
}
