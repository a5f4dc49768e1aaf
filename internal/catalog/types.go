package catalog

// Difficulty is the ordered course difficulty scale.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Rank returns the ordinal position of the difficulty (beginner = 1).
// Unknown difficulties rank 0 so they never satisfy ordering rules.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyBeginner:
		return 1
	case DifficultyIntermediate:
		return 2
	case DifficultyAdvanced:
		return 3
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// Category identifies the content area of a course.
type Category string

const (
	CategoryVocabulary   Category = "vocabulary"
	CategoryGrammar      Category = "grammar"
	CategoryConversation Category = "conversation"
	CategoryFinancial    Category = "financial"
	CategoryBusiness     Category = "business"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryVocabulary,
		CategoryGrammar,
		CategoryConversation,
		CategoryFinancial,
		CategoryBusiness,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryVocabulary:
		return "Vocabulary"
	case CategoryGrammar:
		return "Grammar"
	case CategoryConversation:
		return "Conversation"
	case CategoryFinancial:
		return "Financial Literacy"
	case CategoryBusiness:
		return "Business"
	default:
		return string(c)
	}
}

// Course is an immutable catalog entry with its ordered lessons.
type Course struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Language         string     `json:"language"`
	Category         Category   `json:"category"`
	Difficulty       Difficulty `json:"difficulty"`
	EstimatedMinutes int        `json:"estimated_minutes"`
	Locked           bool       `json:"locked,omitempty"`
	Lessons          []Lesson   `json:"lessons"`
}

// Lesson holds ordered questions and the vocabulary introduced by the lesson.
type Lesson struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Questions  []Question       `json:"questions"`
	Vocabulary []VocabularyItem `json:"vocabulary,omitempty"`
}

// Question is a multiple-choice question.
type Question struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// VocabularyItem pairs a term with its translation and usage example.
type VocabularyItem struct {
	Term        string `json:"term"`
	Translation string `json:"translation"`
	Example     string `json:"example,omitempty"`
}
