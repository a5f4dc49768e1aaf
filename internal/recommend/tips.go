package recommend

import (
	"math/rand"

	"github.com/finlingo/finlingo/internal/catalog"
)

// Tip is one entry from the curated daily-tip pool.
type Tip struct {
	Title      string
	Body       string
	Category   catalog.Category
	Difficulty catalog.Difficulty
}

// tipPool is the fixed curated pool. Selection is uniform; the calling
// layer decides cadence (typically once per calendar day).
var tipPool = []Tip{
	{
		Title:      "Little and often",
		Body:       "Ten focused minutes a day beats a two-hour cram on Sunday. Short sessions keep vocabulary fresh.",
		Category:   catalog.CategoryVocabulary,
		Difficulty: catalog.DifficultyBeginner,
	},
	{
		Title:      "Say it out loud",
		Body:       "Reading silently skips your mouth. Repeat each new phrase aloud three times before moving on.",
		Category:   catalog.CategoryConversation,
		Difficulty: catalog.DifficultyBeginner,
	},
	{
		Title:      "Label your wallet",
		Body:       "Next time you pay for something, name the amount and the transaction in your target language.",
		Category:   catalog.CategoryFinancial,
		Difficulty: catalog.DifficultyBeginner,
	},
	{
		Title:      "Patterns over rules",
		Body:       "Grammar sticks faster from example sentences than from tables. Collect three examples per rule.",
		Category:   catalog.CategoryGrammar,
		Difficulty: catalog.DifficultyIntermediate,
	},
	{
		Title:      "Shadow a meeting",
		Body:       "Replay a recorded business conversation and speak along half a second behind the speaker.",
		Category:   catalog.CategoryBusiness,
		Difficulty: catalog.DifficultyIntermediate,
	},
	{
		Title:      "Think in prices",
		Body:       "Convert prices you see today into your target language, including the currency words.",
		Category:   catalog.CategoryFinancial,
		Difficulty: catalog.DifficultyIntermediate,
	},
	{
		Title:      "Argue with yourself",
		Body:       "Pick a topic and defend both sides out loud for one minute each. Fluency grows under light pressure.",
		Category:   catalog.CategoryConversation,
		Difficulty: catalog.DifficultyAdvanced,
	},
	{
		Title:      "Teach it back",
		Body:       "Explaining a grammar point in your own words is the fastest test of whether you actually own it.",
		Category:   catalog.CategoryGrammar,
		Difficulty: catalog.DifficultyAdvanced,
	},
}

// DailyTip returns a uniform-random tip from the pool. A nil rng falls
// back to the shared global source.
func DailyTip(rng *rand.Rand) Tip {
	if rng == nil {
		return tipPool[rand.Intn(len(tipPool))]
	}
	return tipPool[rng.Intn(len(tipPool))]
}
