package coach

import (
	"fmt"
	"strings"
)

const noteSystemPrompt = `You are a supportive language-learning coach. A learner wants one short, practical note on what to study next and how to keep their habit going.`

func buildNoteUserMessage(input NoteInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Level: %s (%d XP)\n", input.Level, input.Experience))
	b.WriteString(fmt.Sprintf("Current streak: %d days\n", input.CurrentStreak))
	b.WriteString(fmt.Sprintf("Lessons completed: %d\n", input.LessonsCompleted))
	b.WriteString(fmt.Sprintf("Courses completed: %d\n", input.CoursesCompleted))
	if len(input.TargetLanguages) > 0 {
		b.WriteString(fmt.Sprintf("Target languages: %s\n", strings.Join(input.TargetLanguages, ", ")))
	}

	b.WriteString("\nRecent lesson results:\n")
	if len(input.RecentResults) == 0 {
		b.WriteString("None\n")
	} else {
		for _, r := range input.RecentResults {
			b.WriteString(fmt.Sprintf("- %s\n", r))
		}
	}

	if len(input.WeakCategories) > 0 {
		b.WriteString(fmt.Sprintf("\nWeaker categories: %s\n", strings.Join(input.WeakCategories, ", ")))
	}

	b.WriteString(`
Instructions:
Write one coaching note that:
1. Names the single most useful thing to focus on next, based on the results above.
2. Gives 2-3 concrete study actions the learner can do in under 15 minutes each.
3. Ends with one sentence of encouragement that refers to their actual numbers (streak, lessons, level). No generic praise.
4. Plain text only. No markdown, no emoji.`)

	return b.String()
}
