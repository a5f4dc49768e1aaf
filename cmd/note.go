package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finlingo/finlingo/internal/coach"
	"github.com/finlingo/finlingo/internal/llm"
	"github.com/finlingo/finlingo/internal/store"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Generate a personalized coaching note",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		eng, st, _, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		p := eng.Progress()
		input := coach.NoteInput{
			Level:            string(p.Level),
			Experience:       p.Experience,
			CurrentStreak:    p.CurrentStreak,
			LessonsCompleted: p.TotalLessonsCompleted,
			CoursesCompleted: len(p.CompletedCourses),
			TargetLanguages:  p.Preferences.PreferredLanguages,
		}

		if records, err := st.EventRepo().QueryLessonCompletions(ctx, store.QueryOpts{Limit: 5}); err == nil {
			for _, r := range records {
				input.RecentResults = append(input.RecentResults,
					fmt.Sprintf("%s (%s): %.0f%%", r.LessonID, r.Category, r.Score))
			}
		}
		if breakdown, err := eng.CategoryBreakdown(ctx); err == nil {
			for _, b := range breakdown {
				if b.AverageScore < 70 {
					input.WeakCategories = append(input.WeakCategories, b.Category)
				}
			}
		}

		svc := coach.NewService(provider, coach.DefaultConfig())
		svc.RequestNote(ctx, input)

		fmt.Println("Thinking...")
		deadline := time.Now().Add(60 * time.Second)
		for time.Now().Before(deadline) {
			if err := svc.LastErr(); err != nil {
				return fmt.Errorf("generating note: %w", err)
			}
			if note, ok := svc.ConsumeNote(); ok {
				fmt.Printf("\n%s\n\n%s\n\nFocus: %s\n%s\n",
					note.Title, note.Body, note.FocusArea, note.Encouragement)
				return nil
			}
			time.Sleep(100 * time.Millisecond)
		}
		return fmt.Errorf("timed out waiting for the coaching note")
	},
}
