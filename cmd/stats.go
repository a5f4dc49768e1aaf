package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, _, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		p := eng.Progress()
		streak := eng.AnalyzeStreak()

		if next, ok := p.Level.Next(); ok {
			fmt.Printf("Level: %s (%d XP, next level at %d)\n", p.Level.DisplayName(), p.Experience, next.ExperienceRequired())
		} else {
			fmt.Printf("Level: %s (%d XP)\n", p.Level.DisplayName(), p.Experience)
		}
		fmt.Printf("Lessons completed: %d\n", p.TotalLessonsCompleted)
		fmt.Printf("Courses completed: %d\n", len(p.CompletedCourses))
		fmt.Printf("Time studied: %d min\n", p.TotalTimeSpentMinutes)
		fmt.Printf("Streak: %d days (longest %d)\n", p.CurrentStreak, p.LongestStreak)
		fmt.Printf("Consistency: %d/100 (%s)\n", streak.ConsistencyScore, streak.ConsistencyRating)
		fmt.Printf("Study frequency: %s\n", streak.StudyFrequency)

		if len(p.Achievements) > 0 {
			fmt.Println("\nAchievements:")
			for _, a := range p.Achievements {
				fmt.Printf("  %s - %s\n", a.Title, a.Description)
			}
		}

		fmt.Println("\nChallenges:")
		for _, c := range eng.GetChallenges() {
			ratio := c.Progress
			if ratio > 1 {
				ratio = 1
			}
			fmt.Printf("  %-16s %d/%d (%.0f%%)\n", c.Title, c.Current, c.Target, ratio*100)
		}

		if breakdown, err := eng.CategoryBreakdown(cmd.Context()); err == nil && len(breakdown) > 0 {
			fmt.Println("\nBy category:")
			for _, b := range breakdown {
				fmt.Printf("  %-14s %3d lessons, avg %.0f%%\n", b.Category, b.Lessons, b.AverageScore)
			}
		}

		return nil
	},
}
