package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finlingo/finlingo/internal/session"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <course-id> <lesson-id>",
	Short: "Complete a lesson by answering its questions",
	Long: "Runs a lesson non-interactively. Pass answers as a comma-separated\n" +
		"list of option indexes via --answers; use -1 to skip a question.\n" +
		"Questions without an answer count as skipped.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, _, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		raw, _ := cmd.Flags().GetString("answers")
		answers, err := parseAnswers(raw)
		if err != nil {
			return err
		}

		s, err := eng.StartLesson(args[0], args[1])
		if err != nil {
			return err
		}

		for i := 0; s.Status() == session.StatusInProgress; i++ {
			if i < len(answers) && answers[i] >= 0 {
				if err := s.SelectAnswer(answers[i]); err != nil {
					return fmt.Errorf("question %d: %w", i+1, err)
				}
			}
			if err := s.Next(); err != nil {
				return fmt.Errorf("advancing session: %w", err)
			}
		}

		res, err := s.Result()
		if err != nil {
			return err
		}
		if minutes, _ := cmd.Flags().GetInt("minutes"); minutes > 0 {
			res.TimeSpentMinutes = minutes
		}

		if err := eng.OnLessonCompleted(cmd.Context(), res); err != nil {
			return fmt.Errorf("recording lesson: %w", err)
		}

		p := eng.Progress()
		fmt.Printf("Score: %.0f%% (%d/%d correct)\n", res.Score, res.QuestionsCorrect, res.QuestionsTotal)
		fmt.Printf("Streak: %d days, %d XP total\n", p.CurrentStreak, p.Experience)
		return nil
	},
}

// parseAnswers turns "0,2,-1,1" into option indexes; -1 marks a skip.
func parseAnswers(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", part, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func init() {
	lessonCmd.Flags().String("answers", "", "Comma-separated option indexes, -1 to skip")
	lessonCmd.Flags().Int("minutes", 0, "Minutes spent on the lesson (overrides wall-clock)")
}
