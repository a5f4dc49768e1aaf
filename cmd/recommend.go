package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest courses to study next",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, _, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		limit, _ := cmd.Flags().GetInt("limit")
		recs := eng.GetRecommendations(limit)
		if len(recs) == 0 {
			fmt.Println("No recommendations right now. Try completing a lesson first.")
			return nil
		}

		for i, r := range recs {
			fmt.Printf("%d. %s [%s, %s] - %.0f%% match, %s priority\n",
				i+1, r.Course.Title, r.Course.Category.DisplayName(), r.Course.Difficulty,
				r.Confidence*100, r.Priority)
			if r.Reason != "" {
				fmt.Printf("   %s\n", r.Reason)
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().Int("limit", 3, "Maximum number of recommendations")
}
