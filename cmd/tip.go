package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tipCmd = &cobra.Command{
	Use:   "tip",
	Short: "Show a study tip",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, _, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		tip := eng.GetDailyTip()
		fmt.Printf("%s\n%s\n", tip.Title, tip.Body)
		return nil
	},
}
