package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a progress report",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, _, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		text, err := eng.ExportProgressReport(cmd.Context())
		if err != nil {
			return fmt.Errorf("export report: %w", err)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("Report written to %s\n", out)
			return nil
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	reportCmd.Flags().String("out", "", "Write the report to a file instead of stdout")
}
