package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finlingo/finlingo/internal/vocabimport"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import vocabulary from a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := vocabimport.DefaultConfig(args[0])
		if sheet, _ := cmd.Flags().GetString("sheet"); sheet != "" {
			cfg.SheetName = sheet
		}

		result, err := vocabimport.Import(cfg)
		if err != nil {
			return fmt.Errorf("import vocabulary: %w", err)
		}

		fmt.Printf("Processed %d rows: %d imported, %d skipped.\n",
			result.TotalProcessed, result.Imported, result.Skipped)
		for _, e := range result.Errors {
			fmt.Fprintln(os.Stderr, "warning:", e)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			data, err := json.MarshalIndent(result.Items, "", "  ")
			if err != nil {
				return fmt.Errorf("encode vocabulary: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write vocabulary: %w", err)
			}
			fmt.Printf("Vocabulary written to %s\n", out)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "", "Worksheet name (default Sheet1)")
	importCmd.Flags().String("out", "", "Write imported vocabulary as JSON to this file")
}
