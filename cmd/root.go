package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/finlingo/finlingo/internal/catalog"
	"github.com/finlingo/finlingo/internal/engine"
	"github.com/finlingo/finlingo/internal/progress"
	"github.com/finlingo/finlingo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "finlingo",
	Short: "Language learning companion",
	Long:  "Finlingo is a terminal companion for language learners: progress, streaks, achievements, and course recommendations.",
}

func Execute() error {
	// .env is optional and never overrides real environment variables.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FINLINGO_DB env var)")

	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(tipCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then FINLINGO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine opens the store and wires the engine with loaded progress.
// The caller must Close the returned store.
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, *progress.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		_ = st.Close()
		return nil, nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	progressStore := progress.NewStore(st.SnapshotRepo(), st.EventRepo(), nil)
	progressStore.Load(cmd.Context())

	eng, err := engine.New(cmd.Context(), cat, progressStore, st.EventRepo(), nil, nil)
	if err != nil {
		_ = st.Close()
		return nil, nil, nil, fmt.Errorf("wire engine: %w", err)
	}
	return eng, st, progressStore, nil
}
