package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finlingo/finlingo/internal/catalog"
	"github.com/finlingo/finlingo/internal/syncer"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the course catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		remote, _ := cmd.Flags().GetString("remote-version")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		s := syncer.New(
			syncer.WithRemoteVersion(remote),
			syncer.WithTimeout(timeout),
		)

		result, err := s.Sync(cmd.Context(), cat.Version(), func(p syncer.Progress) {
			fmt.Println(p.Message)
		})
		if errors.Is(err, syncer.ErrAlreadyCurrent) {
			fmt.Printf("Catalog %s is up to date.\n", cat.Version())
			return nil
		}
		if err != nil {
			var netErr *syncer.NetworkError
			if errors.As(err, &netErr) && netErr.Timeout() {
				return fmt.Errorf("sync timed out, try again: %w", err)
			}
			return err
		}

		fmt.Printf("Synced to catalog %s in %s.\n", result.CatalogVersion, result.Duration.Round(time.Millisecond))
		return nil
	},
}

func init() {
	syncCmd.Flags().String("remote-version", "", "Catalog version reported by the remote")
	syncCmd.Flags().Duration("timeout", 30*time.Second, "Per-transfer timeout")
}
