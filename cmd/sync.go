package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/syncer"

	"github.com/spf13/cobra"
)

var (
	// Flags for sync commands
	useCacheFlag bool
	noCacheFlag  bool
)

// syncCmd is the parent command for sync passes.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a catalog sync pass",
	Long: `Runs one sync pass against the upstream catalog and prints the result as JSON.

Examples:
  # Fetch everything, upsert, and delete products no longer upstream
  sync full

  # Fetch changes since the last completed pass (falls back to full)
  sync incremental --cache

  # Product count and the latest ledger entry
  sync stats`,
}

var syncFullCmd = &cobra.Command{
	Use:   "full",
	Short: "Run a full sync pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyncPass(cmd, models.KindFull)
	},
}

var syncIncrementalCmd = &cobra.Command{
	Use:   "incremental",
	Short: "Run an incremental sync pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSyncPass(cmd, models.KindIncremental)
	},
}

var syncStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show product count and the latest ledger entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadBase(false)
		if err != nil {
			return err
		}
		defer a.close()

		stats, err := syncer.NewService(nil, nil, a.store, nil, a.logger).Stats(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(stats)
	},
}

func init() {
	for _, c := range []*cobra.Command{syncFullCmd, syncIncrementalCmd} {
		c.Flags().BoolVar(&useCacheFlag, "cache", false, "Read upstream collections through the response cache")
		c.Flags().BoolVar(&noCacheFlag, "no-cache", false, "Bypass the response cache even when CACHE_ENABLED is set")
		syncCmd.AddCommand(c)
	}
	syncCmd.AddCommand(syncStatsCmd)
	RootCmd.AddCommand(syncCmd)
}

func runSyncPass(cmd *cobra.Command, kind models.SyncKind) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	opts := syncer.Options{UseCache: (a.cfg.Cache.Enabled || useCacheFlag) && !noCacheFlag}

	res, err := a.service.Run(cmd.Context(), kind, opts)
	if err != nil {
		return err
	}
	if err := printJSON(res); err != nil {
		return err
	}
	if res.Failed() {
		return fmt.Errorf("%s sync failed: %v", res.Kind, res.Errors)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
