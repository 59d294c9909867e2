package cmd

import (
	"catalog-sync/feature/catalog/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the catalog tables.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the products and sync_logs tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadBase(false)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.Migrate(cmd.Context()); err != nil {
			return err
		}
		a.logger.Info("Catalog tables ready", zap.Strings("tables", store.Tables()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
