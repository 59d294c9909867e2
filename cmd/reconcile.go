package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/syncer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	applyReconcile bool
	yesConfirm     bool
	cacheReconcile bool
)

// reconcileCmd previews the deletions a full pass would make.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Preview products a full sync would delete",
	Long: `Fetches the upstream catalog and compares it with the products table without
writing anything. Optionally runs the full sync pass afterwards.

Examples:
  # Report only
  reconcile

  # Report, then run a full sync after confirmation
  reconcile --apply

  # Non-interactive
  reconcile --apply --yes`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&applyReconcile, "apply", false, "Run a full sync pass after the report")
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	reconcileCmd.Flags().BoolVar(&cacheReconcile, "cache", false, "Read upstream collections through the response cache")
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()
	l := a.logger

	opts := syncer.Options{UseCache: cacheReconcile}

	l.Info("Planning reconciliation...")
	preview, err := a.service.PreviewFull(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to plan reconciliation: %w", err)
	}

	printReconcileReport(l, preview)

	if !applyReconcile {
		l.Info("No actions requested. Use --apply to run a full sync.")
		return nil
	}

	if len(preview.Plan.Deletions) > 0 && !confirmDestructiveAction() {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	// The preview was read through the cache; the pass itself always fetches live
	res, err := a.service.Run(ctx, models.KindFull, syncer.Options{})
	if err != nil {
		return err
	}
	if res.Failed() {
		return fmt.Errorf("full sync failed: %v", res.Errors)
	}

	l.Info("Full sync applied",
		zap.Int("products", res.ProductsSynced),
		zap.Int("deleted", res.ProductsDeleted),
	)
	return nil
}

// printReconcileReport prints a formatted reconciliation report using logger.
func printReconcileReport(l *zap.Logger, preview *syncer.Preview) {
	s := preview.Plan.Summary

	l.Info("Reconciliation report",
		zap.Int("upstream_products", preview.Products),
		zap.Int("persisted", s.Persisted),
		zap.Int("kept", s.Kept),
		zap.Int("added", s.Added),
		zap.Int("deletions", s.Deletions),
		zap.Int("warnings", len(preview.Warnings)),
	)

	for _, w := range preview.Warnings {
		l.Warn("Resolution warning", zap.String("warning", w))
	}

	// Show a sample of deletions
	maxShow := min(5, len(preview.Plan.Deletions))
	for _, sku := range preview.Plan.Deletions[:maxShow] {
		l.Info("Planned deletion", zap.String("sku", sku))
	}
	if len(preview.Plan.Deletions) > maxShow {
		l.Info("Additional deletions not shown", zap.Int("count", len(preview.Plan.Deletions)-maxShow))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\nAuto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\nType 'yes' to confirm deleting products: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
