package cmd

import (
	"context"
	"errors"

	"catalog-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform readiness checks on the catalog deployment",
	Long:  `Checks the catalog tables, the cache bucket and the sync ledger, and prints the combined report as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return withIntegrity(func(svc *integrity.Service, l *zap.Logger) error {
			return printJSON(svc.RunAll(cmd.Context()))
		})
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check and fix the catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(func(svc *integrity.Service, l *zap.Logger) error {
			return runSchemaCheck(cmd.Context(), svc, l)
		})
	},
}

// bucketCmd represents the integrity bucket command
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Check and fix the object cache bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(func(svc *integrity.Service, l *zap.Logger) error {
			return runBucketCheck(cmd.Context(), svc, l)
		})
	},
}

// ledgerCmd represents the integrity ledger command
var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Report the sync ledger state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withIntegrity(func(svc *integrity.Service, l *zap.Logger) error {
			report, err := svc.CheckLedger(cmd.Context())
			if err != nil {
				return err
			}
			if report.Status != "ok" {
				l.Warn("Ledger needs attention", zap.String("status", report.Status))
			}
			return printJSON(report)
		})
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(schemaCmd, bucketCmd, ledgerCmd)

	schemaCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate missing tables and columns")
	bucketCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket")
}

// withIntegrity wires the integrity service without requiring upstream credentials.
func withIntegrity(fn func(svc *integrity.Service, l *zap.Logger) error) error {
	a, err := loadBase(false)
	if err != nil {
		return err
	}
	defer a.close()

	client, err := a.objectClient()
	if err != nil {
		a.logger.Warn("Object storage unavailable, bucket check skipped", zap.Error(err))
	}

	return fn(integrity.NewService(a.db, a.store, client, a.integrityConfig(), a.logger), a.logger)
}

func runSchemaCheck(ctx context.Context, svc *integrity.Service, l *zap.Logger) error {
	l.Info("Checking catalog schema...")
	report, err := svc.CheckSchema()
	if err != nil {
		return err
	}

	if report.Matched {
		l.Info("Schema matches the catalog models.")
		return nil
	}

	for table, tbl := range report.Tables {
		if tbl.Status != "ok" {
			l.Warn("Schema mismatch", zap.String("table", table), zap.String("status", tbl.Status), zap.Strings("missing_columns", tbl.MissingColumns))
		}
	}

	if !fixFlag {
		l.Info("Run with --fix to migrate the catalog tables.")
		return nil
	}

	l.Info("Migrating catalog tables...")
	if err := svc.FixSchema(ctx); err != nil {
		return err
	}
	l.Info("Schema fixed successfully.")
	return nil
}

func runBucketCheck(ctx context.Context, svc *integrity.Service, l *zap.Logger) error {
	l.Info("Checking cache bucket...")
	report, err := svc.CheckBucket(ctx)
	if errors.Is(err, integrity.ErrBucketNotConfigured) {
		l.Info("Object cache backend not configured, nothing to check.")
		return nil
	}
	if err != nil {
		return err
	}

	if report.Exists {
		l.Info("Cache bucket exists.", zap.String("bucket", report.Bucket))
		return nil
	}

	l.Warn("Cache bucket missing", zap.String("bucket", report.Bucket))
	if !fixFlag {
		l.Info("Run with --fix to create the bucket.")
		return nil
	}

	if err := svc.FixBucket(ctx); err != nil {
		return err
	}
	l.Info("Cache bucket created.", zap.String("bucket", report.Bucket))
	return nil
}
