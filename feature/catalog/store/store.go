package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-sync/core/reconcile"
	"catalog-sync/feature/catalog/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options controls statement sizes.
type Options struct {
	UpsertBatchSize int
	DeleteBatchSize int
	ListPageSize    int
}

// DefaultOptions returns the batch sizes used when none are configured.
func DefaultOptions() Options {
	return Options{UpsertBatchSize: 100, DeleteBatchSize: 100, ListPageSize: 1000}
}

// GormStore persists products and the sync ledger through gorm.
type GormStore struct {
	db     *gorm.DB
	opts   Options
	logger *zap.Logger
}

// New creates a store. Zero option fields fall back to DefaultOptions.
func New(db *gorm.DB, opts Options, logger *zap.Logger) *GormStore {
	def := DefaultOptions()
	if opts.UpsertBatchSize <= 0 {
		opts.UpsertBatchSize = def.UpsertBatchSize
	}
	if opts.DeleteBatchSize <= 0 {
		opts.DeleteBatchSize = def.DeleteBatchSize
	}
	if opts.ListPageSize <= 0 {
		opts.ListPageSize = def.ListPageSize
	}
	return &GormStore{db: db, opts: opts, logger: logger}
}

// Tables lists the tables the store owns.
func Tables() []string {
	return []string{models.Product{}.TableName(), models.SyncLog{}.TableName()}
}

// Migrate creates or updates the products and sync_logs tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Product{}, &models.SyncLog{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return s.pinKeyCollation(ctx)
}

// pinKeyCollation makes SKU comparison byte-exact on MySQL, matching the
// in-memory deletion diff. "abc-1" and "ABC-1" are distinct keys.
func (s *GormStore) pinKeyCollation(ctx context.Context) error {
	if s.db.Dialector.Name() != "mysql" {
		return nil
	}
	ddl := fmt.Sprintf("ALTER TABLE `%s` MODIFY `sku` varchar(191) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL",
		models.Product{}.TableName())
	if err := s.db.WithContext(ctx).Exec(ddl).Error; err != nil {
		return fmt.Errorf("failed to set sku collation: %w", err)
	}
	return nil
}

// Upsert writes products keyed by SKU, overwriting existing rows in full.
// Products with an empty SKU are skipped. On failure the count of rows from
// batches that completed is returned with the error.
func (s *GormStore) Upsert(ctx context.Context, products []models.Product) (int, error) {
	rows := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.SKU != "" {
			rows = append(rows, p)
		}
	}

	written, err := reconcile.ApplyInBatches(ctx, rows, s.opts.UpsertBatchSize, func(ctx context.Context, batch []models.Product) (int, error) {
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "sku"}},
				UpdateAll: true,
			}).
			Create(&batch).Error
		if err != nil {
			return 0, err
		}
		return len(batch), nil
	})
	if err != nil {
		return written, fmt.Errorf("failed to upsert products: %w", err)
	}

	s.logger.Debug("Upserted products", zap.Int("products", written))
	return written, nil
}

// ListAllSKUs enumerates every persisted SKU, one page at a time.
func (s *GormStore) ListAllSKUs(ctx context.Context) ([]string, error) {
	skus, err := reconcile.Paginate(ctx, s.opts.ListPageSize, func(ctx context.Context, offset, limit int) ([]string, error) {
		var page []string
		err := s.db.WithContext(ctx).
			Model(&models.Product{}).
			Order("sku").
			Offset(offset).
			Limit(limit).
			Pluck("sku", &page).Error
		return page, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list skus: %w", err)
	}
	return skus, nil
}

// DeleteBySKUs removes the given SKUs and returns the rows actually deleted.
func (s *GormStore) DeleteBySKUs(ctx context.Context, skus []string) (int, error) {
	deleted, err := reconcile.ApplyInBatches(ctx, skus, s.opts.DeleteBatchSize, func(ctx context.Context, batch []string) (int, error) {
		res := s.db.WithContext(ctx).Where("sku IN ?", batch).Delete(&models.Product{})
		if res.Error != nil {
			return 0, res.Error
		}
		return int(res.RowsAffected), nil
	})
	if err != nil {
		return deleted, fmt.Errorf("failed to delete products: %w", err)
	}
	return deleted, nil
}

// ListKeys implements reconcile.Target.
func (s *GormStore) ListKeys(ctx context.Context) ([]string, error) {
	return s.ListAllSKUs(ctx)
}

// DeleteKeys implements reconcile.Target.
func (s *GormStore) DeleteKeys(ctx context.Context, keys []string) (int, error) {
	return s.DeleteBySKUs(ctx, keys)
}

// CountProducts returns the number of persisted products.
func (s *GormStore) CountProducts(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// AppendLedgerEntry stores one ledger entry.
func (s *GormStore) AppendLedgerEntry(ctx context.Context, entry *models.SyncLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

// LastSuccessfulSync returns the completion time of the newest completed pass,
// or nil when no pass has completed.
func (s *GormStore) LastSuccessfulSync(ctx context.Context) (*time.Time, error) {
	var entry models.SyncLog
	err := s.db.WithContext(ctx).
		Where("status IN ?", []string{string(models.StatusSuccess), string(models.StatusPartial)}).
		Order("completed_at DESC").
		Order("id DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sync watermark: %w", err)
	}
	return &entry.CompletedAt, nil
}

// LatestEntry returns the newest ledger entry of any status, or nil.
func (s *GormStore) LatestEntry(ctx context.Context) (*models.SyncLog, error) {
	var entry models.SyncLog
	err := s.db.WithContext(ctx).Order("id DESC").First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read latest ledger entry: %w", err)
	}
	return &entry, nil
}
