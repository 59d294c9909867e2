package integrity

import (
	"context"
	"errors"
	"time"

	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrBucketNotConfigured is returned by bucket checks when the object cache
// backend is not in use.
var ErrBucketNotConfigured = errors.New("object storage is not configured")

// Store is the part of the catalog store the checks need.
type Store interface {
	checks.LedgerReader
	Migrate(ctx context.Context) error
}

// Config holds parameters for the checks.
type Config struct {
	Bucket     string
	Region     string
	StaleAfter time.Duration
}

// Service handles integrity checks.
type Service struct {
	db     *gorm.DB
	store  Store
	client storage.Client
	cfg    Config
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new integrity service. client may be nil when the
// object cache backend is not used.
func NewService(db *gorm.DB, store Store, client storage.Client, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		db:     db,
		store:  store,
		client: client,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// CheckSchema compares the catalog models against the database.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, &models.Product{}, &models.SyncLog{})
}

// FixSchema migrates the catalog tables.
func (s *Service) FixSchema(ctx context.Context) error {
	return s.store.Migrate(ctx)
}

// CheckBucket reports whether the cache bucket exists.
func (s *Service) CheckBucket(ctx context.Context) (*checks.BucketReport, error) {
	if s.client == nil {
		return nil, ErrBucketNotConfigured
	}
	return checks.CheckBucket(ctx, s.client, s.cfg.Bucket)
}

// FixBucket creates the cache bucket.
func (s *Service) FixBucket(ctx context.Context) error {
	if s.client == nil {
		return ErrBucketNotConfigured
	}
	return checks.FixBucket(ctx, s.client, s.cfg.Bucket, s.cfg.Region, s.logger)
}

// CheckLedger classifies the newest ledger entries.
func (s *Service) CheckLedger(ctx context.Context) (*checks.LedgerReport, error) {
	return checks.CheckLedger(ctx, s.store, s.cfg.StaleAfter, s.now())
}

// RunAll runs every check and collects the results by name. Failed checks
// are reported inline.
func (s *Service) RunAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if schema, err := s.CheckSchema(); err != nil {
		report["schema"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if bucket, err := s.CheckBucket(ctx); errors.Is(err, ErrBucketNotConfigured) {
		report["bucket"] = map[string]any{"status": "skipped"}
	} else if err != nil {
		report["bucket"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["bucket"] = bucket
	}

	if ledger, err := s.CheckLedger(ctx); err != nil {
		report["ledger"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["ledger"] = ledger
	}

	return report
}
