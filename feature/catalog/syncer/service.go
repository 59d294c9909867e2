package syncer

import (
	"context"
	"fmt"
	"time"

	"catalog-sync/core/metrics"
	corereconcile "catalog-sync/core/reconcile"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/reconcile"

	"go.uber.org/zap"
)

// Catalog is the typed upstream source of one pass.
type Catalog interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Items(ctx context.Context, since *time.Time) ([]models.Item, error)
	Variants(ctx context.Context, since *time.Time) ([]models.Variant, error)
	Inventory(ctx context.Context) ([]models.InventoryLevel, error)
}

// Store is the persisted side of a pass.
type Store interface {
	corereconcile.Target
	Upsert(ctx context.Context, products []models.Product) (int, error)
	LastSuccessfulSync(ctx context.Context) (*time.Time, error)
	AppendLedgerEntry(ctx context.Context, entry *models.SyncLog) error
	CountProducts(ctx context.Context) (int64, error)
	LatestEntry(ctx context.Context) (*models.SyncLog, error)
}

// Options selects per-invocation behaviour.
type Options struct {
	// UseCache reads upstream collections through the response cache.
	UseCache bool
}

// Service runs sync passes.
type Service struct {
	live   Catalog
	cached Catalog
	store  Store
	guard  Guard
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a sync service. cached may be nil when no cache is configured.
func NewService(live, cached Catalog, store Store, guard Guard, logger *zap.Logger) *Service {
	if guard == nil {
		guard = NewLocalGuard()
	}
	return &Service{
		live:   live,
		cached: cached,
		store:  store,
		guard:  guard,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes one pass of the given kind under the guard. Pass failures are
// reported in the result; the returned error is set only when no pass started.
func (s *Service) Run(ctx context.Context, kind models.SyncKind, opts Options) (*models.SyncResult, error) {
	if _, ok := models.ParseSyncKind(string(kind)); !ok {
		return nil, fmt.Errorf("unknown sync kind %q", kind)
	}

	release, err := s.guard.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if kind == models.KindIncremental {
		return s.Incremental(ctx, opts), nil
	}
	return s.Full(ctx, opts), nil
}

// Full fetches every collection, upserts all products and deletes products no
// longer present upstream. It does not take the guard.
func (s *Service) Full(ctx context.Context, opts Options) *models.SyncResult {
	catalog := s.catalogFor(opts)
	return s.execute(ctx, models.KindFull, nil, func(res *models.SyncResult) error {
		snapshot, err := fetchSnapshot(ctx, catalog, nil)
		if err != nil {
			return err
		}

		flat := s.flatten(snapshot, res)

		res.ProductsSynced, err = s.store.Upsert(ctx, flat.Products)
		if err != nil {
			return err
		}

		plan, deleted, err := corereconcile.ReconcileAndApply(ctx, s.store, flat.SKUs())
		res.ProductsDeleted = deleted
		if plan != nil {
			s.logger.Info("Applied deletions",
				zap.Int("persisted", plan.Summary.Persisted),
				zap.Int("current", plan.Summary.Current),
				zap.Int("planned", plan.Summary.Deletions),
				zap.Int("deleted", deleted))
		}
		return err
	})
}

// Incremental fetches items and variants changed since the last completed
// pass and upserts the affected products. Without a prior completed pass it
// runs Full instead. It never deletes and does not take the guard.
func (s *Service) Incremental(ctx context.Context, opts Options) *models.SyncResult {
	since, err := s.store.LastSuccessfulSync(ctx)
	if err != nil {
		return s.execute(ctx, models.KindIncremental, nil, func(*models.SyncResult) error {
			return err
		})
	}
	if since == nil {
		s.logger.Info("No completed sync recorded, running full sync")
		return s.Full(ctx, opts)
	}

	catalog := s.catalogFor(opts)
	return s.execute(ctx, models.KindIncremental, since, func(res *models.SyncResult) error {
		snapshot, err := fetchSnapshot(ctx, catalog, since)
		if err != nil {
			return err
		}

		if missing := reconcile.MissingItemRefs(snapshot.Variants, snapshot.Items); len(missing) > 0 {
			s.logger.Info("Updated variants reference unchanged items, fetching all items",
				zap.Int("missing", len(missing)))
			all, err := catalog.Items(ctx, nil)
			if err != nil {
				return fmt.Errorf("failed to fetch items for cross-reference repair: %w", err)
			}
			snapshot.Items = reconcile.FillItems(snapshot.Items, all, missing)
		}

		flat := s.flatten(snapshot, res)

		res.ProductsSynced, err = s.store.Upsert(ctx, flat.Products)
		return err
	})
}

// Stats returns the product count and the latest ledger entry.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	count, err := s.store.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	latest, err := s.store.LatestEntry(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Stats{TotalProducts: count, LastSync: latest}, nil
}

func (s *Service) catalogFor(opts Options) Catalog {
	if opts.UseCache && s.cached != nil {
		return s.cached
	}
	return s.live
}

func (s *Service) flatten(snapshot reconcile.Snapshot, res *models.SyncResult) *reconcile.Result {
	flat := reconcile.Flatten(snapshot)
	for _, w := range flat.Warnings() {
		s.logger.Warn("Catalog resolution warning", zap.String("kind", string(res.Kind)), zap.String("warning", w))
		res.Warnings = append(res.Warnings, w)
	}
	return flat
}

// execute runs body as one pass and records exactly one ledger entry for it,
// including when body panics.
func (s *Service) execute(ctx context.Context, kind models.SyncKind, since *time.Time, body func(res *models.SyncResult) error) (res *models.SyncResult) {
	res = &models.SyncResult{
		Kind:      kind,
		Since:     since,
		StartedAt: s.now().UTC(),
		Errors:    []string{},
		Warnings:  []string{},
	}
	s.logger.Info("Sync started", zap.String("kind", string(kind)))

	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during %s sync: %v", kind, r)
		}
		s.finish(ctx, res, err)
	}()

	err = body(res)
	return res
}

func (s *Service) finish(ctx context.Context, res *models.SyncResult, err error) {
	res.CompletedAt = s.now().UTC()

	switch {
	case err != nil:
		res.Errors = append(res.Errors, err.Error())
		res.Status = models.StatusFailed
	case len(res.Warnings) > 0:
		res.Status = models.StatusPartial
	default:
		res.Status = models.StatusSuccess
	}

	entry := models.NewSyncLog(res)
	if lerr := s.store.AppendLedgerEntry(context.WithoutCancel(ctx), &entry); lerr != nil {
		s.logger.Error("Failed to record sync ledger entry", zap.String("kind", string(res.Kind)), zap.Error(lerr))
	}

	metrics.RecordSyncPass(string(res.Kind), string(res.Status), res.Duration().Seconds(), res.ProductsSynced, res.ProductsDeleted)

	fields := []zap.Field{
		zap.String("kind", string(res.Kind)),
		zap.String("status", string(res.Status)),
		zap.Int("products", res.ProductsSynced),
		zap.Int("deleted", res.ProductsDeleted),
		zap.Int("warnings", len(res.Warnings)),
		zap.Duration("duration", res.Duration()),
	}
	if err != nil {
		s.logger.Error("Sync failed", append(fields, zap.Error(err))...)
		return
	}
	s.logger.Info("Sync completed", fields...)
}

func fetchSnapshot(ctx context.Context, catalog Catalog, since *time.Time) (reconcile.Snapshot, error) {
	var (
		snap reconcile.Snapshot
		err  error
	)
	if snap.Categories, err = catalog.Categories(ctx); err != nil {
		return snap, fmt.Errorf("failed to fetch categories: %w", err)
	}
	if snap.Items, err = catalog.Items(ctx, since); err != nil {
		return snap, fmt.Errorf("failed to fetch items: %w", err)
	}
	if snap.Variants, err = catalog.Variants(ctx, since); err != nil {
		return snap, fmt.Errorf("failed to fetch variants: %w", err)
	}
	if snap.Inventory, err = catalog.Inventory(ctx); err != nil {
		return snap, fmt.Errorf("failed to fetch inventory: %w", err)
	}
	return snap, nil
}
