package catalog

import (
	"context"

	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalog/syncer"

	"go.uber.org/zap"
)

// Runner is the sync surface the HTTP layer drives.
type Runner interface {
	Run(ctx context.Context, kind models.SyncKind, opts syncer.Options) (*models.SyncResult, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// Service binds a Runner to request defaults.
type Service struct {
	runner       Runner
	logger       *zap.Logger
	cacheDefault bool
}

// NewService creates a new catalog service. cacheDefault applies when a request
// does not set the cache flag.
func NewService(runner Runner, logger *zap.Logger, cacheDefault bool) *Service {
	return &Service{runner: runner, logger: logger, cacheDefault: cacheDefault}
}

// Run starts a pass of the given kind.
func (s *Service) Run(ctx context.Context, kind models.SyncKind, opts syncer.Options) (*models.SyncResult, error) {
	return s.runner.Run(ctx, kind, opts)
}

// Stats returns catalog statistics.
func (s *Service) Stats(ctx context.Context) (*models.Stats, error) {
	return s.runner.Stats(ctx)
}
