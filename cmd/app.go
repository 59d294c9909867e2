package cmd

import (
	"context"
	"fmt"
	"time"

	"catalog-sync/core/cache"
	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/logger"
	"catalog-sync/core/redis"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog/store"
	"catalog-sync/feature/catalog/syncer"
	"catalog-sync/feature/catalog/upstream"
	"catalog-sync/feature/integrity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// application holds the wired components shared by commands.
type application struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	store   *store.GormStore
	live    *upstream.Catalog
	cached  *upstream.Catalog
	service *syncer.Service
	redis   *redis.Client
	objects storage.Client
}

// loadBase loads configuration, the logger and the database. With
// requireUpstream the configuration is validated first, so missing upstream
// credentials fail before any connection is made.
func loadBase(requireUpstream bool) (*application, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if requireUpstream {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	st := store.New(db, store.Options{
		UpsertBatchSize: cfg.Sync.UpsertBatchSize,
		DeleteBatchSize: cfg.Sync.DeleteBatchSize,
		ListPageSize:    cfg.Sync.ListPageSize,
	}, l)

	return &application{cfg: cfg, logger: l, db: db, store: st}, nil
}

// bootstrap wires everything a sync pass needs.
func bootstrap() (*application, error) {
	app, err := loadBase(true)
	if err != nil {
		return nil, err
	}
	cfg, l := app.cfg, app.logger

	if cfg.Redis.Enabled || cfg.Cache.Backend == cache.BackendRedis {
		rc, err := redis.NewClient(cfg.Redis, l)
		if err != nil {
			return nil, err
		}
		app.redis = rc
	}

	client := upstream.NewClient(cfg.Upstream, l)
	app.live = upstream.NewCatalog(client)

	if cacheStore, err := app.buildCache(); err != nil {
		l.Warn("Response cache unavailable, passes will fetch live", zap.Error(err))
	} else {
		app.cached = upstream.NewCatalog(upstream.NewCachedFetcher(client, cacheStore, cfg.Cache.MaxAge(), l))
	}

	var guard syncer.Guard = syncer.NewLocalGuard()
	if cfg.Redis.Enabled {
		ttl := time.Duration(cfg.Sync.LockTTLSeconds) * time.Second
		guard = syncer.NewRedisGuard(redis.NewLocker(app.redis), ttl, l)
	}

	var cached syncer.Catalog
	if app.cached != nil {
		cached = app.cached
	}
	app.service = syncer.NewService(app.live, cached, app.store, guard, l)
	return app, nil
}

func (a *application) buildCache() (cache.Store, error) {
	deps := cache.Deps{Redis: a.redis, Bucket: a.cfg.Storage.Bucket}

	if a.cfg.Cache.Backend == cache.BackendObject {
		client, err := a.objectClient()
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := storage.EnsureBucket(ctx, client, a.cfg.Storage.Bucket, a.cfg.Storage.Region); err != nil {
			return nil, err
		}
		deps.Objects = client
	}

	return cache.New(a.cfg.Cache, deps)
}

// objectClient returns the object storage client, or nil when the object
// cache backend is not configured.
func (a *application) objectClient() (storage.Client, error) {
	if a.objects != nil || a.cfg.Cache.Backend != cache.BackendObject {
		return a.objects, nil
	}
	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return nil, err
	}
	a.objects = client
	return client, nil
}

// integrityConfig maps configuration onto the integrity checks.
func (a *application) integrityConfig() integrity.Config {
	return integrity.Config{
		Bucket:     a.cfg.Storage.Bucket,
		Region:     a.cfg.Storage.Region,
		StaleAfter: time.Duration(a.cfg.Sync.StaleAfterSeconds) * time.Second,
	}
}

// close releases connections held by the application.
func (a *application) close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}
