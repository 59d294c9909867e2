package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"catalog-sync/core/redis"

	"go.uber.org/zap"
)

// ErrSyncInProgress is returned when another pass holds the guard.
var ErrSyncInProgress = errors.New("sync already in progress")

// LockKey is the fixed resource the distributed guard leases.
const LockKey = "catalog-sync"

// Guard admits at most one pass at a time. Acquire never waits.
type Guard interface {
	Acquire(ctx context.Context) (release func(), err error)
}

// LocalGuard serializes passes within one process.
type LocalGuard struct {
	mu sync.Mutex
}

// NewLocalGuard creates an in-process guard.
func NewLocalGuard() *LocalGuard {
	return &LocalGuard{}
}

// Acquire takes the guard or returns ErrSyncInProgress.
func (g *LocalGuard) Acquire(_ context.Context) (func(), error) {
	if !g.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	return g.mu.Unlock, nil
}

// Locker takes a lease on a key.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (*redis.Lock, error)
}

// Lease is a held distributed lock.
type Lease interface {
	Extend(ctx context.Context, ttl time.Duration) error
	Release(ctx context.Context) error
}

// RedisGuard serializes passes across processes with a Redis lease.
// The ttl bounds how long a crashed holder blocks other passes. While a pass
// runs the lease is renewed every third of the ttl, so a pass may outlive it.
type RedisGuard struct {
	acquire    func(ctx context.Context, key string, ttl time.Duration) (Lease, error)
	ttl        time.Duration
	renewEvery time.Duration
	logger     *zap.Logger
}

// NewRedisGuard creates a distributed guard.
func NewRedisGuard(locker Locker, ttl time.Duration, logger *zap.Logger) *RedisGuard {
	acquire := func(ctx context.Context, key string, ttl time.Duration) (Lease, error) {
		lock, err := locker.Acquire(ctx, key, ttl)
		if err != nil {
			return nil, err
		}
		return lock, nil
	}
	return &RedisGuard{acquire: acquire, ttl: ttl, renewEvery: renewInterval(ttl), logger: logger}
}

func renewInterval(ttl time.Duration) time.Duration {
	if every := ttl / 3; every > 0 {
		return every
	}
	return time.Second
}

// Acquire takes the lease or returns ErrSyncInProgress. The lease is kept
// alive until the returned release func is called.
func (g *RedisGuard) Acquire(ctx context.Context) (func(), error) {
	lease, err := g.acquire(ctx, LockKey, g.ttl)
	if errors.Is(err, redis.ErrLockNotAcquired) {
		return nil, ErrSyncInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}

	renewCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	go g.keepAlive(renewCtx, lease, done)

	return func() {
		stop()
		<-done
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			g.logger.Warn("Failed to release sync lock", zap.Error(err))
		}
	}, nil
}

func (g *RedisGuard) keepAlive(ctx context.Context, lease Lease, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(g.renewEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := lease.Extend(ctx, g.ttl)
			if err == nil {
				continue
			}
			if errors.Is(err, redis.ErrLockNotHeld) {
				g.logger.Error("Sync lock lost while the pass is running", zap.Error(err))
				return
			}
			if ctx.Err() == nil {
				g.logger.Warn("Failed to renew sync lock", zap.Error(err))
			}
		}
	}
}
