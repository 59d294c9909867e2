package cache

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"catalog-sync/core/redis"
	"catalog-sync/core/storage"
)

// ErrMiss is returned by Store.Get when no entry exists for the key.
var ErrMiss = errors.New("cache miss")

// Store is a byte-oriented key/value backend.
// Entries are opaque to the store; expiry is decided by the caller.
type Store interface {
	// Get returns the stored bytes for key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous entry.
	Set(ctx context.Context, key string, value []byte) error
}

// Deps carries the optional clients the object and redis backends need.
type Deps struct {
	Objects storage.Client
	Bucket  string
	Redis   *redis.Client
}

// New builds the Store selected by cfg.Backend.
func New(cfg Config, deps Deps) (Store, error) {
	switch cfg.Backend {
	case "", BackendFile:
		return NewFileStore(cfg.Dir), nil
	case BackendObject:
		if deps.Objects == nil {
			return nil, fmt.Errorf("object cache backend requires a storage client")
		}
		return NewObjectStore(deps.Objects, deps.Bucket, cfg.Prefix), nil
	case BackendRedis:
		if deps.Redis == nil {
			return nil, fmt.Errorf("redis cache backend requires a redis client")
		}
		return NewRedisStore(deps.Redis, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// safeKey maps an arbitrary cache key onto a portable file or object name.
func safeKey(key string) string {
	return unsafeKeyChars.ReplaceAllString(key, "_")
}
