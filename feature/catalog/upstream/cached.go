package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"catalog-sync/core/cache"
	"catalog-sync/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// envelope is the cached form of one collection fetch.
type envelope struct {
	StoredAt time.Time         `json:"stored_at"`
	Records  []json.RawMessage `json:"records"`
}

// CachedFetcher is a read-through cache in front of another Fetcher.
// The cache is advisory: any read or write failure behaves as a miss.
type CachedFetcher struct {
	next   Fetcher
	store  cache.Store
	maxAge time.Duration
	logger *zap.Logger
	group  singleflight.Group
	now    func() time.Time
}

// NewCachedFetcher wraps next with store. A zero maxAge never expires entries.
func NewCachedFetcher(next Fetcher, store cache.Store, maxAge time.Duration, logger *zap.Logger) *CachedFetcher {
	return &CachedFetcher{
		next:   next,
		store:  store,
		maxAge: maxAge,
		logger: logger,
		now:    time.Now,
	}
}

// CacheKey returns the cache key of a fetch: the collection name, plus the
// watermark for delta fetches.
func CacheKey(collection Collection, since *time.Time) string {
	if since == nil {
		return string(collection)
	}
	return string(collection) + "@" + since.UTC().Format(time.RFC3339)
}

// FetchAll returns cached records when a fresh entry exists, otherwise fetches
// through next and stores the result. Concurrent misses on the same key share
// one upstream fetch.
func (f *CachedFetcher) FetchAll(ctx context.Context, collection Collection, since *time.Time) ([]json.RawMessage, error) {
	key := CacheKey(collection, since)

	if records, ok := f.lookup(ctx, key); ok {
		metrics.RecordCacheLookup("hit")
		return records, nil
	}
	metrics.RecordCacheLookup("miss")

	v, err, _ := f.group.Do(key, func() (any, error) {
		records, err := f.next.FetchAll(ctx, collection, since)
		if err != nil {
			return nil, err
		}
		f.save(ctx, key, records)
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]json.RawMessage), nil
}

func (f *CachedFetcher) lookup(ctx context.Context, key string) ([]json.RawMessage, bool) {
	data, err := f.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			f.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		f.logger.Warn("Discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	if f.maxAge > 0 && f.now().Sub(env.StoredAt) > f.maxAge {
		f.logger.Debug("Cache entry expired", zap.String("key", key), zap.Time("stored_at", env.StoredAt))
		return nil, false
	}

	return env.Records, true
}

func (f *CachedFetcher) save(ctx context.Context, key string, records []json.RawMessage) {
	data, err := json.Marshal(envelope{StoredAt: f.now().UTC(), Records: records})
	if err != nil {
		f.logger.Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := f.store.Set(ctx, key, data); err != nil {
		f.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
