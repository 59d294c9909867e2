package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"catalog-sync/core/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) Set(context.Context, string, []byte) error { return errors.New("disk gone") }

func TestCachedFetcher_ReadThrough(t *testing.T) {
	fetcher := newFakeFetcher(map[Collection][]json.RawMessage{
		Categories: raws(`{"id":"c1"}`, `{"id":"c2"}`),
	})
	cached := NewCachedFetcher(fetcher, cache.NewFileStore(t.TempDir()), 0, zap.NewNop())
	ctx := context.Background()

	first, err := cached.FetchAll(ctx, Categories, nil)
	require.NoError(t, err)
	second, err := cached.FetchAll(ctx, Categories, nil)
	require.NoError(t, err)

	assert.Len(t, second, 2)
	assert.JSONEq(t, string(first[1]), string(second[1]))
	assert.Equal(t, 1, fetcher.callCount("categories"))
}

func TestCachedFetcher_DeltaKeyedByWatermark(t *testing.T) {
	fetcher := newFakeFetcher(map[Collection][]json.RawMessage{Items: raws(`{"id":"i1"}`)})
	cached := NewCachedFetcher(fetcher, cache.NewFileStore(t.TempDir()), 0, zap.NewNop())
	ctx := context.Background()
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	_, err := cached.FetchAll(ctx, Items, &t1)
	require.NoError(t, err)
	_, err = cached.FetchAll(ctx, Items, &t2)
	require.NoError(t, err)
	_, err = cached.FetchAll(ctx, Items, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, fetcher.callCount(CacheKey(Items, &t1)))
	assert.Equal(t, 1, fetcher.callCount(CacheKey(Items, &t2)))
	assert.Equal(t, 1, fetcher.callCount("items"))
}

func TestCachedFetcher_MaxAge(t *testing.T) {
	fetcher := newFakeFetcher(map[Collection][]json.RawMessage{Variants: raws(`{"variant_id":"v1"}`)})
	cached := NewCachedFetcher(fetcher, cache.NewFileStore(t.TempDir()), time.Minute, zap.NewNop())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	cached.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := cached.FetchAll(ctx, Variants, nil)
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	_, err = cached.FetchAll(ctx, Variants, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.callCount("variants"))

	now = now.Add(2 * time.Minute)
	_, err = cached.FetchAll(ctx, Variants, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.callCount("variants"))
}

func TestCachedFetcher_StoreFailureIsMiss(t *testing.T) {
	fetcher := newFakeFetcher(map[Collection][]json.RawMessage{Inventory: raws(`{"variant_id":"v1"}`)})
	cached := NewCachedFetcher(fetcher, failingStore{}, 0, zap.NewNop())

	records, err := cached.FetchAll(context.Background(), Inventory, nil)

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCachedFetcher_CorruptEntryIsMiss(t *testing.T) {
	store := cache.NewFileStore(t.TempDir())
	require.NoError(t, store.Set(context.Background(), "categories", []byte("{broken")))
	fetcher := newFakeFetcher(map[Collection][]json.RawMessage{Categories: raws(`{"id":"c1"}`)})
	cached := NewCachedFetcher(fetcher, store, 0, zap.NewNop())

	records, err := cached.FetchAll(context.Background(), Categories, nil)

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, fetcher.callCount("categories"))
}

func TestCachedFetcher_ErrorNotCached(t *testing.T) {
	fetcher := newFakeFetcher(nil)
	fetcher.err = errors.New("timeout")
	cached := NewCachedFetcher(fetcher, cache.NewFileStore(t.TempDir()), 0, zap.NewNop())
	ctx := context.Background()

	_, err := cached.FetchAll(ctx, Items, nil)
	require.Error(t, err)

	fetcher.err = nil
	_, err = cached.FetchAll(ctx, Items, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.callCount("items"))
}

func TestCachedFetcher_ConcurrentMissesShareFetch(t *testing.T) {
	fetcher := newFakeFetcher(map[Collection][]json.RawMessage{Categories: raws(`{"id":"c1"}`)})
	fetcher.delay = 100 * time.Millisecond
	cached := NewCachedFetcher(fetcher, failingStore{}, 0, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			records, err := cached.FetchAll(context.Background(), Categories, nil)
			assert.NoError(t, err)
			assert.Len(t, records, 1)
		}()
	}
	wg.Wait()

	assert.Less(t, fetcher.callCount("categories"), 5)
}

func TestCacheKey(t *testing.T) {
	since := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	assert.Equal(t, "inventory", CacheKey(Inventory, nil))
	assert.Equal(t, "items@2024-02-03T04:05:06Z", CacheKey(Items, &since))
}
