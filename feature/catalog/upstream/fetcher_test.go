package upstream

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// fakeFetcher serves canned records per collection and counts calls.
type fakeFetcher struct {
	mu      sync.Mutex
	records map[Collection][]json.RawMessage
	err     error
	calls   map[string]int
	delay   time.Duration
}

func newFakeFetcher(records map[Collection][]json.RawMessage) *fakeFetcher {
	return &fakeFetcher{records: records, calls: map[string]int{}}
}

func (f *fakeFetcher) FetchAll(_ context.Context, collection Collection, since *time.Time) ([]json.RawMessage, error) {
	f.mu.Lock()
	f.calls[CacheKey(collection, since)]++
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.records[collection], nil
}

func (f *fakeFetcher) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func raws(docs ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		out[i] = json.RawMessage(d)
	}
	return out
}
