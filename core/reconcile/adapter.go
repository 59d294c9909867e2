package reconcile

import "context"

// Target is the persisted side of a reconciliation.
// The aggregation store implements it over its products table.
type Target interface {
	// ListKeys returns every persisted key.
	ListKeys(ctx context.Context) ([]string, error)

	// DeleteKeys removes the given keys and returns how many rows were actually
	// removed, which may be fewer than requested if rows vanished concurrently.
	DeleteKeys(ctx context.Context, keys []string) (int, error)
}
