package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-sync/feature/catalog/models"
)

// Catalog decodes raw collections into typed records.
type Catalog struct {
	fetcher Fetcher
}

// NewCatalog wraps a Fetcher.
func NewCatalog(fetcher Fetcher) *Catalog {
	return &Catalog{fetcher: fetcher}
}

// Categories fetches every category.
func (c *Catalog) Categories(ctx context.Context) ([]models.Category, error) {
	return fetchTyped[models.Category](ctx, c.fetcher, Categories, nil)
}

// Items fetches every item, or only those updated at or after since.
func (c *Catalog) Items(ctx context.Context, since *time.Time) ([]models.Item, error) {
	return fetchTyped[models.Item](ctx, c.fetcher, Items, since)
}

// Variants fetches every variant, or only those updated at or after since.
func (c *Catalog) Variants(ctx context.Context, since *time.Time) ([]models.Variant, error) {
	return fetchTyped[models.Variant](ctx, c.fetcher, Variants, since)
}

// Inventory fetches every inventory level across all stores.
func (c *Catalog) Inventory(ctx context.Context) ([]models.InventoryLevel, error) {
	return fetchTyped[models.InventoryLevel](ctx, c.fetcher, Inventory, nil)
}

func fetchTyped[T any](ctx context.Context, fetcher Fetcher, collection Collection, since *time.Time) ([]T, error) {
	raw, err := fetcher.FetchAll(ctx, collection, since)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(raw))
	for i, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, fmt.Errorf("failed to decode %s record %d: %w", collection, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
