package reconcile

import (
	"catalog-sync/feature/catalog/models"

	"github.com/shopspring/decimal"
)

// Inventory maps a variant id to its on-hand total across stores.
type Inventory map[string]decimal.Decimal

// AggregateInventory sums in_stock per variant across every store. Negative and
// zero quantities are summed as reported. Levels for unknown variants are kept.
func AggregateInventory(levels []models.InventoryLevel) Inventory {
	totals := make(Inventory, len(levels))
	for _, level := range levels {
		totals[level.VariantID] = totals[level.VariantID].Add(level.InStock)
	}
	return totals
}

// Quantity returns the floored total for a variant, or 0 when it has no levels.
func (inv Inventory) Quantity(variantID string) int {
	total, ok := inv[variantID]
	if !ok {
		return 0
	}
	return int(total.Floor().IntPart())
}
