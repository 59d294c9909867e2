package reconcile

import "catalog-sync/feature/catalog/models"

// Snapshot is the set of upstream records fetched for one pass.
type Snapshot struct {
	Categories []models.Category
	Items      []models.Item
	Variants   []models.Variant
	Inventory  []models.InventoryLevel
}

// MissingItemRefs returns the item ids referenced by variants but absent from
// items, in first-seen order.
func MissingItemRefs(variants []models.Variant, items []models.Item) []string {
	known := make(map[string]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}

	var missing []string
	for _, v := range variants {
		if _, ok := known[v.ItemID]; ok {
			continue
		}
		known[v.ItemID] = struct{}{}
		missing = append(missing, v.ItemID)
	}
	return missing
}

// FillItems appends the items from all whose ids are listed in missing.
// Ids not found in all stay unresolved and surface later as orphans.
func FillItems(items, all []models.Item, missing []string) []models.Item {
	if len(missing) == 0 {
		return items
	}

	wanted := make(map[string]struct{}, len(missing))
	for _, id := range missing {
		wanted[id] = struct{}{}
	}

	out := append([]models.Item(nil), items...)
	for _, item := range all {
		if _, ok := wanted[item.ID]; !ok {
			continue
		}
		delete(wanted, item.ID)
		out = append(out, item)
	}
	return out
}
