package reconcile

import (
	"fmt"
	"strings"

	"catalog-sync/feature/catalog/models"
)

// Collision records two variants resolving to the same effective SKU.
// The later variant replaces the earlier one.
type Collision struct {
	SKU      string
	Replaced string
	Winner   string
}

// Result is the output of Flatten.
type Result struct {
	// Products are unique by non-empty SKU, in the order each SKU was first seen.
	Products []models.Product

	// Orphans are variants whose item could not be resolved. They are dropped.
	Orphans []models.Variant

	Collisions []Collision

	// EmptySKUs counts products whose effective SKU is empty.
	EmptySKUs int
}

// SKUs returns the non-empty product SKUs.
func (r *Result) SKUs() []string {
	skus := make([]string, 0, len(r.Products))
	for _, p := range r.Products {
		if p.SKU != "" {
			skus = append(skus, p.SKU)
		}
	}
	return skus
}

// Warnings formats every non-fatal resolution problem of the pass.
func (r *Result) Warnings() []string {
	var warnings []string
	for _, v := range r.Orphans {
		warnings = append(warnings, fmt.Sprintf("variant %s references unknown item %s; skipped", v.VariantID, v.ItemID))
	}
	for _, c := range r.Collisions {
		warnings = append(warnings, fmt.Sprintf("sku %s shared by variants %s and %s; kept %s", c.SKU, c.Replaced, c.Winner, c.Winner))
	}
	if r.EmptySKUs > 0 {
		warnings = append(warnings, fmt.Sprintf("%d products have an empty sku and were not persisted", r.EmptySKUs))
	}
	return warnings
}

// ComposeName appends the non-empty option values to the item name:
// "Shirt (Red, Large)". Without options the item name is returned as is.
func ComposeName(itemName string, options []string) string {
	if len(options) == 0 {
		return itemName
	}
	return itemName + " (" + strings.Join(options, ", ") + ")"
}

// Flatten joins the snapshot into products keyed by effective SKU.
// Lookups are built once and discarded with the call.
func Flatten(s Snapshot) *Result {
	categoryNames := make(map[string]string, len(s.Categories))
	for _, c := range s.Categories {
		categoryNames[c.ID] = c.Name
	}

	items := make(map[string]models.Item, len(s.Items))
	for _, item := range s.Items {
		items[item.ID] = item
	}

	inventory := AggregateInventory(s.Inventory)

	res := &Result{Products: make([]models.Product, 0, len(s.Variants))}
	position := make(map[string]int, len(s.Variants))
	owner := make(map[string]string, len(s.Variants))

	for _, v := range s.Variants {
		item, ok := items[v.ItemID]
		if !ok {
			res.Orphans = append(res.Orphans, v)
			continue
		}

		p := buildProduct(item, v, categoryNames, inventory)

		// Empty keys are never persisted, so they cannot collide
		if p.SKU == "" {
			res.EmptySKUs++
			res.Products = append(res.Products, p)
			continue
		}

		if i, dup := position[p.SKU]; dup {
			res.Collisions = append(res.Collisions, Collision{SKU: p.SKU, Replaced: owner[p.SKU], Winner: v.VariantID})
			res.Products[i] = p
			owner[p.SKU] = v.VariantID
			continue
		}

		position[p.SKU] = len(res.Products)
		owner[p.SKU] = v.VariantID
		res.Products = append(res.Products, p)
	}

	return res
}

func buildProduct(item models.Item, v models.Variant, categoryNames map[string]string, inventory Inventory) models.Product {
	name := ComposeName(item.ItemName, v.OptionValues())

	var category *string
	if item.CategoryID != nil {
		if n, ok := categoryNames[*item.CategoryID]; ok {
			category = &n
		}
	}

	return models.Product{
		SKU:      v.EffectiveSKU(),
		Name:     &name,
		Category: category,
		Desc:     item.Description,
		Price:    v.DefaultPrice,
		Qty:      inventory.Quantity(v.VariantID),
	}
}
