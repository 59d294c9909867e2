package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is an upstream product category. Only the name is used, for lookup.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is an upstream catalog item. Variants carry the sellable units.
type Item struct {
	ID          string  `json:"id"`
	ItemName    string  `json:"item_name"`
	CategoryID  *string `json:"category_id"`
	Description *string `json:"description"`

	// Flags are carried through untouched.
	TrackStock    bool `json:"track_stock"`
	SoldByWeight  bool `json:"sold_by_weight"`
	IsComposite   bool `json:"is_composite"`
	UseProduction bool `json:"use_production"`

	Option1Name *string `json:"option1_name"`
	Option2Name *string `json:"option2_name"`
	Option3Name *string `json:"option3_name"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Variant is a sellable unit of an Item.
type Variant struct {
	VariantID    string    `json:"variant_id"`
	ItemID       string    `json:"item_id"`
	SKU          *string   `json:"sku"`
	Option1Value *string   `json:"option1_value"`
	Option2Value *string   `json:"option2_value"`
	Option3Value *string   `json:"option3_value"`
	DefaultPrice *float64  `json:"default_price"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EffectiveSKU returns the variant SKU, or the variant id when the SKU is
// null or empty.
func (v Variant) EffectiveSKU() string {
	if v.SKU != nil && *v.SKU != "" {
		return *v.SKU
	}
	return v.VariantID
}

// OptionValues returns the non-empty option values in option1..option3 order.
func (v Variant) OptionValues() []string {
	var values []string
	for _, opt := range []*string{v.Option1Value, v.Option2Value, v.Option3Value} {
		if opt != nil && *opt != "" {
			values = append(values, *opt)
		}
	}
	return values
}

// InventoryLevel is the on-hand quantity of one variant in one store.
// InStock is decoded as a decimal so multi-store sums are exact.
type InventoryLevel struct {
	VariantID string          `json:"variant_id"`
	StoreID   string          `json:"store_id"`
	InStock   decimal.Decimal `json:"in_stock"`
	Cost      *float64        `json:"cost,omitempty"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}
