package models

import (
	"time"

	"gorm.io/datatypes"
)

// Product is one flattened, persisted catalog row keyed by SKU.
type Product struct {
	SKU      string   `gorm:"column:sku;primaryKey;size:191;not null" json:"sku"`
	Name     *string  `gorm:"column:name" json:"name"`
	Category *string  `gorm:"column:category" json:"category"`
	Desc     *string  `gorm:"column:desc" json:"desc"`
	Price    *float64 `gorm:"column:price" json:"price"`
	Qty      int      `gorm:"column:qty" json:"qty"`
	Image    *string  `gorm:"column:image" json:"image"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

// SyncLog is one ledger entry. Exactly one is written per started pass.
type SyncLog struct {
	ID              uint                        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SyncType        string                      `gorm:"column:sync_type;size:16;not null" json:"sync_type"`
	ProductsSynced  int                         `gorm:"column:products_synced" json:"products_synced"`
	ProductsDeleted int                         `gorm:"column:products_deleted" json:"products_deleted"`
	Errors          datatypes.JSONSlice[string] `gorm:"column:errors" json:"errors"`
	Warnings        datatypes.JSONSlice[string] `gorm:"column:warnings" json:"warnings"`
	StartedAt       time.Time                   `gorm:"column:started_at;not null" json:"started_at"`
	CompletedAt     time.Time                   `gorm:"column:completed_at;not null;index" json:"completed_at"`
	Status          string                      `gorm:"column:status;size:16;not null;index" json:"status"`
}

// TableName overrides the table name.
func (SyncLog) TableName() string {
	return "sync_logs"
}

// NewSyncLog converts a finished result into a ledger entry.
func NewSyncLog(r *SyncResult) SyncLog {
	return SyncLog{
		SyncType:        string(r.Kind),
		ProductsSynced:  r.ProductsSynced,
		ProductsDeleted: r.ProductsDeleted,
		Errors:          datatypes.JSONSlice[string](nonNil(r.Errors)),
		Warnings:        datatypes.JSONSlice[string](nonNil(r.Warnings)),
		StartedAt:       r.StartedAt,
		CompletedAt:     r.CompletedAt,
		Status:          string(r.Status),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
