// Package models defines the upstream catalog records, the persisted product and
// ledger rows, and the result of a sync pass.
//
// Upstream records (Category, Item, Variant, InventoryLevel) live for a single pass.
// Product rows are upserted by SKU. SyncLog rows are append-only.
package models
