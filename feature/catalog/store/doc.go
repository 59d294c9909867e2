// Package store persists flattened products and the sync ledger with gorm.
//
// Products are written with an insert-or-update keyed by SKU in fixed-size
// batches issued one after another; a failed batch leaves earlier batches
// committed. SKU enumeration pages through the table in SKU order until a short
// page is returned.
//
// The ledger (sync_logs) is append-only. The newest success or partial entry
// supplies the watermark for incremental passes.
//
// GormStore also implements the generic reconcile.Target so full passes can
// plan and apply deletions through core/reconcile.
package store
