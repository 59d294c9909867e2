// Package catalog implements the point-of-sale catalog sync feature.
//
// It keeps a denormalized products table in step with an upstream catalog API
// (categories, items, variants, inventory) and records every pass in a ledger.
//
// # Subpackages
//
//   - models: upstream records, persisted rows, pass results.
//   - upstream: paginated API client, typed catalog and read-through cache.
//   - reconcile: join, flatten and inventory aggregation.
//   - store: gorm persistence of products and the ledger.
//   - syncer: full and incremental passes, ledger bookkeeping, concurrency guard.
//
// # Components
//
//   - Service: Binds the sync runner to request defaults.
//   - Handler: Exposes the sync trigger over HTTP.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET|POST /sync?type=full|incremental|stats&cache=true|false
//
// Responses: 200 with the pass summary or stats, 400 for an invalid type or flag,
// 409 when a pass is already running, 500 with the error and summary when the
// pass failed.
package catalog
