// Package integrity provides readiness checks for a catalog-sync deployment.
//
// # Checks Provided
//
//   - Schema: the products and sync_logs tables exist with every mapped column.
//   - Bucket: the object storage bucket used by the object cache backend exists.
//     Skipped when that backend is not configured.
//   - Ledger: the newest ledger entry did not fail and the watermark is not
//     older than the configured staleness window.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check (supports ?fix=true, which migrates).
//   - GET /integrity/bucket : Runs the bucket check (supports ?fix=true, which creates it).
//   - GET /integrity/ledger : Reports the ledger state.
package integrity
