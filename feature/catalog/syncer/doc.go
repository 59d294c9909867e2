// Package syncer orchestrates catalog sync passes.
//
// # Passes
//
// A full pass fetches every collection, flattens it, upserts the products and
// deletes persisted SKUs no longer present upstream. An incremental pass fetches
// items and variants changed since the last completed pass, repairs variants
// whose item did not change, and upserts. It never deletes. Without a prior
// completed pass an incremental request runs a full pass, reported as full.
//
// # Ledger
//
// Every pass that starts writes exactly one sync_logs entry with its completion
// time and status: success, partial (completed with warnings) or failed. Pass
// errors are returned inside the result. A failure to write the entry is logged.
//
// # Guard
//
// Run admits one pass at a time through a Guard: LocalGuard within a process,
// RedisGuard across processes. A rejected call returns ErrSyncInProgress and
// writes no ledger entry.
package syncer
