// Package reconcile provides the generic key reconciliation used by full sync
// passes: which persisted keys no longer exist upstream, and how to remove them
// without issuing one huge statement.
//
// # Architecture
//
// The package has three parts:
//
// 1. Engine: set construction and the persisted-minus-current difference.
//
// 2. Plan: a Target (the persisted side) is listed, a Plan is computed, then applied
// as a separate step so the summary can be logged before anything is removed.
//
// 3. Batching: generic helpers that split work into fixed-size chunks issued one
// at a time, and accumulate pages until a short page is returned.
//
// # Guarantees
//
//   - Diff never returns a key present in the current set.
//   - Empty keys are never part of the current set.
//   - ApplyInBatches returns the total of the chunks that completed, even on failure.
//
// # Usage Example
//
//	plan, err := reconcile.PlanDeletions(ctx, store, currentSKUs)
//	if err != nil {
//	    return err
//	}
//	deleted, err := reconcile.ApplyPlan(ctx, store, plan)
package reconcile
