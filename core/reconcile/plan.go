package reconcile

import (
	"context"
	"fmt"
)

// PlanDeletions loads the persisted keys from target and plans the removal of
// every key not in current. Empty current keys are ignored.
func PlanDeletions(ctx context.Context, target Target, current []string) (*Plan, error) {
	persisted, err := target.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list persisted keys: %w", err)
	}

	currentSet := KeySet(current)
	deletions := Diff(persisted, currentSet)

	return &Plan{
		Deletions: deletions,
		Summary:   summarize(persisted, currentSet, deletions),
	}, nil
}

// ApplyPlan executes the deletions in plan and returns the count the target
// reports as actually deleted.
func ApplyPlan(ctx context.Context, target Target, plan *Plan) (int, error) {
	if plan == nil || len(plan.Deletions) == 0 {
		return 0, nil
	}

	deleted, err := target.DeleteKeys(ctx, plan.Deletions)
	if err != nil {
		return deleted, fmt.Errorf("failed to delete %d keys: %w", len(plan.Deletions), err)
	}
	return deleted, nil
}

// ReconcileAndApply plans and applies deletions in one call.
func ReconcileAndApply(ctx context.Context, target Target, current []string) (*Plan, int, error) {
	plan, err := PlanDeletions(ctx, target, current)
	if err != nil {
		return nil, 0, err
	}

	deleted, err := ApplyPlan(ctx, target, plan)
	return plan, deleted, err
}
