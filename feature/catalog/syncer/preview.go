package syncer

import (
	"context"

	corereconcile "catalog-sync/core/reconcile"
	"catalog-sync/feature/catalog/reconcile"
)

// Preview is what a full pass would do right now, computed without writing.
type Preview struct {
	Products int                 `json:"products"`
	Warnings []string            `json:"warnings"`
	Plan     *corereconcile.Plan `json:"plan"`
}

// PreviewFull fetches and flattens the catalog and plans deletions against the
// store. It writes nothing and records no ledger entry.
func (s *Service) PreviewFull(ctx context.Context, opts Options) (*Preview, error) {
	snapshot, err := fetchSnapshot(ctx, s.catalogFor(opts), nil)
	if err != nil {
		return nil, err
	}

	flat := reconcile.Flatten(snapshot)

	plan, err := corereconcile.PlanDeletions(ctx, s.store, flat.SKUs())
	if err != nil {
		return nil, err
	}

	warnings := flat.Warnings()
	if warnings == nil {
		warnings = []string{}
	}
	return &Preview{Products: len(flat.SKUs()), Warnings: warnings, Plan: plan}, nil
}
