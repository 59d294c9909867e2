package reconcile

// Plan describes the deletions needed to make a persisted key set match the
// current upstream key set. It is computed first and applied separately so the
// summary can be logged before anything is removed.
type Plan struct {
	// Deletions holds persisted keys absent from the current set, in persisted order.
	Deletions []string `json:"deletions"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a deletion plan.
type PlanSummary struct {
	// Persisted is the number of distinct keys currently stored.
	Persisted int `json:"persisted"`

	// Current is the number of distinct non-empty keys seen in this pass.
	Current int `json:"current"`

	// Kept counts persisted keys that are still present upstream.
	Kept int `json:"kept"`

	// Added counts current keys not persisted yet.
	Added int `json:"added"`

	// Deletions counts planned deletions.
	Deletions int `json:"deletions"`
}
