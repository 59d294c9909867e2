package reconcile

// KeySet builds a set from keys, skipping empty keys.
func KeySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}

// Diff returns persisted - current. Each key appears once, in the order it was
// first seen in persisted. A key present in current is never returned.
func Diff(persisted []string, current map[string]struct{}) []string {
	var out []string
	seen := make(map[string]struct{}, len(persisted))
	for _, key := range persisted {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := current[key]; ok {
			continue
		}
		out = append(out, key)
	}
	return out
}

// summarize counts overlap between the persisted and current sets.
func summarize(persisted []string, current map[string]struct{}, deletions []string) PlanSummary {
	persistedSet := KeySet(persisted)

	kept := 0
	for key := range persistedSet {
		if _, ok := current[key]; ok {
			kept++
		}
	}

	return PlanSummary{
		Persisted: len(persistedSet),
		Current:   len(current),
		Kept:      kept,
		Added:     len(current) - kept,
		Deletions: len(deletions),
	}
}
