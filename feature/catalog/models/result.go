package models

import "time"

// SyncKind selects the pass type.
type SyncKind string

const (
	KindFull        SyncKind = "full"
	KindIncremental SyncKind = "incremental"
)

// ParseSyncKind validates a user-supplied pass type.
func ParseSyncKind(s string) (SyncKind, bool) {
	switch SyncKind(s) {
	case KindFull, KindIncremental:
		return SyncKind(s), true
	}
	return "", false
}

// SyncStatus is the terminal status of a pass.
type SyncStatus string

const (
	StatusSuccess SyncStatus = "success"
	StatusPartial SyncStatus = "partial" // completed, but records were dropped or merged
	StatusFailed  SyncStatus = "failed"
)

// Completed reports whether the status can supply an incremental watermark.
func (s SyncStatus) Completed() bool {
	return s == StatusSuccess || s == StatusPartial
}

// SyncResult summarizes one pass.
type SyncResult struct {
	Kind            SyncKind   `json:"kind"`
	ProductsSynced  int        `json:"products_synced"`
	ProductsDeleted int        `json:"products_deleted"`
	Errors          []string   `json:"errors"`
	Warnings        []string   `json:"warnings"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     time.Time  `json:"completed_at"`
	Status          SyncStatus `json:"status"`

	// Since is the watermark used by an incremental pass.
	Since *time.Time `json:"since,omitempty"`
}

// Failed reports whether the pass ended in failure.
func (r *SyncResult) Failed() bool {
	return r.Status == StatusFailed
}

// Duration returns the wall time of the pass.
func (r *SyncResult) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}

// Stats is the response of a stats request.
type Stats struct {
	TotalProducts int64    `json:"total_products"`
	LastSync      *SyncLog `json:"last_sync"`
}
