package checks

import (
	"context"
	"fmt"
	"time"

	"catalog-sync/feature/catalog/models"
)

// Ledger states reported by CheckLedger.
const (
	LedgerOK      = "ok"
	LedgerEmpty   = "empty"
	LedgerFailing = "failing"
	LedgerStale   = "stale"
)

// LedgerReader reads the sync ledger.
type LedgerReader interface {
	LatestEntry(ctx context.Context) (*models.SyncLog, error)
	LastSuccessfulSync(ctx context.Context) (*time.Time, error)
}

// LedgerReport summarises the newest ledger entries.
type LedgerReport struct {
	Status     string          `json:"status"`
	Latest     *models.SyncLog `json:"latest,omitempty"`
	Watermark  *time.Time      `json:"watermark,omitempty"`
	AgeSeconds int64           `json:"age_seconds,omitempty"`
}

// CheckLedger classifies the ledger. The newest entry failing wins over
// staleness. A zero staleAfter disables the age check.
func CheckLedger(ctx context.Context, reader LedgerReader, staleAfter time.Duration, now time.Time) (*LedgerReport, error) {
	latest, err := reader.LatestEntry(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	if latest == nil {
		return &LedgerReport{Status: LedgerEmpty}, nil
	}

	watermark, err := reader.LastSuccessfulSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read watermark: %w", err)
	}

	report := &LedgerReport{Status: LedgerOK, Latest: latest, Watermark: watermark}
	if watermark != nil {
		report.AgeSeconds = int64(now.Sub(*watermark) / time.Second)
	}

	switch {
	case latest.Status == string(models.StatusFailed):
		report.Status = LedgerFailing
	case staleAfter > 0 && (watermark == nil || now.Sub(*watermark) > staleAfter):
		report.Status = LedgerStale
	}
	return report, nil
}
