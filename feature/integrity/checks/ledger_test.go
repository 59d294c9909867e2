package checks

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog-sync/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedger struct {
	latest    *models.SyncLog
	watermark *time.Time
	err       error
}

func (f *fakeLedger) LatestEntry(ctx context.Context) (*models.SyncLog, error) {
	return f.latest, f.err
}

func (f *fakeLedger) LastSuccessfulSync(ctx context.Context) (*time.Time, error) {
	return f.watermark, f.err
}

func TestCheckLedger(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-time.Hour)
	old := now.Add(-48 * time.Hour)

	tests := []struct {
		name       string
		ledger     *fakeLedger
		staleAfter time.Duration
		want       string
	}{
		{"empty", &fakeLedger{}, 24 * time.Hour, LedgerEmpty},
		{"ok", &fakeLedger{latest: &models.SyncLog{Status: "success"}, watermark: &recent}, 24 * time.Hour, LedgerOK},
		{"partial counts", &fakeLedger{latest: &models.SyncLog{Status: "partial"}, watermark: &recent}, 24 * time.Hour, LedgerOK},
		{"failing", &fakeLedger{latest: &models.SyncLog{Status: "failed"}, watermark: &recent}, 24 * time.Hour, LedgerFailing},
		{"stale", &fakeLedger{latest: &models.SyncLog{Status: "success"}, watermark: &old}, 24 * time.Hour, LedgerStale},
		{"never completed", &fakeLedger{latest: &models.SyncLog{Status: "success"}}, 24 * time.Hour, LedgerStale},
		{"age check disabled", &fakeLedger{latest: &models.SyncLog{Status: "success"}, watermark: &old}, 0, LedgerOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := CheckLedger(ctx, tt.ledger, tt.staleAfter, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Status)
		})
	}
}

func TestCheckLedger_Age(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	watermark := now.Add(-90 * time.Second)

	report, err := CheckLedger(context.Background(), &fakeLedger{
		latest:    &models.SyncLog{Status: "success"},
		watermark: &watermark,
	}, time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, int64(90), report.AgeSeconds)
	assert.Equal(t, &watermark, report.Watermark)
}

func TestCheckLedger_ReaderError(t *testing.T) {
	report, err := CheckLedger(context.Background(), &fakeLedger{err: errors.New("db down")}, time.Hour, time.Now())
	assert.Error(t, err)
	assert.Nil(t, report)
}
