package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestVariant_EffectiveSKU(t *testing.T) {
	tests := []struct {
		name string
		sku  *string
		want string
	}{
		{"sku set", strPtr("SKU-1"), "SKU-1"},
		{"sku empty", strPtr(""), "var-1"},
		{"sku null", nil, "var-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Variant{VariantID: "var-1", SKU: tt.sku}
			assert.Equal(t, tt.want, v.EffectiveSKU())
		})
	}
}

func TestVariant_OptionValues(t *testing.T) {
	v := Variant{Option1Value: strPtr("Red"), Option2Value: strPtr(""), Option3Value: strPtr("Cotton")}
	assert.Equal(t, []string{"Red", "Cotton"}, v.OptionValues())

	assert.Empty(t, Variant{}.OptionValues())
}

func TestParseSyncKind(t *testing.T) {
	kind, ok := ParseSyncKind("full")
	assert.True(t, ok)
	assert.Equal(t, KindFull, kind)

	_, ok = ParseSyncKind("stats")
	assert.False(t, ok)
}

func TestNewSyncLog(t *testing.T) {
	started := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	r := &SyncResult{
		Kind:           KindIncremental,
		ProductsSynced: 3,
		StartedAt:      started,
		CompletedAt:    started.Add(time.Second),
		Status:         StatusPartial,
		Warnings:       []string{"orphan"},
	}

	entry := NewSyncLog(r)

	assert.Equal(t, "incremental", entry.SyncType)
	assert.Equal(t, 3, entry.ProductsSynced)
	assert.Equal(t, "partial", entry.Status)
	assert.NotNil(t, entry.Errors)
	assert.Empty(t, entry.Errors)
	assert.Equal(t, []string{"orphan"}, []string(entry.Warnings))
	assert.True(t, StatusPartial.Completed())
	assert.False(t, StatusFailed.Completed())
}
