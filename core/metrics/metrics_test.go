package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSyncPass(t *testing.T) {
	before := testutil.ToFloat64(SyncPassesTotal.WithLabelValues("full", "success"))
	deletedBefore := testutil.ToFloat64(ProductsDeleted)

	RecordSyncPass("full", "success", 1.5, 10, 3)

	assert.Equal(t, before+1, testutil.ToFloat64(SyncPassesTotal.WithLabelValues("full", "success")))
	assert.Equal(t, deletedBefore+3, testutil.ToFloat64(ProductsDeleted))
}

func TestRecordCacheLookup(t *testing.T) {
	before := testutil.ToFloat64(CacheLookups.WithLabelValues("hit"))
	RecordCacheLookup("hit")
	assert.Equal(t, before+1, testutil.ToFloat64(CacheLookups.WithLabelValues("hit")))
}
