package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatches(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Batches(items, 2))
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5}}, Batches(items, 10))
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5}}, Batches(items, 0))
	assert.Nil(t, Batches([]int{}, 3))
}

func TestApplyInBatches_Sequential(t *testing.T) {
	var seen [][]string
	items := []string{"a", "b", "c", "d", "e"}

	total, err := ApplyInBatches(context.Background(), items, 2, func(_ context.Context, batch []string) (int, error) {
		seen = append(seen, batch)
		return len(batch), nil
	})

	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, seen)
}

func TestApplyInBatches_PartialCountOnFailure(t *testing.T) {
	calls := 0
	items := make([]int, 250)

	total, err := ApplyInBatches(context.Background(), items, 100, func(_ context.Context, batch []int) (int, error) {
		calls++
		if calls == 2 {
			return 0, errors.New("constraint violation")
		}
		return len(batch), nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch 2 of 3")
	assert.Equal(t, 100, total)
	assert.Equal(t, 2, calls)
}

func TestApplyInBatches_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	total, err := ApplyInBatches(ctx, []int{1, 2}, 1, func(context.Context, []int) (int, error) {
		t.Fatal("fn must not be called")
		return 0, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, total)
}

func TestPaginate(t *testing.T) {
	source := []string{"a", "b", "c", "d", "e"}
	var offsets []int

	all, err := Paginate(context.Background(), 2, func(_ context.Context, offset, limit int) ([]string, error) {
		offsets = append(offsets, offset)
		end := min(offset+limit, len(source))
		return source[offset:end], nil
	})

	require.NoError(t, err)
	assert.Equal(t, source, all)
	assert.Equal(t, []int{0, 2, 4}, offsets)
}

func TestPaginate_ExactMultipleEndsOnEmptyPage(t *testing.T) {
	source := []string{"a", "b"}
	calls := 0

	all, err := Paginate(context.Background(), 2, func(_ context.Context, offset, limit int) ([]string, error) {
		calls++
		if offset >= len(source) {
			return nil, nil
		}
		return source[offset:min(offset+limit, len(source))], nil
	})

	require.NoError(t, err)
	assert.Equal(t, source, all)
	assert.Equal(t, 2, calls)
}

func TestPaginate_Error(t *testing.T) {
	_, err := Paginate(context.Background(), 10, func(context.Context, int, int) ([]int, error) {
		return nil, errors.New("timeout")
	})
	assert.ErrorContains(t, err, "offset 0")

	_, err = Paginate(context.Background(), 0, func(context.Context, int, int) ([]int, error) { return nil, nil })
	assert.Error(t, err)
}
