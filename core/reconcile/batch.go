package reconcile

import (
	"context"
	"fmt"
)

// Batches splits items into consecutive chunks of at most size elements.
// A non-positive size yields a single chunk.
func Batches[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 {
		size = len(items)
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

// ApplyInBatches runs fn over each chunk in order, waiting for one chunk before
// issuing the next. It stops at the first failure and returns the total
// reported by the chunks that completed.
func ApplyInBatches[T any](ctx context.Context, items []T, size int, fn func(ctx context.Context, batch []T) (int, error)) (int, error) {
	total := 0
	for i, batch := range Batches(items, size) {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := fn(ctx, batch)
		if err != nil {
			return total, fmt.Errorf("batch %d of %d failed: %w", i+1, (len(items)+max(size, 1)-1)/max(size, 1), err)
		}
		total += n
	}
	return total, nil
}

// Paginate accumulates pages from fetch until a page shorter than pageSize is
// returned.
func Paginate[T any](ctx context.Context, pageSize int, fetch func(ctx context.Context, offset, limit int) ([]T, error)) ([]T, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}

	var all []T
	for offset := 0; ; offset += pageSize {
		page, err := fetch(ctx, offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page at offset %d: %w", offset, err)
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}
