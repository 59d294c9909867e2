package checks

import (
	"context"
	"fmt"

	"catalog-sync/core/storage"

	"go.uber.org/zap"
)

// BucketReport describes the cache bucket.
type BucketReport struct {
	Bucket string `json:"bucket"`
	Exists bool   `json:"exists"`
}

// CheckBucket reports whether the cache bucket exists.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) (*BucketReport, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	return &BucketReport{Bucket: bucket, Exists: exists}, nil
}

// FixBucket creates the cache bucket when it is missing.
func FixBucket(ctx context.Context, client storage.Client, bucket, region string, logger *zap.Logger) error {
	logger.Info("Creating cache bucket", zap.String("bucket", bucket))
	return storage.EnsureBucket(ctx, client, bucket, region)
}
