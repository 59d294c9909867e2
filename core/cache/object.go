package cache

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"catalog-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps entries as objects in an S3/MinIO bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectStore creates an ObjectStore writing under prefix in bucket.
func NewObjectStore(client storage.Client, bucket, prefix string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, prefix: prefix}
}

func (s *ObjectStore) objectName(key string) string {
	return s.prefix + safeKey(key) + ".json"
}

// Get downloads the entry for key.
func (s *ObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, s.objectName(key), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to get cache object: %w", err)
	}
	defer reader.Close()

	// minio reports a missing key on first read, not on GetObject
	data, err := io.ReadAll(reader)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to read cache object: %w", err)
	}
	return data, nil
}

// Set uploads the entry for key.
func (s *ObjectStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(key), bytes.NewReader(value), int64(len(value)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put cache object: %w", err)
	}
	return nil
}
