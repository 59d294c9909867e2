// Package cache provides byte-oriented stores for the advisory upstream
// response cache.
//
// A Store never decides freshness; callers wrap their payload with a timestamp
// and apply their own max age. Three backends are available:
//
//   - FileStore: one JSON file per key in a local directory (the default).
//   - ObjectStore: one object per key in an S3/MinIO bucket.
//   - RedisStore: one string per key in Redis.
//
// Get returns ErrMiss when nothing is stored. Any other error is a backend
// failure, which callers treat as a miss as well.
package cache
