package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// unreachableClient points at a port nothing listens on.
func unreachableClient() *Client {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	return NewFromUniversal(rdb, "test:", zap.NewNop())
}

func TestClient_Key(t *testing.T) {
	c := unreachableClient()
	defer c.Close()

	assert.Equal(t, "test:items", c.Key("items"))
}

func TestLocker_AcquireUnreachable(t *testing.T) {
	c := unreachableClient()
	defer c.Close()

	lock, err := NewLocker(c).Acquire(context.Background(), "sync", time.Minute)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrLockNotAcquired)
	assert.Nil(t, lock)
}

func TestNewClient_Unreachable(t *testing.T) {
	c, err := NewClient(Config{Host: "127.0.0.1", Port: 1}, zap.NewNop())
	assert.ErrorContains(t, err, "failed to connect to Redis")
	assert.Nil(t, c)
}

func TestLock_ExtendUnreachable(t *testing.T) {
	c := unreachableClient()
	defer c.Close()

	lock := &Lock{client: c, key: c.Key("lock:sync"), value: "token"}
	err := lock.Extend(context.Background(), time.Minute)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrLockNotHeld)
}
