package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is absent or its entry has expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Service is a TTL key-value store. Values are JSON round-tripped, so the
// same code path works for the in-memory and Redis backends. A Get on an
// expired entry behaves as if the key were never set.
type Service interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, key string) error
}
