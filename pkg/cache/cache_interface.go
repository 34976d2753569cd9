package cache

import (
	"context"
	"time"
)

// Cache backs the login throttle: per-IP failure counters and lock flags.
// Implementations: Redis (internal/infrastructure/cache) and Memory.
type Cache interface {
	// Set stores value JSON-encoded; ttl <= 0 keeps it until deleted.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error

	Increment(ctx context.Context, key string) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	// TTL follows Redis: -2 for a missing key, -1 for a key without expiry.
	TTL(ctx context.Context, key string) (time.Duration, error)
}
