// Package cache provides pluggable byte caches for API responses.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry under the user cache directory (CLI default)
//   - [RedisCache]: shared cache in Redis, for teams or CI runners hitting the same repo
//   - [NullCache]: disables caching (--no-cache)
//
// Keys are produced by a [Keyer] so that every caller agrees on the layout.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
//
// Get reports a miss as (nil, false, nil). Expired entries are reported as
// misses. A ttl of 0 passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by configuration.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)
