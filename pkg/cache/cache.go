package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer.
// Implementations marshal values to JSON so callers work with plain structs.
type Cache interface {
	// Get reads the value stored under key into dest.
	// Returns found=false on a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
