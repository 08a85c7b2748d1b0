// Package cache provides a small content-addressed result cache.
//
// The serve command uses it to memoize validation and nesting results
// for canvas documents: the cache key is derived from a SHA-256 hash of
// the document bytes, so any edit to the file misses cleanly and
// identical uploads hit regardless of origin.
//
// Two implementations exist: [FileCache] persists entries under a
// directory (XDG cache dir in the CLI), and [NullCache] disables
// caching without changing call sites.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with an optional TTL.
// Implementations must treat expired or corrupt entries as misses, never
// as errors.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
