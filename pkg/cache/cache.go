// Package cache stores rendered artifacts keyed by their inputs.
//
// Rasterizing a graph is the slow part of the pipeline, so the CLI and the
// preview server cache rendered SVG/PNG bytes keyed by a hash of the DOT
// text and the output format. Re-rendering an unchanged graph is then a
// cache read.
//
// Three backends are provided: [FileCache] for CLI usage, [RedisCache] for
// shared server deployments, and [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry; a negative ttl
	// stores an already-expired entry, which every subsequent Get misses.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact: the output
// format plus a hash of the DOT text. Two graphs that render to identical
// DOT share an entry.
func ArtifactKey(dot string, format string) string {
	return "artifact:" + format + ":" + Hash([]byte(dot))
}
