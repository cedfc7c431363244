// Package cache provides pluggable artifact caching for the pipeline.
//
// Rendering the same folded input with the same options is fully
// deterministic, so pipeline stages cache their outputs keyed by a content
// hash of the input plus the stage options. Three backends are provided:
//
//   - [FileCache]: directory-based cache for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: no-op cache for tests and --no-cache
//
// The cache stores only derived artifacts that can always be recomputed;
// it is not a persistence layer for profiles.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
// Implementations must treat a missing key as a miss, not an error.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	// A non-positive ttl stores the entry without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// TreeKey keys a decoded tree by the content hash of its folded input
	// and the decode options.
	TreeKey(inputHash string, opts any) string

	// LayoutKey keys a computed layout by tree hash and geometry options.
	LayoutKey(treeHash string, opts any) string

	// ArtifactKey keys a rendered artifact by layout hash, format, and
	// render options.
	ArtifactKey(layoutHash, format string, opts any) string
}

// DefaultKeyer hashes key components with SHA-256 under a stage prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// TreeKey implements Keyer.
func (DefaultKeyer) TreeKey(inputHash string, opts any) string {
	return hashKey("tree", inputHash, opts)
}

// LayoutKey implements Keyer.
func (DefaultKeyer) LayoutKey(treeHash string, opts any) string {
	return hashKey("layout", treeHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(layoutHash, format string, opts any) string {
	return hashKey("artifact", layoutHash, format, opts)
}
