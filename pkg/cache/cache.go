// Package cache stores rendered calendar artifacts.
//
// A [Cache] is a plain byte store keyed by strings. The pipeline derives
// keys with a [Keyer] from everything that influences an artifact: the
// calendar inputs, the geometry, the render options and the output
// format. Three backends are provided:
//
//   - [FileCache]: JSON entry files under a local directory (CLI default)
//   - [RedisCache]: a shared Redis instance (HTTP server)
//   - [NullCache]: stores nothing (--no-cache)
package cache

import (
	"context"
	"strconv"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero stores an entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLArtifact is how long rendered artifacts stay cached. Calendars are a
// pure function of their inputs, so the TTL only bounds disk usage.
const TTLArtifact = 30 * 24 * time.Hour

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey returns the key of one rendered format for the grid
	// identified by inputHash.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string

	// WeeksKey returns the key of a year's week table.
	WeeksKey(year int) string
}

// ArtifactKeyOpts are the sink settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer produces keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", inputHash, opts)
}

// WeeksKey implements Keyer.
func (DefaultKeyer) WeeksKey(year int) string {
	return "weeks:" + strconv.Itoa(year)
}
