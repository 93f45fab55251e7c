// Package cache provides the local build cache for the gallery pipeline.
//
// Scan results, computed layouts, and rendered artifacts are cached
// between runs so that re-building a site only recomputes what changed.
// Keys are derived from content hashes plus the options that influenced
// the stage, so any input change invalidates exactly the affected
// entries.
package cache

import (
	"context"
	"time"
)

// TTLs per cached stage. Manifests expire quickly because the source
// directory can change underneath the cache; layouts and artifacts are
// pure functions of their keys and can live longer.
const (
	TTLManifest = 1 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface for pipeline caching.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ManifestKeyOpts are the scan options that influence a cached manifest.
type ManifestKeyOpts struct {
	Recursive bool
}

// LayoutKeyOpts are the layout options that influence a cached layout.
type LayoutKeyOpts struct {
	ContainerWidth    float64
	TargetRowHeight   float64
	Tolerance         float64
	BoxSpacing        float64
	ContainerPadding  float64
	MobileBreakpoint  float64
	DesktopBreakpoint float64
}

// ArtifactKeyOpts are the render options that influence a cached artifact.
type ArtifactKeyOpts struct {
	Format string
	Labels bool
	Thumbs bool
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// ManifestKey generates a key for a scanned manifest. The fingerprint
	// identifies the source directory contents (paths, sizes, mtimes).
	ManifestKey(fingerprint string, opts ManifestKeyOpts) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(manifestHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes the stage inputs into stable, collision-resistant
// keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ManifestKey generates a key for a scanned manifest.
func (k *DefaultKeyer) ManifestKey(fingerprint string, opts ManifestKeyOpts) string {
	return hashKey("manifest", fingerprint, opts)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(manifestHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", manifestHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
