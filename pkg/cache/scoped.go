package cache

// ScopedKeyer wraps a Keyer with a prefix so several galleries built from
// the same machine keep separate cache namespaces.
//
// Example usage:
//
//	// Per-gallery keys
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "iceland:")
//
//	// Shared keys
//	global := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ManifestKey generates a prefixed key for manifest caching.
func (k *ScopedKeyer) ManifestKey(fingerprint string, opts ManifestKeyOpts) string {
	return k.prefix + k.inner.ManifestKey(fingerprint, opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(manifestHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(manifestHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
