package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis instance without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "gridcal:v1:")
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

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(inputHash, opts)
}

// WeeksKey generates a prefixed key for week table caching.
func (k *ScopedKeyer) WeeksKey(year int) string {
	return k.prefix + k.inner.WeeksKey(year)
}
