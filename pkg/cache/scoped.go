package cache

// ScopedKeyer wraps a Keyer with a prefix. A shared Redis instance can hold
// entries for several tools or environments without collisions.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "releasedeck:")
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

// TagsKey generates a prefixed key for tag list caching.
func (k *ScopedKeyer) TagsKey(apiURL, owner, repo string) string {
	return k.prefix + k.inner.TagsKey(apiURL, owner, repo)
}
