package segment

import "github.com/gogpu/gg-segment/cache"

// Cache memoizes segmentations. Primitives are usually rebuilt every frame
// with the same clip shapes; the cache replays the stored segments instead
// of sweeping again. Keys are an exact encoding of the builder state, so a
// hit always yields the segments Build would have produced.
//
// A Cache is safe for concurrent use.
type Cache struct {
	c *cache.ShardedCache[string, []Segment]
}

// NewCache creates a cache holding up to capacity segmentations per shard.
// If capacity <= 0, cache.DefaultCapacity is used.
func NewCache(capacity int) *Cache {
	return &Cache{c: cache.NewSharded[string, []Segment](capacity, cache.StringHasher)}
}

// Build behaves like b.Build(sink), consulting the cache first. The Builder
// is consumed either way.
func (c *Cache) Build(b *Builder, sink func(Segment)) {
	b.mustBeLive("Build")
	key := string(b.appendKey(nil))

	segs := c.c.GetOrCreate(key, b.Segments)
	if b.consumed {
		Logger().Debug("segment: cache miss", "segments", len(segs))
	} else {
		b.consumed = true
		b.items = nil
	}
	for _, s := range segs {
		sink(s)
	}
}

// Stats returns hit, miss and eviction counters.
func (c *Cache) Stats() cache.Stats {
	return c.c.Stats()
}

// Len returns the number of cached segmentations.
func (c *Cache) Len() int {
	return c.c.Len()
}

// Clear drops every cached segmentation.
func (c *Cache) Clear() {
	c.c.Clear()
}
