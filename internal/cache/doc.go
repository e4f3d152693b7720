// Package cache provides the bounded caches behind the style engine.
//
// # Pool[K, V]
//
// A bounded LRU of values keyed by structurally compared keys. Entries are
// reference counted by their owners; only entries nobody owns can be
// evicted. When the pool is full and every entry is owned, Acquire refuses
// to allocate and the caller falls back to working uncached.
//
//	pool := cache.NewPool[State, *Buffer](128)
//	e, ok := pool.Acquire(state, newBuffer)
//	defer pool.Release(e)
//
// # Cache[K, V]
//
// A simple LRU cache with a soft limit: when it grows past the limit the
// oldest quarter of the entries is dropped.
//
//	c := cache.New[key, *image.RGBA](64)
//	img := c.GetOrCreate(k, scale)
//
// # Thread Safety
//
// Neither type is safe for concurrent use. Both are meant to be confined
// to the UI goroutine that paints components.
package cache
