package cache

// Key is a pool key: a precomputed hash plus structural equality.
// Keys that are Equal must have the same Hash.
type Key[K any] interface {
	Hash() uint64
	Equal(other K) bool
}

// Entry is a pooled value together with the key that produced it.
type Entry[K Key[K], V any] struct {
	key    K
	Value  V
	owners int
	node   *lruNode[*Entry[K, V]]
}

// Key returns the key the entry was created for.
func (e *Entry[K, V]) Key() K { return e.key }

// Owners returns how many holders currently own the entry.
func (e *Entry[K, V]) Owners() int { return e.owners }

// Pool is a bounded LRU of owned values.
//
// Pool is not safe for concurrent use.
type Pool[K Key[K], V any] struct {
	limit   int
	buckets map[uint64][]*Entry[K, V]
	lru     *lruList[*Entry[K, V]]
	stats   PoolStats
}

// PoolStats counts pool activity.
type PoolStats struct {
	Len       int
	Limit     int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Refusals  uint64
}

// NewPool creates a pool holding at most limit entries.
// A limit below 1 is treated as 1.
func NewPool[K Key[K], V any](limit int) *Pool[K, V] {
	return &Pool[K, V]{
		limit:   max(limit, 1),
		buckets: make(map[uint64][]*Entry[K, V]),
		lru:     newLRUList[*Entry[K, V]](),
	}
}

// Lookup returns the entry equal to key without taking ownership.
func (p *Pool[K, V]) Lookup(key K) (*Entry[K, V], bool) {
	for _, e := range p.buckets[key.Hash()] {
		if e.key.Equal(key) {
			return e, true
		}
	}
	return nil, false
}

// Acquire returns the entry for key and takes one ownership of it.
// A missing entry is created with create. When the pool is full and every
// entry is owned, Acquire returns false and nothing is allocated.
func (p *Pool[K, V]) Acquire(key K, create func() V) (*Entry[K, V], bool) {
	if e, ok := p.Lookup(key); ok {
		p.stats.Hits++
		e.owners++
		p.lru.MoveToFront(e.node)
		return e, true
	}
	p.stats.Misses++
	if p.lru.Len() >= p.limit && !p.evictUnowned() {
		p.stats.Refusals++
		return nil, false
	}
	e := &Entry[K, V]{key: key, Value: create(), owners: 1}
	e.node = p.lru.PushFront(e)
	h := key.Hash()
	p.buckets[h] = append(p.buckets[h], e)
	return e, true
}

// Release gives up one ownership. The entry stays pooled for reuse until
// it is evicted.
func (p *Pool[K, V]) Release(e *Entry[K, V]) {
	if e == nil || e.owners == 0 {
		return
	}
	e.owners--
}

// evictUnowned drops the least recently used entry nobody owns.
func (p *Pool[K, V]) evictUnowned() bool {
	for n := p.lru.Oldest(); n != nil; n = n.prev {
		if n.value.owners == 0 {
			p.remove(n.value)
			p.stats.Evictions++
			return true
		}
	}
	return false
}

func (p *Pool[K, V]) remove(e *Entry[K, V]) {
	p.lru.Remove(e.node)
	h := e.key.Hash()
	bucket := p.buckets[h]
	for i, other := range bucket {
		if other == e {
			bucket = append(bucket[:i:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(p.buckets, h)
	} else {
		p.buckets[h] = bucket
	}
}

// Len returns the number of pooled entries.
func (p *Pool[K, V]) Len() int { return p.lru.Len() }

// Limit returns the maximum number of entries.
func (p *Pool[K, V]) Limit() int { return p.limit }

// Stats returns pool statistics.
func (p *Pool[K, V]) Stats() PoolStats {
	s := p.stats
	s.Len = p.lru.Len()
	s.Limit = p.limit
	return s
}

// Clear drops every entry, owned or not.
func (p *Pool[K, V]) Clear() {
	p.buckets = make(map[uint64][]*Entry[K, V])
	p.lru.Clear()
}
