package cache

import "testing"

// key hashes by value but lets tests force collisions.
type key struct {
	id   int
	hash uint64
}

func (k key) Hash() uint64       { return k.hash }
func (k key) Equal(o key) bool   { return k.id == o.id }
func k(id int) key               { return key{id: id, hash: uint64(id)} }
func collide(id int) key         { return key{id: id, hash: 7} }
func counter(n *int) func() *int { return func() *int { *n++; v := *n; return &v } }

func TestPoolAcquireReusesEqualKeys(t *testing.T) {
	p := NewPool[key, *int](4)
	created := 0
	a, ok := p.Acquire(k(1), counter(&created))
	if !ok {
		t.Fatal("Acquire on empty pool refused")
	}
	b, _ := p.Acquire(k(1), counter(&created))
	if a != b {
		t.Error("equal keys returned different entries")
	}
	if created != 1 {
		t.Errorf("created %d values, want 1", created)
	}
	if a.Owners() != 2 {
		t.Errorf("Owners() = %d, want 2", a.Owners())
	}
}

func TestPoolHashCollisions(t *testing.T) {
	p := NewPool[key, *int](4)
	created := 0
	a, _ := p.Acquire(collide(1), counter(&created))
	b, _ := p.Acquire(collide(2), counter(&created))
	if a == b {
		t.Fatal("colliding but unequal keys shared an entry")
	}
	if got, ok := p.Lookup(collide(2)); !ok || got != b {
		t.Error("Lookup did not find the second colliding key")
	}
	p.Release(a)
	p.Release(b)
	for i := 3; i <= 6; i++ {
		e, _ := p.Acquire(collide(i), counter(&created))
		p.Release(e)
	}
	if p.Len() != 4 {
		t.Errorf("Len() = %d, want 4", p.Len())
	}
}

func TestPoolEvictsOnlyUnowned(t *testing.T) {
	p := NewPool[key, *int](2)
	created := 0
	a, _ := p.Acquire(k(1), counter(&created))
	b, _ := p.Acquire(k(2), counter(&created))

	if _, ok := p.Acquire(k(3), counter(&created)); ok {
		t.Fatal("full pool with owned entries allocated a new entry")
	}
	if s := p.Stats(); s.Refusals != 1 {
		t.Errorf("Refusals = %d, want 1", s.Refusals)
	}

	p.Release(a)
	c, ok := p.Acquire(k(3), counter(&created))
	if !ok {
		t.Fatal("Acquire refused although an unowned entry was evictable")
	}
	if _, ok := p.Lookup(k(1)); ok {
		t.Error("released entry 1 was not evicted")
	}
	if _, ok := p.Lookup(k(2)); !ok {
		t.Error("owned entry 2 was evicted")
	}
	p.Release(b)
	p.Release(c)
	if s := p.Stats(); s.Evictions != 1 || s.Len != 2 || s.Limit != 2 {
		t.Errorf("Stats() = %+v", s)
	}
}

func TestPoolLRUOrder(t *testing.T) {
	p := NewPool[key, *int](2)
	created := 0
	for _, id := range []int{1, 2} {
		e, _ := p.Acquire(k(id), counter(&created))
		p.Release(e)
	}
	// Touch 1, making 2 the least recently used.
	e, _ := p.Acquire(k(1), counter(&created))
	p.Release(e)
	e, _ = p.Acquire(k(3), counter(&created))
	p.Release(e)

	if _, ok := p.Lookup(k(1)); !ok {
		t.Error("recently used entry 1 was evicted")
	}
	if _, ok := p.Lookup(k(2)); ok {
		t.Error("least recently used entry 2 survived")
	}
}

func TestPoolReleaseIsBounded(t *testing.T) {
	p := NewPool[key, *int](1)
	created := 0
	e, _ := p.Acquire(k(1), counter(&created))
	p.Release(e)
	p.Release(e)
	p.Release(nil)
	if e.Owners() != 0 {
		t.Errorf("Owners() = %d, want 0", e.Owners())
	}
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", p.Len())
	}
}
