package cache

import "testing"

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](0)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache reported a hit")
	}
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}
	if !c.Delete("a") || c.Delete("a") {
		t.Error("Delete should report presence exactly once")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, string](4)
	calls := 0
	create := func() string { calls++; return "v" }
	c.GetOrCreate(1, create)
	c.GetOrCreate(1, create)
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheSoftLimitEvictsOldest(t *testing.T) {
	c := New[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}
	// Touch 0 so that 1 becomes the oldest.
	c.Get(0)
	c.Set(4, 4)

	if c.Len() > 4 {
		t.Errorf("Len() = %d, want <= 4", c.Len())
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used entry 0 was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest entry 1 survived eviction")
	}
	if _, ok := c.Get(4); !ok {
		t.Error("new entry 4 missing")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int, int](8)
	c.Set(1, 1)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if c.Capacity() != 8 {
		t.Errorf("Capacity() = %d, want 8", c.Capacity())
	}
}
