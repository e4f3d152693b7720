package cache

import "testing"

func BenchmarkCacheGet(b *testing.B) {
	c := New[int, int](1000)
	for i := range 1000 {
		c.Set(i, i)
	}
	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		c.Get(i % 1000)
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[int, int](1000)
	for i := 0; b.Loop(); i++ {
		c.GetOrCreate(i%2000, func() int { return i })
	}
}

func BenchmarkPoolAcquireHit(b *testing.B) {
	p := NewPool[key, *int](128)
	v := 0
	e, _ := p.Acquire(k(1), func() *int { return &v })
	p.Release(e)
	b.ResetTimer()
	for b.Loop() {
		e, _ := p.Acquire(k(1), func() *int { return &v })
		p.Release(e)
	}
}

func BenchmarkPoolChurn(b *testing.B) {
	p := NewPool[key, *int](128)
	v := 0
	for i := 0; b.Loop(); i++ {
		e, _ := p.Acquire(k(i%512), func() *int { return &v })
		p.Release(e)
	}
}
