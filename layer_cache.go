package gstyle

import (
	"errors"
	"image"

	"github.com/gogpu/gg"

	"github.com/gogpu/gstyle/internal/cache"
)

// ErrBufferRendered is returned when a layer buffer is rendered twice.
// Buffers are shared between components and must not change once filled.
var ErrBufferRendered = errors.New("gstyle: layer buffer already rendered")

// DefaultPoolLimit is the number of buffers each pool keeps by default.
const DefaultPoolLimit = 128

// Caching thresholds: a layer is buffered when it has at least one heavy
// element and covers at most maxCachedArea pixels per heavy element, with
// the multiplier capped at maxHeavyFactor.
const (
	maxCachedArea  = 256 * 256
	maxHeavyFactor = 5
)

// PoolStats counts the activity of one buffer pool.
type PoolStats = cache.PoolStats

type bufferPool = cache.Pool[RenderState, *layerBuffer]

// Pools holds the buffer pools shared by layer caches. Content and
// foreground layers share one pool.
//
// Pools must only be used from the UI goroutine.
type Pools struct {
	background *bufferPool
	border     *bufferPool
	content    *bufferPool
}

// NewPools creates pools holding at most limit buffers each.
func NewPools(limit int) *Pools {
	return &Pools{
		background: cache.NewPool[RenderState, *layerBuffer](limit),
		border:     cache.NewPool[RenderState, *layerBuffer](limit),
		content:    cache.NewPool[RenderState, *layerBuffer](limit),
	}
}

var defaultPools = NewPools(DefaultPoolLimit)

// DefaultPools returns the process-wide pools used by engines created
// without WithPools.
func DefaultPools() *Pools { return defaultPools }

func (p *Pools) forLayer(l Layer) *bufferPool {
	switch l {
	case LayerBackground:
		return p.background
	case LayerBorder:
		return p.border
	default:
		return p.content
	}
}

// Stats returns the statistics of the pool serving layer l.
func (p *Pools) Stats(l Layer) PoolStats { return p.forLayer(l).Stats() }

// Clear drops every pooled buffer.
func (p *Pools) Clear() {
	p.background.Clear()
	p.border.Clear()
	p.content.Clear()
}

// layerBuffer is an offscreen rendering of one layer. It is filled exactly
// once and then only read.
type layerBuffer struct {
	pm       *gg.Pixmap
	rendered bool
}

func newLayerBuffer(b Bounds) *layerBuffer {
	return &layerBuffer{pm: gg.NewPixmap(b.Width, b.Height)}
}

// render fills the buffer by running fn on a canvas over it.
func (b *layerBuffer) render(antialias bool, fn func(*Canvas)) error {
	if b.rendered {
		return ErrBufferRendered
	}
	b.rendered = true
	c := NewCanvas(b.pm)
	c.SetAntialias(antialias)
	fn(c)
	return nil
}

// LayerCache decides whether one layer of one component is buffered and
// holds the buffer it currently uses. Buffers live in Pools and are shared
// by every cache whose render state is equal.
//
// A LayerCache must only be used from the UI goroutine.
type LayerCache struct {
	layer Layer
	pools *Pools
	entry *cache.Entry[RenderState, *layerBuffer]
}

// NewLayerCache returns a cache for layer l backed by pools.
// A nil pools uses DefaultPools.
func NewLayerCache(l Layer, pools *Pools) *LayerCache {
	if pools == nil {
		pools = defaultPools
	}
	return &LayerCache{layer: l, pools: pools}
}

// Layer returns the layer the cache serves.
func (c *LayerCache) Layer() Layer { return c.layer }

// IsCached reports whether the cache currently holds a buffer.
func (c *LayerCache) IsCached() bool { return c.entry != nil }

// Validate gives up the held buffer when the render state changed.
func (c *LayerCache) Validate(old, next RenderState) {
	if !old.Equal(next) {
		c.Release()
	}
}

// Release gives up the held buffer. The buffer stays pooled for other
// components until it is evicted.
func (c *LayerCache) Release() {
	if c.entry == nil {
		return
	}
	c.pools.forLayer(c.layer).Release(c.entry)
	c.entry = nil
}

// Paint draws the layer described by state onto canvas. When the layer is
// worth caching, render runs once into a pooled buffer which is then
// blitted; otherwise, or when the pool is exhausted, render paints the
// canvas directly.
func (c *LayerCache) Paint(state RenderState, canvas *Canvas, render func(*Canvas)) {
	if !shouldCache(state) {
		c.Release()
		render(canvas)
		return
	}
	if c.entry != nil && !c.entry.Key().Equal(state) {
		c.Release()
	}
	if c.entry == nil {
		pool := c.pools.forLayer(c.layer)
		e, ok := pool.Acquire(state, func() *layerBuffer { return newLayerBuffer(state.Bounds()) })
		if !ok {
			Logger().Debug("gstyle: buffer pool exhausted, painting directly",
				"layer", c.layer, "limit", pool.Limit())
			render(canvas)
			return
		}
		c.entry = e
	}
	buf := c.entry.Value
	if !buf.rendered {
		Logger().Debug("gstyle: layer cache miss", "state", state)
		if err := buf.render(state.antialias, render); err != nil {
			Logger().Warn("gstyle: layer buffer render failed", "err", err)
		}
	}
	canvas.DrawPixmap(buf.pm, image.Point{}, 1)
}

// shouldCache reports whether buffering the layer pays off.
func shouldCache(state RenderState) bool {
	b := state.Bounds()
	if b.Empty() || state.style.HasPainters() {
		return false
	}
	heavy := heavyCount(state)
	return heavy >= 1 && b.Area() <= maxCachedArea*min(heavy, maxHeavyFactor)
}

// heavyCount counts the expensive elements of a layer: images, gradients
// and shadows, a visible border, and a shaped background.
func heavyCount(state RenderState) int {
	n := state.style.heavyCount()
	s := state.structure
	if c, ok := state.colors.border.Get(); ok && isVisible(c) && s.BorderWidths.IsPositive() {
		n++
	}
	if c, ok := state.colors.background.Get(); ok && isVisible(c) {
		rounded := false
		for _, a := range s.Arcs {
			rounded = rounded || a.IsRounded()
		}
		if rounded || s.Margin.IsPositive() {
			n++
		}
	}
	return n
}

// IsCacheable reports whether a LayerCache buffers the layer.
func (rs RenderState) IsCacheable() bool { return shouldCache(rs) }

// HeavyCount returns the number of expensive elements the layer paints.
func (rs RenderState) HeavyCount() int { return heavyCount(rs) }
