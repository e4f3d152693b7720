package gstyle

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

// countingRender paints the full canvas red and counts its invocations.
type countingRender struct{ calls int }

func (r *countingRender) paint(c *Canvas) {
	r.calls++
	b := c.Bounds()
	c.FillColor(RectRegion(0, 0, float64(b.Dx()), float64(b.Dy())), gg.Red)
}

func TestShouldCache(t *testing.T) {
	gradient := func(g GradientStyle) GradientStyle { return g.WithColors(gg.Red, gg.Blue) }
	painter := NewPainter("p", func(*gg.Context) error { return nil })

	tests := []struct {
		name  string
		style Style
		layer Layer
		w, h  int
		want  bool
	}{
		{"rounded background", panelStyle(), LayerBackground, 200, 200, true},
		{"too large for one heavy element", panelStyle(), LayerBackground, 600, 600, false},
		{"visible border", panelStyle(), LayerBorder, 200, 200, true},
		{"flat background", NewStyle().WithBackground(gg.White), LayerBackground, 200, 200, false},
		{"nothing heavy", panelStyle(), LayerContent, 200, 200, false},
		{"empty bounds", panelStyle(), LayerBackground, 0, 0, false},
		{
			"three heavy elements scale the limit",
			panelStyle().WithGradient(LayerBackground, "a", gradient).WithGradient(LayerBackground, "b", gradient),
			LayerBackground, 400, 400, true,
		},
		{
			"painters are never cached",
			panelStyle().WithPainter(LayerBackground, "p", painter),
			LayerBackground, 200, 200, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := NewRenderState(tt.layer, tt.style, Size(tt.w, tt.h))
			if got := rs.IsCacheable(); got != tt.want {
				t.Errorf("IsCacheable() = %v (heavy=%d), want %v", got, rs.HeavyCount(), tt.want)
			}
		})
	}
}

func TestHeavyFactorIsCapped(t *testing.T) {
	s := panelStyle()
	for i := range 8 {
		s = s.WithGradient(LayerBackground, string(rune('a'+i)), func(g GradientStyle) GradientStyle {
			return g.WithColors(gg.Red, gg.Blue)
		})
	}
	rs := NewRenderState(LayerBackground, s, Size(600, 600))
	if rs.HeavyCount() != 9 {
		t.Fatalf("HeavyCount() = %d, want 9", rs.HeavyCount())
	}
	// 360000 > 5 * 65536
	if rs.IsCacheable() {
		t.Error("heavy factor must be capped at 5")
	}
}

func TestLayerCacheRendersOnce(t *testing.T) {
	pools := NewPools(4)
	lc := NewLayerCache(LayerBackground, pools)
	state := NewRenderState(LayerBackground, panelStyle(), Size(20, 20))
	r := &countingRender{}

	for range 3 {
		pm := gg.NewPixmap(20, 20)
		lc.Paint(state, NewCanvas(pm), r.paint)
		if got := pm.GetPixel(10, 10); !approxColor(got, gg.Red) {
			t.Fatalf("blitted pixel = %v, want red", got)
		}
	}
	if r.calls != 1 {
		t.Errorf("render ran %d times, want 1", r.calls)
	}
	if !lc.IsCached() {
		t.Error("cache holds no buffer")
	}
	st := pools.Stats(LayerBackground)
	if st.Len != 1 || st.Misses != 1 {
		t.Errorf("stats = %+v, want one miss and one entry", st)
	}
}

func TestLayerCacheSharesEqualStates(t *testing.T) {
	pools := NewPools(4)
	a := NewLayerCache(LayerBackground, pools)
	b := NewLayerCache(LayerBackground, pools)
	r := &countingRender{}

	// Two structurally equal but separately built styles.
	a.Paint(NewRenderState(LayerBackground, panelStyle(), Size(20, 20)), NewCanvas(gg.NewPixmap(20, 20)), r.paint)
	b.Paint(NewRenderState(LayerBackground, panelStyle(), Size(20, 20)), NewCanvas(gg.NewPixmap(20, 20)), r.paint)

	if r.calls != 1 {
		t.Errorf("render ran %d times for equal states, want 1", r.calls)
	}
	if a.entry != b.entry {
		t.Error("caches hold different entries for equal states")
	}
	if got := a.entry.Owners(); got != 2 {
		t.Errorf("owners = %d, want 2", got)
	}
	if st := pools.Stats(LayerBackground); st.Hits != 1 {
		t.Errorf("hits = %d, want 1", st.Hits)
	}
}

func TestContentAndForegroundSharePool(t *testing.T) {
	pools := NewPools(4)
	s := NewStyle().
		WithGradient(LayerContent, "g", func(g GradientStyle) GradientStyle { return g.WithColors(gg.Red, gg.Blue) }).
		WithGradient(LayerForeground, "g", func(g GradientStyle) GradientStyle { return g.WithColors(gg.Red, gg.Blue) })
	r := &countingRender{}

	content := NewLayerCache(LayerContent, pools)
	fg := NewLayerCache(LayerForeground, pools)
	content.Paint(NewRenderState(LayerContent, s, Size(10, 10)), NewCanvas(gg.NewPixmap(10, 10)), r.paint)
	fg.Paint(NewRenderState(LayerForeground, s, Size(10, 10)), NewCanvas(gg.NewPixmap(10, 10)), r.paint)

	if r.calls != 1 {
		t.Errorf("render ran %d times, want one shared buffer", r.calls)
	}
}

func TestLayerCacheValidate(t *testing.T) {
	pools := NewPools(4)
	lc := NewLayerCache(LayerBackground, pools)
	old := NewRenderState(LayerBackground, panelStyle(), Size(20, 20))
	lc.Paint(old, NewCanvas(gg.NewPixmap(20, 20)), (&countingRender{}).paint)

	lc.Validate(old, NewRenderState(LayerBackground, panelStyle(), Size(20, 20)))
	if !lc.IsCached() {
		t.Fatal("Validate released the buffer for an equal state")
	}
	held := lc.entry

	lc.Validate(old, NewRenderState(LayerBackground, panelStyle().WithBackground(gg.Red), Size(20, 20)))
	if lc.IsCached() {
		t.Error("Validate kept the buffer for a changed state")
	}
	if held.Owners() != 0 {
		t.Errorf("released entry still has %d owners", held.Owners())
	}
	if pools.Stats(LayerBackground).Len != 1 {
		t.Error("released buffer must stay pooled")
	}
}

func TestLayerCacheStateChangeReleases(t *testing.T) {
	pools := NewPools(4)
	lc := NewLayerCache(LayerBackground, pools)
	r := &countingRender{}

	lc.Paint(NewRenderState(LayerBackground, panelStyle(), Size(20, 20)), NewCanvas(gg.NewPixmap(20, 20)), r.paint)
	first := lc.entry
	lc.Paint(NewRenderState(LayerBackground, panelStyle(), Size(30, 20)), NewCanvas(gg.NewPixmap(30, 20)), r.paint)

	if r.calls != 2 || lc.entry == first {
		t.Errorf("calls = %d, want a fresh buffer after resize", r.calls)
	}
	if first.Owners() != 0 {
		t.Error("previous buffer was not released")
	}
}

func TestLayerCacheDirectWhenNotCacheable(t *testing.T) {
	pools := NewPools(4)
	lc := NewLayerCache(LayerBackground, pools)
	r := &countingRender{}
	state := NewRenderState(LayerBackground, panelStyle(), Size(600, 600))

	lc.Paint(state, NewCanvas(gg.NewPixmap(600, 600)), r.paint)
	lc.Paint(state, NewCanvas(gg.NewPixmap(600, 600)), r.paint)

	if r.calls != 2 {
		t.Errorf("render ran %d times, want direct painting each time", r.calls)
	}
	if lc.IsCached() || pools.Stats(LayerBackground).Len != 0 {
		t.Error("uncacheable layer allocated a buffer")
	}
}

func TestLayerCachePoolExhausted(t *testing.T) {
	logs := captureLogs(t)
	pools := NewPools(1)
	a := NewLayerCache(LayerBackground, pools)
	b := NewLayerCache(LayerBackground, pools)
	r := &countingRender{}

	a.Paint(NewRenderState(LayerBackground, panelStyle(), Size(20, 20)), NewCanvas(gg.NewPixmap(20, 20)), r.paint)

	pm := gg.NewPixmap(30, 30)
	b.Paint(NewRenderState(LayerBackground, panelStyle(), Size(30, 30)), NewCanvas(pm), r.paint)

	if b.IsCached() {
		t.Error("full pool handed out a buffer")
	}
	if got := pm.GetPixel(25, 25); !approxColor(got, gg.Red) {
		t.Errorf("direct fallback did not paint: %v", got)
	}
	if st := pools.Stats(LayerBackground); st.Refusals != 1 {
		t.Errorf("refusals = %d, want 1", st.Refusals)
	}
	if !strings.Contains(logs.String(), "buffer pool exhausted") {
		t.Errorf("missing exhaustion log:\n%s", logs)
	}

	// Once a releases, the pool evicts its entry for b.
	a.Release()
	b.Paint(NewRenderState(LayerBackground, panelStyle(), Size(30, 30)), NewCanvas(gg.NewPixmap(30, 30)), r.paint)
	if !b.IsCached() {
		t.Error("released entry was not evicted for a new state")
	}
}

func TestLayerBufferRendersOnce(t *testing.T) {
	buf := newLayerBuffer(Size(4, 4))
	noop := func(*Canvas) {}
	if err := buf.render(true, noop); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if err := buf.render(true, noop); !errors.Is(err, ErrBufferRendered) {
		t.Errorf("second render = %v, want ErrBufferRendered", err)
	}
}

func TestPoolsClear(t *testing.T) {
	pools := NewPools(4)
	lc := NewLayerCache(LayerBorder, pools)
	lc.Paint(NewRenderState(LayerBorder, panelStyle(), Size(20, 20)), NewCanvas(gg.NewPixmap(20, 20)), (&countingRender{}).paint)
	lc.Release()
	pools.Clear()
	if st := pools.Stats(LayerBorder); st.Len != 0 {
		t.Errorf("Len after Clear = %d", st.Len)
	}
}

func TestNewLayerCacheDefaultsPools(t *testing.T) {
	lc := NewLayerCache(LayerBorder, nil)
	if lc.pools != DefaultPools() {
		t.Error("nil pools must use the default pools")
	}
	if lc.Layer() != LayerBorder {
		t.Errorf("Layer() = %v", lc.Layer())
	}
}
