package gstyle

import (
	"time"

	"github.com/gogpu/gg"
)

// Component is the native widget a style is installed on.
type Component interface {
	// Size returns the current component size in pixels.
	Size() (width, height int)
	// Background returns the native background color, if any.
	Background() (gg.RGBA, bool)
	SetBackground(c gg.RGBA)
	IsOpaque() bool
	SetOpaque(opaque bool)
}

// Optional component capabilities. InstallStyle applies the matching
// style parts to components implementing them.
type (
	ForegroundSetter interface{ SetForeground(c gg.RGBA) }
	CursorSetter     interface{ SetCursor(c Cursor) }
	FontSetter       interface{ SetFont(f FontStyle) }
	SizeConstrainer  interface{ SetSizeConstraints(d DimensionalityStyle) }
	PropertySetter   interface{ SetProperty(key, value string) }
)

// LifeTime describes when an animation painter is active: after Delay
// it paints for Duration. A zero Duration never expires.
type LifeTime struct {
	Delay    time.Duration
	Duration time.Duration
}

// animationPainter is a painter bound to a lifetime. overlay painters
// are drawn by RenderAnimationOverlays instead of a layer.
type animationPainter struct {
	painter *Painter
	layer   Layer
	overlay bool
	start   time.Time
	end     time.Time
}

func (a animationPainter) active(now time.Time) bool {
	return !now.Before(a.start) && !a.expired(now)
}

func (a animationPainter) expired(now time.Time) bool {
	return !a.end.IsZero() && !now.Before(a.end)
}

// Engine renders the style of one component. It keeps the areas of the
// component and one LayerCache per layer, and it revalidates both only
// when the installed style or the component size changes.
//
// An Engine must only be used from the UI goroutine.
type Engine struct {
	opts       options
	style      Style // as installed, before scaling
	scaled     Style
	structure  StructureState
	states     [len(Layers)]RenderState
	areas      *ComponentAreas
	caches     [len(Layers)]*LayerCache
	images     *imageCache
	animations []animationPainter

	initialBackground Opt[gg.RGBA]
	initialOpaque     Opt[bool]
}

// NewEngine creates an engine with no style installed.
func NewEngine(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		opts:   o,
		areas:  NewComponentAreas(),
		images: newImageCache(),
	}
	for _, l := range Layers {
		e.caches[l] = NewLayerCache(l, o.pools)
		e.states[l] = NewRenderState(l, e.scaled, Bounds{}).WithAntialias(o.antialiasing())
	}
	return e
}

// Style returns the installed style.
func (e *Engine) Style() Style { return e.style }

// Bounds returns the component size the engine renders for.
func (e *Engine) Bounds() Bounds { return e.structure.Bounds }

// Areas returns the area cache of the component.
func (e *Engine) Areas() *ComponentAreas { return e.areas }

// Antialias reports whether the engine paints with antialiasing.
func (e *Engine) Antialias() bool { return e.opts.antialiasing() }

// RenderState returns the current render state of layer l.
func (e *Engine) RenderState(l Layer) RenderState { return e.states[l] }

// LayerCache returns the cache serving layer l.
func (e *Engine) LayerCache(l Layer) *LayerCache { return e.caches[l] }

// Update sets the style and size to render. Areas and layer caches are
// revalidated against the previous state and kept when it is unchanged.
// An invalid style is rejected and the previous one stays in use.
func (e *Engine) Update(s Style, b Bounds) error {
	if err := s.Validate(); err != nil {
		return err
	}
	e.update(s, b)
	return nil
}

func (e *Engine) update(s Style, b Bounds) {
	e.style = s
	e.scaled = s
	if e.opts.scale != 1 {
		e.scaled = s.Scale(e.opts.scale)
	}
	next := NewStructureState(e.scaled, b)
	e.areas.Validate(e.structure, next)
	e.structure = next
	for _, l := range Layers {
		state := NewRenderState(l, e.scaled, b).WithAntialias(e.opts.antialiasing())
		e.caches[l].Validate(e.states[l], state)
		e.states[l] = state
	}
}

// InstallStyle validates s, applies its non-rendering parts to c and
// prepares the engine to render it at the component's size. It returns
// the style actually installed, which may carry a synthesized background.
// An invalid style is rejected and the previous style stays installed.
func (e *Engine) InstallStyle(c Component, s Style) (Style, error) {
	if err := s.Validate(); err != nil {
		return e.style, err
	}
	s = e.applyTo(c, s)
	w, h := c.Size()
	e.update(s, Size(w, h))
	return s, nil
}

// Close gives up the buffers held by the layer caches.
func (e *Engine) Close() {
	for _, c := range e.caches {
		c.Release()
	}
}

// RenderBackground paints the background layer.
func (e *Engine) RenderBackground(c *Canvas) {
	e.withAntialias(c, func() { e.render(LayerBackground, c) })
}

// RenderBorderAndContent paints the content layer and then the border
// layer on top of it.
func (e *Engine) RenderBorderAndContent(c *Canvas) {
	e.withAntialias(c, func() {
		e.render(LayerContent, c)
		e.render(LayerBorder, c)
	})
}

// RenderForeground paints the foreground layer.
func (e *Engine) RenderForeground(c *Canvas) {
	e.withAntialias(c, func() { e.render(LayerForeground, c) })
}

// RenderAnimationOverlays paints the active overlay painters on top of
// everything else and drops expired animation painters.
func (e *Engine) RenderAnimationOverlays(c *Canvas) {
	now := e.opts.clock()
	e.withAntialias(c, func() {
		for _, a := range e.animations {
			if a.overlay && a.active(now) {
				e.runAnimation(a, c, nil)
			}
		}
	})
	e.pruneAnimations(now)
}

// ClipToRegion runs paint with the canvas clipped to area of the component.
func (e *Engine) ClipToRegion(area Area, c *Canvas, paint func(*Canvas)) {
	c.Push()
	defer c.Pop()
	c.ClipToRegion(e.areas.Get(area, e.structure))
	paint(c)
}

// AddAnimationPainter paints p on layer l for the given lifetime.
// The painter is clipped to the interior and is never cached.
func (e *Engine) AddAnimationPainter(lt LifeTime, l Layer, p *Painter) {
	e.addAnimation(lt, animationPainter{painter: p, layer: l})
}

// AddOverlayPainter paints p over all layers for the given lifetime.
func (e *Engine) AddOverlayPainter(lt LifeTime, p *Painter) {
	e.addAnimation(lt, animationPainter{painter: p, overlay: true})
}

// HasAnimations reports whether any animation painter is registered.
func (e *Engine) HasAnimations() bool { return len(e.animations) > 0 }

// ClearAnimations drops every animation painter.
func (e *Engine) ClearAnimations() { e.animations = nil }

func (e *Engine) addAnimation(lt LifeTime, a animationPainter) {
	if a.painter.IsNone() {
		return
	}
	a.start = e.opts.clock().Add(lt.Delay)
	if lt.Duration > 0 {
		a.end = a.start.Add(lt.Duration)
	}
	e.animations = append(e.animations, a)
}

func (e *Engine) pruneAnimations(now time.Time) {
	kept := e.animations[:0]
	for _, a := range e.animations {
		if !a.expired(now) {
			kept = append(kept, a)
		}
	}
	clear(e.animations[len(kept):])
	e.animations = kept
}

func (e *Engine) withAntialias(c *Canvas, fn func()) {
	prev := c.Antialias()
	c.SetAntialias(e.opts.antialiasing())
	defer c.SetAntialias(prev)
	fn()
}

// render paints one layer through its cache, then the layer's active
// animation painters.
func (e *Engine) render(l Layer, c *Canvas) {
	state := e.states[l]
	if state.Bounds().Empty() {
		return
	}
	e.caches[l].Paint(state, c, func(target *Canvas) {
		renderLayer(&renderContext{
			state:  state,
			areas:  e.areas,
			canvas: target,
			cfg:    e.opts.render,
			images: e.images,
		})
	})
	now := e.opts.clock()
	for _, a := range e.animations {
		if !a.overlay && a.layer == l && a.active(now) {
			e.runAnimation(a, c, e.areas.Get(AreaInterior, e.structure))
		}
	}
}

func (e *Engine) runAnimation(a animationPainter, c *Canvas, clip *Region) {
	if err := runPainter(a.painter, c, clip, e.structure.Bounds); err != nil {
		Logger().Warn("gstyle: animation painter failed",
			"painter", a.painter.Name(), "err", err)
	}
}
