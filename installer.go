package gstyle

import "github.com/gogpu/gg"

// applyTo applies the non-rendering parts of s to c and decides whether c
// may stay opaque. It returns s, possibly with a synthesized background.
func (e *Engine) applyTo(c Component, s Style) Style {
	if s.Equal(NewStyle()) {
		e.restore(c)
		return s
	}
	if !e.initialOpaque.IsSet() {
		e.initialOpaque = Some(c.IsOpaque())
	}
	wasOpaque := e.initialOpaque.Or(false)

	if bg, ok := s.base.Background.Get(); ok {
		if cur, has := c.Background(); !has || cur != bg {
			e.rememberBackground(c)
			c.SetBackground(bg)
		}
	} else if wasOpaque && (s.border.IsRounded() || s.margin.IsPositive()) {
		// A shaped component paints its own background in place of the
		// native one, which would otherwise fill the corners.
		e.rememberBackground(c)
		if bg, ok := e.initialBackground.Get(); ok {
			s = s.WithBackground(bg)
		}
	}

	switch {
	case !canBeOpaque(s, e.initialBackground):
		c.SetOpaque(false)
	case wasOpaque && !hasActiveGradients(s.layers[LayerBackground]):
		c.SetOpaque(true)
	default:
		c.SetOpaque(false)
	}

	if fg, ok := s.base.Foreground.Get(); ok {
		if f, ok := c.(ForegroundSetter); ok {
			f.SetForeground(fg)
		}
	}
	if cur, ok := c.(CursorSetter); ok && s.base.Cursor != CursorDefault {
		cur.SetCursor(s.base.Cursor)
	}
	if f, ok := c.(FontSetter); ok && s.font != (FontStyle{}) {
		f.SetFont(s.font)
	}
	if sc, ok := c.(SizeConstrainer); ok && s.dim.IsSet() {
		sc.SetSizeConstraints(s.dim)
	}
	if p, ok := c.(PropertySetter); ok {
		for _, kv := range s.Properties() {
			p.SetProperty(kv.Name, kv.Value)
		}
	}
	return s
}

// restore puts back the background and opacity the component had before
// it was first styled.
func (e *Engine) restore(c Component) {
	if bg, ok := e.initialBackground.Get(); ok {
		c.SetBackground(bg)
		e.initialBackground = None[gg.RGBA]()
	}
	if opaque, ok := e.initialOpaque.Get(); ok {
		c.SetOpaque(opaque)
		e.initialOpaque = None[bool]()
	}
}

func (e *Engine) rememberBackground(c Component) {
	if e.initialBackground.IsSet() {
		return
	}
	if bg, ok := c.Background(); ok {
		e.initialBackground = Some(bg)
	}
}

// canBeOpaque reports whether the style fully covers the component with
// opaque paint.
func canBeOpaque(s Style, initialBackground Opt[gg.RGBA]) bool {
	covered := opaqueGradientAreas(s)
	if covered[AreaAll] {
		return true
	}
	if s.hasShadows() {
		return false
	}
	foundation := s.base.Foundation.Or(gg.Transparent)
	if !isOpaque(foundation) && !covered[AreaExterior] {
		if s.border.IsRounded() || s.margin.IsPositive() {
			return false
		}
	}
	if s.border.widths.IsPositive() && !isOpaque(s.border.color.Or(gg.Transparent)) && !covered[AreaBorder] {
		return false
	}
	background, ok := s.base.Background.Get()
	if !ok {
		background = initialBackground.Or(gg.Black)
	}
	if !isOpaque(background) && !covered[AreaInterior] && !covered[AreaBody] {
		return false
	}
	return true
}

// opaqueGradientAreas collects the areas fully covered by an opaque
// gradient on any layer.
func opaqueGradientAreas(s Style) map[Area]bool {
	covered := make(map[Area]bool)
	for _, l := range s.layers {
		for _, g := range l.gradients {
			if !g.Value.IsActive() {
				continue
			}
			opaque := true
			for _, c := range g.Value.colors {
				opaque = opaque && isOpaque(c)
			}
			if opaque {
				covered[g.Value.area] = true
			}
		}
	}
	return covered
}

func hasActiveGradients(l StyleLayer) bool {
	for _, g := range l.gradients {
		if g.Value.IsActive() {
			return true
		}
	}
	return false
}
