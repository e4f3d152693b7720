package gstyle

import "github.com/gogpu/gg"

// BorderStyle describes the border of a component: per-edge widths,
// per-corner arcs, a color and named gradients painted over the border area.
type BorderStyle struct {
	widths    Outline
	arcs      [4]Arc
	color     Opt[gg.RGBA]
	gradients namedList[GradientStyle]
}

// Widths returns the per-edge border widths.
func (b BorderStyle) Widths() Outline { return b.widths }

// Width returns the width of one edge, zero when unset.
func (b BorderStyle) Width(e Edge) int { return b.widths.Side(e) }

// Arc returns the rounding of one corner.
func (b BorderStyle) Arc(c Corner) Arc { return b.arcs[c] }

// Arcs returns all four corner arcs, indexed by Corner.
func (b BorderStyle) Arcs() [4]Arc { return b.arcs }

// Color returns the border color.
func (b BorderStyle) Color() Opt[gg.RGBA] { return b.color }

// Gradients returns the border gradients in paint order.
func (b BorderStyle) Gradients() []Named[GradientStyle] { return b.gradients.entries() }

func (b BorderStyle) WithWidth(w int) BorderStyle         { b.widths = OutlineAll(w); return b }
func (b BorderStyle) WithWidths(o Outline) BorderStyle    { b.widths = o; return b }
func (b BorderStyle) WithColor(c gg.RGBA) BorderStyle     { b.color = Some(c); return b }
func (b BorderStyle) WithArc(c Corner, a Arc) BorderStyle { b.arcs[c] = a; return b }

// WithWidthAt sets the width of a single edge.
func (b BorderStyle) WithWidthAt(e Edge, w int) BorderStyle {
	switch e {
	case EdgeTop:
		b.widths = b.widths.WithTop(w)
	case EdgeRight:
		b.widths = b.widths.WithRight(w)
	case EdgeBottom:
		b.widths = b.widths.WithBottom(w)
	default:
		b.widths = b.widths.WithLeft(w)
	}
	return b
}

// WithRadius rounds every corner with a circular arc of radius r.
func (b BorderStyle) WithRadius(r int) BorderStyle {
	b.arcs = [4]Arc{ArcOf(r), ArcOf(r), ArcOf(r), ArcOf(r)}
	return b
}

// WithGradient updates the border gradient called name.
func (b BorderStyle) WithGradient(name string, fn func(GradientStyle) GradientStyle) BorderStyle {
	b.gradients = b.gradients.update(name, GradientStyle{}, fn)
	return b
}

// WithoutGradient removes the border gradient called name.
func (b BorderStyle) WithoutGradient(name string) BorderStyle {
	b.gradients = b.gradients.without(name)
	return b
}

// IsRounded reports whether any corner has a visible arc.
func (b BorderStyle) IsRounded() bool {
	for _, a := range b.arcs {
		if a.IsRounded() {
			return true
		}
	}
	return false
}

// IsVisible reports whether the border has a positive width and a visible color.
func (b BorderStyle) IsVisible() bool {
	c, ok := b.color.Get()
	return ok && isVisible(c) && b.widths.IsPositive()
}

func (b BorderStyle) hasActiveGradients() bool {
	for _, g := range b.gradients {
		if g.Value.IsActive() {
			return true
		}
	}
	return false
}

// averageRadius is the mean corner radius.
func (b BorderStyle) averageRadius() float64 {
	var sum float64
	for _, a := range b.arcs {
		sum += a.Radius()
	}
	return sum / 4
}

// averageWidth is the mean edge width.
func (b BorderStyle) averageWidth() float64 {
	w := b.widths
	return float64(w.Top.Or(0)+w.Right.Or(0)+w.Bottom.Or(0)+w.Left.Or(0)) / 4
}

// Scale returns the border with widths and arcs scaled by f.
func (b BorderStyle) Scale(f float64) BorderStyle {
	b.widths = b.widths.Scale(f)
	for i := range b.arcs {
		b.arcs[i] = b.arcs[i].Scale(f)
	}
	return b
}

// Equal reports whether both borders have the same values.
func (b BorderStyle) Equal(o BorderStyle) bool {
	return b.widths == o.widths &&
		b.arcs == o.arcs &&
		b.color == o.color &&
		equalNamed(b.gradients, o.gradients, GradientStyle.Equal)
}

func (b BorderStyle) hash(h *hasher) {
	h.outline(b.widths)
	for _, a := range b.arcs {
		h.int(a.Width)
		h.int(a.Height)
	}
	h.optColor(b.color)
	h.int(len(b.gradients))
	for _, g := range b.gradients {
		h.str(g.Name)
		g.Value.hash(h)
	}
}
