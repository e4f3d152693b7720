package gstyle

import (
	"math"

	"github.com/gogpu/gg"
)

// shadowGeometry is the layout of one shadow in component coordinates.
type shadowGeometry struct {
	outer, inner rectf
	startOffset  int
	allowed      *Region
	base         *Region
	inset        bool
	shadow       gg.RGBA
	innerColor   gg.RGBA
	outerColor   gg.RGBA
}

// layoutShadow computes the outer box (where the falloff ends), the inner
// box (where full shadow color begins) and the region the shadow may cover.
func layoutShadow(rc *renderContext, s ShadowStyle) (shadowGeometry, bool) {
	color, ok := s.Color.Get()
	if !ok || !isVisible(color) {
		return shadowGeometry{}, false
	}
	st := rc.state.structure
	bw := st.BorderWidths
	inset := func(e Edge) int {
		n := max(st.Margin.Side(e), 0)
		if s.Inset {
			n += bw.Side(e)
		}
		return n
	}
	left, top, right, bottom := inset(EdgeLeft), inset(EdgeTop), inset(EdgeRight), inset(EdgeBottom)

	x := left + s.HorizontalOffset
	y := top + s.VerticalOffset
	w := st.Bounds.Width - left - right
	h := st.Bounds.Height - top - bottom

	blur := max(s.BlurRadius, 0)
	spread := -s.SpreadRadius
	if s.Inset {
		spread = s.SpreadRadius
	}

	var radii, widths int
	for _, a := range st.Arcs {
		radii += max(int(a.Radius()), 0)
	}
	for _, e := range [...]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft} {
		widths += bw.Side(e)
	}
	cornerRadius := max(0, radii/4-widths/4)
	divisor := rc.cfg.outsetDivisor
	if s.Inset {
		divisor = rc.cfg.insetDivisor
	}
	offset := 1 + int(float64(cornerRadius*2)/divisor)

	g := shadowGeometry{
		outer: rectf{
			float64(x - blur + spread), float64(y - blur + spread),
			float64(w + blur*2 - spread*2), float64(h + blur*2 - spread*2),
		},
		inner: rectf{
			float64(x + blur + offset + spread), float64(y + blur + offset + spread),
			float64(w - blur*2 - offset*2 - spread*2), float64(h - blur*2 - offset*2 - spread*2),
		},
		startOffset: offset,
		inset:       s.Inset,
		shadow:      color,
	}
	outerBox := RectRegion(g.outer.x, g.outer.y, g.outer.w, g.outer.h)
	if s.Inset {
		g.base = rc.area(AreaInterior)
		g.allowed = outerBox.Intersect(g.base)
		g.innerColor, g.outerColor = withAlpha(color, 0), color
	} else {
		g.base = rc.area(AreaBody)
		g.allowed = outerBox.Subtract(g.base)
		g.innerColor, g.outerColor = color, withAlpha(color, 0)
	}
	return g, true
}

// paintShadow draws four corner pieces, four edge pieces and the body of a shadow.
func paintShadow(rc *renderContext, s ShadowStyle) {
	g, ok := layoutShadow(rc, s)
	if !ok {
		return
	}
	for _, c := range [...]Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight} {
		paintShadowCorner(rc.canvas, g, c)
	}
	for _, e := range [...]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft} {
		paintShadowEdge(rc.canvas, g, e)
	}
	outerBox := RectRegion(g.outer.x, g.outer.y, g.outer.w, g.outer.h)
	if g.inset {
		rc.canvas.FillColor(g.base.Subtract(outerBox), g.shadow)
	} else {
		rc.canvas.FillColor(RectRegion(g.inner.x, g.inner.y, g.inner.w, g.inner.h).Subtract(g.base), g.shadow)
	}
}

// cornerBoxes returns the corner piece, its quadrant of the outer box and
// the center of the radial falloff.
func (g shadowGeometry) cornerBoxes(c Corner) (box, clip rectf, center pointf) {
	o, in := g.outer, g.inner
	hw, hh := o.w/2, o.h/2
	cx, cy := o.x+hw, o.y+hh
	switch c {
	case CornerTopLeft:
		box = rectf{o.x, o.y, in.x - o.x, in.y - o.y}
		clip = rectf{cx - hw, cy - hh, hw, hh}
		center = pointf{box.x + box.w, box.y + box.h}
	case CornerTopRight:
		box = rectf{in.x + in.w, o.y, o.x + o.w - in.x - in.w, in.y - o.y}
		clip = rectf{cx, cy - hh, hw, hh}
		center = pointf{box.x, box.y + box.h}
	case CornerBottomLeft:
		box = rectf{o.x, in.y + in.h, in.x - o.x, o.y + o.h - in.y - in.h}
		clip = rectf{cx - hw, cy, hw, hh}
		center = pointf{box.x + box.w, box.y}
	default:
		box = rectf{in.x + in.w, in.y + in.h, o.x + o.w - in.x - in.w, o.y + o.h - in.y - in.h}
		clip = rectf{cx, cy, hw, hh}
		center = pointf{box.x, box.y}
	}
	return box, clip, center
}

func paintShadowCorner(c *Canvas, g shadowGeometry, corner Corner) {
	box, clip, center := g.cornerBoxes(corner)
	r := box.w
	if r <= 0 {
		return
	}
	area := RectRegion(box.x, box.y, box.w, box.h).Intersect(g.allowed)
	start := float64(g.startOffset) / r
	if start == 0 || start == 1 {
		circle := EllipseRegion(center.x, center.y, r, r)
		if g.inset {
			c.FillColor(area.Subtract(circle), g.outerColor)
		} else {
			c.FillColor(area.Intersect(circle), g.innerColor)
		}
		return
	}
	brush := gg.NewRadialGradientBrush(center.x, center.y, 0, r)
	addFalloffStops(start, g.innerColor, g.outerColor, brush.AddColorStop)
	c.FillRegion(area.Intersect(RectRegion(clip.x, clip.y, clip.w, clip.h)), brush, 1)
}

// edgeBoxes returns the edge piece, the half of the outer box it may
// cover (nil when it cannot overlap the opposite edge) and the falloff axis.
func (g shadowGeometry) edgeBoxes(e Edge) (box rectf, clip *rectf, from, to pointf) {
	o, in := g.outer, g.inner
	midX, midY := o.x+o.w/2, o.y+o.h/2
	switch e {
	case EdgeTop:
		box = rectf{in.x, o.y, in.w, in.y - o.y}
		if box.y+box.h > midY {
			clip = &rectf{box.x, box.y, box.w, midY - box.y}
		}
		from, to = pointf{box.x, box.y + box.h}, pointf{box.x, box.y}
	case EdgeRight:
		box = rectf{in.x + in.w, in.y, o.x + o.w - in.x - in.w, in.h}
		if box.x < midX {
			clip = &rectf{midX, box.y, box.x + box.w - midX, box.h}
		}
		from, to = pointf{box.x, box.y}, pointf{box.x + box.w, box.y}
	case EdgeBottom:
		box = rectf{in.x, in.y + in.h, in.w, o.y + o.h - in.y - in.h}
		if box.y < midY {
			clip = &rectf{box.x, midY, box.w, box.y + box.h - midY}
		}
		from, to = pointf{box.x, box.y}, pointf{box.x, box.y + box.h}
	default:
		box = rectf{o.x, in.y, in.x - o.x, in.h}
		if box.x+box.w > midX {
			clip = &rectf{box.x, box.y, midX - box.x, box.h}
		}
		from, to = pointf{box.x + box.w, box.y}, pointf{box.x, box.y}
	}
	return box, clip, from, to
}

func paintShadowEdge(c *Canvas, g shadowGeometry, e Edge) {
	box, clip, from, to := g.edgeBoxes(e)
	if from == to {
		return
	}
	area := RectRegion(box.x, box.y, box.w, box.h)
	start := float64(g.startOffset) / from.dist(to)
	if start == 0 || start == 1 {
		if !g.inset {
			area = area.Intersect(g.allowed)
		}
		c.FillColor(area, g.innerColor)
		return
	}
	brush := gg.NewLinearGradientBrush(from.x, from.y, to.x, to.y)
	addFalloffStops(start, g.innerColor, g.outerColor, brush.AddColorStop)
	area = area.Intersect(g.allowed)
	if clip != nil {
		area = area.Intersect(RectRegion(clip.x, clip.y, clip.w, clip.h))
	}
	c.FillRegion(area, brush, 1)
}

// addFalloffStops holds inner until start, then fades to outer. A start
// outside [0,1] degrades to a plain two stop fade.
func addFalloffStops[B any](start float64, inner, outer gg.RGBA, add func(float64, gg.RGBA) B) {
	add(0, inner)
	if start > 0 && start < 1 && !math.IsNaN(start) {
		add(start, inner)
	}
	add(1, outer)
}
