package gstyle

import (
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

type pointf struct{ x, y float64 }

func (p pointf) sub(o pointf) pointf     { return pointf{p.x - o.x, p.y - o.y} }
func (p pointf) plus(o pointf) pointf    { return pointf{p.x + o.x, p.y + o.y} }
func (p pointf) dot(o pointf) float64    { return p.x*o.x + p.y*o.y }
func (p pointf) dist(o pointf) float64   { return math.Hypot(p.x-o.x, p.y-o.y) }
func (p pointf) scaled(f float64) pointf { return pointf{p.x * f, p.y * f} }

// paintGradient fills target with g, laid out over the body rectangle.
func paintGradient(rc *renderContext, g GradientStyle, target *Region) {
	switch len(g.colors) {
	case 0:
		return
	case 1:
		rc.canvas.FillColor(target, g.colors[0])
		return
	}
	rc.canvas.FillRegion(target, gradientSource(g, bodyRect(rc.state.structure)), 1)
}

// canonical reduces the two reversed diagonals to their opposites with a
// reversed copy of the colors. The input slice is never modified.
func canonical(t Transition, colors []gg.RGBA) (Transition, []gg.RGBA) {
	switch t {
	case TopRightToBottomLeft:
		t = BottomLeftToTopRight
	case BottomRightToTopLeft:
		t = TopLeftToBottomRight
	default:
		return t, colors
	}
	rev := slices.Clone(colors)
	slices.Reverse(rev)
	return t, rev
}

// gradientAxis returns the start and end corners of t over r.
func gradientAxis(t Transition, r rectf) (start, end pointf) {
	left, top, right, bottom := r.x, r.y, r.x+r.w, r.y+r.h
	switch t {
	case BottomToTop:
		return pointf{left, bottom}, pointf{left, top}
	case LeftToRight:
		return pointf{left, top}, pointf{right, top}
	case RightToLeft:
		return pointf{right, top}, pointf{left, top}
	case TopLeftToBottomRight:
		return pointf{left, top}, pointf{right, bottom}
	case BottomLeftToTopRight:
		return pointf{left, bottom}, pointf{right, top}
	default:
		return pointf{left, top}, pointf{left, bottom}
	}
}

// projectDiagonal moves the corner endpoints of a diagonal gradient onto
// the line through the center perpendicular to the other diagonal, so
// that lines of equal color run parallel to that diagonal.
func projectDiagonal(start, end pointf, r rectf) (pointf, pointf) {
	center := pointf{r.x + r.w/2, r.y + r.h/2}
	// the other diagonal, from its corner on the start's row
	other := pointf{end.x, start.y}.sub(center)
	n := math.Hypot(other.x, other.y)
	if n == 0 {
		return start, end
	}
	normal := pointf{-other.y / n, other.x / n}
	return center.plus(normal.scaled(start.sub(center).dot(normal))),
		center.plus(normal.scaled(end.sub(center).dot(normal)))
}

// gradientSource builds the paint for g over r.
func gradientSource(g GradientStyle, r rectf) ColorSource {
	t, colors := canonical(g.transition, g.colors)
	start, end := gradientAxis(t, r)

	if g.kind == GradientRadial {
		radius := start.dist(end)
		if t.IsDiagonal() {
			radius = start.dist(pointf{r.x + r.w/2, r.y + r.h/2})
		}
		return newGradientPaint(colors, start, pointf{}, radius)
	}
	if t.IsDiagonal() {
		start, end = projectDiagonal(start, end, r)
	}
	return newGradientPaint(colors, start, end.sub(start), 0)
}

// gradientPaint spaces its stops evenly at i/(n-1) along a linear axis or a
// radius, padding beyond the ends. Neighbouring stops blend in sRGB with
// straight alpha.
type gradientPaint struct {
	start  pointf
	axis   pointf
	radius float64
	stops  []colorful.Color
	alpha  []float64
}

func newGradientPaint(colors []gg.RGBA, start, axis pointf, radius float64) *gradientPaint {
	p := &gradientPaint{
		start:  start,
		axis:   axis,
		radius: radius,
		stops:  make([]colorful.Color, len(colors)),
		alpha:  make([]float64, len(colors)),
	}
	for i, c := range colors {
		p.stops[i] = colorful.Color{R: c.R, G: c.G, B: c.B}
		p.alpha[i] = c.A
	}
	return p
}

// ColorAt implements ColorSource.
func (p *gradientPaint) ColorAt(x, y float64) gg.RGBA {
	d := pointf{x, y}.sub(p.start)
	var t float64
	switch {
	case p.radius > 0:
		t = math.Hypot(d.x, d.y) / p.radius
	case p.axis.dot(p.axis) > 0:
		t = d.dot(p.axis) / p.axis.dot(p.axis)
	}
	return p.at(t)
}

// at returns the color at offset t along the gradient.
func (p *gradientPaint) at(t float64) gg.RGBA {
	last := len(p.stops) - 1
	if last == 0 {
		c := p.stops[0]
		return gg.RGBA{R: c.R, G: c.G, B: c.B, A: p.alpha[0]}
	}
	t = min(max(t, 0), 1) * float64(last)
	i := min(int(t), last-1)
	f := t - float64(i)
	c := p.stops[i].BlendRgb(p.stops[i+1], f)
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: p.alpha[i] + (p.alpha[i+1]-p.alpha[i])*f}
}
