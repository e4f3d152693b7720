package gstyle

import (
	"image"
	"math"
)

type regionKind int

const (
	regionEmpty regionKind = iota
	regionRect
	regionRoundRect
	regionEllipse
	regionUnion
	regionSubtract
	regionIntersect
)

// Region is an exact area built from rectangles, rounded rectangles and
// ellipses with boolean union, subtraction and intersection.
//
// Membership is decided analytically by Contains, so regions derived from
// one another (body, interior, border) share edges exactly. Masks are
// rasterized on demand and cached on the region. A nil *Region is empty.
//
// Regions are immutable. The mask cache makes them unsafe for concurrent use.
type Region struct {
	kind   regionKind
	rect   rectf
	radii  [4][2]float64 // per corner horizontal and vertical radius
	a, b   *Region
	bounds rectf

	mask     *image.Alpha
	maskClip image.Rectangle
	maskAA   bool
}

// EmptyRegion returns a region that contains no points.
func EmptyRegion() *Region { return &Region{kind: regionEmpty} }

// RectRegion returns the axis-aligned rectangle region.
func RectRegion(x, y, w, h float64) *Region {
	r := rectf{x, y, w, h}
	if r.empty() {
		return EmptyRegion()
	}
	return &Region{kind: regionRect, rect: r, bounds: r}
}

// RoundRectRegion returns a rectangle whose corners are cut by quarter
// ellipses. Radii larger than half the rectangle are clamped; a zero
// radius leaves a right angle.
func RoundRectRegion(x, y, w, h float64, arcs [4]Arc) *Region {
	r := rectf{x, y, w, h}
	if r.empty() {
		return EmptyRegion()
	}
	reg := &Region{kind: regionRoundRect, rect: r, bounds: r}
	rounded := false
	for i, a := range arcs {
		rx := math.Min(math.Max(float64(a.Width), 0), w/2)
		ry := math.Min(math.Max(float64(a.Height), 0), h/2)
		if rx <= 0 || ry <= 0 {
			rx, ry = 0, 0
		}
		reg.radii[i] = [2]float64{rx, ry}
		rounded = rounded || rx > 0
	}
	if !rounded {
		reg.kind = regionRect
	}
	return reg
}

// EllipseRegion returns the ellipse centered at (cx, cy).
func EllipseRegion(cx, cy, rx, ry float64) *Region {
	if rx <= 0 || ry <= 0 {
		return EmptyRegion()
	}
	r := rectf{cx - rx, cy - ry, 2 * rx, 2 * ry}
	return &Region{kind: regionEllipse, rect: r, bounds: r}
}

// Add returns the union of r and o.
func (r *Region) Add(o *Region) *Region {
	switch {
	case r.IsEmpty():
		return o.orEmpty()
	case o.IsEmpty():
		return r
	}
	return &Region{kind: regionUnion, a: r, b: o, bounds: r.bounds.union(o.bounds)}
}

// Subtract returns the points of r that are not in o.
func (r *Region) Subtract(o *Region) *Region {
	switch {
	case r.IsEmpty():
		return EmptyRegion()
	case o.IsEmpty() || r.bounds.intersect(o.bounds).empty():
		return r
	}
	return &Region{kind: regionSubtract, a: r, b: o, bounds: r.bounds}
}

// Intersect returns the points in both r and o.
func (r *Region) Intersect(o *Region) *Region {
	if r.IsEmpty() || o.IsEmpty() {
		return EmptyRegion()
	}
	bounds := r.bounds.intersect(o.bounds)
	if bounds.empty() {
		return EmptyRegion()
	}
	return &Region{kind: regionIntersect, a: r, b: o, bounds: bounds}
}

func (r *Region) orEmpty() *Region {
	if r == nil {
		return EmptyRegion()
	}
	return r
}

// IsEmpty reports whether the region trivially contains nothing.
func (r *Region) IsEmpty() bool { return r == nil || r.kind == regionEmpty || r.bounds.empty() }

// Bounds returns the smallest integer rectangle enclosing the region.
func (r *Region) Bounds() image.Rectangle {
	if r.IsEmpty() {
		return image.Rectangle{}
	}
	b := r.bounds
	return image.Rect(
		int(math.Floor(b.x)), int(math.Floor(b.y)),
		int(math.Ceil(b.x+b.w)), int(math.Ceil(b.y+b.h)),
	)
}

// Contains reports whether the point (x, y) lies inside the region.
// Edges are half-open: the left and top edges are inside.
func (r *Region) Contains(x, y float64) bool {
	if r.IsEmpty() || !r.bounds.contains(x, y) {
		return false
	}
	switch r.kind {
	case regionRect:
		return true
	case regionRoundRect:
		return r.roundRectContains(x, y)
	case regionEllipse:
		rx, ry := r.rect.w/2, r.rect.h/2
		dx, dy := (x-(r.rect.x+rx))/rx, (y-(r.rect.y+ry))/ry
		return dx*dx+dy*dy <= 1
	case regionUnion:
		return r.a.Contains(x, y) || r.b.Contains(x, y)
	case regionSubtract:
		return r.a.Contains(x, y) && !r.b.Contains(x, y)
	case regionIntersect:
		return r.a.Contains(x, y) && r.b.Contains(x, y)
	}
	return false
}

func (r *Region) roundRectContains(x, y float64) bool {
	rc := r.rect
	for c, rad := range r.radii {
		rx, ry := rad[0], rad[1]
		if rx <= 0 {
			continue
		}
		var cx, cy float64
		switch Corner(c) {
		case CornerTopLeft:
			if x >= rc.x+rx || y >= rc.y+ry {
				continue
			}
			cx, cy = rc.x+rx, rc.y+ry
		case CornerTopRight:
			if x < rc.x+rc.w-rx || y >= rc.y+ry {
				continue
			}
			cx, cy = rc.x+rc.w-rx, rc.y+ry
		case CornerBottomRight:
			if x < rc.x+rc.w-rx || y < rc.y+rc.h-ry {
				continue
			}
			cx, cy = rc.x+rc.w-rx, rc.y+rc.h-ry
		case CornerBottomLeft:
			if x >= rc.x+rx || y < rc.y+rc.h-ry {
				continue
			}
			cx, cy = rc.x+rx, rc.y+rc.h-ry
		}
		dx, dy := (x-cx)/rx, (y-cy)/ry
		return dx*dx+dy*dy <= 1
	}
	return true
}

// supersample is the per-axis sample count used for antialiased masks.
const supersample = 4

// Mask rasterizes the part of the region inside clip into an alpha mask.
// With aa set each pixel is sampled on a 4×4 grid; otherwise only the
// pixel center is tested. The last mask is cached on the region.
func (r *Region) Mask(clip image.Rectangle, aa bool) *image.Alpha {
	area := r.Bounds().Intersect(clip)
	if r == nil {
		return image.NewAlpha(area)
	}
	if r.mask != nil && r.maskClip == clip && r.maskAA == aa {
		return r.mask
	}
	m := image.NewAlpha(area)
	const n = supersample * supersample
	for y := area.Min.Y; y < area.Max.Y; y++ {
		row := m.Pix[m.PixOffset(area.Min.X, y):]
		for x := area.Min.X; x < area.Max.X; x++ {
			var cov uint8
			if aa {
				hits := 0
				for sy := range supersample {
					py := float64(y) + (float64(sy)+0.5)/supersample
					for sx := range supersample {
						if r.Contains(float64(x)+(float64(sx)+0.5)/supersample, py) {
							hits++
						}
					}
				}
				cov = uint8((hits*255 + n/2) / n)
			} else if r.Contains(float64(x)+0.5, float64(y)+0.5) {
				cov = 0xff
			}
			row[x-area.Min.X] = cov
		}
	}
	r.mask, r.maskClip, r.maskAA = m, clip, aa
	return m
}
