package gstyle

import (
	"image"

	"github.com/gogpu/gg"
)

// ColorSource yields the straight-alpha color at a point in component
// coordinates. gg.SolidBrush and the gg gradient brushes implement it.
type ColorSource interface {
	ColorAt(x, y float64) gg.RGBA
}

// Canvas is the paint target of a component: a view onto a premultiplied
// gg.Pixmap with its origin at the component's top-left corner, a clip
// stack of alpha masks, and an antialiasing policy.
//
// A Canvas must only be used from the UI goroutine.
type Canvas struct {
	pm        *gg.Pixmap
	origin    image.Point
	extent    image.Rectangle
	clip      *image.Alpha
	stack     []*image.Alpha
	antialias bool
}

// NewCanvas returns a canvas covering all of pm with antialiasing enabled.
func NewCanvas(pm *gg.Pixmap) *Canvas {
	return &Canvas{
		pm:        pm,
		extent:    image.Rect(0, 0, pm.Width(), pm.Height()),
		antialias: true,
	}
}

// At returns a canvas for a component of size w×h placed at (x, y) of
// the receiver. The new canvas starts with the receiver's current clip.
func (c *Canvas) At(x, y, w, h int) *Canvas {
	sub := &Canvas{
		pm:        c.pm,
		origin:    c.origin.Add(image.Pt(x, y)),
		extent:    image.Rect(0, 0, max(w, 0), max(h, 0)),
		antialias: c.antialias,
	}
	parent := c.extent.Sub(image.Pt(x, y))
	sub.extent = sub.extent.Intersect(parent)
	if c.clip != nil {
		m := image.NewAlpha(sub.extent)
		for py := sub.extent.Min.Y; py < sub.extent.Max.Y; py++ {
			for px := sub.extent.Min.X; px < sub.extent.Max.X; px++ {
				m.Pix[m.PixOffset(px, py)] = c.clip.AlphaAt(px+x, py+y).A
			}
		}
		sub.clip = m
	}
	return sub
}

// Pixmap returns the underlying pixmap.
func (c *Canvas) Pixmap() *gg.Pixmap { return c.pm }

// Bounds returns the drawable rectangle in canvas coordinates.
func (c *Canvas) Bounds() image.Rectangle { return c.extent }

// Antialias reports whether masks are rasterized with antialiasing.
func (c *Canvas) Antialias() bool { return c.antialias }

// SetAntialias selects the antialiasing policy for subsequent fills.
func (c *Canvas) SetAntialias(on bool) { c.antialias = on }

// Push saves the current clip. Every Push must be matched by a Pop.
func (c *Canvas) Push() { c.stack = append(c.stack, c.clip) }

// Pop restores the clip saved by the matching Push.
func (c *Canvas) Pop() {
	if n := len(c.stack); n > 0 {
		c.clip = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// depth returns the clip stack depth.
func (c *Canvas) depth() int { return len(c.stack) }

// restore pops until the stack has depth n.
func (c *Canvas) restore(n int) {
	for len(c.stack) > n {
		c.Pop()
	}
}

// ClipToRegion intersects the clip with r.
func (c *Canvas) ClipToRegion(r *Region) {
	mask := r.Mask(c.extent, c.antialias)
	next := image.NewAlpha(mask.Rect)
	for y := mask.Rect.Min.Y; y < mask.Rect.Max.Y; y++ {
		for x := mask.Rect.Min.X; x < mask.Rect.Max.X; x++ {
			i := next.PixOffset(x, y)
			next.Pix[i] = mul8(mask.Pix[mask.PixOffset(x, y)], c.clipAt(x, y))
		}
	}
	c.clip = next
}

// clipAt returns the clip coverage of a pixel.
func (c *Canvas) clipAt(x, y int) uint8 {
	if c.clip == nil {
		if image.Pt(x, y).In(c.extent) {
			return 0xff
		}
		return 0
	}
	return c.clip.AlphaAt(x, y).A
}

// clipBounds returns the rectangle outside which nothing can be painted.
func (c *Canvas) clipBounds() image.Rectangle {
	if c.clip == nil {
		return c.extent
	}
	return c.clip.Rect.Intersect(c.extent)
}

// FillRegion paints src over the pixels of r, scaled by opacity.
func (c *Canvas) FillRegion(r *Region, src ColorSource, opacity float64) {
	if r.IsEmpty() || opacity <= 0 {
		return
	}
	mask := r.Mask(c.extent, c.antialias)
	area := mask.Rect.Intersect(c.clipBounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			k := mul8(mask.Pix[mask.PixOffset(x, y)], c.clipAt(x, y))
			if k == 0 {
				continue
			}
			col := src.ColorAt(float64(x)+0.5, float64(y)+0.5)
			a := col.A * opacity * float64(k) / 255
			c.blend(x, y, col.R*a, col.G*a, col.B*a, a)
		}
	}
	c.pm.NotifyPixelsChanged()
}

// FillColor paints a solid color over the pixels of r.
func (c *Canvas) FillColor(r *Region, col gg.RGBA) {
	if isVisible(col) {
		c.FillRegion(r, gg.Solid(col), 1)
	}
}

// DrawPremultiplied composites premultiplied RGBA pixels with their
// top-left corner at at, through the clip and an optional region.
// The pixel layout matches gg.Pixmap.Data and image.RGBA.Pix.
func (c *Canvas) DrawPremultiplied(pix []uint8, stride int, size image.Point, at image.Point, within *Region, opacity float64) {
	if opacity <= 0 {
		return
	}
	dst := image.Rectangle{Min: at, Max: at.Add(size)}.Intersect(c.clipBounds())
	var mask *image.Alpha
	if within != nil {
		mask = within.Mask(c.extent, c.antialias)
		dst = dst.Intersect(mask.Rect)
	}
	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			k := c.clipAt(x, y)
			if mask != nil {
				k = mul8(k, mask.Pix[mask.PixOffset(x, y)])
			}
			if k == 0 {
				continue
			}
			i := (y-at.Y)*stride + (x-at.X)*4
			if pix[i+3] == 0 {
				continue
			}
			f := opacity * float64(k) / 255 / 255
			c.blend(x, y, float64(pix[i])*f, float64(pix[i+1])*f, float64(pix[i+2])*f, float64(pix[i+3])*f)
		}
	}
	c.pm.NotifyPixelsChanged()
}

// DrawPixmap composites a premultiplied pixmap with its top-left corner at at.
func (c *Canvas) DrawPixmap(src *gg.Pixmap, at image.Point, opacity float64) {
	c.DrawPremultiplied(src.Data(), src.Width()*4, image.Pt(src.Width(), src.Height()), at, nil, opacity)
}

// blend composites one premultiplied color (components in [0,1]) source-over
// onto the pixel at canvas coordinates (x, y).
func (c *Canvas) blend(x, y int, r, g, b, a float64) {
	px, py := x+c.origin.X, y+c.origin.Y
	if px < 0 || py < 0 || px >= c.pm.Width() || py >= c.pm.Height() {
		return
	}
	d := c.pm.Data()
	i := (py*c.pm.Width() + px) * 4
	inv := 1 - a
	d[i+0] = to8(r*255 + float64(d[i+0])*inv)
	d[i+1] = to8(g*255 + float64(d[i+1])*inv)
	d[i+2] = to8(b*255 + float64(d[i+2])*inv)
	d[i+3] = to8(a*255 + float64(d[i+3])*inv)
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}

// mul8 multiplies two coverages in [0,255].
func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}
