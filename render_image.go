package gstyle

import (
	"image"
	"reflect"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/gstyle/internal/cache"
)

// scaledImageLimit bounds the number of scaled image copies an engine keeps.
const scaledImageLimit = 64

// scaledKey identifies one scaled copy of a source image.
type scaledKey struct {
	src  image.Image
	w, h int
}

// imageCache holds scaled copies of style images keyed by source and size.
type imageCache = cache.Cache[scaledKey, *image.RGBA]

func newImageCache() *imageCache {
	return cache.New[scaledKey, *image.RGBA](scaledImageLimit)
}

// paintImage renders one image entry: the primer first, then the image
// sized, placed and clipped as the style describes.
func paintImage(rc *renderContext, s ImageStyle) {
	if !s.IsActive() {
		return
	}
	clip := rc.area(s.ClipArea)
	if c, ok := s.Primer.Get(); ok {
		rc.canvas.FillColor(clip, c)
	}
	if s.Image == nil || s.Image.Bounds().Empty() {
		return
	}
	r := imageRect(s, rc.state.structure.Bounds)
	if r.Empty() {
		return
	}
	img := rc.scaled(s.Image, r.Dx(), r.Dy())
	if s.Repeat {
		rc.canvas.FillRegion(clip, &tileSource{img: img, origin: r.Min}, s.Opacity)
		return
	}
	rc.canvas.DrawPremultiplied(img.Pix, img.Stride, r.Size(), r.Min, clip, s.Opacity)
}

// imageRect computes where the image lands in component coordinates.
func imageRect(s ImageStyle, b Bounds) image.Rectangle {
	cw, ch := b.Width, b.Height
	size := s.Image.Bounds().Size()
	w, h := s.Width.Or(size.X), s.Height.Or(size.Y)

	fitW := func() { w = s.Width.Or(cw) }
	fitH := func() { h = s.Height.Or(ch) }
	switch s.Fit {
	case FitWidth:
		fitW()
	case FitHeight:
		fitH()
	case FitWidthAndHeight:
		fitW()
		fitH()
	case FitMaxDimension:
		switch {
		case cw > ch:
			fitW()
		case cw < ch:
			fitH()
		default:
			fitW()
			fitH()
		}
	case FitMinDimension:
		switch {
		case cw < ch:
			fitW()
		case cw > ch:
			fitH()
		default:
			fitW()
			fitH()
		}
	}
	if s.Fit != FitNone {
		if w < 0 {
			w = cw
		}
		if h < 0 {
			h = ch
		}
	}

	x, y := s.OffsetX, s.OffsetY
	switch s.Placement {
	case PlacementTop:
		x += (cw - w) / 2
	case PlacementLeft:
		y += (ch - h) / 2
	case PlacementBottom:
		x += (cw - w) / 2
		y += ch - h
	case PlacementRight:
		x += cw - w
		y += (ch - h) / 2
	case PlacementTopLeft:
	case PlacementTopRight:
		x += cw - w
	case PlacementBottomLeft:
		y += ch - h
	case PlacementBottomRight:
		x += cw - w
		y += ch - h
	default:
		x += (cw - w) / 2
		y += (ch - h) / 2
	}

	p := s.Padding
	x += p.Left.Or(0)
	y += p.Top.Or(0)
	w -= p.Left.Or(0) + p.Right.Or(0)
	h -= p.Top.Or(0) + p.Bottom.Or(0)
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(x, y, x+w, y+h)
}

// scaled returns src as a premultiplied RGBA image of size w×h.
// Scaled copies of comparable images are cached.
func (rc *renderContext) scaled(src image.Image, w, h int) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect == image.Rect(0, 0, w, h) {
		return rgba
	}
	if rc.images == nil || !reflect.TypeOf(src).Comparable() {
		return scaleImage(src, w, h)
	}
	return rc.images.GetOrCreate(scaledKey{src, w, h}, func() *image.RGBA {
		return scaleImage(src, w, h)
	})
}

func scaleImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		draw.Draw(dst, dst.Rect, src, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Rect, src, b, draw.Src, nil)
	return dst
}

// tileSource repeats a premultiplied image with one tile anchored at origin.
type tileSource struct {
	img    *image.RGBA
	origin image.Point
}

func (t *tileSource) ColorAt(x, y float64) gg.RGBA {
	w, h := t.img.Rect.Dx(), t.img.Rect.Dy()
	px := mod(int(x)-t.origin.X, w)
	py := mod(int(y)-t.origin.Y, h)
	i := t.img.PixOffset(px, py)
	a := t.img.Pix[i+3]
	if a == 0 {
		return gg.Transparent
	}
	fa := float64(a)
	return gg.RGBA{
		R: float64(t.img.Pix[i]) / fa,
		G: float64(t.img.Pix[i+1]) / fa,
		B: float64(t.img.Pix[i+2]) / fa,
		A: fa / 255,
	}
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
