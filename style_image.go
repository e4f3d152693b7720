package gstyle

import (
	"image"
	"reflect"

	"github.com/gogpu/gg"
)

// ImageStyle places an image inside an area of the component.
// Use DefaultImage as the starting point; its zero value is fully transparent.
type ImageStyle struct {
	Image     image.Image `validate:"-"`
	Primer    Opt[gg.RGBA]
	Placement Placement
	Repeat    bool
	Fit       FitMode
	Width     Opt[int]
	Height    Opt[int]
	Opacity   float64 `validate:"unit"`
	Padding   Outline
	OffsetX   int
	OffsetY   int
	ClipArea  Area
}

// DefaultImage returns an empty, fully opaque image style clipped to the interior.
func DefaultImage() ImageStyle { return ImageStyle{Opacity: 1} }

func (s ImageStyle) WithImage(img image.Image) ImageStyle { s.Image = img; return s }
func (s ImageStyle) WithPrimer(c gg.RGBA) ImageStyle      { s.Primer = Some(c); return s }
func (s ImageStyle) WithPlacement(p Placement) ImageStyle { s.Placement = p; return s }
func (s ImageStyle) WithRepeat(on bool) ImageStyle        { s.Repeat = on; return s }
func (s ImageStyle) WithFit(f FitMode) ImageStyle         { s.Fit = f; return s }
func (s ImageStyle) WithSize(w, h int) ImageStyle         { s.Width, s.Height = Some(w), Some(h); return s }
func (s ImageStyle) WithOpacity(o float64) ImageStyle     { s.Opacity = o; return s }
func (s ImageStyle) WithPadding(p Outline) ImageStyle     { s.Padding = p; return s }
func (s ImageStyle) WithOffset(x, y int) ImageStyle       { s.OffsetX, s.OffsetY = x, y; return s }
func (s ImageStyle) WithClipArea(a Area) ImageStyle       { s.ClipArea = a; return s }

// IsActive reports whether the style paints anything.
func (s ImageStyle) IsActive() bool {
	if s.Opacity <= 0 {
		return false
	}
	if s.Image != nil && !s.Image.Bounds().Empty() {
		return true
	}
	c, ok := s.Primer.Get()
	return ok && isVisible(c)
}

// Scale returns the style with its distances scaled by f.
func (s ImageStyle) Scale(f float64) ImageStyle {
	if w, ok := s.Width.Get(); ok {
		s.Width = Some(scaleInt(w, f))
	}
	if h, ok := s.Height.Get(); ok {
		s.Height = Some(scaleInt(h, f))
	}
	s.Padding = s.Padding.Scale(f)
	s.OffsetX = scaleInt(s.OffsetX, f)
	s.OffsetY = scaleInt(s.OffsetY, f)
	return s
}

// Equal reports whether both image styles have the same values.
// Images compare by identity.
func (s ImageStyle) Equal(o ImageStyle) bool {
	return sameImage(s.Image, o.Image) &&
		s.Primer == o.Primer &&
		s.Placement == o.Placement &&
		s.Repeat == o.Repeat &&
		s.Fit == o.Fit &&
		s.Width == o.Width &&
		s.Height == o.Height &&
		s.Opacity == o.Opacity &&
		s.Padding == o.Padding &&
		s.OffsetX == o.OffsetX &&
		s.OffsetY == o.OffsetY &&
		s.ClipArea == o.ClipArea
}

func (s ImageStyle) hash(h *hasher) {
	h.image(s.Image)
	h.optColor(s.Primer)
	h.int(int(s.Placement))
	h.bool(s.Repeat)
	h.int(int(s.Fit))
	h.optInt(s.Width)
	h.optInt(s.Height)
	h.float(s.Opacity)
	h.outline(s.Padding)
	h.int(s.OffsetX)
	h.int(s.OffsetY)
	h.int(int(s.ClipArea))
}

// sameImage compares images by identity. Non-comparable image values
// fall back to a deep comparison instead of panicking.
func sameImage(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
