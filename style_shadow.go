package gstyle

import "github.com/gogpu/gg"

// ShadowStyle is a box shadow drawn around (outset) or inside (inset) the body.
type ShadowStyle struct {
	Color            Opt[gg.RGBA]
	HorizontalOffset int
	VerticalOffset   int
	BlurRadius       int `validate:"gte=0"`
	SpreadRadius     int
	Inset            bool
}

func (s ShadowStyle) WithColor(c gg.RGBA) ShadowStyle    { s.Color = Some(c); return s }
func (s ShadowStyle) WithOffset(x, y int) ShadowStyle    { s.HorizontalOffset, s.VerticalOffset = x, y; return s }
func (s ShadowStyle) WithBlurRadius(r int) ShadowStyle   { s.BlurRadius = r; return s }
func (s ShadowStyle) WithSpreadRadius(r int) ShadowStyle { s.SpreadRadius = r; return s }
func (s ShadowStyle) WithInset(inset bool) ShadowStyle   { s.Inset = inset; return s }

// IsActive reports whether the shadow paints anything.
func (s ShadowStyle) IsActive() bool {
	c, ok := s.Color.Get()
	return ok && isVisible(c)
}

// Scale returns the shadow with its distances scaled by f.
func (s ShadowStyle) Scale(f float64) ShadowStyle {
	s.HorizontalOffset = scaleInt(s.HorizontalOffset, f)
	s.VerticalOffset = scaleInt(s.VerticalOffset, f)
	s.BlurRadius = scaleInt(s.BlurRadius, f)
	s.SpreadRadius = scaleInt(s.SpreadRadius, f)
	return s
}

// Equal reports whether both shadows have the same values.
func (s ShadowStyle) Equal(o ShadowStyle) bool { return s == o }

func (s ShadowStyle) hash(h *hasher) {
	h.optColor(s.Color)
	h.int(s.HorizontalOffset)
	h.int(s.VerticalOffset)
	h.int(s.BlurRadius)
	h.int(s.SpreadRadius)
	h.bool(s.Inset)
}
