package gstyle

import (
	"image"

	"github.com/gogpu/gg"
)

// BaseStyle holds the basic colors and flags of a component.
type BaseStyle struct {
	Foreground Opt[gg.RGBA]
	Background Opt[gg.RGBA]
	// Foundation fills the exterior, the area outside the border.
	Foundation  Opt[gg.RGBA]
	Cursor      Cursor
	Orientation Orientation
	Icon        image.Image `validate:"-"`
	Fit         FitMode
}

func (b BaseStyle) WithForeground(c gg.RGBA) BaseStyle { b.Foreground = Some(c); return b }
func (b BaseStyle) WithBackground(c gg.RGBA) BaseStyle { b.Background = Some(c); return b }
func (b BaseStyle) WithFoundation(c gg.RGBA) BaseStyle { b.Foundation = Some(c); return b }
func (b BaseStyle) WithCursor(c Cursor) BaseStyle      { b.Cursor = c; return b }

func (b BaseStyle) WithOrientation(o Orientation) BaseStyle { b.Orientation = o; return b }
func (b BaseStyle) WithIcon(img image.Image, fit FitMode) BaseStyle {
	b.Icon = img
	b.Fit = fit
	return b
}

// Equal reports whether both base styles have the same values.
// Icons compare by identity.
func (b BaseStyle) Equal(o BaseStyle) bool {
	return b.Foreground == o.Foreground &&
		b.Background == o.Background &&
		b.Foundation == o.Foundation &&
		b.Cursor == o.Cursor &&
		b.Orientation == o.Orientation &&
		b.Fit == o.Fit &&
		sameImage(b.Icon, o.Icon)
}

func (b BaseStyle) hash(h *hasher) {
	h.optColor(b.Foreground)
	h.optColor(b.Background)
	h.optColor(b.Foundation)
	h.int(int(b.Cursor))
	h.int(int(b.Orientation))
	h.int(int(b.Fit))
	h.image(b.Icon)
}
