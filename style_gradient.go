package gstyle

import (
	"slices"

	"github.com/gogpu/gg"
)

// GradientStyle is a color gradient painted over an area of the component.
// The zero value has no colors and paints nothing.
type GradientStyle struct {
	transition Transition
	kind       GradientType
	colors     []gg.RGBA
	area       Area
}

// NewGradient returns a linear gradient over the interior.
func NewGradient(t Transition, colors ...gg.RGBA) GradientStyle {
	return GradientStyle{transition: t, colors: slices.Clone(colors)}
}

func (g GradientStyle) Transition() Transition { return g.transition }
func (g GradientStyle) Type() GradientType     { return g.kind }
func (g GradientStyle) Area() Area             { return g.area }

// Colors returns a copy of the gradient colors, first to last.
func (g GradientStyle) Colors() []gg.RGBA { return slices.Clone(g.colors) }

func (g GradientStyle) WithTransition(t Transition) GradientStyle { g.transition = t; return g }
func (g GradientStyle) WithType(t GradientType) GradientStyle     { g.kind = t; return g }
func (g GradientStyle) WithArea(a Area) GradientStyle             { g.area = a; return g }

// WithColors replaces the colors. The argument is copied.
func (g GradientStyle) WithColors(colors ...gg.RGBA) GradientStyle {
	g.colors = slices.Clone(colors)
	return g
}

// IsActive reports whether at least one color is visible.
func (g GradientStyle) IsActive() bool {
	return slices.ContainsFunc(g.colors, isVisible)
}

// Equal reports whether both gradients have the same values.
func (g GradientStyle) Equal(o GradientStyle) bool {
	return g.transition == o.transition &&
		g.kind == o.kind &&
		g.area == o.area &&
		slices.Equal(g.colors, o.colors)
}

func (g GradientStyle) validate() error {
	return validatorInstance().Var(len(g.colors), "gt=0")
}

func (g GradientStyle) hash(h *hasher) {
	h.int(int(g.transition))
	h.int(int(g.kind))
	h.int(int(g.area))
	h.int(len(g.colors))
	for _, c := range g.colors {
		h.color(c)
	}
}
