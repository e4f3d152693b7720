package gstyle

import (
	"slices"
	"strings"

	"github.com/gogpu/gg"
)

// Style is the immutable description of how a component looks.
//
// Every With method returns a new Style and leaves the receiver untouched,
// so styles can be shared freely and compared by value with Equal.
//
//	s := gstyle.NewStyle().
//	    WithBackground(gg.Hex("#3498db")).
//	    WithBorder(func(b gstyle.BorderStyle) gstyle.BorderStyle {
//	        return b.WithWidth(2).WithRadius(10).WithColor(gg.Black)
//	    })
type Style struct {
	base       BaseStyle
	border     BorderStyle
	font       FontStyle
	dim        DimensionalityStyle
	layout     LayoutStyle
	margin     Outline
	padding    Outline
	layers     [len(Layers)]StyleLayer
	properties namedList[string]
}

// NewStyle returns the empty style, which paints nothing.
func NewStyle() Style { return Style{} }

func (s Style) Base() BaseStyle                     { return s.base }
func (s Style) Border() BorderStyle                 { return s.border }
func (s Style) Font() FontStyle                     { return s.font }
func (s Style) Dimensionality() DimensionalityStyle { return s.dim }
func (s Style) Layout() LayoutStyle                 { return s.layout }
func (s Style) Margin() Outline                     { return s.margin }
func (s Style) Padding() Outline                    { return s.padding }
func (s Style) Layer(l Layer) StyleLayer            { return s.layers[l] }

// Property returns the named client property.
func (s Style) Property(key string) (string, bool) { return s.properties.find(key) }

// Properties returns all client properties sorted by key.
func (s Style) Properties() []Named[string] {
	out := s.properties.entries()
	slices.SortFunc(out, func(a, b Named[string]) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func (s Style) WithBase(b BaseStyle) Style                     { s.base = b; return s }
func (s Style) WithFont(f FontStyle) Style                     { s.font = f; return s }
func (s Style) WithDimensionality(d DimensionalityStyle) Style { s.dim = d; return s }
func (s Style) WithLayout(l LayoutStyle) Style                 { s.layout = l; return s }
func (s Style) WithMargin(o Outline) Style                     { s.margin = o; return s }
func (s Style) WithPadding(o Outline) Style                    { s.padding = o; return s }
func (s Style) WithBackground(c gg.RGBA) Style                 { s.base = s.base.WithBackground(c); return s }
func (s Style) WithForeground(c gg.RGBA) Style                 { s.base = s.base.WithForeground(c); return s }
func (s Style) WithFoundation(c gg.RGBA) Style                 { s.base = s.base.WithFoundation(c); return s }
func (s Style) WithCursor(c Cursor) Style                      { s.base = s.base.WithCursor(c); return s }

// WithBorder transforms the border style.
func (s Style) WithBorder(fn func(BorderStyle) BorderStyle) Style {
	s.border = fn(s.border)
	return s
}

// WithBorderWidth sets the width of all four border edges.
func (s Style) WithBorderWidth(w int) Style { s.border = s.border.WithWidth(w); return s }

// WithBorderRadius rounds all four corners.
func (s Style) WithBorderRadius(r int) Style { s.border = s.border.WithRadius(r); return s }

// WithBorderColor sets the border color.
func (s Style) WithBorderColor(c gg.RGBA) Style { s.border = s.border.WithColor(c); return s }

// WithLayer transforms one layer.
func (s Style) WithLayer(l Layer, fn func(StyleLayer) StyleLayer) Style {
	s.layers[l] = fn(s.layers[l])
	return s
}

// WithShadow updates a shadow on the content layer, where shadows live by default.
func (s Style) WithShadow(name string, fn func(ShadowStyle) ShadowStyle) Style {
	return s.WithShadowOn(LayerContent, name, fn)
}

func (s Style) WithShadowOn(l Layer, name string, fn func(ShadowStyle) ShadowStyle) Style {
	s.layers[l] = s.layers[l].WithShadow(name, fn)
	return s
}

func (s Style) WithGradient(l Layer, name string, fn func(GradientStyle) GradientStyle) Style {
	s.layers[l] = s.layers[l].WithGradient(name, fn)
	return s
}

func (s Style) WithImage(l Layer, name string, fn func(ImageStyle) ImageStyle) Style {
	s.layers[l] = s.layers[l].WithImage(name, fn)
	return s
}

func (s Style) WithPainter(l Layer, name string, p *Painter) Style {
	s.layers[l] = s.layers[l].WithPainter(name, p)
	return s
}

// WithProperty sets a client property. Properties do not affect rendering.
func (s Style) WithProperty(key, value string) Style {
	s.properties = s.properties.with(key, value)
	return s
}

// HasCustomBackground reports whether the background layer needs more than
// a plain fill of the component bounds.
func (s Style) HasCustomBackground() bool {
	return s.border.IsRounded() || s.margin.IsPositive() || !s.layers[LayerBackground].IsEmpty()
}

// hasShadows reports whether any layer has an active shadow.
func (s Style) hasShadows() bool {
	for _, l := range s.layers {
		for _, sh := range l.shadows {
			if sh.Value.IsActive() {
				return true
			}
		}
	}
	return false
}

// Scale returns the style with every distance multiplied by f.
// It is used to adapt a style to high density displays.
func (s Style) Scale(f float64) Style {
	if f == 1 {
		return s
	}
	s.border = s.border.Scale(f)
	s.font = s.font.Scale(f)
	s.dim = s.dim.Scale(f)
	s.margin = s.margin.Scale(f)
	s.padding = s.padding.Scale(f)
	for i := range s.layers {
		s.layers[i] = s.layers[i].Scale(f)
	}
	return s
}

// Equal reports whether both styles are equal in every leaf value.
func (s Style) Equal(o Style) bool {
	if !s.base.Equal(o.base) ||
		!s.border.Equal(o.border) ||
		!s.font.Equal(o.font) ||
		s.dim != o.dim ||
		s.layout != o.layout ||
		s.margin != o.margin ||
		s.padding != o.padding {
		return false
	}
	for i := range s.layers {
		if !s.layers[i].Equal(o.layers[i]) {
			return false
		}
	}
	return slices.Equal(s.Properties(), o.Properties())
}

// Hash returns a digest consistent with Equal.
func (s Style) Hash() uint64 {
	h := newHasher()
	s.base.hash(h)
	s.border.hash(h)
	s.font.hash(h)
	s.dim.hash(h)
	s.layout.hash(h)
	h.outline(s.margin)
	h.outline(s.padding)
	for _, l := range s.layers {
		l.hash(h)
	}
	for _, p := range s.Properties() {
		h.str(p.Name)
		h.str(p.Value)
	}
	return h.sum()
}
