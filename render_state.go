package gstyle

import (
	"fmt"

	"github.com/gogpu/gg"
)

// StructureState is the geometry-relevant projection of a style plus the
// component size. Equal structure states produce identical regions.
// It is comparable with ==.
type StructureState struct {
	Bounds       Bounds
	Margin       Outline
	BorderWidths Outline
	Arcs         [4]Arc
}

// NewStructureState projects the geometry of s at the given size.
func NewStructureState(s Style, b Bounds) StructureState {
	return StructureState{
		Bounds:       Size(b.Width, b.Height),
		Margin:       s.margin,
		BorderWidths: s.border.widths,
		Arcs:         s.border.arcs,
	}
}

func (s StructureState) hash(h *hasher) {
	h.int(s.Bounds.Width)
	h.int(s.Bounds.Height)
	h.outline(s.Margin)
	h.outline(s.BorderWidths)
	for _, a := range s.Arcs {
		h.int(a.Width)
		h.int(a.Height)
	}
}

// baseColors are the base style colors that one layer actually paints.
type baseColors struct {
	foundation Opt[gg.RGBA]
	background Opt[gg.RGBA]
	border     Opt[gg.RGBA]
}

// RenderState is the immutable cache key for one layer of one component.
// It holds exactly what the layer renderer reads, including the
// antialiasing policy, so two equal render states always render to
// identical pixels.
type RenderState struct {
	layer     Layer
	structure StructureState
	colors    baseColors
	style     StyleLayer
	borderFx  namedList[GradientStyle]
	antialias bool
	hash      uint64
}

// NewRenderState builds the render state of layer l for style s at bounds b,
// painted with antialiasing.
func NewRenderState(l Layer, s Style, b Bounds) RenderState {
	rs := RenderState{
		layer:     l,
		structure: NewStructureState(s, b),
		style:     s.layers[l],
		antialias: true,
	}
	switch l {
	case LayerBackground:
		rs.colors.foundation = s.base.Foundation
		rs.colors.background = s.base.Background
	case LayerBorder:
		rs.colors.border = s.border.color
		rs.borderFx = s.border.gradients
	}
	rs.hash = rs.digest()
	return rs
}

// WithAntialias returns a copy of rs painted with antialiasing on or off.
func (rs RenderState) WithAntialias(on bool) RenderState {
	rs.antialias = on
	rs.hash = rs.digest()
	return rs
}

func (rs RenderState) digest() uint64 {
	h := newHasher()
	rs.structure.hash(h)
	h.optColor(rs.colors.foundation)
	h.optColor(rs.colors.background)
	h.optColor(rs.colors.border)
	rs.style.hash(h)
	h.int(len(rs.borderFx))
	for _, g := range rs.borderFx {
		h.str(g.Name)
		g.Value.hash(h)
	}
	h.bool(rs.antialias)
	return h.sum()
}

func (rs RenderState) Layer() Layer              { return rs.layer }
func (rs RenderState) Structure() StructureState { return rs.structure }
func (rs RenderState) StyleLayer() StyleLayer    { return rs.style }
func (rs RenderState) Bounds() Bounds            { return rs.structure.Bounds }
func (rs RenderState) Antialias() bool           { return rs.antialias }

// Hash returns a stable digest consistent with Equal. The layer itself is
// not part of the key: content and foreground share buffers when their
// paint instructions match.
func (rs RenderState) Hash() uint64 { return rs.hash }

// Equal compares two render states by value.
func (rs RenderState) Equal(o RenderState) bool {
	return rs.hash == o.hash &&
		rs.structure == o.structure &&
		rs.colors == o.colors &&
		rs.antialias == o.antialias &&
		rs.style.Equal(o.style) &&
		equalNamed(rs.borderFx, o.borderFx, GradientStyle.Equal)
}

func (rs RenderState) String() string {
	return fmt.Sprintf("RenderState[%v %dx%d %016x]", rs.layer, rs.structure.Bounds.Width, rs.structure.Bounds.Height, rs.hash)
}
