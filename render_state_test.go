package gstyle

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestRenderStateEquality(t *testing.T) {
	b := Size(100, 50)
	a := NewRenderState(LayerBackground, panelStyle(), b)

	tests := []struct {
		name  string
		other RenderState
		equal bool
	}{
		{"same style rebuilt", NewRenderState(LayerBackground, panelStyle(), b), true},
		{"border color is not painted on the background", NewRenderState(LayerBackground, panelStyle().WithBorderColor(gg.Red), b), true},
		{"properties do not render", NewRenderState(LayerBackground, panelStyle().WithProperty("k", "v"), b), true},
		{"background color", NewRenderState(LayerBackground, panelStyle().WithBackground(gg.Red), b), false},
		{"size", NewRenderState(LayerBackground, panelStyle(), Size(100, 51)), false},
		{"radius", NewRenderState(LayerBackground, panelStyle().WithBorderRadius(4), b), false},
		{"margin", NewRenderState(LayerBackground, panelStyle().WithMargin(OutlineAll(1)), b), false},
		{"layer entries", NewRenderState(LayerBackground, panelStyle().WithGradient(LayerBackground, "g", func(g GradientStyle) GradientStyle {
			return g.WithColors(gg.Red)
		}), b), false},
		{"antialiasing", a.WithAntialias(false), false},
		{"antialiasing restored", a.WithAntialias(false).WithAntialias(true), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Equal(tt.other); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			if tt.equal && a.Hash() != tt.other.Hash() {
				t.Error("equal states must hash equally")
			}
		})
	}
}

func TestRenderStateNegativeZero(t *testing.T) {
	b := Size(100, 50)
	negZero := math.Copysign(0, -1)
	a := NewRenderState(LayerBackground, panelStyle().WithBackground(gg.RGBA{R: 0, G: 0.5, B: 1, A: 1}), b)
	z := NewRenderState(LayerBackground, panelStyle().WithBackground(gg.RGBA{R: negZero, G: 0.5, B: 1, A: 1}), b)
	if !a.Equal(z) || a.Hash() != z.Hash() {
		t.Errorf("states differing only by the sign of zero: equal %v, hashes %016x %016x", a.Equal(z), a.Hash(), z.Hash())
	}
}

func TestRenderStateBorderLayer(t *testing.T) {
	b := Size(100, 50)
	a := NewRenderState(LayerBorder, panelStyle(), b)
	if a.Equal(NewRenderState(LayerBorder, panelStyle().WithBorderColor(gg.Red), b)) {
		t.Error("border color must be part of the border state")
	}
	if !a.Equal(NewRenderState(LayerBorder, panelStyle().WithBackground(gg.Red), b)) {
		t.Error("background color must not be part of the border state")
	}
	withFx := panelStyle().WithBorder(func(bs BorderStyle) BorderStyle {
		return bs.WithGradient("g", func(g GradientStyle) GradientStyle { return g.WithColors(gg.Red) })
	})
	if a.Equal(NewRenderState(LayerBorder, withFx, b)) {
		t.Error("border gradients must be part of the border state")
	}
}

func TestRenderStateIgnoresLayerIdentity(t *testing.T) {
	s := NewStyle().
		WithGradient(LayerContent, "g", func(g GradientStyle) GradientStyle { return g.WithColors(gg.Red) }).
		WithGradient(LayerForeground, "g", func(g GradientStyle) GradientStyle { return g.WithColors(gg.Red) })
	content := NewRenderState(LayerContent, s, Size(10, 10))
	fg := NewRenderState(LayerForeground, s, Size(10, 10))
	if !content.Equal(fg) || content.Hash() != fg.Hash() {
		t.Error("identical paint instructions on different layers must share a key")
	}
	if content.Layer() != LayerContent || fg.Layer() != LayerForeground {
		t.Error("Layer() must still report the layer")
	}
}

func TestStructureState(t *testing.T) {
	s := panelStyle()
	a := NewStructureState(s, Size(100, 50))
	if a != NewStructureState(s.WithBackground(gg.Red).WithBorderColor(gg.Blue), Size(100, 50)) {
		t.Error("colors must not change the structure")
	}
	if a == NewStructureState(s.WithBorderWidth(3), Size(100, 50)) {
		t.Error("border width must change the structure")
	}
	if got := NewRenderState(LayerBorder, s, Size(100, 50)).Structure(); got != a {
		t.Errorf("Structure() = %+v, want %+v", got, a)
	}
}
