package gstyle

import (
	"image"
	"testing"
)

func TestRegionContains(t *testing.T) {
	round := RoundRectRegion(0, 0, 20, 20, [4]Arc{ArcOf(10), {}, {}, {}})
	tests := []struct {
		name string
		r    *Region
		x, y float64
		want bool
	}{
		{"rect inside", RectRegion(0, 0, 10, 10), 5, 5, true},
		{"rect right edge", RectRegion(0, 0, 10, 10), 10, 5, false},
		{"rect left edge", RectRegion(0, 0, 10, 10), 0, 5, true},
		{"rounded corner cut", round, 1, 1, false},
		{"rounded square corner kept", round, 19.5, 0.5, true},
		{"rounded arc center", round, 10, 10, true},
		{"ellipse center", EllipseRegion(5, 5, 5, 2), 5, 5, true},
		{"ellipse outside", EllipseRegion(5, 5, 5, 2), 5, 8, false},
		{"empty", EmptyRegion(), 0, 0, false},
		{"nil", nil, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRegionAlgebra(t *testing.T) {
	a := RectRegion(0, 0, 10, 10)
	b := RectRegion(5, 5, 10, 10)

	union := a.Add(b)
	diff := a.Subtract(b)
	inter := a.Intersect(b)

	if !union.Contains(12, 12) || !union.Contains(1, 1) {
		t.Error("union misses points of its operands")
	}
	if diff.Contains(7, 7) || !diff.Contains(2, 2) {
		t.Error("subtract kept points of the subtrahend")
	}
	if !inter.Contains(7, 7) || inter.Contains(2, 2) {
		t.Error("intersect mismatch")
	}
	if got := inter.Bounds(); got != image.Rect(5, 5, 10, 10) {
		t.Errorf("intersect bounds = %v", got)
	}
	if !a.Intersect(RectRegion(20, 20, 5, 5)).IsEmpty() {
		t.Error("disjoint intersection must be empty")
	}
	if a.Subtract(RectRegion(20, 20, 5, 5)) != a {
		t.Error("subtracting a disjoint region returns the receiver")
	}
	if !EmptyRegion().Subtract(a).IsEmpty() {
		t.Error("empty minus anything is empty")
	}
	if EmptyRegion().Add(a) != a {
		t.Error("empty plus a is a")
	}
}

func TestRoundRectRegionClampsRadii(t *testing.T) {
	r := RoundRectRegion(0, 0, 10, 4, [4]Arc{ArcOf(50), ArcOf(50), ArcOf(50), ArcOf(50)})
	for c, rad := range r.radii {
		if rad != [2]float64{5, 2} {
			t.Errorf("corner %v radii = %v, want [5 2]", Corner(c), rad)
		}
	}
	if got := RoundRectRegion(0, 0, 10, 10, [4]Arc{}); got.kind != regionRect {
		t.Errorf("zero arcs kind = %v, want rect", got.kind)
	}
	if !RoundRectRegion(0, 0, 0, 10, [4]Arc{ArcOf(2)}).IsEmpty() {
		t.Error("zero width round rect must be empty")
	}
}

func TestRegionMask(t *testing.T) {
	r := RectRegion(1, 1, 2, 2)
	clip := image.Rect(0, 0, 4, 4)

	m := r.Mask(clip, true)
	if m.Rect != image.Rect(1, 1, 3, 3) {
		t.Fatalf("mask rect = %v", m.Rect)
	}
	if got := m.AlphaAt(1, 1).A; got != 255 {
		t.Errorf("inside coverage = %d, want 255", got)
	}
	if m2 := r.Mask(clip, true); m2 != m {
		t.Error("mask for the same clip must be cached")
	}

	half := RectRegion(0, 0, 0.5, 1)
	if got := half.Mask(clip, true).AlphaAt(0, 0).A; got != 128 {
		t.Errorf("half covered pixel = %d, want 128", got)
	}
	if got := half.Mask(clip, false).AlphaAt(0, 0).A; got != 0 {
		t.Errorf("aliased half pixel = %d, want 0 (center outside)", got)
	}
}

func TestRegionMaskIdempotent(t *testing.T) {
	build := func() *Region {
		return RoundRectRegion(0, 0, 30, 20, [4]Arc{ArcOf(6), ArcOf(6), ArcOf(6), ArcOf(6)}).
			Subtract(RoundRectRegion(2, 2, 26, 16, [4]Arc{ArcOf(4), ArcOf(4), ArcOf(4), ArcOf(4)}))
	}
	clip := image.Rect(0, 0, 30, 20)
	a, b := build().Mask(clip, true), build().Mask(clip, true)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("masks differ at %d: %d != %d", i, a.Pix[i], b.Pix[i])
		}
	}
}
