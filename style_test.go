package gstyle

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gg"
)

func panelStyle() Style {
	return NewStyle().
		WithBackground(gg.White).
		WithBorderWidth(2).
		WithBorderRadius(8).
		WithBorderColor(gg.Black)
}

func TestStyleWithersDoNotMutate(t *testing.T) {
	base := panelStyle().
		WithShadow("drop", func(s ShadowStyle) ShadowStyle { return s.WithColor(gg.Black).WithBlurRadius(4) })
	snapshot := base.Hash()

	_ = base.WithBackground(gg.Red)
	_ = base.WithBorderWidth(9)
	_ = base.WithMargin(OutlineAll(3))
	_ = base.WithShadow("drop", func(s ShadowStyle) ShadowStyle { return s.WithBlurRadius(40) })
	_ = base.WithShadow("second", func(s ShadowStyle) ShadowStyle { return s.WithColor(gg.Red) })
	_ = base.WithGradient(LayerBackground, "g", func(g GradientStyle) GradientStyle { return g.WithColors(gg.Red, gg.Blue) })
	_ = base.WithLayer(LayerContent, func(l StyleLayer) StyleLayer { return l.WithoutShadow("drop") })
	_ = base.WithProperty("k", "v")

	if base.Hash() != snapshot {
		t.Fatal("a wither modified its receiver")
	}
	if got := base.Layer(LayerContent).Shadows(); len(got) != 1 || got[0].Value.BlurRadius != 4 {
		t.Errorf("content shadows = %+v, want the single unmodified shadow", got)
	}
	if len(base.Layer(LayerBackground).Gradients()) != 0 {
		t.Error("background gradient leaked into the receiver")
	}
}

func TestStyleEqualAndHash(t *testing.T) {
	a, b := panelStyle(), panelStyle()
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Fatal("equal styles must be Equal with equal hashes")
	}
	tests := []struct {
		name string
		s    Style
	}{
		{"background", a.WithBackground(gg.Red)},
		{"border width", a.WithBorderWidth(3)},
		{"margin", a.WithMargin(OutlineAll(1))},
		{"property", a.WithProperty("x", "1")},
		{"painter", a.WithPainter(LayerForeground, "p", NewPainter("p", func(*gg.Context) error { return nil }))},
		{"foundation", a.WithFoundation(gg.Black)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a.Equal(tt.s) {
				t.Error("changed style reported Equal")
			}
			if a.Hash() == tt.s.Hash() {
				t.Error("changed style kept the hash")
			}
		})
	}
}

func TestStyleProperties(t *testing.T) {
	s := NewStyle().WithProperty("b", "2").WithProperty("a", "1").WithProperty("b", "3")
	props := s.Properties()
	if len(props) != 2 || props[0].Name != "a" || props[1].Value != "3" {
		t.Errorf("Properties() = %+v", props)
	}
	if v, ok := s.Property("a"); !ok || v != "1" {
		t.Errorf("Property(a) = %q, %v", v, ok)
	}
}

func TestStyleScale(t *testing.T) {
	s := panelStyle().
		WithMargin(OutlineAll(2)).
		WithShadow(DefaultName, func(sh ShadowStyle) ShadowStyle { return sh.WithColor(gg.Black).WithBlurRadius(3).WithOffset(1, 2) })
	scaled := s.Scale(2)

	if got := scaled.Border().Width(EdgeTop); got != 4 {
		t.Errorf("border width = %d, want 4", got)
	}
	if got := scaled.Border().Arc(CornerTopLeft); got != ArcOf(16) {
		t.Errorf("arc = %v, want %v", got, ArcOf(16))
	}
	if got := scaled.Margin(); got != OutlineAll(4) {
		t.Errorf("margin = %v", got)
	}
	sh := scaled.Layer(LayerContent).Shadows()[0].Value
	if sh.BlurRadius != 6 || sh.HorizontalOffset != 2 || sh.VerticalOffset != 4 {
		t.Errorf("shadow = %+v", sh)
	}
	if !s.Scale(1).Equal(s) {
		t.Error("Scale(1) must be the identity")
	}
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Style
	}{
		{"image opacity", NewStyle().WithImage(LayerBackground, "i", func(i ImageStyle) ImageStyle { return i.WithOpacity(1.5) })},
		{"font size", NewStyle().WithFont(FontStyle{}.WithSize(-1))},
		{"gradient colors", NewStyle().WithGradient(LayerContent, "g", func(g GradientStyle) GradientStyle { return g })},
		{"border width", NewStyle().WithBorderWidth(-2)},
		{"margin", NewStyle().WithMargin(OutlineNone().WithLeft(-1))},
		{"shadow blur", NewStyle().WithShadow("s", func(s ShadowStyle) ShadowStyle { return s.WithBlurRadius(-3) })},
		{"arc", NewStyle().WithBorder(func(b BorderStyle) BorderStyle { return b.WithArc(CornerTopLeft, Arc{Width: -1, Height: 2}) })},
		{"alignment", NewStyle().WithLayout(LayoutStyle{}.WithAlignment(2, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if !errors.Is(err, ErrInvalidStyle) {
				t.Errorf("Validate() = %v, want ErrInvalidStyle", err)
			}
		})
	}
	if err := panelStyle().Validate(); err != nil {
		t.Errorf("valid style rejected: %v", err)
	}
}

func TestImageStyleEquality(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	a := DefaultImage().WithImage(img)
	if !a.Equal(DefaultImage().WithImage(img)) {
		t.Error("same image pointer must be equal")
	}
	if a.Equal(DefaultImage().WithImage(image.NewRGBA(image.Rect(0, 0, 4, 4)))) {
		t.Error("distinct images must not be equal")
	}
	if !a.IsActive() || DefaultImage().IsActive() || a.WithOpacity(0).IsActive() {
		t.Error("IsActive mismatch")
	}
}

func TestPainterIdentity(t *testing.T) {
	fn := func(*gg.Context) error { return nil }
	p := NewPainter("p", fn)
	if !samePainter(p, p) || samePainter(p, NewPainter("p", fn)) {
		t.Error("painters compare by identity")
	}
	if !NewPainter("none", nil).IsNone() || !samePainter(NoPainter, NewPainter("x", nil)) {
		t.Error("a painter without a function is NoPainter")
	}
	var nilPainter *Painter
	if !nilPainter.IsNone() {
		t.Error("nil painter must be none")
	}
	if NewStyle().WithPainter(LayerContent, "n", NoPainter).Layer(LayerContent).HasPainters() {
		t.Error("NoPainter entries must not count as painters")
	}
}

func TestFontStyle(t *testing.T) {
	f := FontStyle{}.WithTransform(TransformUppercase)
	if got := f.Apply("hello"); got != "HELLO" {
		t.Errorf("Apply = %q", got)
	}
	if got := f.WithTransform(TransformCapitalize).Apply("hello world"); got != "Hello World" {
		t.Errorf("Apply capitalize = %q", got)
	}
	if !f.WithItalic(true).IsItalic() || f.IsItalic() {
		t.Error("IsItalic mismatch")
	}
	if got := f.WithSize(10).Scale(1.5).Size; got != 15 {
		t.Errorf("scaled size = %d, want 15", got)
	}
}
