package gstyle

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Empirical start offset divisors for the shadow falloff. The offset at
// which the shadow starts to fade is 1 + 2r/divisor, where r is the average
// corner radius minus the average border width. They are visual tuning
// values and are overridable with WithShadowDivisors.
const (
	InsetShadowDivisor  = 4.5
	OutsetShadowDivisor = 3.79
)

// renderConfig holds the tunables read by the layer renderer.
type renderConfig struct {
	insetDivisor  float64
	outsetDivisor float64
}

func defaultRenderConfig() renderConfig {
	return renderConfig{insetDivisor: InsetShadowDivisor, outsetDivisor: OutsetShadowDivisor}
}

// renderContext is the input of one layer rendering.
type renderContext struct {
	state  RenderState
	areas  *ComponentAreas
	canvas *Canvas
	cfg    renderConfig
	images *imageCache
}

func (rc *renderContext) area(a Area) *Region {
	return rc.areas.Get(a, rc.state.structure)
}

// paintStep is one stage of the per-layer paint pipeline.
type paintStep struct {
	name string
	run  func(rc *renderContext)
}

var (
	stepBase      = paintStep{"base", paintBase}
	stepBorder    = paintStep{"border", paintBorder}
	stepImages    = paintStep{"images", paintImages}
	stepGradients = paintStep{"gradients", paintGradients}
	stepShadows   = paintStep{"shadows", paintShadows}
	stepPainters  = paintStep{"painters", paintPainters}
)

// pipeline returns the fixed paint order of a layer.
func pipeline(l Layer) []paintStep {
	switch l {
	case LayerBackground:
		return []paintStep{stepBase, stepImages, stepGradients, stepShadows, stepPainters}
	case LayerBorder:
		return []paintStep{stepBorder, stepImages, stepGradients, stepShadows, stepPainters}
	default:
		return []paintStep{stepImages, stepGradients, stepShadows, stepPainters}
	}
}

// renderLayer paints one layer. Each step runs in isolation: a panic is
// logged and the remaining steps still run, and the clip stack is restored.
func renderLayer(rc *renderContext) {
	if rc.state.structure.Bounds.Empty() {
		return
	}
	for _, step := range pipeline(rc.state.layer) {
		runStep(rc, step)
	}
}

func runStep(rc *renderContext, step paintStep) {
	depth := rc.canvas.depth()
	defer func() {
		rc.canvas.restore(depth)
		if r := recover(); r != nil {
			Logger().Warn("gstyle: render step failed",
				"step", step.name, "layer", rc.state.layer, "panic", r)
		}
	}()
	step.run(rc)
}

func paintBase(rc *renderContext) {
	if c, ok := rc.state.colors.foundation.Get(); ok {
		rc.canvas.FillColor(rc.area(AreaExterior), c)
	}
	if c, ok := rc.state.colors.background.Get(); ok {
		rc.canvas.FillColor(rc.area(AreaInterior), c)
	}
}

func paintBorder(rc *renderContext) {
	if !rc.state.structure.BorderWidths.IsPositive() {
		return
	}
	border := rc.area(AreaBorder)
	if c, ok := rc.state.colors.border.Get(); ok {
		rc.canvas.FillColor(border, c)
	}
	for _, g := range rc.state.borderFx {
		paintGradient(rc, g.Value, border)
	}
}

func paintGradients(rc *renderContext) {
	for _, g := range rc.state.style.gradients {
		paintGradient(rc, g.Value, rc.area(g.Value.area))
	}
}

func paintShadows(rc *renderContext) {
	for _, s := range rc.state.style.shadows {
		paintShadow(rc, s.Value)
	}
}

func paintImages(rc *renderContext) {
	for _, i := range rc.state.style.images {
		paintImage(rc, i.Value)
	}
}

// paintPainters runs the user painters clipped to the interior.
// A failing painter is logged and skipped.
func paintPainters(rc *renderContext) {
	interior := rc.area(AreaInterior)
	for _, p := range rc.state.style.painters {
		if p.Value.IsNone() {
			continue
		}
		if err := runPainter(p.Value, rc.canvas, interior, rc.state.structure.Bounds); err != nil {
			Logger().Warn("gstyle: painter failed",
				"painter", p.Value.Name(), "layer", rc.state.layer, "err", err)
		}
	}
}

// runPainter lets p draw into a scratch context of the component size and
// composites the result through clip.
func runPainter(p *Painter, c *Canvas, clip *Region, b Bounds) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPainterPanic, r)
		}
	}()
	if b.Empty() {
		return nil
	}
	dc := gg.NewContext(b.Width, b.Height)
	if err := p.fn(dc); err != nil {
		return err
	}
	rgba := toRGBA(dc.Image())
	c.DrawPremultiplied(rgba.Pix, rgba.Stride, rgba.Rect.Size(), image.Point{}, clip, 1)
	return nil
}

// toRGBA returns img as a premultiplied *image.RGBA anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Rect, img, b.Min, draw.Src)
	return rgba
}
