package gstyle

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

// solidImage returns a w×h opaque image of one color.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestImageRect(t *testing.T) {
	img := solidImage(20, 10, color.RGBA{255, 0, 0, 255})
	b := Size(100, 50)
	base := DefaultImage().WithImage(img)

	tests := []struct {
		name  string
		style ImageStyle
		want  image.Rectangle
	}{
		{"centered", base, image.Rect(40, 20, 60, 30)},
		{"top", base.WithPlacement(PlacementTop), image.Rect(40, 0, 60, 10)},
		{"bottom", base.WithPlacement(PlacementBottom), image.Rect(40, 40, 60, 50)},
		{"left", base.WithPlacement(PlacementLeft), image.Rect(0, 20, 20, 30)},
		{"right", base.WithPlacement(PlacementRight), image.Rect(80, 20, 100, 30)},
		{"top left", base.WithPlacement(PlacementTopLeft), image.Rect(0, 0, 20, 10)},
		{"top right", base.WithPlacement(PlacementTopRight), image.Rect(80, 0, 100, 10)},
		{"bottom left", base.WithPlacement(PlacementBottomLeft), image.Rect(0, 40, 20, 50)},
		{"bottom right", base.WithPlacement(PlacementBottomRight), image.Rect(80, 40, 100, 50)},
		{"offset", base.WithPlacement(PlacementTopLeft).WithOffset(3, 4), image.Rect(3, 4, 23, 14)},
		{"explicit size", base.WithSize(30, 30), image.Rect(35, 10, 65, 40)},
		{"fit width", base.WithFit(FitWidth), image.Rect(0, 20, 100, 30)},
		{"fit height", base.WithFit(FitHeight), image.Rect(40, 0, 60, 50)},
		{"fit both", base.WithFit(FitWidthAndHeight), image.Rect(0, 0, 100, 50)},
		{"fit max dimension", base.WithFit(FitMaxDimension), image.Rect(0, 20, 100, 30)},
		{"fit min dimension", base.WithFit(FitMinDimension), image.Rect(40, 0, 60, 50)},
		{
			"padding shrinks the image",
			base.WithFit(FitWidthAndHeight).WithPadding(OutlineOf(1, 2, 3, 4)),
			image.Rect(4, 1, 98, 47),
		},
		{"padding larger than the image", base.WithPadding(OutlineAll(10)), image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageRect(tt.style, b); got != tt.want {
				t.Errorf("imageRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaintImage(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{0, 0, 255, 255})
	s := NewStyle().WithImage(LayerContent, "icon", func(i ImageStyle) ImageStyle {
		return i.WithImage(img).WithPrimer(gg.Green)
	})
	pm := renderStyle(s, LayerContent, 20, 20)

	if got := pm.GetPixel(9, 9); !approxColor(got, gg.Blue) {
		t.Errorf("image pixel = %v, want blue", got)
	}
	if got := pm.GetPixel(1, 1); !approxColor(got, gg.Green) {
		t.Errorf("primer pixel = %v, want green", got)
	}
}

func TestPaintImageScalesAndCaches(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{255, 0, 0, 255})
	s := NewStyle().WithImage(LayerContent, "bg", func(i ImageStyle) ImageStyle {
		return i.WithImage(img).WithFit(FitWidthAndHeight)
	})
	rc := &renderContext{
		state:  NewRenderState(LayerContent, s, Size(16, 8)),
		areas:  NewComponentAreas(),
		canvas: NewCanvas(gg.NewPixmap(16, 8)),
		cfg:    defaultRenderConfig(),
		images: newImageCache(),
	}
	renderLayer(rc)
	renderLayer(rc)

	if got := rc.canvas.Pixmap().GetPixel(15, 7); !approxColor(got, gg.Red) {
		t.Errorf("stretched image corner = %v, want red", got)
	}
	if rc.images.Len() != 1 {
		t.Errorf("scaled copies cached = %d, want 1", rc.images.Len())
	}
}

func TestPaintImageRepeat(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	copy(img.Pix, []uint8{255, 0, 0, 255, 0, 0, 255, 255})
	s := NewStyle().WithImage(LayerContent, "tile", func(i ImageStyle) ImageStyle {
		return i.WithImage(img).WithPlacement(PlacementTopLeft).WithRepeat(true)
	})
	pm := renderStyle(s, LayerContent, 6, 3)
	for x := range 6 {
		want := gg.Red
		if x%2 == 1 {
			want = gg.Blue
		}
		for y := range 3 {
			if got := pm.GetPixel(x, y); !approxColor(got, want) {
				t.Errorf("tile pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPaintImageOpacity(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{0, 0, 0, 255})
	s := NewStyle().WithImage(LayerContent, "half", func(i ImageStyle) ImageStyle {
		return i.WithImage(img).WithOpacity(0.5)
	})
	pm := renderStyle(s, LayerContent, 10, 10)
	if a := alphaAt(pm, 5, 5); a < 126 || a > 129 {
		t.Errorf("alpha = %d, want about 128", a)
	}
}

func TestTileSourceWraps(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Pix[img.PixOffset(1, 1)+3] = 255
	ts := &tileSource{img: img, origin: image.Pt(1, 1)}

	if got := ts.ColorAt(2, 2); got.A != 1 {
		t.Errorf("ColorAt(2,2) alpha = %v, want 1", got.A)
	}
	if got := ts.ColorAt(0, 0); got.A != 1 {
		t.Errorf("negative wrap alpha = %v, want 1", got.A)
	}
	if got := ts.ColorAt(1, 1); got != gg.Transparent {
		t.Errorf("ColorAt(1,1) = %v, want transparent", got)
	}
}
