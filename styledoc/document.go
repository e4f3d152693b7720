package styledoc

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoding for image layers
	_ "image/png"  // register PNG decoding for image layers
	"os"
	"path/filepath"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg"

	"github.com/gogpu/gstyle"
)

// Document is the declarative form of a style and the size to render it at.
type Document struct {
	Width      int               `yaml:"width,omitempty" toml:"width,omitempty" validate:"gte=0"`
	Height     int               `yaml:"height,omitempty" toml:"height,omitempty" validate:"gte=0"`
	Scale      float64           `yaml:"scale,omitempty" toml:"scale,omitempty" validate:"gte=0"`
	Background string            `yaml:"background,omitempty" toml:"background,omitempty" validate:"omitempty,color"`
	Foreground string            `yaml:"foreground,omitempty" toml:"foreground,omitempty" validate:"omitempty,color"`
	Foundation string            `yaml:"foundation,omitempty" toml:"foundation,omitempty" validate:"omitempty,color"`
	Cursor     string            `yaml:"cursor,omitempty" toml:"cursor,omitempty" validate:"omitempty,cursor"`
	Margin     Sides             `yaml:"margin,omitempty" toml:"margin,omitempty"`
	Padding    Sides             `yaml:"padding,omitempty" toml:"padding,omitempty"`
	Border     Border            `yaml:"border,omitempty" toml:"border,omitempty"`
	Font       *Font             `yaml:"font,omitempty" toml:"font,omitempty"`
	Layers     map[string]Layer  `yaml:"layers,omitempty" toml:"layers,omitempty" validate:"dive,keys,layer,endkeys"`
	Properties map[string]string `yaml:"properties,omitempty" toml:"properties,omitempty"`

	// dir resolves relative image paths; Load sets it to the document's directory.
	dir string
}

// Sides is an outline. All sets every side; the named sides override it.
type Sides struct {
	All    *int `yaml:"all,omitempty" toml:"all,omitempty" validate:"omitempty,gte=0"`
	Top    *int `yaml:"top,omitempty" toml:"top,omitempty" validate:"omitempty,gte=0"`
	Right  *int `yaml:"right,omitempty" toml:"right,omitempty" validate:"omitempty,gte=0"`
	Bottom *int `yaml:"bottom,omitempty" toml:"bottom,omitempty" validate:"omitempty,gte=0"`
	Left   *int `yaml:"left,omitempty" toml:"left,omitempty" validate:"omitempty,gte=0"`
}

// Border describes the component border.
type Border struct {
	Width     *int       `yaml:"width,omitempty" toml:"width,omitempty" validate:"omitempty,gte=0"`
	Widths    Sides      `yaml:"widths,omitempty" toml:"widths,omitempty"`
	Radius    *int       `yaml:"radius,omitempty" toml:"radius,omitempty" validate:"omitempty,gte=0"`
	Color     string     `yaml:"color,omitempty" toml:"color,omitempty" validate:"omitempty,color"`
	Gradients []Gradient `yaml:"gradients,omitempty" toml:"gradients,omitempty" validate:"dive"`
}

// Font describes the text style.
type Font struct {
	Family        string  `yaml:"family,omitempty" toml:"family,omitempty"`
	Size          int     `yaml:"size,omitempty" toml:"size,omitempty" validate:"gte=0,lte=4096"`
	Weight        float32 `yaml:"weight,omitempty" toml:"weight,omitempty" validate:"omitempty,gte=100,lte=1000"`
	Italic        bool    `yaml:"italic,omitempty" toml:"italic,omitempty"`
	Color         string  `yaml:"color,omitempty" toml:"color,omitempty" validate:"omitempty,color"`
	Underline     bool    `yaml:"underline,omitempty" toml:"underline,omitempty"`
	StrikeThrough bool    `yaml:"strike_through,omitempty" toml:"strike_through,omitempty"`
	Transform     string  `yaml:"transform,omitempty" toml:"transform,omitempty" validate:"omitempty,text_transform"`
}

// Layer holds the named effects of one style layer.
type Layer struct {
	Shadows   []Shadow   `yaml:"shadows,omitempty" toml:"shadows,omitempty" validate:"dive"`
	Gradients []Gradient `yaml:"gradients,omitempty" toml:"gradients,omitempty" validate:"dive"`
	Images    []Image    `yaml:"images,omitempty" toml:"images,omitempty" validate:"dive"`
}

// Shadow describes a box shadow.
type Shadow struct {
	Name   string `yaml:"name,omitempty" toml:"name,omitempty"`
	Color  string `yaml:"color" toml:"color" validate:"required,color"`
	X      int    `yaml:"x,omitempty" toml:"x,omitempty"`
	Y      int    `yaml:"y,omitempty" toml:"y,omitempty"`
	Blur   int    `yaml:"blur,omitempty" toml:"blur,omitempty" validate:"gte=0"`
	Spread int    `yaml:"spread,omitempty" toml:"spread,omitempty"`
	Inset  bool   `yaml:"inset,omitempty" toml:"inset,omitempty"`
}

// Gradient describes a linear or radial gradient.
type Gradient struct {
	Name       string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Transition string   `yaml:"transition,omitempty" toml:"transition,omitempty" validate:"omitempty,transition"`
	Type       string   `yaml:"type,omitempty" toml:"type,omitempty" validate:"omitempty,gradient_type"`
	Area       string   `yaml:"area,omitempty" toml:"area,omitempty" validate:"omitempty,area"`
	Colors     []string `yaml:"colors" toml:"colors" validate:"required,min=1,dive,color"`
}

// Image places an image file.
type Image struct {
	Name      string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Path      string   `yaml:"path,omitempty" toml:"path,omitempty"`
	Primer    string   `yaml:"primer,omitempty" toml:"primer,omitempty" validate:"omitempty,color"`
	Placement string   `yaml:"placement,omitempty" toml:"placement,omitempty" validate:"omitempty,placement"`
	Repeat    bool     `yaml:"repeat,omitempty" toml:"repeat,omitempty"`
	Fit       string   `yaml:"fit,omitempty" toml:"fit,omitempty" validate:"omitempty,fit"`
	Width     *int     `yaml:"width,omitempty" toml:"width,omitempty" validate:"omitempty,gte=0"`
	Height    *int     `yaml:"height,omitempty" toml:"height,omitempty" validate:"omitempty,gte=0"`
	Opacity   *float64 `yaml:"opacity,omitempty" toml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
	Padding   Sides    `yaml:"padding,omitempty" toml:"padding,omitempty"`
	OffsetX   int      `yaml:"offset_x,omitempty" toml:"offset_x,omitempty"`
	OffsetY   int      `yaml:"offset_y,omitempty" toml:"offset_y,omitempty"`
	ClipArea  string   `yaml:"clip_area,omitempty" toml:"clip_area,omitempty" validate:"omitempty,area"`
}

// Bounds returns the document size, defaulting to fallback for unset sides.
func (d *Document) Bounds(fallback gstyle.Bounds) gstyle.Bounds {
	b := fallback
	if d.Width > 0 {
		b.Width = d.Width
	}
	if d.Height > 0 {
		b.Height = d.Height
	}
	return b
}

// Style builds the style the document describes. Image files are decoded
// relative to the document's directory.
func (d *Document) Style() (gstyle.Style, error) {
	if err := d.Validate(); err != nil {
		return gstyle.Style{}, err
	}
	s := gstyle.NewStyle().
		WithMargin(d.Margin.outline()).
		WithPadding(d.Padding.outline())

	base := s.Base()
	base.Background = optColor(d.Background)
	base.Foreground = optColor(d.Foreground)
	base.Foundation = optColor(d.Foundation)
	if d.Cursor != "" {
		base.Cursor, _ = gstyle.ParseCursor(d.Cursor)
	}
	s = s.WithBase(base)

	s = s.WithBorder(d.Border.apply)
	if d.Font != nil {
		s = s.WithFont(d.Font.style())
	}
	for _, name := range sortedKeys(d.Layers) {
		l, _ := gstyle.ParseLayer(name)
		var err error
		if s, err = d.Layers[name].apply(s, l, d.dir); err != nil {
			return gstyle.Style{}, err
		}
	}
	for _, k := range sortedKeys(d.Properties) {
		s = s.WithProperty(k, d.Properties[k])
	}
	if err := s.Validate(); err != nil {
		return gstyle.Style{}, err
	}
	return s, nil
}

func (o Sides) outline() gstyle.Outline {
	out := gstyle.OutlineNone()
	if o.All != nil {
		out = gstyle.OutlineAll(*o.All)
	}
	if o.Top != nil {
		out = out.WithTop(*o.Top)
	}
	if o.Right != nil {
		out = out.WithRight(*o.Right)
	}
	if o.Bottom != nil {
		out = out.WithBottom(*o.Bottom)
	}
	if o.Left != nil {
		out = out.WithLeft(*o.Left)
	}
	return out
}

func (o Sides) isSet() bool {
	return o.All != nil || o.Top != nil || o.Right != nil || o.Bottom != nil || o.Left != nil
}

func (b Border) apply(bs gstyle.BorderStyle) gstyle.BorderStyle {
	if b.Width != nil {
		bs = bs.WithWidth(*b.Width)
	}
	if b.Widths.isSet() {
		bs = bs.WithWidths(b.Widths.outline())
	}
	if b.Radius != nil {
		bs = bs.WithRadius(*b.Radius)
	}
	if c, ok := optColor(b.Color).Get(); ok {
		bs = bs.WithColor(c)
	}
	for i, g := range b.Gradients {
		bs = bs.WithGradient(name(g.Name, i), g.apply)
	}
	return bs
}

func (f *Font) style() gstyle.FontStyle {
	fs := gstyle.FontStyle{}.
		WithFamily(f.Family).
		WithSize(f.Size).
		WithItalic(f.Italic).
		WithUnderline(f.Underline).
		WithStrikeThrough(f.StrikeThrough)
	if f.Weight > 0 {
		fs = fs.WithWeight(font.Weight(f.Weight))
	}
	if c, ok := optColor(f.Color).Get(); ok {
		fs = fs.WithColor(c)
	}
	if f.Transform != "" {
		t, _ := gstyle.ParseTextTransform(f.Transform)
		fs = fs.WithTransform(t)
	}
	return fs
}

func (l Layer) apply(s gstyle.Style, layer gstyle.Layer, dir string) (gstyle.Style, error) {
	for i, sh := range l.Shadows {
		s = s.WithShadowOn(layer, name(sh.Name, i), sh.apply)
	}
	for i, g := range l.Gradients {
		s = s.WithGradient(layer, name(g.Name, i), g.apply)
	}
	for i, img := range l.Images {
		is, err := img.style(dir)
		if err != nil {
			return s, err
		}
		s = s.WithImage(layer, name(img.Name, i), func(gstyle.ImageStyle) gstyle.ImageStyle { return is })
	}
	return s, nil
}

func (sh Shadow) apply(s gstyle.ShadowStyle) gstyle.ShadowStyle {
	c, _ := gstyle.ParseColor(sh.Color)
	s.Color = gstyle.Some(c)
	s.HorizontalOffset = sh.X
	s.VerticalOffset = sh.Y
	s.BlurRadius = sh.Blur
	s.SpreadRadius = sh.Spread
	s.Inset = sh.Inset
	return s
}

func (g Gradient) apply(gs gstyle.GradientStyle) gstyle.GradientStyle {
	colors := make([]gg.RGBA, 0, len(g.Colors))
	for _, c := range g.Colors {
		col, _ := gstyle.ParseColor(c)
		colors = append(colors, col)
	}
	gs = gs.WithColors(colors...)
	if g.Transition != "" {
		t, _ := gstyle.ParseTransition(g.Transition)
		gs = gs.WithTransition(t)
	}
	if g.Type != "" {
		t, _ := gstyle.ParseGradientType(g.Type)
		gs = gs.WithType(t)
	}
	if g.Area != "" {
		a, _ := gstyle.ParseArea(g.Area)
		gs = gs.WithArea(a)
	}
	return gs
}

func (img Image) style(dir string) (gstyle.ImageStyle, error) {
	s := gstyle.DefaultImage()
	if img.Path != "" {
		decoded, err := decodeImage(resolve(dir, img.Path))
		if err != nil {
			return s, err
		}
		s = s.WithImage(decoded)
	}
	if c, ok := optColor(img.Primer).Get(); ok {
		s = s.WithPrimer(c)
	}
	if img.Placement != "" {
		s.Placement, _ = gstyle.ParsePlacement(img.Placement)
	}
	if img.Fit != "" {
		s.Fit, _ = gstyle.ParseFitMode(img.Fit)
	}
	if img.ClipArea != "" {
		s.ClipArea, _ = gstyle.ParseArea(img.ClipArea)
	}
	if img.Width != nil {
		s.Width = gstyle.Some(*img.Width)
	}
	if img.Height != nil {
		s.Height = gstyle.Some(*img.Height)
	}
	if img.Opacity != nil {
		s.Opacity = *img.Opacity
	}
	s.Repeat = img.Repeat
	s.Padding = img.Padding.outline()
	s.OffsetX, s.OffsetY = img.OffsetX, img.OffsetY
	return s, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("styledoc: open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("styledoc: decode image %s: %w", path, err)
	}
	return img, nil
}

func resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func optColor(s string) gstyle.Opt[gg.RGBA] {
	if s == "" {
		return gstyle.None[gg.RGBA]()
	}
	c, err := gstyle.ParseColor(s)
	if err != nil {
		return gstyle.None[gg.RGBA]()
	}
	return gstyle.Some(c)
}

// name returns the entry name, or a positional one for unnamed entries.
func name(n string, i int) string {
	if n != "" {
		return n
	}
	if i == 0 {
		return gstyle.DefaultName
	}
	return fmt.Sprintf("%s-%d", gstyle.DefaultName, i)
}
