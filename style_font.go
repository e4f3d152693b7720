package gstyle

import (
	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FontStyle describes the text rendering of a component.
// A zero Size or an empty Family means "inherit from the toolkit".
type FontStyle struct {
	Family          string
	Size            int `validate:"gte=0,lte=4096"`
	Aspect          font.Aspect
	Color           Opt[gg.RGBA]
	BackgroundColor Opt[gg.RGBA]
	SelectionColor  Opt[gg.RGBA]
	Underlined      bool
	StrikeThrough   bool
	Transform       TextTransform
}

func (f FontStyle) WithFamily(family string) FontStyle      { f.Family = family; return f }
func (f FontStyle) WithSize(size int) FontStyle             { f.Size = size; return f }
func (f FontStyle) WithWeight(w font.Weight) FontStyle      { f.Aspect.Weight = w; return f }
func (f FontStyle) WithStretch(s font.Stretch) FontStyle    { f.Aspect.Stretch = s; return f }
func (f FontStyle) WithColor(c gg.RGBA) FontStyle           { f.Color = Some(c); return f }
func (f FontStyle) WithBackgroundColor(c gg.RGBA) FontStyle { f.BackgroundColor = Some(c); return f }
func (f FontStyle) WithSelectionColor(c gg.RGBA) FontStyle  { f.SelectionColor = Some(c); return f }
func (f FontStyle) WithUnderline(on bool) FontStyle         { f.Underlined = on; return f }
func (f FontStyle) WithStrikeThrough(on bool) FontStyle     { f.StrikeThrough = on; return f }
func (f FontStyle) WithTransform(t TextTransform) FontStyle { f.Transform = t; return f }

// WithItalic switches the posture between italic and normal.
func (f FontStyle) WithItalic(on bool) FontStyle {
	if on {
		f.Aspect.Style = font.StyleItalic
	} else {
		f.Aspect.Style = font.StyleNormal
	}
	return f
}

// IsBold reports whether the weight is at least semibold.
func (f FontStyle) IsBold() bool { return f.Aspect.Weight >= font.WeightSemibold }

// IsItalic reports whether the posture is italic.
func (f FontStyle) IsItalic() bool { return f.Aspect.Style == font.StyleItalic }

// Apply maps text through the configured case transform.
func (f FontStyle) Apply(text string) string {
	switch f.Transform {
	case TransformUppercase:
		return cases.Upper(language.Und).String(text)
	case TransformLowercase:
		return cases.Lower(language.Und).String(text)
	case TransformCapitalize:
		return cases.Title(language.Und).String(text)
	default:
		return text
	}
}

// Scale returns the font with its size scaled by f.
func (f FontStyle) Scale(factor float64) FontStyle {
	f.Size = scaleInt(f.Size, factor)
	return f
}

// Equal reports whether both font styles have the same values.
func (f FontStyle) Equal(o FontStyle) bool { return f == o }

func (f FontStyle) hash(h *hasher) {
	h.str(f.Family)
	h.int(f.Size)
	h.int(int(f.Aspect.Style))
	h.float(float64(f.Aspect.Weight))
	h.float(float64(f.Aspect.Stretch))
	h.optColor(f.Color)
	h.optColor(f.BackgroundColor)
	h.optColor(f.SelectionColor)
	h.bool(f.Underlined)
	h.bool(f.StrikeThrough)
	h.int(int(f.Transform))
}
