package gstyle

// StyleLayer holds everything painted on one layer of a component.
// Each list paints in order; the lists paint in the order
// images, gradients, shadows, painters.
type StyleLayer struct {
	shadows   namedList[ShadowStyle]
	gradients namedList[GradientStyle]
	images    namedList[ImageStyle]
	painters  namedList[*Painter]
}

func (l StyleLayer) Shadows() []Named[ShadowStyle]     { return l.shadows.entries() }
func (l StyleLayer) Gradients() []Named[GradientStyle] { return l.gradients.entries() }
func (l StyleLayer) Images() []Named[ImageStyle]       { return l.images.entries() }
func (l StyleLayer) Painters() []Named[*Painter]       { return l.painters.entries() }

// WithShadow updates the shadow called name, starting from a zero shadow.
func (l StyleLayer) WithShadow(name string, fn func(ShadowStyle) ShadowStyle) StyleLayer {
	l.shadows = l.shadows.update(name, ShadowStyle{}, fn)
	return l
}

// WithGradient updates the gradient called name, starting from an empty gradient.
func (l StyleLayer) WithGradient(name string, fn func(GradientStyle) GradientStyle) StyleLayer {
	l.gradients = l.gradients.update(name, GradientStyle{}, fn)
	return l
}

// WithImage updates the image called name, starting from DefaultImage.
func (l StyleLayer) WithImage(name string, fn func(ImageStyle) ImageStyle) StyleLayer {
	l.images = l.images.update(name, DefaultImage(), fn)
	return l
}

// WithPainter sets the painter called name.
func (l StyleLayer) WithPainter(name string, p *Painter) StyleLayer {
	if p == nil {
		p = NoPainter
	}
	l.painters = l.painters.with(name, p)
	return l
}

func (l StyleLayer) WithoutShadow(name string) StyleLayer {
	l.shadows = l.shadows.without(name)
	return l
}

func (l StyleLayer) WithoutGradient(name string) StyleLayer {
	l.gradients = l.gradients.without(name)
	return l
}

func (l StyleLayer) WithoutImage(name string) StyleLayer {
	l.images = l.images.without(name)
	return l
}

func (l StyleLayer) WithoutPainter(name string) StyleLayer {
	l.painters = l.painters.without(name)
	return l
}

// IsEmpty reports whether the layer has no entries at all.
func (l StyleLayer) IsEmpty() bool {
	return len(l.shadows) == 0 && len(l.gradients) == 0 && len(l.images) == 0 && len(l.painters) == 0
}

// HasPainters reports whether any painter on the layer draws.
func (l StyleLayer) HasPainters() bool {
	for _, p := range l.painters {
		if !p.Value.IsNone() {
			return true
		}
	}
	return false
}

// heavyCount counts the entries expensive enough to be worth caching.
func (l StyleLayer) heavyCount() int {
	n := 0
	for _, s := range l.shadows {
		if s.Value.IsActive() {
			n++
		}
	}
	for _, g := range l.gradients {
		if g.Value.IsActive() {
			n++
		}
	}
	for _, i := range l.images {
		if i.Value.IsActive() {
			n++
		}
	}
	return n
}

// Scale returns the layer with every entry scaled by f.
func (l StyleLayer) Scale(f float64) StyleLayer {
	l.shadows = l.shadows.mapValues(func(s ShadowStyle) ShadowStyle { return s.Scale(f) })
	l.images = l.images.mapValues(func(s ImageStyle) ImageStyle { return s.Scale(f) })
	return l
}

// Equal reports whether both layers have the same entries in the same order.
func (l StyleLayer) Equal(o StyleLayer) bool {
	return equalNamed(l.shadows, o.shadows, ShadowStyle.Equal) &&
		equalNamed(l.gradients, o.gradients, GradientStyle.Equal) &&
		equalNamed(l.images, o.images, ImageStyle.Equal) &&
		equalNamed(l.painters, o.painters, samePainter)
}

func (l StyleLayer) validate() error {
	v := validatorInstance()
	for _, s := range l.shadows {
		if err := v.Struct(s.Value); err != nil {
			return wrapInvalid("shadow "+s.Name, err)
		}
	}
	for _, g := range l.gradients {
		if err := g.Value.validate(); err != nil {
			return wrapInvalid("gradient "+g.Name, err)
		}
	}
	for _, i := range l.images {
		if err := v.Struct(i.Value); err != nil {
			return wrapInvalid("image "+i.Name, err)
		}
	}
	return nil
}

func (l StyleLayer) hash(h *hasher) {
	h.int(len(l.shadows))
	for _, s := range l.shadows {
		h.str(s.Name)
		s.Value.hash(h)
	}
	h.int(len(l.gradients))
	for _, g := range l.gradients {
		h.str(g.Name)
		g.Value.hash(h)
	}
	h.int(len(l.images))
	for _, i := range l.images {
		h.str(i.Name)
		i.Value.hash(h)
	}
	h.int(len(l.painters))
	for _, p := range l.painters {
		h.str(p.Name)
		h.bool(p.Value.IsNone())
	}
}
