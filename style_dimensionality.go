package gstyle

// DimensionalityStyle holds the size constraints of a component.
// Every value is optional.
type DimensionalityStyle struct {
	MinWidth, MinHeight   Opt[int]
	MaxWidth, MaxHeight   Opt[int]
	PrefWidth, PrefHeight Opt[int]
	Width, Height         Opt[int]
}

func (d DimensionalityStyle) WithMinSize(w, h int) DimensionalityStyle {
	d.MinWidth, d.MinHeight = Some(w), Some(h)
	return d
}

func (d DimensionalityStyle) WithMaxSize(w, h int) DimensionalityStyle {
	d.MaxWidth, d.MaxHeight = Some(w), Some(h)
	return d
}

func (d DimensionalityStyle) WithPrefSize(w, h int) DimensionalityStyle {
	d.PrefWidth, d.PrefHeight = Some(w), Some(h)
	return d
}

func (d DimensionalityStyle) WithSize(w, h int) DimensionalityStyle {
	d.Width, d.Height = Some(w), Some(h)
	return d
}

// IsSet reports whether any constraint is present.
func (d DimensionalityStyle) IsSet() bool { return d != DimensionalityStyle{} }

func (d *DimensionalityStyle) all() []*Opt[int] {
	return []*Opt[int]{&d.MinWidth, &d.MinHeight, &d.MaxWidth, &d.MaxHeight,
		&d.PrefWidth, &d.PrefHeight, &d.Width, &d.Height}
}

// Scale returns the constraints scaled by f.
func (d DimensionalityStyle) Scale(f float64) DimensionalityStyle {
	for _, v := range d.all() {
		if v.ok {
			v.v = scaleInt(v.v, f)
		}
	}
	return d
}

func (d DimensionalityStyle) validate() error {
	for _, v := range d.all() {
		if v.ok {
			if err := validatorInstance().Var(v.v, "gte=0"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d DimensionalityStyle) hash(h *hasher) {
	for _, v := range d.all() {
		h.optInt(*v)
	}
}
