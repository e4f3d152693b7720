package gstyle

// LayoutStyle carries layout hints that the styling layer forwards but
// does not interpret.
type LayoutStyle struct {
	AlignmentX Opt[float64]
	AlignmentY Opt[float64]
	// Constraint is an opaque, layout-manager specific hint such as "wrap, fill".
	Constraint string
}

func (l LayoutStyle) WithAlignment(x, y float64) LayoutStyle {
	l.AlignmentX, l.AlignmentY = Some(x), Some(y)
	return l
}

func (l LayoutStyle) WithConstraint(c string) LayoutStyle { l.Constraint = c; return l }

func (l LayoutStyle) validate() error {
	for _, a := range []Opt[float64]{l.AlignmentX, l.AlignmentY} {
		if v, ok := a.Get(); ok {
			if err := validatorInstance().Var(v, "unit"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l LayoutStyle) hash(h *hasher) {
	h.bool(l.AlignmentX.ok)
	h.float(l.AlignmentX.v)
	h.bool(l.AlignmentY.ok)
	h.float(l.AlignmentY.v)
	h.str(l.Constraint)
}
