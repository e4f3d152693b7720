package gstyle

// cachedRegion is a lazily produced region that survives as long as the
// structure it was computed from.
type cachedRegion struct {
	region  *Region
	produce func(StructureState, *ComponentAreas) *Region
}

func (c *cachedRegion) get(s StructureState, areas *ComponentAreas) *Region {
	if c.region == nil {
		c.region = c.produce(s, areas)
		areas.computed++
	}
	return c.region
}

// ComponentAreas derives and caches the regions of one component.
//
//	all      the component rectangle
//	body     all minus the margin, rounded by the border arcs
//	interior body minus the border widths, rounded by the inner arcs
//	border   body minus interior
//	exterior all minus body
//
// ComponentAreas must only be used from the UI goroutine.
type ComponentAreas struct {
	all, body, interior, border, exterior cachedRegion
	state                                 StructureState

	// computed counts region productions; tests use it to observe reuse.
	computed int
}

// NewComponentAreas returns an empty area cache.
func NewComponentAreas() *ComponentAreas {
	return &ComponentAreas{
		all:      cachedRegion{produce: allRegion},
		body:     cachedRegion{produce: bodyRegion},
		interior: cachedRegion{produce: interiorRegion},
		border: cachedRegion{produce: func(s StructureState, a *ComponentAreas) *Region {
			return a.body.get(s, a).Subtract(a.interior.get(s, a))
		}},
		exterior: cachedRegion{produce: func(s StructureState, a *ComponentAreas) *Region {
			return a.all.get(s, a).Subtract(a.body.get(s, a))
		}},
	}
}

// Validate keeps the computed regions when the geometry of old and next
// is the same, and drops them otherwise. It reports whether they were kept.
func (a *ComponentAreas) Validate(old, next StructureState) bool {
	a.state = next
	if old == next {
		return true
	}
	for _, c := range a.slots() {
		c.region = nil
	}
	Logger().Debug("gstyle: areas invalidated",
		"width", next.Bounds.Width, "height", next.Bounds.Height)
	return false
}

// Get returns the region for area. Empty bounds yield an empty region.
func (a *ComponentAreas) Get(area Area, s StructureState) *Region {
	if s.Bounds.Empty() {
		return EmptyRegion()
	}
	if s != a.state {
		a.Validate(a.state, s)
	}
	switch area {
	case AreaAll:
		return a.all.get(s, a)
	case AreaBody:
		return a.body.get(s, a)
	case AreaBorder:
		return a.border.get(s, a)
	case AreaExterior:
		return a.exterior.get(s, a)
	default:
		return a.interior.get(s, a)
	}
}

func (a *ComponentAreas) slots() []*cachedRegion {
	return []*cachedRegion{&a.all, &a.body, &a.interior, &a.border, &a.exterior}
}

func allRegion(s StructureState, _ *ComponentAreas) *Region {
	return RectRegion(0, 0, float64(s.Bounds.Width), float64(s.Bounds.Height))
}

// bodyRect is the component rectangle minus the margin.
func bodyRect(s StructureState) rectf {
	m := s.Margin
	left, top := float64(max(m.Left.Or(0), 0)), float64(max(m.Top.Or(0), 0))
	right, bottom := float64(max(m.Right.Or(0), 0)), float64(max(m.Bottom.Or(0), 0))
	return rectf{left, top, float64(s.Bounds.Width) - left - right, float64(s.Bounds.Height) - top - bottom}
}

func bodyRegion(s StructureState, _ *ComponentAreas) *Region {
	r := bodyRect(s)
	return RoundRectRegion(r.x, r.y, r.w, r.h, s.Arcs)
}

// innerArcs shrinks each outer arc by the widths of the two edges meeting at it.
func innerArcs(s StructureState) [4]Arc {
	w := s.BorderWidths
	top, right, bottom, left := w.Top.Or(0), w.Right.Or(0), w.Bottom.Or(0), w.Left.Or(0)
	horizontal := [4]int{left, right, right, left}
	vertical := [4]int{top, top, bottom, bottom}
	var out [4]Arc
	for c, a := range s.Arcs {
		out[c] = Arc{
			Width:  max(0, a.Width-horizontal[c]),
			Height: max(0, a.Height-vertical[c]),
		}
	}
	return out
}

func interiorRect(s StructureState) rectf {
	r := bodyRect(s)
	w := s.BorderWidths
	top, right := float64(max(w.Top.Or(0), 0)), float64(max(w.Right.Or(0), 0))
	bottom, left := float64(max(w.Bottom.Or(0), 0)), float64(max(w.Left.Or(0), 0))
	return rectf{r.x + left, r.y + top, r.w - left - right, r.h - top - bottom}
}

func interiorRegion(s StructureState, _ *ComponentAreas) *Region {
	r := interiorRect(s)
	return RoundRectRegion(r.x, r.y, r.w, r.h, innerArcs(s))
}
