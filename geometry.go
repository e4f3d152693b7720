package gstyle

import (
	"fmt"
	"math"
)

// Opt is an optional value. The zero Opt is absent.
type Opt[T comparable] struct {
	v  T
	ok bool
}

// Some returns a present optional holding v.
func Some[T comparable](v T) Opt[T] { return Opt[T]{v: v, ok: true} }

// None returns an absent optional.
func None[T comparable]() Opt[T] { return Opt[T]{} }

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.v, o.ok }

// Or returns the value, or def when absent.
func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// IsSet reports whether the value is present.
func (o Opt[T]) IsSet() bool { return o.ok }

func (o Opt[T]) String() string {
	if !o.ok {
		return "?"
	}
	return fmt.Sprint(o.v)
}

// Outline holds four optional inset amounts.
// An absent side is unspecified, which is not the same as zero.
type Outline struct {
	Top, Right, Bottom, Left Opt[int]
}

// OutlineNone returns an outline with all sides unspecified.
func OutlineNone() Outline { return Outline{} }

// OutlineAll returns an outline with every side set to n.
func OutlineAll(n int) Outline { return OutlineOf(n, n, n, n) }

// OutlineOf returns an outline with the given sides, clockwise from the top.
func OutlineOf(top, right, bottom, left int) Outline {
	return Outline{Top: Some(top), Right: Some(right), Bottom: Some(bottom), Left: Some(left)}
}

func (o Outline) WithTop(n int) Outline    { o.Top = Some(n); return o }
func (o Outline) WithRight(n int) Outline  { o.Right = Some(n); return o }
func (o Outline) WithBottom(n int) Outline { o.Bottom = Some(n); return o }
func (o Outline) WithLeft(n int) Outline   { o.Left = Some(n); return o }

// Side returns the inset of the given edge, absent counting as zero.
func (o Outline) Side(e Edge) int {
	switch e {
	case EdgeTop:
		return o.Top.Or(0)
	case EdgeRight:
		return o.Right.Or(0)
	case EdgeBottom:
		return o.Bottom.Or(0)
	default:
		return o.Left.Or(0)
	}
}

// IsPositive reports whether at least one present side is greater than zero.
func (o Outline) IsPositive() bool {
	for _, s := range o.sides() {
		if v, ok := s.Get(); ok && v > 0 {
			return true
		}
	}
	return false
}

// IsSet reports whether any side is present.
func (o Outline) IsSet() bool {
	for _, s := range o.sides() {
		if s.IsSet() {
			return true
		}
	}
	return false
}

func (o Outline) sides() [4]Opt[int] { return [4]Opt[int]{o.Top, o.Right, o.Bottom, o.Left} }

// Plus adds two outlines side by side. A side absent in both stays absent.
func (o Outline) Plus(other Outline) Outline {
	return o.combine(other, func(a, b int) int { return a + b })
}

// Max takes the larger value side by side.
func (o Outline) Max(other Outline) Outline {
	return o.combine(other, func(a, b int) int { return max(a, b) })
}

func (o Outline) combine(other Outline, f func(a, b int) int) Outline {
	pick := func(a, b Opt[int]) Opt[int] {
		switch {
		case a.ok && b.ok:
			return Some(f(a.v, b.v))
		case a.ok:
			return a
		default:
			return b
		}
	}
	return Outline{
		Top:    pick(o.Top, other.Top),
		Right:  pick(o.Right, other.Right),
		Bottom: pick(o.Bottom, other.Bottom),
		Left:   pick(o.Left, other.Left),
	}
}

// Scale multiplies every present side by f, rounding to the nearest integer.
func (o Outline) Scale(f float64) Outline {
	s := func(v Opt[int]) Opt[int] {
		if !v.ok {
			return v
		}
		return Some(scaleInt(v.v, f))
	}
	return Outline{Top: s(o.Top), Right: s(o.Right), Bottom: s(o.Bottom), Left: s(o.Left)}
}

func (o Outline) String() string {
	return fmt.Sprintf("Outline[top=%v, right=%v, bottom=%v, left=%v]", o.Top, o.Right, o.Bottom, o.Left)
}

func scaleInt(v int, f float64) int { return int(math.Round(float64(v) * f)) }

// Bounds is the position and size of a component.
type Bounds struct {
	X, Y          int
	Width, Height int
}

// Size returns bounds of the given size at the origin.
func Size(width, height int) Bounds { return Bounds{Width: width, Height: height} }

// Empty reports whether there is nothing to render.
func (b Bounds) Empty() bool { return b.Width <= 0 || b.Height <= 0 }

// Area returns the pixel count, zero for empty bounds.
func (b Bounds) Area() int {
	if b.Empty() {
		return 0
	}
	return b.Width * b.Height
}

// Arc is a corner rounding with separate horizontal and vertical radii.
type Arc struct {
	Width, Height int
}

// ArcOf returns a circular arc of radius r.
func ArcOf(r int) Arc { return Arc{Width: r, Height: r} }

// Radius returns the mean of both radii.
func (a Arc) Radius() float64 { return float64(a.Width+a.Height) / 2 }

// IsRounded reports whether the arc bends at all.
func (a Arc) IsRounded() bool { return a.Width > 0 && a.Height > 0 }

func (a Arc) Scale(f float64) Arc { return Arc{Width: scaleInt(a.Width, f), Height: scaleInt(a.Height, f)} }

// Corner identifies one of the four corners of a rectangle.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft
)

var cornerNames = [...]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func (c Corner) String() string {
	if c < 0 || int(c) >= len(cornerNames) {
		return fmt.Sprintf("Corner(%d)", int(c))
	}
	return cornerNames[c]
}

// Edge identifies one side of a rectangle.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

var edgeNames = [...]string{"top", "right", "bottom", "left"}

func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// rectf is a float rectangle in component coordinates.
type rectf struct {
	x, y, w, h float64
}

func (r rectf) empty() bool { return r.w <= 0 || r.h <= 0 }

func (r rectf) contains(px, py float64) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

func (r rectf) union(o rectf) rectf {
	switch {
	case r.empty():
		return o
	case o.empty():
		return r
	}
	x0, y0 := math.Min(r.x, o.x), math.Min(r.y, o.y)
	x1, y1 := math.Max(r.x+r.w, o.x+o.w), math.Max(r.y+r.h, o.y+o.h)
	return rectf{x0, y0, x1 - x0, y1 - y0}
}

func (r rectf) intersect(o rectf) rectf {
	x0, y0 := math.Max(r.x, o.x), math.Max(r.y, o.y)
	x1, y1 := math.Min(r.x+r.w, o.x+o.w), math.Min(r.y+r.h, o.y+o.h)
	if x1 <= x0 || y1 <= y0 {
		return rectf{}
	}
	return rectf{x0, y0, x1 - x0, y1 - y0}
}
