package gstyle

import (
	"errors"

	"github.com/gogpu/gg"
)

// ErrPainterPanic wraps a panic raised by a painter.
var ErrPainterPanic = errors.New("gstyle: painter panicked")

// PaintFunc draws custom content. The context has the size of the
// component and its origin at the component's top-left corner.
type PaintFunc func(dc *gg.Context) error

// Painter is a user-supplied drawing capability. Painters compare by
// identity: two painters are equal only if they are the same *Painter.
type Painter struct {
	name string
	fn   PaintFunc
}

// NoPainter is the shared painter that draws nothing.
var NoPainter = &Painter{name: "none"}

// NewPainter wraps fn. A nil fn yields NoPainter.
func NewPainter(name string, fn PaintFunc) *Painter {
	if fn == nil {
		return NoPainter
	}
	return &Painter{name: name, fn: fn}
}

// Name returns the diagnostic name of the painter.
func (p *Painter) Name() string {
	if p == nil {
		return NoPainter.name
	}
	return p.name
}

// IsNone reports whether the painter draws nothing.
func (p *Painter) IsNone() bool { return p == nil || p == NoPainter || p.fn == nil }

func (p *Painter) String() string { return "Painter[" + p.Name() + "]" }

func samePainter(a, b *Painter) bool {
	if a.IsNone() && b.IsNone() {
		return true
	}
	return a == b
}
