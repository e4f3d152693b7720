package main

import "github.com/gogpu/gg"

// offscreen is a headless component: an opaque white panel of fixed size.
type offscreen struct {
	width, height int
	background    gg.RGBA
	hasBackground bool
	opaque        bool
}

func newOffscreen(w, h int) *offscreen {
	return &offscreen{width: w, height: h, background: gg.White, hasBackground: true, opaque: true}
}

func (o *offscreen) Size() (int, int)            { return o.width, o.height }
func (o *offscreen) Background() (gg.RGBA, bool) { return o.background, o.hasBackground }
func (o *offscreen) SetBackground(c gg.RGBA)     { o.background, o.hasBackground = c, true }
func (o *offscreen) IsOpaque() bool              { return o.opaque }
func (o *offscreen) SetOpaque(opaque bool)       { o.opaque = opaque }
