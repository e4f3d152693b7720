// Package gstyle renders and caches the visual style of UI components.
//
// # Overview
//
// A Style is an immutable value describing how a component looks: base
// colors, a border with per-side widths and per-corner arcs, margin and
// padding, and four layers (background, content, border, foreground) each
// holding named shadows, gradients, images and painters. Every With method
// returns a modified copy.
//
// An Engine turns a style plus the component size into pixels:
//
//	e := gstyle.NewEngine()
//	style := gstyle.NewStyle().
//		WithBackground(gg.White).
//		WithBorderWidth(2).
//		WithBorderRadius(8).
//		WithBorderColor(gg.Black)
//	if _, err := e.InstallStyle(widget, style); err != nil {
//		return err
//	}
//
//	pm := gg.NewPixmap(100, 50)
//	c := gstyle.NewCanvas(pm)
//	e.RenderBackground(c)
//	// draw children
//	e.RenderBorderAndContent(c)
//	e.RenderForeground(c)
//	e.RenderAnimationOverlays(c)
//
// # Areas
//
// ComponentAreas derives the regions a layer paints into: the body is the
// component minus its margin, rounded by the border arcs; the interior is
// the body minus the border widths; the border is body minus interior and
// the exterior is everything outside the body. Regions are recomputed only
// when the geometry changes.
//
// # Caching
//
// Each layer is rendered through a LayerCache. Layers with expensive
// elements and a moderate size are rendered once into a pooled buffer that
// is shared by every component with an equal RenderState. Pools are bounded
// and fall back to direct rendering when exhausted.
//
// # Concurrency
//
// Engines, caches, pools and canvases are confined to the UI goroutine
// and carry no locks. Only the package logger may be swapped from any
// goroutine.
//
// # Coordinate System
//
// Coordinates are component-relative pixels:
//   - Origin (0,0) at the top-left corner of the component
//   - X increases right
//   - Y increases down
package gstyle

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
