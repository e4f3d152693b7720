package gstyle

import (
	"fmt"
	"strings"
)

// Layer is one of the four paint stages of a component, in paint order.
type Layer int

const (
	LayerBackground Layer = iota
	LayerContent
	LayerBorder
	LayerForeground
)

// Layers lists every layer in paint order.
var Layers = [...]Layer{LayerBackground, LayerContent, LayerBorder, LayerForeground}

// Area selects one of the derived regions of a component.
type Area int

const (
	AreaInterior Area = iota // inside the border
	AreaBorder               // the ring between body and interior
	AreaExterior             // the margin outside the body
	AreaBody                 // interior plus border
	AreaAll                  // the whole component rectangle
)

// Cursor is the pointer shape requested for a component.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorHand
	CursorText
	CursorCrosshair
	CursorWait
	CursorMove
	CursorResizeHorizontal
	CursorResizeVertical
)

// Orientation is the main axis of a component.
type Orientation int

const (
	OrientationUnknown Orientation = iota
	OrientationHorizontal
	OrientationVertical
)

// FitMode controls how an image is scaled into its target area.
type FitMode int

const (
	FitNone           FitMode = iota // keep the image size
	FitWidth                         // stretch to the area width
	FitHeight                        // stretch to the area height
	FitWidthAndHeight                // stretch to both
	FitMaxDimension                  // stretch along the longer side of the component
	FitMinDimension                  // stretch along the shorter side of the component
)

// Placement anchors an image inside its target area.
type Placement int

const (
	PlacementCenter Placement = iota
	PlacementTop
	PlacementBottom
	PlacementLeft
	PlacementRight
	PlacementTopLeft
	PlacementTopRight
	PlacementBottomLeft
	PlacementBottomRight
)

// Transition is the direction of a gradient, from its first to its last color.
type Transition int

const (
	TopToBottom Transition = iota
	BottomToTop
	LeftToRight
	RightToLeft
	TopLeftToBottomRight
	BottomRightToTopLeft
	TopRightToBottomLeft
	BottomLeftToTopRight
)

// IsDiagonal reports whether the transition runs corner to corner.
func (t Transition) IsDiagonal() bool { return t >= TopLeftToBottomRight }

// GradientType selects the gradient geometry.
type GradientType int

const (
	GradientLinear GradientType = iota
	GradientRadial
)

// TextTransform is a case mapping applied to rendered text.
type TextTransform int

const (
	TransformNone TextTransform = iota
	TransformUppercase
	TransformLowercase
	TransformCapitalize
)

var (
	layerNames         = []string{"background", "content", "border", "foreground"}
	areaNames          = []string{"interior", "border", "exterior", "body", "all"}
	cursorNames        = []string{"default", "hand", "text", "crosshair", "wait", "move", "resize-horizontal", "resize-vertical"}
	orientationNames   = []string{"unknown", "horizontal", "vertical"}
	fitNames           = []string{"none", "width", "height", "width-and-height", "max-dimension", "min-dimension"}
	placementNames     = []string{"center", "top", "bottom", "left", "right", "top-left", "top-right", "bottom-left", "bottom-right"}
	transitionNames    = []string{"top-to-bottom", "bottom-to-top", "left-to-right", "right-to-left", "top-left-to-bottom-right", "bottom-right-to-top-left", "top-right-to-bottom-left", "bottom-left-to-top-right"}
	gradientTypeNames  = []string{"linear", "radial"}
	textTransformNames = []string{"none", "uppercase", "lowercase", "capitalize"}
)

func enumName(names []string, kind string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return names[v]
}

func parseEnum[E ~int](names []string, kind, s string) (E, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, n := range names {
		if n == s {
			return E(i), nil
		}
	}
	return 0, fmt.Errorf("gstyle: unknown %s %q", kind, s)
}

func (l Layer) String() string         { return enumName(layerNames, "Layer", int(l)) }
func (a Area) String() string          { return enumName(areaNames, "Area", int(a)) }
func (c Cursor) String() string        { return enumName(cursorNames, "Cursor", int(c)) }
func (o Orientation) String() string   { return enumName(orientationNames, "Orientation", int(o)) }
func (f FitMode) String() string       { return enumName(fitNames, "FitMode", int(f)) }
func (p Placement) String() string     { return enumName(placementNames, "Placement", int(p)) }
func (t Transition) String() string    { return enumName(transitionNames, "Transition", int(t)) }
func (g GradientType) String() string  { return enumName(gradientTypeNames, "GradientType", int(g)) }
func (t TextTransform) String() string { return enumName(textTransformNames, "TextTransform", int(t)) }

// ParseLayer parses a layer name such as "background".
func ParseLayer(s string) (Layer, error) { return parseEnum[Layer](layerNames, "layer", s) }

// ParseArea parses an area name such as "interior".
func ParseArea(s string) (Area, error) { return parseEnum[Area](areaNames, "area", s) }

// ParseCursor parses a cursor name such as "hand".
func ParseCursor(s string) (Cursor, error) { return parseEnum[Cursor](cursorNames, "cursor", s) }

// ParseFitMode parses a fit mode such as "max-dimension".
func ParseFitMode(s string) (FitMode, error) { return parseEnum[FitMode](fitNames, "fit mode", s) }

// ParsePlacement parses a placement such as "top-left".
func ParsePlacement(s string) (Placement, error) {
	return parseEnum[Placement](placementNames, "placement", s)
}

// ParseTransition parses a transition such as "top-left-to-bottom-right".
func ParseTransition(s string) (Transition, error) {
	return parseEnum[Transition](transitionNames, "transition", s)
}

// ParseGradientType parses "linear" or "radial".
func ParseGradientType(s string) (GradientType, error) {
	return parseEnum[GradientType](gradientTypeNames, "gradient type", s)
}

// ParseTextTransform parses a text transform such as "uppercase".
func ParseTextTransform(s string) (TextTransform, error) {
	return parseEnum[TextTransform](textTransformNames, "text transform", s)
}
