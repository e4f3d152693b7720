package gstyle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned by ParseColor for unrecognized input.
var ErrUnknownColor = errors.New("gstyle: unknown color")

// ParseColor parses a color string.
//
// Supported forms:
//   - hex: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" (the '#' is optional)
//   - SVG/CSS color names: "steelblue", "white", ...
//   - "transparent"
//   - functional: "rgb(255, 0, 0)", "rgba(255, 0, 0, 0.5)", "hsl(210, 50%, 40%)"
//     and "hsla(210, 50%, 40%, 0.5)"
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return gg.Transparent, fmt.Errorf("%w: empty string", ErrUnknownColor)
	}
	if s == "transparent" {
		return gg.Transparent, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), nil
	}
	if strings.HasPrefix(s, "rgb") || strings.HasPrefix(s, "hsl") {
		return parseFunctional(s)
	}
	c, err := gg.ParseHex(s)
	if err != nil {
		return gg.Transparent, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}

func parseFunctional(s string) (gg.RGBA, error) {
	open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return gg.Transparent, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	fn := strings.TrimSpace(s[:open])
	parts := strings.Split(s[open+1:end], ",")
	want := 3
	if fn == "rgba" || fn == "hsla" {
		want = 4
	}
	if len(parts) != want {
		return gg.Transparent, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		p = strings.TrimSpace(p)
		scale := 1.0
		switch {
		case strings.HasSuffix(p, "%"):
			p, scale = strings.TrimSuffix(p, "%"), 100
		case fn == "rgb" || fn == "rgba":
			if i < 3 {
				scale = 255
			}
		case i == 0:
			scale = 360
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return gg.Transparent, fmt.Errorf("%w: %q: %w", ErrUnknownColor, s, err)
		}
		v /= scale
		if v < 0 || v > 1 {
			return gg.Transparent, fmt.Errorf("%w: %q: channel %d out of range", ErrUnknownColor, s, i)
		}
		ch[i] = v
	}

	switch fn {
	case "rgb", "rgba":
		return gg.RGBA2(ch[0], ch[1], ch[2], ch[3]), nil
	case "hsl", "hsla":
		c := colorful.Hsl(ch[0]*360, ch[1], ch[2]).Clamped()
		return gg.RGBA2(c.R, c.G, c.B, ch[3]), nil
	}
	return gg.Transparent, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// FormatColor renders c as "#rrggbb", or "#rrggbbaa" when translucent.
func FormatColor(c gg.RGBA) string {
	b := func(v float64) uint8 { return uint8(clamp01(v)*255 + 0.5) }
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", b(c.R), b(c.G), b(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", b(c.R), b(c.G), b(c.B), b(c.A))
}

// isVisible reports whether painting c changes any pixel.
func isVisible(c gg.RGBA) bool { return c.A > 0 }

// isOpaque reports whether c fully covers what is beneath it.
func isOpaque(c gg.RGBA) bool { return c.A >= 1 }

// withAlpha returns c with its alpha replaced.
func withAlpha(c gg.RGBA, a float64) gg.RGBA {
	c.A = a
	return c
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
