package color

import (
	"math"
	"strconv"
)

// HSL is a color as hue in degrees [0,360) and saturation and lightness as
// percentages [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// NormalizeHue wraps h into [0,360). Negative hues wrap around.
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod can return -0 or exactly 360 after the adjustment above.
	if h == 0 || h >= 360 {
		return 0
	}
	return h
}

// ClampPercent limits v to [0,100]. NaN maps to 0.
func ClampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// HSLToRGB converts hue (degrees), saturation and lightness (percent) to RGB
// with the chroma formula. Hue is normalized modulo 360; saturation and
// lightness are clamped to [0,100].
func HSLToRGB(h, s, l float64) RGB {
	h = NormalizeHue(h)
	s = ClampPercent(s)
	l = ClampPercent(l) / 100

	a := s * math.Min(l, 1-l) / 100
	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		return 255 * (l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1))
	}
	return FromFloats(f(0), f(8), f(4))
}

// HSLToHex converts hue, saturation and lightness to lowercase "#rrggbb".
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// RGBToHSL converts an RGB color to HSL. Achromatic colors report hue 0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{H: NormalizeHue(h * 60), S: s * 100, L: l * 100}
}

// RGB converts the HSL value to RGB.
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H, c.S, c.L)
}

// Hex converts the HSL value to lowercase "#rrggbb".
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// CSS renders the value as a CSS hsl() expression, e.g. "hsl(270, 50%, 50%)".
// Components are written as given, without normalization.
func (c HSL) CSS() string {
	return "hsl(" + formatNumber(c.H) + ", " + formatNumber(c.S) + "%, " + formatNumber(c.L) + "%)"
}

// formatNumber writes the shortest decimal representation of v.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
