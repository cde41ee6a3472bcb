package cli

import (
	"fmt"
	"strings"

	"github.com/hueforge/hueforge/internal/color"
)

const swatchCell = "    "

// swatch renders hex as a block of background color. Without color support
// it is blank.
func (a *app) swatch(hex string) string {
	return a.profile.String(swatchCell).Background(a.profile.Color(hex)).String()
}

// strip renders colors side by side.
func (a *app) strip(hexes []string) string {
	var b strings.Builder
	for _, h := range hexes {
		b.WriteString(a.profile.String("  ").Background(a.profile.Color(h)).String())
	}
	return b.String()
}

// ramp renders a gradient preview of width cells, blending from into to.
func (a *app) ramp(from, to color.RGB, width int) string {
	hexes := make([]string, width)
	for i := range hexes {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		hexes[i] = blend(from, to, t).Hex()
	}
	var b strings.Builder
	for _, h := range hexes {
		b.WriteString(a.profile.String(" ").Background(a.profile.Color(h)).String())
	}
	return b.String()
}

// blend interpolates linearly in RGB.
func blend(from, to color.RGB, t float64) color.RGB {
	fr, fg, fb := from.Floats()
	tr, tg, tb := to.Floats()
	return color.FromFloats(fr+(tr-fr)*t, fg+(tg-fg)*t, fb+(tb-fb)*t)
}

// row prints a label column followed by values.
func (a *app) row(label string, format string, args ...any) {
	fmt.Fprintf(a.out, "%-10s %s\n", label, fmt.Sprintf(format, args...))
}
