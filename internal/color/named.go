package color

import (
	"strings"

	"golang.org/x/image/colornames"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

// Named looks up an SVG 1.1 color keyword such as "steelblue".
// Matching is case-insensitive and ignores surrounding whitespace.
func Named(name string) (RGB, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, true
}

// Parse accepts either a hex color or a named color keyword.
func Parse(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	if c, err := ParseHex(trimmed); err == nil {
		return c, nil
	}
	if c, ok := Named(trimmed); ok {
		return c, nil
	}
	return RGB{}, domainerrors.InvalidColorFormatf("invalid color %q: expected #rrggbb or a color name", s)
}
