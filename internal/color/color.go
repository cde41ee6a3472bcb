// Package color converts between hex, RGB and HSL color representations.
//
// All conversions are pure. Numeric inputs are clamped or normalized rather
// than rejected; only malformed strings produce errors.
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"
	"regexp"
	"strconv"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

// hexPattern accepts exactly six hex digits with an optional leading '#'.
var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// ErrInvalidFormat matches any error returned for a malformed color string.
var ErrInvalidFormat = domainerrors.ErrInvalidColorFormat

// Luma weights applied to the R, G and B channels.
const (
	LumaR = 0.2989
	LumaG = 0.5870
	LumaB = 0.1140
)

// RGB is a color as three 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseHex parses "#rrggbb" or "rrggbb" (case-insensitive).
func ParseHex(s string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, domainerrors.InvalidColorFormatf("invalid hex color %q: expected 6 hex digits", s)
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, domainerrors.Wrapf(err, domainerrors.CodeInvalidColorFormat, "invalid hex color %q", s)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Use it only for literals known at compile time.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBToHex clamps each channel to [0,255], rounds it to the nearest integer
// and encodes the result as lowercase "#rrggbb".
func RGBToHex(r, g, b float64) string {
	return FromFloats(r, g, b).Hex()
}

// FromFloats builds an RGB from unbounded channel values using the same
// clamp-and-round rule as RGBToHex.
func FromFloats(r, g, b float64) RGB {
	return RGB{R: toByte(r), G: toByte(g), B: toByte(b)}
}

// FromColor converts any image/color value, dropping alpha.
func FromColor(c stdcolor.Color) RGB {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// Hex returns the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Floats returns the channels as float64 for arithmetic.
func (c RGB) Floats() (r, g, b float64) {
	return float64(c.R), float64(c.G), float64(c.B)
}

// Luma returns the perceptual gray level of the color on a 0-255 scale.
func (c RGB) Luma() float64 {
	return LumaR*float64(c.R) + LumaG*float64(c.G) + LumaB*float64(c.B)
}

// NRGBA returns the color as an opaque image/color value.
func (c RGB) NRGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// HSL converts the color to hue/saturation/lightness.
func (c RGB) HSL() HSL {
	return RGBToHSL(c)
}

// toByte clamps v to [0,255] and rounds half away from zero. NaN maps to 0.
func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}
