// Package tone adjusts a color's saturation, brightness, contrast and
// temperature.
package tone

import (
	"math"

	"github.com/hueforge/hueforge/internal/color"
	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

// Parameter names one of the four adjuster controls.
type Parameter string

// Adjuster controls.
const (
	Saturation  Parameter = "saturation"
	Brightness  Parameter = "brightness"
	Contrast    Parameter = "contrast"
	Temperature Parameter = "temperature"
)

// Range is the inclusive valid interval for a parameter.
type Range struct {
	Min, Max, Neutral float64
}

var ranges = map[Parameter]Range{
	Saturation:  {Min: 0, Max: 200, Neutral: 100},
	Brightness:  {Min: 0, Max: 200, Neutral: 100},
	Contrast:    {Min: -100, Max: 100, Neutral: 0},
	Temperature: {Min: -100, Max: 100, Neutral: 0},
}

// RangeOf returns the valid interval for p.
func RangeOf(p Parameter) (Range, bool) {
	r, ok := ranges[p]
	return r, ok
}

// ParseParameter validates a parameter name.
func ParseParameter(name string) (Parameter, error) {
	p := Parameter(name)
	if _, ok := ranges[p]; !ok {
		return "", domainerrors.Validationf("unknown tone parameter %q", name)
	}
	return p, nil
}

func (r Range) clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Neutral
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Params holds the four adjuster settings. Saturation and brightness are
// percentages where 100 leaves the color unchanged; contrast and temperature
// are signed with 0 as neutral.
type Params struct {
	Saturation  float64 `json:"saturation"`
	Brightness  float64 `json:"brightness"`
	Contrast    float64 `json:"contrast"`
	Temperature float64 `json:"temperature"`
}

// Neutral returns settings that leave a color unchanged.
func Neutral() Params {
	return Params{Saturation: 100, Brightness: 100}
}

// Clamp limits every setting to its valid range.
func (p Params) Clamp() Params {
	return Params{
		Saturation:  ranges[Saturation].clamp(p.Saturation),
		Brightness:  ranges[Brightness].clamp(p.Brightness),
		Contrast:    ranges[Contrast].clamp(p.Contrast),
		Temperature: ranges[Temperature].clamp(p.Temperature),
	}
}

// Get returns the value of one parameter.
func (p Params) Get(param Parameter) float64 {
	switch param {
	case Saturation:
		return p.Saturation
	case Brightness:
		return p.Brightness
	case Contrast:
		return p.Contrast
	case Temperature:
		return p.Temperature
	}
	return 0
}

// With returns a copy with one parameter replaced. The value is clamped.
func (p Params) With(param Parameter, v float64) Params {
	switch param {
	case Saturation:
		p.Saturation = v
	case Brightness:
		p.Brightness = v
	case Contrast:
		p.Contrast = v
	case Temperature:
		p.Temperature = v
	}
	return p.Clamp()
}

// Adjust applies p to base. Steps run in a fixed order: saturation,
// brightness, contrast, temperature. Intermediate values are not clamped;
// only the final channels are clamped and rounded.
func Adjust(base color.RGB, p Params) color.RGB {
	p = p.Clamp()
	r, g, b := base.Floats()

	sat := p.Saturation / 100
	gray := base.Luma()
	r = r*sat + gray*(1-sat)
	g = g*sat + gray*(1-sat)
	b = b*sat + gray*(1-sat)

	bright := p.Brightness / 100
	r *= bright
	g *= bright
	b *= bright

	c := (p.Contrast + 100) / 100
	f := (259 * (c + 255)) / (255 * (259 - c))
	r = f*(r-128) + 128
	g = f*(g-128) + 128
	b = f*(b-128) + 128

	t := p.Temperature / 100
	if t > 0 {
		r += (255 - r) * t
		b -= b * t
	} else {
		r -= r * math.Abs(t)
		b += (255 - b) * math.Abs(t)
	}

	return color.FromFloats(r, g, b)
}

// AdjustHex parses hex and applies p.
func AdjustHex(hex string, p Params) (string, error) {
	base, err := color.ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Adjust(base, p).Hex(), nil
}
