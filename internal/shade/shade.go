// Package shade builds ordered shade ramps from a base color.
//
// Two strategies exist side by side and are not interchangeable: Darken
// scales a base color toward black, Sweep walks saturation up and lightness
// down at a fixed hue. Both return one entry per requested level, in the
// order requested.
package shade

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hueforge/hueforge/internal/color"
	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

// Mode identifies a ramp strategy.
type Mode string

const (
	ModeDarken Mode = "darken"
	ModeSweep  Mode = "sweep"
)

// Shade is one labeled entry of a ramp.
type Shade struct {
	Level int    `json:"level"`
	Hex   string `json:"hex"`
	// CSS is the hsl() expression the sweep was computed from. Empty for
	// darken ramps.
	CSS string `json:"css,omitempty"`
}

// Ramp is an ordered list of shades. Ramps are rebuilt, never edited.
type Ramp []Shade

// Hexes returns the hex codes in ramp order.
func (r Ramp) Hexes() []string {
	out := make([]string, len(r))
	for i, s := range r {
		out[i] = s.Hex
	}
	return out
}

// Strategy generates a ramp for a list of levels.
type Strategy interface {
	Name() string
	Generate(levels []int) Ramp
}

// DarkenLevels returns 100, 200, ..., 900.
func DarkenLevels() []int {
	return []int{100, 200, 300, 400, 500, 600, 700, 800, 900}
}

// SweepLevels returns 50, 100, 200, ..., 900.
func SweepLevels() []int {
	return []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}
}

// DefaultLevels returns the level list a mode uses when none is given.
func DefaultLevels(m Mode) []int {
	if m == ModeSweep {
		return SweepLevels()
	}
	return DarkenLevels()
}

// ParseMode validates a mode name. The empty string selects darken.
func ParseMode(name string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case "", ModeDarken:
		return ModeDarken, nil
	case ModeSweep:
		return ModeSweep, nil
	}
	return "", domainerrors.Validationf("unknown shade mode %q: expected darken or sweep", name)
}

// ByName returns the strategy for mode seeded from base. Sweep anchors on
// the hue and saturation of base.
func ByName(mode Mode, base color.RGB) (Strategy, error) {
	switch mode {
	case ModeDarken:
		return Darken{Base: base}, nil
	case ModeSweep:
		hsl := base.HSL()
		return Sweep{Hue: hsl.H, Saturation: hsl.S}, nil
	}
	return nil, domainerrors.Validationf("unknown shade mode %q", mode)
}

// ParseLevels parses a comma separated level list such as "100,200,300".
func ParseLevels(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	levels := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, domainerrors.Validationf("invalid shade level %q", p)
		}
		if v < 0 || v > 1000 {
			return nil, domainerrors.Validationf("shade level %d out of range 0-1000", v)
		}
		levels = append(levels, v)
	}
	return levels, nil
}

// Darken scales every channel of Base by (1 - level/maxLevel), where
// maxLevel is the largest level in the request.
type Darken struct {
	Base color.RGB
}

func (Darken) Name() string { return string(ModeDarken) }

func (d Darken) Generate(levels []int) Ramp {
	maxLevel := 0
	if len(levels) > 0 {
		maxLevel = slices.Max(levels)
	}

	r, g, b := d.Base.Floats()
	ramp := make(Ramp, 0, len(levels))
	for _, level := range levels {
		factor := 0.0
		if maxLevel > 0 {
			factor = float64(level) / float64(maxLevel)
		}
		ramp = append(ramp, Shade{
			Level: level,
			Hex:   color.RGBToHex(r*(1-factor), g*(1-factor), b*(1-factor)),
		})
	}
	return ramp
}

// Sweep holds Hue fixed and, per level, raises saturation from the anchor
// and lowers lightness from 100 by level/10 percentage points.
type Sweep struct {
	Hue        float64
	Saturation float64
}

func (Sweep) Name() string { return string(ModeSweep) }

func (s Sweep) Generate(levels []int) Ramp {
	ramp := make(Ramp, 0, len(levels))
	for _, level := range levels {
		step := float64(level) / 10
		hsl := color.HSL{
			H: s.Hue,
			S: min(100, s.Saturation+step),
			L: max(0, 100-step),
		}
		ramp = append(ramp, Shade{
			Level: level,
			Hex:   hsl.Hex(),
			CSS:   hsl.CSS(),
		})
	}
	return ramp
}
