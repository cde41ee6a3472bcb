// Package gradient builds two-stop CSS gradients and the equivalent Tailwind
// class lists.
package gradient

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hueforge/hueforge/internal/color"
	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

// Kind is the gradient shape.
type Kind string

const (
	Linear Kind = "linear"
	Radial Kind = "radial"
)

// Defaults for a new gradient.
const (
	DefaultAngle = 90.0
	DefaultFrom  = "#E5DEFF"
	DefaultTo    = "#F6F6F7"
)

// Gradient is a two-stop gradient. Angle only applies to linear gradients.
type Gradient struct {
	Kind  Kind      `json:"kind"`
	Angle float64   `json:"angle"`
	From  color.RGB `json:"from"`
	To    color.RGB `json:"to"`
}

// Default returns the linear 90 degree lavender to off-white gradient.
func Default() Gradient {
	return Gradient{
		Kind:  Linear,
		Angle: DefaultAngle,
		From:  color.MustParseHex(DefaultFrom),
		To:    color.MustParseHex(DefaultTo),
	}
}

// ParseKind validates a kind name. The empty string selects linear.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case "", Linear:
		return Linear, nil
	case Radial:
		return Radial, nil
	}
	return "", domainerrors.Validationf("unknown gradient kind %q: expected linear or radial", s)
}

// New validates its inputs and builds a gradient. Angle must lie in [0,360].
func New(kind string, angle float64, from, to string) (Gradient, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Gradient{}, err
	}
	if math.IsNaN(angle) || angle < 0 || angle > 360 {
		return Gradient{}, domainerrors.Validationf("gradient angle %v out of range 0-360", angle)
	}
	f, err := color.ParseHex(from)
	if err != nil {
		return Gradient{}, fmt.Errorf("from: %w", err)
	}
	t, err := color.ParseHex(to)
	if err != nil {
		return Gradient{}, fmt.Errorf("to: %w", err)
	}
	return Gradient{Kind: k, Angle: angle, From: f, To: t}, nil
}

// CSS returns the CSS background value.
func (g Gradient) CSS() string {
	if g.Kind == Radial {
		return "radial-gradient(circle at center, " + g.From.Hex() + ", " + g.To.Hex() + ")"
	}
	return "linear-gradient(" + strconv.FormatFloat(g.Angle, 'f', -1, 64) + "deg, " + g.From.Hex() + ", " + g.To.Hex() + ")"
}

// TailwindClasses returns the class list that reproduces the gradient using
// arbitrary-value utilities.
func (g Gradient) TailwindClasses() string {
	if g.Kind == Radial {
		return "bg-[radial-gradient(circle_at_center,_" + g.From.Hex() + ",_" + g.To.Hex() + ")]"
	}
	return DirectionClass(g.Angle) + " from-[" + g.From.Hex() + "] to-[" + g.To.Hex() + "]"
}

// directions lists the eight Tailwind directions clockwise from 0 degrees,
// each owning a 45 degree sector centered on its angle.
var directions = [8]string{
	"bg-gradient-to-r",
	"bg-gradient-to-br",
	"bg-gradient-to-b",
	"bg-gradient-to-bl",
	"bg-gradient-to-l",
	"bg-gradient-to-tl",
	"bg-gradient-to-t",
	"bg-gradient-to-tr",
}

// DirectionClass maps an angle to the closest bg-gradient-to-* class.
// Angles outside [0,360) are wrapped first.
func DirectionClass(angle float64) string {
	a := color.NormalizeHue(angle)
	if a >= 337.5 {
		return directions[0]
	}
	return directions[int((a+22.5)/45)]
}
