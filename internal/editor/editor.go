// Package editor holds the state of the interactive color editor and the
// pure transitions between states.
package editor

import (
	"github.com/hueforge/hueforge/internal/color"
	"github.com/hueforge/hueforge/internal/picker"
	"github.com/hueforge/hueforge/internal/shade"
	"github.com/hueforge/hueforge/internal/tone"
)

// Initial editor values.
const (
	InitialHue = 270.0
	InitialX   = 50.0
	InitialY   = 50.0
)

// State is a snapshot of the editor. Transitions never modify a State in
// place; Reduce returns a new one.
type State struct {
	Hue       float64       `json:"hue"`
	Selection picker.Point  `json:"selection"`
	Tone      tone.Adjuster `json:"tone"`
}

// New returns the initial editor state, with the tone adjuster seeded from
// the initially selected color.
func New() State {
	s := State{
		Hue:       InitialHue,
		Selection: picker.Point{X: InitialX, Y: InitialY},
	}
	s.Tone = tone.NewAdjuster(s.CurrentRGB())
	return s
}

// CurrentRGB is the color under the plane selection at the current hue.
// The selection is used as-is; HSL conversion clamps it.
func (s State) CurrentRGB() color.RGB {
	return color.HSLToRGB(s.Hue, s.Selection.Saturation(), s.Selection.Lightness())
}

// Current is CurrentRGB as hex.
func (s State) Current() string {
	return s.CurrentRGB().Hex()
}

// CurrentCSS is the hsl() expression for the current color.
func (s State) CurrentCSS() string {
	return color.HSL{H: s.Hue, S: s.Selection.Saturation(), L: s.Selection.Lightness()}.CSS()
}

// Markers positions the hue markers for the current hue.
func (s State) Markers() []picker.Marker {
	return picker.Markers(s.Hue, picker.DefaultOffsets())
}

// Ramp is the sweep ramp anchored at the selection's saturation.
func (s State) Ramp() shade.Ramp {
	return shade.Sweep{Hue: s.Hue, Saturation: s.Selection.Saturation()}.Generate(shade.SweepLevels())
}

// Adjusted is the tone adjuster result for the selected color.
func (s State) Adjusted() string {
	return s.Tone.Result().Hex()
}

// Action is a state transition.
type Action interface {
	apply(State) State
}

// Reduce applies a to s and returns the new state. A nil action returns s.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// SetHue sets the hue from the slider. The value is wrapped into [0,360).
type SetHue struct {
	Hue float64
}

func (a SetHue) apply(s State) State {
	s.Hue = color.NormalizeHue(a.Hue)
	return s
}

// PickWheel sets the hue from a click on the wheel.
type PickWheel struct {
	Wheel picker.Wheel
	X, Y  float64
}

func (a PickWheel) apply(s State) State {
	s.Hue = a.Wheel.HueAt(a.X, a.Y)
	return s
}

// PickPlane moves the selection to a click on the plane. Clicks outside the
// plane are kept unclamped.
type PickPlane struct {
	Plane picker.Plane
	X, Y  float64
}

func (a PickPlane) apply(s State) State {
	s.Selection = a.Plane.At(a.X, a.Y)
	return s
}

// SelectColor opens the tone adjuster on Color with neutral settings.
type SelectColor struct {
	Color color.RGB
}

func (a SelectColor) apply(s State) State {
	s.Tone = tone.NewAdjuster(a.Color)
	return s
}

// SetTone changes one tone adjuster parameter.
type SetTone struct {
	Parameter tone.Parameter
	Value     float64
}

func (a SetTone) apply(s State) State {
	s.Tone = s.Tone.WithParameter(a.Parameter, a.Value)
	return s
}

// ResetTone restores neutral tone settings.
type ResetTone struct{}

func (ResetTone) apply(s State) State {
	s.Tone = s.Tone.Reset()
	return s
}
