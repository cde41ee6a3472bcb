// Package picker maps pointer positions on the hue wheel and the
// saturation/lightness plane to color parameters and back.
//
// Mappers extrapolate outside their widget instead of clamping. Callers that
// need the strict [0,100] domain use Point.Clamp.
package picker

import (
	"math"

	"github.com/hueforge/hueforge/internal/color"
)

// Marker geometry in percent of the widget box.
const (
	MarkerRadius  = 35.0
	MarkerCenterX = 50.0
	MarkerCenterY = 50.0
)

// DefaultOffsets places three markers 30 degrees apart around the hue.
func DefaultOffsets() []float64 {
	return []float64{-30, 0, 30}
}

// Wheel is a circular widget of the given pixel size. Its center is the
// middle of the box.
type Wheel struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// HueAt returns the hue in [0,360) under a pointer at (x, y), relative to the
// top-left corner of the box. Angles grow clockwise because y points down.
func (w Wheel) HueAt(x, y float64) float64 {
	return angleDeg(x-w.Width/2, y-w.Height/2)
}

// Marker is a hue swatch positioned on the wheel in percent coordinates.
type Marker struct {
	Point
	Offset float64 `json:"offset"`
	Hue    float64 `json:"hue"`
	// CSS is the fully saturated mid-lightness swatch for the marker hue.
	CSS string `json:"css"`
	Hex string `json:"hex"`
}

// Markers positions one marker per offset around hue.
func Markers(hue float64, offsets []float64) []Marker {
	out := make([]Marker, 0, len(offsets))
	for _, off := range offsets {
		deg := math.Mod(hue+off+360, 360)
		if deg < 0 {
			deg += 360
		}
		rad := deg * math.Pi / 180
		swatch := color.HSL{H: hue + off, S: 100, L: 50}
		out = append(out, Marker{
			Point: Point{
				X: MarkerCenterX + MarkerRadius*math.Cos(rad),
				Y: MarkerCenterY + MarkerRadius*math.Sin(rad),
			},
			Offset: off,
			Hue:    deg,
			CSS:    swatch.CSS(),
			Hex:    swatch.Hex(),
		})
	}
	return out
}

// HueOf recovers the hue angle of a marker point, ignoring its offset.
func HueOf(p Point) float64 {
	return angleDeg(p.X-MarkerCenterX, p.Y-MarkerCenterY)
}

func angleDeg(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}
