package picker

import "math"

// Point is a position in percent of a widget box. X and Y usually fall in
// [0,100] but are not limited to it.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Saturation is the horizontal position.
func (p Point) Saturation() float64 { return p.X }

// Lightness is the vertical position inverted, so the top edge is 100.
func (p Point) Lightness() float64 { return 100 - p.Y }

// Clamp limits both coordinates to [0,100].
func (p Point) Clamp() Point {
	return Point{X: clamp100(p.X), Y: clamp100(p.Y)}
}

// InBounds reports whether the point lies inside [0,100] on both axes.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}

// Plane is a rectangular saturation/lightness widget of the given pixel size.
type Plane struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// At converts a pointer position relative to the top-left corner into
// percent coordinates. A zero or negative dimension yields 0 on that axis.
func (pl Plane) At(x, y float64) Point {
	return Point{X: percent(x, pl.Width), Y: percent(y, pl.Height)}
}

func percent(v, size float64) float64 {
	if size <= 0 || math.IsNaN(size) {
		return 0
	}
	return v / size * 100
}

func clamp100(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
