package tone

import "github.com/hueforge/hueforge/internal/color"

// Adjuster is a base color together with tone settings. It is a value type;
// every setter returns a new Adjuster.
type Adjuster struct {
	Base   color.RGB `json:"base"`
	Params Params    `json:"params"`
}

// NewAdjuster returns an Adjuster for base with neutral settings.
func NewAdjuster(base color.RGB) Adjuster {
	return Adjuster{Base: base, Params: Neutral()}
}

func (s Adjuster) WithBase(base color.RGB) Adjuster {
	s.Base = base
	return s
}

func (s Adjuster) WithSaturation(v float64) Adjuster {
	s.Params = s.Params.With(Saturation, v)
	return s
}

func (s Adjuster) WithBrightness(v float64) Adjuster {
	s.Params = s.Params.With(Brightness, v)
	return s
}

func (s Adjuster) WithContrast(v float64) Adjuster {
	s.Params = s.Params.With(Contrast, v)
	return s
}

func (s Adjuster) WithTemperature(v float64) Adjuster {
	s.Params = s.Params.With(Temperature, v)
	return s
}

// WithParameter sets one parameter by name.
func (s Adjuster) WithParameter(p Parameter, v float64) Adjuster {
	s.Params = s.Params.With(p, v)
	return s
}

// Reset restores neutral settings and keeps the base color.
func (s Adjuster) Reset() Adjuster {
	s.Params = Neutral()
	return s
}

// Result is the adjusted color.
func (s Adjuster) Result() color.RGB {
	return Adjust(s.Base, s.Params)
}
