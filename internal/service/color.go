package service

import (
	"context"
	"log/slog"

	"github.com/hueforge/hueforge/internal/color"
	domainerrors "github.com/hueforge/hueforge/internal/errors"
	"github.com/hueforge/hueforge/internal/picker"
	"github.com/hueforge/hueforge/internal/shade"
	"github.com/hueforge/hueforge/internal/tone"
	"github.com/hueforge/hueforge/internal/validation"
)

// ColorService exposes the color math: conversion, tone adjustment, shade
// ramps and the two pointer mappers. It holds no state.
type ColorService struct {
	logger    *slog.Logger
	validator *validation.Validator
}

// NewColorService creates a new color service.
func NewColorService(logger *slog.Logger) *ColorService {
	return &ColorService{
		logger:    logger,
		validator: validation.New(),
	}
}

// ColorInfo is one color in all of its representations.
type ColorInfo struct {
	Hex string    `json:"hex"`
	RGB color.RGB `json:"rgb"`
	HSL color.HSL `json:"hsl"`
	CSS string    `json:"css"`
}

// NewColorInfo describes c.
func NewColorInfo(c color.RGB) ColorInfo {
	hsl := c.HSL()
	return ColorInfo{Hex: c.Hex(), RGB: c, HSL: hsl, CSS: hsl.CSS()}
}

// ConvertRequest names a color either as a string (hex or CSS keyword) or
// as HSL components.
type ConvertRequest struct {
	Color string     `json:"color,omitempty" validate:"required_without=HSL,omitempty,colorspec"`
	HSL   *color.HSL `json:"hsl,omitempty"`
}

// Convert returns every representation of the requested color. HSL input is
// normalized and clamped, so it never fails.
func (s *ColorService) Convert(_ context.Context, req ConvertRequest) (*ColorInfo, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var c color.RGB
	if req.Color != "" {
		parsed, err := color.Parse(req.Color)
		if err != nil {
			return nil, err
		}
		c = parsed
	} else {
		c = req.HSL.RGB()
	}

	info := NewColorInfo(c)
	return &info, nil
}

// AdjustRequest is a base color plus optional tone settings. Omitted
// settings stay neutral; out-of-range values are clamped.
type AdjustRequest struct {
	Color       string   `json:"color" validate:"required,colorspec"`
	Saturation  *float64 `json:"saturation,omitempty"`
	Brightness  *float64 `json:"brightness,omitempty"`
	Contrast    *float64 `json:"contrast,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// Params returns the tone settings, filling omitted values with neutral.
func (r AdjustRequest) Params() tone.Params {
	p := tone.Neutral()
	if r.Saturation != nil {
		p.Saturation = *r.Saturation
	}
	if r.Brightness != nil {
		p.Brightness = *r.Brightness
	}
	if r.Contrast != nil {
		p.Contrast = *r.Contrast
	}
	if r.Temperature != nil {
		p.Temperature = *r.Temperature
	}
	return p.Clamp()
}

// AdjustResult is the outcome of a tone adjustment.
type AdjustResult struct {
	Base   string      `json:"base"`
	Params tone.Params `json:"params"`
	Result ColorInfo   `json:"result"`
}

// Adjust applies tone settings to a color.
func (s *ColorService) Adjust(_ context.Context, req AdjustRequest) (*AdjustResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	base, err := color.Parse(req.Color)
	if err != nil {
		return nil, err
	}

	params := req.Params()
	return &AdjustResult{
		Base:   base.Hex(),
		Params: params,
		Result: NewColorInfo(tone.Adjust(base, params)),
	}, nil
}

// ShadesRequest asks for a ramp. Mode defaults to darken and Levels to the
// mode's standard levels.
type ShadesRequest struct {
	Color  string `json:"color" validate:"required,colorspec"`
	Mode   string `json:"mode,omitempty" validate:"omitempty,oneof=darken sweep"`
	Levels []int  `json:"levels,omitempty" validate:"max=50,dive,gte=0,lte=1000"`
}

// ShadesResult is a generated ramp.
type ShadesResult struct {
	Mode   shade.Mode `json:"mode"`
	Base   string     `json:"base"`
	Shades shade.Ramp `json:"shades"`
}

// Shades builds a shade ramp.
func (s *ColorService) Shades(_ context.Context, req ShadesRequest) (*ShadesResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	base, err := color.Parse(req.Color)
	if err != nil {
		return nil, err
	}
	mode, err := shade.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	strategy, err := shade.ByName(mode, base)
	if err != nil {
		return nil, err
	}

	levels := req.Levels
	if len(levels) == 0 {
		levels = shade.DefaultLevels(mode)
	}

	return &ShadesResult{
		Mode:   mode,
		Base:   base.Hex(),
		Shades: strategy.Generate(levels),
	}, nil
}

// WheelRequest locates a hue either from a pointer on a wheel of the given
// size or directly from Hue. Offsets default to -30, 0, 30.
type WheelRequest struct {
	Hue     *float64  `json:"hue,omitempty"`
	Width   float64   `json:"width,omitempty" validate:"required_without=Hue,omitempty,gt=0"`
	Height  float64   `json:"height,omitempty" validate:"required_without=Hue,omitempty,gt=0"`
	X       float64   `json:"x,omitempty"`
	Y       float64   `json:"y,omitempty"`
	Offsets []float64 `json:"offsets,omitempty" validate:"max=12"`
}

// WheelResult is the hue under the pointer and its markers.
type WheelResult struct {
	Hue     float64         `json:"hue"`
	Markers []picker.Marker `json:"markers"`
}

// Wheel maps a pointer on the hue wheel to a hue and positions markers.
func (s *ColorService) Wheel(_ context.Context, req WheelRequest) (*WheelResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var hue float64
	if req.Hue != nil {
		hue = color.NormalizeHue(*req.Hue)
	} else {
		hue = picker.Wheel{Width: req.Width, Height: req.Height}.HueAt(req.X, req.Y)
	}

	offsets := req.Offsets
	if len(offsets) == 0 {
		offsets = picker.DefaultOffsets()
	}

	return &WheelResult{Hue: hue, Markers: picker.Markers(hue, offsets)}, nil
}

// PlaneRequest is a pointer on the saturation/lightness plane at a hue.
type PlaneRequest struct {
	Hue    float64 `json:"hue"`
	Width  float64 `json:"width" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// PlaneResult is the selection under the pointer and the color it picks.
// Selection is reported unclamped; the color is computed from the clamped
// point.
type PlaneResult struct {
	Selection picker.Point `json:"selection"`
	InBounds  bool         `json:"in_bounds"`
	Color     ColorInfo    `json:"color"`
	Ramp      shade.Ramp   `json:"ramp"`
}

// Plane maps a pointer on the saturation/lightness plane to a color and the
// sweep ramp anchored at its saturation.
func (s *ColorService) Plane(_ context.Context, req PlaneRequest) (*PlaneResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	sel := picker.Plane{Width: req.Width, Height: req.Height}.At(req.X, req.Y)
	clamped := sel.Clamp()
	hue := color.NormalizeHue(req.Hue)
	c := color.HSLToRGB(hue, clamped.Saturation(), clamped.Lightness())

	info := NewColorInfo(c)
	// Keep the hue the caller chose; achromatic picks would otherwise report 0.
	info.HSL = color.HSL{H: hue, S: clamped.Saturation(), L: clamped.Lightness()}
	info.CSS = info.HSL.CSS()

	if !sel.InBounds() {
		s.logger.Debug("plane pick outside widget", "x", req.X, "y", req.Y)
	}

	return &PlaneResult{
		Selection: sel,
		InBounds:  sel.InBounds(),
		Color:     info,
		Ramp:      shade.Sweep{Hue: hue, Saturation: clamped.Saturation()}.Generate(shade.SweepLevels()),
	}, nil
}

// parseColorField parses a color string, reporting failures against field.
func parseColorField(field, value string) (color.RGB, error) {
	c, err := color.Parse(value)
	if err != nil {
		return color.RGB{}, domainerrors.Wrap(err, domainerrors.CodeInvalidColorFormat, "invalid color: "+field).
			WithDetails(map[string]string{field: "must be a hex color or CSS color name"})
	}
	return c, nil
}
