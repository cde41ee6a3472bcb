package service

import (
	"context"
	"log/slog"

	"github.com/hueforge/hueforge/internal/gradient"
	"github.com/hueforge/hueforge/internal/validation"
)

// GradientService builds CSS gradients.
type GradientService struct {
	logger    *slog.Logger
	validator *validation.Validator
}

// NewGradientService creates a new gradient service.
func NewGradientService(logger *slog.Logger) *GradientService {
	return &GradientService{
		logger:    logger,
		validator: validation.New(),
	}
}

// GradientRequest describes a two-stop gradient. Every field is optional;
// omitted fields take the gradient tool's defaults.
type GradientRequest struct {
	Kind  string   `json:"kind,omitempty" validate:"omitempty,oneof=linear radial"`
	Angle *float64 `json:"angle,omitempty" validate:"omitempty,gte=0,lte=360"`
	From  string   `json:"from,omitempty" validate:"omitempty,hex6"`
	To    string   `json:"to,omitempty" validate:"omitempty,hex6"`
}

// GradientResult is a gradient with the strings a UI copies.
type GradientResult struct {
	Kind      gradient.Kind `json:"kind"`
	Angle     float64       `json:"angle"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	CSS       string        `json:"css"`
	Tailwind  string        `json:"tailwind"`
	Direction string        `json:"direction,omitempty"`
}

// Build validates the request and renders the gradient.
func (s *GradientService) Build(_ context.Context, req GradientRequest) (*GradientResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	def := gradient.Default()
	angle := def.Angle
	if req.Angle != nil {
		angle = *req.Angle
	}
	from, to := def.From.Hex(), def.To.Hex()
	if req.From != "" {
		from = req.From
	}
	if req.To != "" {
		to = req.To
	}

	g, err := gradient.New(req.Kind, angle, from, to)
	if err != nil {
		return nil, err
	}

	res := &GradientResult{
		Kind:     g.Kind,
		Angle:    g.Angle,
		From:     g.From.Hex(),
		To:       g.To.Hex(),
		CSS:      g.CSS(),
		Tailwind: g.TailwindClasses(),
	}
	if g.Kind == gradient.Linear {
		res.Direction = gradient.DirectionClass(g.Angle)
	}
	return res, nil
}
