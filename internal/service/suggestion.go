package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hueforge/hueforge/internal/color"
	domainerrors "github.com/hueforge/hueforge/internal/errors"
	"github.com/hueforge/hueforge/internal/id"
	"github.com/hueforge/hueforge/internal/shade"
	"github.com/hueforge/hueforge/internal/validation"
)

// Suggester returns a single "#rrggbb" color for a free-text prompt.
type Suggester interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}

// SuggestionService turns prompts into colors with a shade ramp.
type SuggestionService struct {
	client    Suggester
	logger    *slog.Logger
	validator *validation.Validator
}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService(client Suggester, logger *slog.Logger) *SuggestionService {
	return &SuggestionService{
		client:    client,
		logger:    logger,
		validator: validation.New(),
	}
}

// Configured reports whether the client has what it needs to reach the
// upstream API. Clients that cannot tell are assumed ready.
func (s *SuggestionService) Configured() bool {
	if c, ok := s.client.(interface{ Configured() bool }); ok {
		return c.Configured()
	}
	return true
}

// SuggestRequest is a theme or mood description.
type SuggestRequest struct {
	Prompt string `json:"prompt" validate:"max=500"`
}

// Suggestion is a resolved color suggestion.
type Suggestion struct {
	ID     string     `json:"id"`
	Prompt string     `json:"prompt"`
	Hex    string     `json:"hex"`
	Shades shade.Ramp `json:"shades"`
}

// Suggest asks the client for a color and expands it into a darken ramp.
// Each call is independent; concurrent calls are neither merged nor
// cancelled by one another.
func (s *SuggestionService) Suggest(ctx context.Context, req SuggestRequest) (*Suggestion, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, domainerrors.Validation("Please enter a description")
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	hex, err := s.client.Suggest(ctx, prompt)
	if err != nil {
		s.logger.Warn("color suggestion failed", "error", err)
		return nil, err
	}

	base, err := color.ParseHex(hex)
	if err != nil {
		return nil, domainerrors.UnexpectedResponsef("suggested color %q is not a hex color", hex)
	}

	sugID, err := id.Generate(id.PrefixSuggestion)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate suggestion id")
	}

	s.logger.Info("color suggestion resolved", "id", sugID, "hex", base.Hex())

	return &Suggestion{
		ID:     sugID,
		Prompt: prompt,
		Hex:    base.Hex(),
		Shades: shade.Darken{Base: base}.Generate(shade.DarkenLevels()),
	}, nil
}
