package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hueforge/hueforge/internal/service"
)

func (s *Server) registerSuggestionRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "suggestColor",
		Method:      http.MethodPost,
		Path:        suggestionsPath,
		Summary:     "Suggest color",
		Description: "Asks the generative-text API for a color matching a theme or mood and returns it with a shade ramp",
		Tags:        []string{"Suggestions"},
	}, s.handleSuggestColor)
}

type SuggestColorInput struct {
	Body service.SuggestRequest
}

type SuggestColorOutput struct {
	Body *service.Suggestion
}

func (s *Server) handleSuggestColor(ctx context.Context, input *SuggestColorInput) (*SuggestColorOutput, error) {
	sug, err := s.services.Suggestion.Suggest(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &SuggestColorOutput{Body: sug}, nil
}
