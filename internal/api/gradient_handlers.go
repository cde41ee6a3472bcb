package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hueforge/hueforge/internal/service"
)

func (s *Server) registerGradientRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "buildGradient",
		Method:      http.MethodPost,
		Path:        "/api/v1/gradients",
		Summary:     "Build gradient",
		Description: "Returns the CSS and Tailwind expressions for a two-stop gradient",
		Tags:        []string{"Gradients"},
	}, s.handleBuildGradient)
}

type BuildGradientInput struct {
	Body service.GradientRequest
}

type BuildGradientOutput struct {
	Body *service.GradientResult
}

func (s *Server) handleBuildGradient(ctx context.Context, input *BuildGradientInput) (*BuildGradientOutput, error) {
	res, err := s.services.Gradient.Build(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &BuildGradientOutput{Body: res}, nil
}
