package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/hueforge/hueforge/internal/service"
)

func (s *Server) registerColorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "convertColor",
		Method:      http.MethodPost,
		Path:        "/api/v1/colors/convert",
		Summary:     "Convert color",
		Description: "Returns a color as hex, RGB, HSL and a CSS hsl() expression",
		Tags:        []string{"Colors"},
	}, s.handleConvertColor)

	huma.Register(s.api, huma.Operation{
		OperationID: "adjustColor",
		Method:      http.MethodPost,
		Path:        "/api/v1/colors/adjust",
		Summary:     "Adjust tone",
		Description: "Applies saturation, brightness, contrast and temperature to a color",
		Tags:        []string{"Colors"},
	}, s.handleAdjustColor)

	huma.Register(s.api, huma.Operation{
		OperationID: "colorShades",
		Method:      http.MethodPost,
		Path:        "/api/v1/colors/shades",
		Summary:     "Shade ramp",
		Description: "Builds a darken or sweep shade ramp from a color",
		Tags:        []string{"Colors"},
	}, s.handleColorShades)

	huma.Register(s.api, huma.Operation{
		OperationID: "pickWheel",
		Method:      http.MethodPost,
		Path:        "/api/v1/picker/wheel",
		Summary:     "Hue wheel",
		Description: "Maps a pointer on the hue wheel to a hue and positions the hue markers",
		Tags:        []string{"Picker"},
	}, s.handlePickWheel)

	huma.Register(s.api, huma.Operation{
		OperationID: "pickPlane",
		Method:      http.MethodPost,
		Path:        "/api/v1/picker/plane",
		Summary:     "Saturation/lightness plane",
		Description: "Maps a pointer on the saturation/lightness plane to a color and its shade sweep",
		Tags:        []string{"Picker"},
	}, s.handlePickPlane)
}

func (s *Server) registerEditorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "reduceEditor",
		Method:      http.MethodPost,
		Path:        "/api/v1/editor/reduce",
		Summary:     "Apply editor actions",
		Description: "Applies actions in order to an editor state and returns the new state with derived values",
		Tags:        []string{"Editor"},
	}, s.handleReduceEditor)
}

// === DTOs ===

type ConvertColorInput struct {
	Body service.ConvertRequest
}

type ConvertColorOutput struct {
	Body *service.ColorInfo
}

type AdjustColorInput struct {
	Body service.AdjustRequest
}

type AdjustColorOutput struct {
	Body *service.AdjustResult
}

type ColorShadesInput struct {
	Body service.ShadesRequest
}

type ColorShadesOutput struct {
	Body *service.ShadesResult
}

type PickWheelInput struct {
	Body service.WheelRequest
}

type PickWheelOutput struct {
	Body *service.WheelResult
}

type PickPlaneInput struct {
	Body service.PlaneRequest
}

type PickPlaneOutput struct {
	Body *service.PlaneResult
}

type ReduceEditorInput struct {
	Body service.ReduceRequest
}

type ReduceEditorOutput struct {
	Body *service.EditorView
}

// === Handlers ===

func (s *Server) handleConvertColor(ctx context.Context, input *ConvertColorInput) (*ConvertColorOutput, error) {
	info, err := s.services.Color.Convert(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &ConvertColorOutput{Body: info}, nil
}

func (s *Server) handleAdjustColor(ctx context.Context, input *AdjustColorInput) (*AdjustColorOutput, error) {
	res, err := s.services.Color.Adjust(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &AdjustColorOutput{Body: res}, nil
}

func (s *Server) handleColorShades(ctx context.Context, input *ColorShadesInput) (*ColorShadesOutput, error) {
	res, err := s.services.Color.Shades(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &ColorShadesOutput{Body: res}, nil
}

func (s *Server) handlePickWheel(ctx context.Context, input *PickWheelInput) (*PickWheelOutput, error) {
	res, err := s.services.Color.Wheel(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &PickWheelOutput{Body: res}, nil
}

func (s *Server) handlePickPlane(ctx context.Context, input *PickPlaneInput) (*PickPlaneOutput, error) {
	res, err := s.services.Color.Plane(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &PickPlaneOutput{Body: res}, nil
}

func (s *Server) handleReduceEditor(ctx context.Context, input *ReduceEditorInput) (*ReduceEditorOutput, error) {
	view, err := s.services.Editor.Reduce(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &ReduceEditorOutput{Body: view}, nil
}
