package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hueforge/hueforge/internal/editor"
	domainerrors "github.com/hueforge/hueforge/internal/errors"
	"github.com/hueforge/hueforge/internal/picker"
	"github.com/hueforge/hueforge/internal/shade"
	"github.com/hueforge/hueforge/internal/tone"
	"github.com/hueforge/hueforge/internal/validation"
)

// Editor action types accepted by Reduce.
const (
	ActionSetHue      = "set_hue"
	ActionPickWheel   = "pick_wheel"
	ActionPickPlane   = "pick_plane"
	ActionSelectColor = "select_color"
	ActionSetTone     = "set_tone"
	ActionResetTone   = "reset_tone"
)

// EditorService replays editor actions. The editor state lives with the
// caller; every request carries the state it starts from.
type EditorService struct {
	logger    *slog.Logger
	validator *validation.Validator
}

// NewEditorService creates a new editor service.
func NewEditorService(logger *slog.Logger) *EditorService {
	return &EditorService{
		logger:    logger,
		validator: validation.New(),
	}
}

// ActionInput is the wire form of one editor action. Which fields apply
// depends on Type.
type ActionInput struct {
	Type      string  `json:"type" validate:"required,oneof=set_hue pick_wheel pick_plane select_color set_tone reset_tone"`
	Hue       float64 `json:"hue,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	Width     float64 `json:"width,omitempty" validate:"gte=0"`
	Height    float64 `json:"height,omitempty" validate:"gte=0"`
	Color     string  `json:"color,omitempty"`
	Parameter string  `json:"parameter,omitempty"`
	Value     float64 `json:"value,omitempty"`
}

// ReduceRequest applies Actions in order, starting from State or from the
// initial editor state when State is nil.
type ReduceRequest struct {
	State   *editor.State `json:"state,omitempty"`
	Actions []ActionInput `json:"actions" validate:"max=100,dive"`
}

// EditorView is an editor state together with everything derived from it.
type EditorView struct {
	State    editor.State    `json:"state"`
	Current  string          `json:"current"`
	CSS      string          `json:"css"`
	Markers  []picker.Marker `json:"markers"`
	Ramp     shade.Ramp      `json:"ramp"`
	Adjusted string          `json:"adjusted"`
}

// NewEditorView derives the view for s.
func NewEditorView(s editor.State) EditorView {
	return EditorView{
		State:    s,
		Current:  s.Current(),
		CSS:      s.CurrentCSS(),
		Markers:  s.Markers(),
		Ramp:     s.Ramp(),
		Adjusted: s.Adjusted(),
	}
}

// Reduce decodes and applies every action. A malformed action rejects the
// whole request; nothing is partially applied.
func (s *EditorService) Reduce(_ context.Context, req ReduceRequest) (*EditorView, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	actions := make([]editor.Action, 0, len(req.Actions))
	for i, in := range req.Actions {
		a, err := DecodeAction(in)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}

	state := editor.New()
	if req.State != nil {
		state = *req.State
	}
	for _, a := range actions {
		state = editor.Reduce(state, a)
	}

	view := NewEditorView(state)
	return &view, nil
}

// DecodeAction converts the wire form into an editor action.
func DecodeAction(in ActionInput) (editor.Action, error) {
	switch in.Type {
	case ActionSetHue:
		return editor.SetHue{Hue: in.Hue}, nil
	case ActionPickWheel:
		if in.Width <= 0 || in.Height <= 0 {
			return nil, domainerrors.Validation("pick_wheel requires a positive width and height")
		}
		return editor.PickWheel{Wheel: picker.Wheel{Width: in.Width, Height: in.Height}, X: in.X, Y: in.Y}, nil
	case ActionPickPlane:
		if in.Width <= 0 || in.Height <= 0 {
			return nil, domainerrors.Validation("pick_plane requires a positive width and height")
		}
		return editor.PickPlane{Plane: picker.Plane{Width: in.Width, Height: in.Height}, X: in.X, Y: in.Y}, nil
	case ActionSelectColor:
		c, err := parseColorField("color", in.Color)
		if err != nil {
			return nil, err
		}
		return editor.SelectColor{Color: c}, nil
	case ActionSetTone:
		p, err := tone.ParseParameter(in.Parameter)
		if err != nil {
			return nil, err
		}
		return editor.SetTone{Parameter: p, Value: in.Value}, nil
	case ActionResetTone:
		return editor.ResetTone{}, nil
	}
	return nil, domainerrors.Validationf("unknown editor action %q", in.Type)
}
