package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueforge/hueforge/internal/color"
	domainerrors "github.com/hueforge/hueforge/internal/errors"
	"github.com/hueforge/hueforge/internal/logger"
	"github.com/hueforge/hueforge/internal/palette"
)

func ptr(v float64) *float64 { return &v }

// fakeSuggester returns a fixed reply.
type fakeSuggester struct {
	hex     string
	err     error
	prompts []string
}

func (f *fakeSuggester) Suggest(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.hex, f.err
}

// setupTestServices builds every service over the builtin catalog.
func setupTestServices(t *testing.T, suggester Suggester) *Services {
	t.Helper()

	store, err := palette.NewStore("", nil)
	require.NoError(t, err)
	index, err := palette.NewIndex(store.Catalog(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	if suggester == nil {
		suggester = &fakeSuggester{hex: "#000000"}
	}
	return New(store, index, suggester, logger.Discard().Logger)
}

func TestColorService_Convert(t *testing.T) {
	svc := setupTestServices(t, nil).Color
	ctx := context.Background()

	info, err := svc.Convert(ctx, ConvertRequest{Color: "Purple"})
	require.NoError(t, err)
	assert.Equal(t, "#800080", info.Hex)
	assert.Equal(t, color.RGB{R: 128, G: 0, B: 128}, info.RGB)

	info, err = svc.Convert(ctx, ConvertRequest{HSL: &color.HSL{H: 270, S: 50, L: 50}})
	require.NoError(t, err)
	assert.Equal(t, "#8040bf", info.Hex)

	_, err = svc.Convert(ctx, ConvertRequest{})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = svc.Convert(ctx, ConvertRequest{Color: "#12345"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidColorFormat)
	assert.NotErrorIs(t, err, domainerrors.ErrValidation)
}

func TestColorService_Adjust(t *testing.T) {
	svc := setupTestServices(t, nil).Color
	ctx := context.Background()

	res, err := svc.Adjust(ctx, AdjustRequest{Color: "gray"})
	require.NoError(t, err)
	assert.Equal(t, "#808080", res.Base)
	assert.Equal(t, "#808080", res.Result.Hex, "neutral settings keep the color")

	res, err = svc.Adjust(ctx, AdjustRequest{Color: "#ff0000", Saturation: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, "#4c4c4c", res.Result.Hex)
	assert.Equal(t, 0.0, res.Params.Saturation)
	assert.Equal(t, 100.0, res.Params.Brightness)

	res, err = svc.Adjust(ctx, AdjustRequest{Color: "#ff0000", Saturation: ptr(-50)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Params.Saturation, "out of range values are clamped")
}

func TestColorService_Shades(t *testing.T) {
	svc := setupTestServices(t, nil).Color
	ctx := context.Background()

	res, err := svc.Shades(ctx, ShadesRequest{Color: "#ff8800"})
	require.NoError(t, err)
	require.Len(t, res.Shades, 9)
	assert.Equal(t, "darken", string(res.Mode))
	assert.Equal(t, 100, res.Shades[0].Level)
	assert.Equal(t, "#e37900", res.Shades[0].Hex)
	assert.Equal(t, "#000000", res.Shades[8].Hex)

	res, err = svc.Shades(ctx, ShadesRequest{Color: "#8040bf", Mode: "sweep", Levels: []int{900, 50}})
	require.NoError(t, err)
	require.Len(t, res.Shades, 2)
	assert.Equal(t, 900, res.Shades[0].Level)
	assert.Equal(t, 50, res.Shades[1].Level)
	assert.NotEmpty(t, res.Shades[1].CSS)

	_, err = svc.Shades(ctx, ShadesRequest{Color: "#8040bf", Mode: "lighten"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = svc.Shades(ctx, ShadesRequest{Color: "#8040bf", Levels: []int{2000}})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestColorService_Wheel(t *testing.T) {
	svc := setupTestServices(t, nil).Color
	ctx := context.Background()

	res, err := svc.Wheel(ctx, WheelRequest{Hue: ptr(450)})
	require.NoError(t, err)
	assert.Equal(t, 90.0, res.Hue)
	require.Len(t, res.Markers, 3)
	assert.InDelta(t, 60, res.Markers[0].Hue, 1e-9)
	assert.InDelta(t, 120, res.Markers[2].Hue, 1e-9)

	res, err = svc.Wheel(ctx, WheelRequest{Width: 100, Height: 100, X: 50, Y: 100})
	require.NoError(t, err)
	assert.InDelta(t, 90, res.Hue, 1e-9, "straight below the center")

	_, err = svc.Wheel(ctx, WheelRequest{X: 1, Y: 1})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestColorService_Plane(t *testing.T) {
	svc := setupTestServices(t, nil).Color
	ctx := context.Background()

	res, err := svc.Plane(ctx, PlaneRequest{Hue: 270, Width: 200, Height: 200, X: 200, Y: 100})
	require.NoError(t, err)
	assert.True(t, res.InBounds)
	assert.Equal(t, "#8000ff", res.Color.Hex)
	assert.Equal(t, "hsl(270, 100%, 50%)", res.Color.CSS)
	require.Len(t, res.Ramp, 10)
	assert.Equal(t, "hsl(270, 100%, 95%)", res.Ramp[0].CSS)

	out, err := svc.Plane(ctx, PlaneRequest{Hue: 270, Width: 200, Height: 200, X: 300, Y: 100})
	require.NoError(t, err)
	assert.False(t, out.InBounds)
	assert.Equal(t, 150.0, out.Selection.X, "selection is reported unclamped")
	assert.Equal(t, res.Color.Hex, out.Color.Hex)
}

func TestEditorService_Reduce(t *testing.T) {
	svc := setupTestServices(t, nil).Editor
	ctx := context.Background()

	view, err := svc.Reduce(ctx, ReduceRequest{})
	require.NoError(t, err)
	assert.Equal(t, 270.0, view.State.Hue)
	assert.Equal(t, "#8040bf", view.Current)
	assert.Equal(t, view.Current, view.State.Tone.Base.Hex())

	view, err = svc.Reduce(ctx, ReduceRequest{Actions: []ActionInput{
		{Type: ActionPickPlane, Width: 200, Height: 200, X: 200, Y: 100},
		{Type: ActionSelectColor, Color: "#808080"},
		{Type: ActionSetTone, Parameter: "temperature", Value: 100},
	}})
	require.NoError(t, err)
	assert.Equal(t, "#8000ff", view.Current)
	assert.Equal(t, "#ff8000", view.Adjusted)
	require.Len(t, view.Markers, 3)

	next, err := svc.Reduce(ctx, ReduceRequest{
		State:   &view.State,
		Actions: []ActionInput{{Type: ActionResetTone}, {Type: ActionSetHue, Hue: -90}},
	})
	require.NoError(t, err)
	assert.Equal(t, "#808080", next.Adjusted)
	assert.Equal(t, 270.0, next.State.Hue)
	assert.Equal(t, "#ff8000", view.Adjusted, "earlier view is untouched")
}

func TestEditorService_ReduceRejectsBadActions(t *testing.T) {
	svc := setupTestServices(t, nil).Editor
	ctx := context.Background()

	tests := []struct {
		name    string
		action  ActionInput
		wantErr error
	}{
		{"unknown type", ActionInput{Type: "explode"}, domainerrors.ErrValidation},
		{"wheel without size", ActionInput{Type: ActionPickWheel, X: 1, Y: 1}, domainerrors.ErrValidation},
		{"bad color", ActionInput{Type: ActionSelectColor, Color: "nope"}, domainerrors.ErrInvalidColorFormat},
		{"bad parameter", ActionInput{Type: ActionSetTone, Parameter: "hue"}, domainerrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Reduce(ctx, ReduceRequest{Actions: []ActionInput{tt.action}})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGradientService_Build(t *testing.T) {
	svc := setupTestServices(t, nil).Gradient
	ctx := context.Background()

	res, err := svc.Build(ctx, GradientRequest{})
	require.NoError(t, err)
	assert.Equal(t, "linear-gradient(90deg, #e5deff, #f6f6f7)", res.CSS)
	assert.Equal(t, "bg-gradient-to-b from-[#e5deff] to-[#f6f6f7]", res.Tailwind)
	assert.Equal(t, "bg-gradient-to-b", res.Direction)

	res, err = svc.Build(ctx, GradientRequest{Kind: "radial", From: "#000000", To: "#FFFFFF"})
	require.NoError(t, err)
	assert.Equal(t, "radial-gradient(circle at center, #000000, #ffffff)", res.CSS)
	assert.Equal(t, "bg-[radial-gradient(circle_at_center,_#000000,_#ffffff)]", res.Tailwind)
	assert.Empty(t, res.Direction)

	res, err = svc.Build(ctx, GradientRequest{Angle: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, "bg-gradient-to-r", res.Direction)

	_, err = svc.Build(ctx, GradientRequest{Angle: ptr(361)})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = svc.Build(ctx, GradientRequest{From: "red"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidColorFormat)

	_, err = svc.Build(ctx, GradientRequest{From: "red", Kind: "conic"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation, "mixed failures report as validation")
}

func TestPaletteService_ListAndGet(t *testing.T) {
	svc := setupTestServices(t, nil).Palette
	ctx := context.Background()

	list, err := svc.ListPalettes(ctx, ListPalettesRequest{})
	require.NoError(t, err)
	require.Len(t, list, 18)
	assert.Equal(t, "clay-and-sea", list[0].Slug)
	for _, p := range list {
		assert.NotEmpty(t, p.BlurHash, p.Slug)
		assert.True(t, strings.HasPrefix(p.Accent, "#"), p.Slug)
	}

	byName, err := svc.ListPalettes(ctx, ListPalettesRequest{Sort: "name"})
	require.NoError(t, err)
	assert.Equal(t, "Blue Vibes", byName[0].Name)

	_, err = svc.ListPalettes(ctx, ListPalettesRequest{Sort: "random"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	p, err := svc.GetPalette(ctx, "earthly")
	require.NoError(t, err)
	assert.Equal(t, "Earthly", p.Name)
	assert.Equal(t, list[6].BlurHash, p.BlurHash, "previews are cached by colors")

	_, err = svc.GetPalette(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPaletteService_Themes(t *testing.T) {
	svc := setupTestServices(t, nil).Palette
	ctx := context.Background()

	themes, err := svc.ListThemes(ctx)
	require.NoError(t, err)
	assert.Len(t, themes, 8)

	th, err := svc.GetTheme(ctx, "ocean")
	require.NoError(t, err)
	assert.Equal(t, "Ocean Depths", th.Name)
	assert.NotEmpty(t, th.BlurHash)

	_, err = svc.GetTheme(ctx, "winter")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPaletteService_Search(t *testing.T) {
	svc := setupTestServices(t, nil).Palette

	hits, err := svc.Search(context.Background(), SearchRequest{Query: "blue"})
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	var found bool
	for _, h := range hits {
		if h.Slug == "ocean-blues" {
			found = true
		}
	}
	assert.True(t, found)

	_, err = svc.Search(context.Background(), SearchRequest{Limit: 1000})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestPaletteService_Swatch(t *testing.T) {
	svc := setupTestServices(t, nil).Palette
	ctx := context.Background()

	png, err := svc.Swatch(ctx, "earthly", 0, 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	_, err = svc.Swatch(ctx, "earthly", 5000, 10)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = svc.Swatch(ctx, "missing", 10, 10)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSuggestionService_Suggest(t *testing.T) {
	fake := &fakeSuggester{hex: "#FF8800"}
	svc := setupTestServices(t, fake).Suggestion

	sug, err := svc.Suggest(context.Background(), SuggestRequest{Prompt: "  warm autumn  "})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sug.ID, "sug-"))
	assert.Equal(t, "warm autumn", sug.Prompt)
	assert.Equal(t, "#ff8800", sug.Hex)
	require.Len(t, sug.Shades, 9)
	assert.Equal(t, "#e37900", sug.Shades[0].Hex)
	assert.Equal(t, []string{"warm autumn"}, fake.prompts)
}

func TestSuggestionService_Errors(t *testing.T) {
	t.Run("empty prompt never reaches the client", func(t *testing.T) {
		fake := &fakeSuggester{hex: "#000000"}
		svc := setupTestServices(t, fake).Suggestion

		_, err := svc.Suggest(context.Background(), SuggestRequest{Prompt: "   "})
		require.ErrorIs(t, err, domainerrors.ErrValidation)
		assert.Empty(t, fake.prompts)
	})

	t.Run("client errors pass through", func(t *testing.T) {
		fake := &fakeSuggester{err: domainerrors.NetworkFailure(errors.New("refused"), "suggestion request failed")}
		svc := setupTestServices(t, fake).Suggestion

		_, err := svc.Suggest(context.Background(), SuggestRequest{Prompt: "sea"})
		assert.ErrorIs(t, err, domainerrors.ErrNetworkFailure)
	})

	t.Run("non-hex reply", func(t *testing.T) {
		fake := &fakeSuggester{hex: "blue"}
		svc := setupTestServices(t, fake).Suggestion

		_, err := svc.Suggest(context.Background(), SuggestRequest{Prompt: "sea"})
		assert.ErrorIs(t, err, domainerrors.ErrUnexpectedResponse)
	})
}
