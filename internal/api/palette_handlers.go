package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
	"github.com/hueforge/hueforge/internal/http/response"
	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/service"
)

func (s *Server) registerPaletteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listPalettes",
		Method:      http.MethodGet,
		Path:        "/api/v1/palettes",
		Summary:     "List palettes",
		Description: "Returns the curated palettes with accent colors and BlurHash previews",
		Tags:        []string{"Palettes"},
	}, s.handleListPalettes)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchPalettes",
		Method:      http.MethodGet,
		Path:        "/api/v1/palettes/search",
		Summary:     "Search palettes",
		Description: "Full-text search over palette and theme names and colors",
		Tags:        []string{"Palettes"},
	}, s.handleSearchPalettes)

	huma.Register(s.api, huma.Operation{
		OperationID: "getPalette",
		Method:      http.MethodGet,
		Path:        "/api/v1/palettes/{slug}",
		Summary:     "Get palette",
		Description: "Returns a palette by slug",
		Tags:        []string{"Palettes"},
	}, s.handleGetPalette)

	// Binary response, so a plain chi route rather than a huma operation.
	s.router.Get("/api/v1/palettes/{slug}/swatch.png", s.handlePaletteSwatch)
}

func (s *Server) registerThemeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listThemes",
		Method:      http.MethodGet,
		Path:        "/api/v1/themes",
		Summary:     "List themes",
		Description: "Returns the theme presets",
		Tags:        []string{"Themes"},
	}, s.handleListThemes)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTheme",
		Method:      http.MethodGet,
		Path:        "/api/v1/themes/{key}",
		Summary:     "Get theme",
		Description: "Returns a theme preset by key",
		Tags:        []string{"Themes"},
	}, s.handleGetTheme)
}

// === DTOs ===

type ListPalettesInput struct {
	Sort string `query:"sort" enum:"catalog,likes,name" required:"false" doc:"Listing order (default: catalog)"`
}

type ListPalettesResponse struct {
	Palettes []service.PaletteView `json:"palettes" doc:"Palettes in the requested order"`
}

type ListPalettesOutput struct {
	Body ListPalettesResponse
}

type SearchPalettesInput struct {
	Query string `query:"q" maxLength:"200" doc:"Search text or a #rrggbb color"`
	Limit int    `query:"limit" minimum:"0" maximum:"100" doc:"Maximum hits (default: 20)"`
}

type SearchPalettesResponse struct {
	Hits []palette.Hit `json:"hits" doc:"Ranked matches"`
}

type SearchPalettesOutput struct {
	Body SearchPalettesResponse
}

type GetPaletteInput struct {
	Slug string `path:"slug" doc:"Palette slug"`
}

type PaletteOutput struct {
	Body *service.PaletteView
}

type ListThemesResponse struct {
	Themes []service.ThemeView `json:"themes" doc:"Theme presets"`
}

type ListThemesOutput struct {
	Body ListThemesResponse
}

type GetThemeInput struct {
	Key string `path:"key" doc:"Theme key"`
}

type ThemeOutput struct {
	Body *service.ThemeView
}

// === Handlers ===

func (s *Server) handleListPalettes(ctx context.Context, input *ListPalettesInput) (*ListPalettesOutput, error) {
	palettes, err := s.services.Palette.ListPalettes(ctx, service.ListPalettesRequest{Sort: input.Sort})
	if err != nil {
		return nil, err
	}
	return &ListPalettesOutput{Body: ListPalettesResponse{Palettes: palettes}}, nil
}

func (s *Server) handleSearchPalettes(ctx context.Context, input *SearchPalettesInput) (*SearchPalettesOutput, error) {
	hits, err := s.services.Palette.Search(ctx, service.SearchRequest{Query: input.Query, Limit: input.Limit})
	if err != nil {
		return nil, err
	}
	return &SearchPalettesOutput{Body: SearchPalettesResponse{Hits: hits}}, nil
}

func (s *Server) handleGetPalette(ctx context.Context, input *GetPaletteInput) (*PaletteOutput, error) {
	p, err := s.services.Palette.GetPalette(ctx, input.Slug)
	if err != nil {
		return nil, err
	}
	return &PaletteOutput{Body: p}, nil
}

func (s *Server) handleListThemes(ctx context.Context, _ *struct{}) (*ListThemesOutput, error) {
	themes, err := s.services.Palette.ListThemes(ctx)
	if err != nil {
		return nil, err
	}
	return &ListThemesOutput{Body: ListThemesResponse{Themes: themes}}, nil
}

func (s *Server) handleGetTheme(ctx context.Context, input *GetThemeInput) (*ThemeOutput, error) {
	t, err := s.services.Palette.GetTheme(ctx, input.Key)
	if err != nil {
		return nil, err
	}
	return &ThemeOutput{Body: t}, nil
}

// handlePaletteSwatch renders a palette as a PNG strip. Optional w and h
// query parameters set the size in pixels.
func (s *Server) handlePaletteSwatch(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	width, err := intQuery(r, "w")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	height, err := intQuery(r, "h")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	png, err := s.services.Palette.Swatch(r.Context(), slug, width, height)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", CacheOneHour)
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		s.logger.Debug("swatch write failed", "slug", slug, "error", err)
	}
}

func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ValidationWithDetails("validation failed: "+name,
			map[string]string{name: "must be an integer"})
	}
	return v, nil
}
