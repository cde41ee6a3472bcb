package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/hueforge/hueforge/internal/palette"
	"github.com/hueforge/hueforge/internal/swatch"
	"github.com/hueforge/hueforge/internal/validation"
)

// PaletteService serves the curated palette and theme catalogs.
type PaletteService struct {
	store     *palette.Store
	index     *palette.Index
	logger    *slog.Logger
	validator *validation.Validator

	// Preview hashes keyed by the joined color list. Colors fully determine
	// the hash, so entries survive catalog swaps.
	previews sync.Map
}

// NewPaletteService creates a new palette service.
func NewPaletteService(store *palette.Store, index *palette.Index, logger *slog.Logger) *PaletteService {
	return &PaletteService{
		store:     store,
		index:     index,
		logger:    logger,
		validator: validation.New(),
	}
}

// PaletteView is a palette with its list decorations.
type PaletteView struct {
	Slug     string         `json:"slug" doc:"URL-safe palette identifier"`
	Name     string         `json:"name" doc:"Display name"`
	Likes    int            `json:"likes" doc:"Like count"`
	Colors   []string       `json:"colors" doc:"Colors as authored, in order"`
	Source   palette.Source `json:"source" enum:"builtin,overlay" doc:"Where the palette was defined"`
	Accent   string         `json:"accent" doc:"Badge tint derived from the slug"`
	BlurHash string         `json:"blurhash,omitempty" doc:"BlurHash preview of the color strip"`
}

// ThemeView is a theme preset with its preview.
type ThemeView struct {
	Key      string         `json:"key" doc:"Theme key"`
	Name     string         `json:"name" doc:"Display name"`
	Colors   []string       `json:"colors" doc:"Theme colors"`
	Source   palette.Source `json:"source" enum:"builtin,overlay" doc:"Where the theme was defined"`
	BlurHash string         `json:"blurhash,omitempty" doc:"BlurHash preview of the color strip"`
}

// ListPalettesRequest selects the listing order.
type ListPalettesRequest struct {
	Sort string `json:"sort,omitempty" validate:"omitempty,oneof=catalog likes name"`
}

// ListPalettes returns every palette of the current snapshot.
func (s *PaletteService) ListPalettes(_ context.Context, req ListPalettesRequest) ([]PaletteView, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	order := palette.SortOrder(req.Sort)
	if order == "" {
		order = palette.SortCatalog
	}

	palettes := s.store.Catalog().Sorted(order)
	out := make([]PaletteView, 0, len(palettes))
	for _, p := range palettes {
		out = append(out, s.paletteView(p))
	}
	return out, nil
}

// GetPalette returns one palette by slug.
func (s *PaletteService) GetPalette(_ context.Context, slug string) (*PaletteView, error) {
	p, err := s.store.Catalog().Palette(slug)
	if err != nil {
		return nil, err
	}
	v := s.paletteView(p)
	return &v, nil
}

// SearchRequest is a full-text palette query.
type SearchRequest struct {
	Query string `json:"q" validate:"max=200"`
	Limit int    `json:"limit,omitempty" validate:"gte=0,lte=100"`
}

// Search queries the palette and theme index.
func (s *PaletteService) Search(ctx context.Context, req SearchRequest) ([]palette.Hit, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	hits, err := s.index.Search(ctx, req.Query, req.Limit)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("palette search", "query", req.Query, "hits", len(hits))
	return hits, nil
}

// Swatch renders a palette as a PNG strip.
func (s *PaletteService) Swatch(_ context.Context, slug string, width, height int) ([]byte, error) {
	p, err := s.store.Catalog().Palette(slug)
	if err != nil {
		return nil, err
	}
	colors, err := swatch.ParseColors(p.Colors)
	if err != nil {
		return nil, err
	}
	if width == 0 {
		width = swatch.DefaultWidth
	}
	if height == 0 {
		height = swatch.DefaultHeight
	}
	return swatch.PNG(colors, width, height)
}

// ListThemes returns every theme preset.
func (s *PaletteService) ListThemes(_ context.Context) ([]ThemeView, error) {
	themes := s.store.Catalog().Themes()
	out := make([]ThemeView, 0, len(themes))
	for _, t := range themes {
		out = append(out, s.themeView(t))
	}
	return out, nil
}

// GetTheme returns one theme preset by key.
func (s *PaletteService) GetTheme(_ context.Context, key string) (*ThemeView, error) {
	t, err := s.store.Catalog().Theme(key)
	if err != nil {
		return nil, err
	}
	v := s.themeView(t)
	return &v, nil
}

func (s *PaletteService) themeView(t palette.Theme) ThemeView {
	return ThemeView{
		Key:      t.Key,
		Name:     t.Name,
		Colors:   t.Colors,
		Source:   t.Source,
		BlurHash: s.preview(t.Colors),
	}
}

func (s *PaletteService) paletteView(p palette.Palette) PaletteView {
	return PaletteView{
		Slug:     p.Slug,
		Name:     p.Name,
		Likes:    p.Likes,
		Colors:   p.Colors,
		Source:   p.Source,
		Accent:   p.Accent(),
		BlurHash: s.preview(p.Colors),
	}
}

// preview returns the BlurHash for colors. Failures are logged and yield
// no preview rather than failing the listing.
func (s *PaletteService) preview(hexes []string) string {
	key := strings.ToLower(strings.Join(hexes, ","))
	if v, ok := s.previews.Load(key); ok {
		return v.(string)
	}

	colors, err := swatch.ParseColors(hexes)
	if err != nil {
		s.logger.Warn("palette preview skipped", "colors", key, "error", err)
		return ""
	}
	hash, err := swatch.BlurHash(colors)
	if err != nil {
		s.logger.Warn("palette preview failed", "colors", key, "error", err)
		return ""
	}
	s.previews.Store(key, hash)
	return hash
}
