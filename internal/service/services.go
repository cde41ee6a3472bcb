// Package service orchestrates the color, editor, gradient, palette and
// suggestion operations shared by the HTTP API and the CLI.
package service

import (
	"log/slog"

	"github.com/hueforge/hueforge/internal/palette"
)

// Services groups every service used by the API server and the CLI.
type Services struct {
	Color      *ColorService
	Editor     *EditorService
	Gradient   *GradientService
	Palette    *PaletteService
	Suggestion *SuggestionService
}

// New builds the full set of services.
func New(store *palette.Store, index *palette.Index, suggester Suggester, logger *slog.Logger) *Services {
	return &Services{
		Color:      NewColorService(logger.With("service", "color")),
		Editor:     NewEditorService(logger.With("service", "editor")),
		Gradient:   NewGradientService(logger.With("service", "gradient")),
		Palette:    NewPaletteService(store, index, logger.With("service", "palette")),
		Suggestion: NewSuggestionService(suggester, logger.With("service", "suggestion")),
	}
}
