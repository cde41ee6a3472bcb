// Package palette serves the curated palette catalog and theme presets.
//
// A Catalog is an immutable snapshot. The Store swaps snapshots atomically
// when the optional YAML overlay changes on disk, and the Index keeps a
// full-text view of the current snapshot for search.
package palette

import (
	"fmt"
	"slices"

	"github.com/hueforge/hueforge/internal/color"
	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

// Source records where an entry came from.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceOverlay Source = "overlay"
)

// Palette is a named, ordered list of colors with a like count.
type Palette struct {
	Slug   string   `json:"slug"`
	Name   string   `json:"name"`
	Likes  int      `json:"likes"`
	Colors []string `json:"colors"`
	Source Source   `json:"source"`
}

// Accent is a stable tint derived from the slug, used for list badges.
func (p Palette) Accent() string {
	return color.ForKey(p.Slug).Hex()
}

func (p Palette) clone() Palette {
	p.Colors = slices.Clone(p.Colors)
	return p
}

// Theme is a keyed preset palette.
type Theme struct {
	Key    string   `json:"key"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
	Source Source   `json:"source"`
}

func (t Theme) clone() Theme {
	t.Colors = slices.Clone(t.Colors)
	return t
}

// validateColors checks that every entry is a #rrggbb hex color.
func validateColors(owner string, colors []string) error {
	if len(colors) == 0 {
		return domainerrors.Validationf("%s: at least one color is required", owner)
	}
	for i, c := range colors {
		if _, err := color.ParseHex(c); err != nil {
			return fmt.Errorf("%s: color %d: %w", owner, i, err)
		}
	}
	return nil
}
