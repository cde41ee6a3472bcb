package palette

import (
	"slices"
	"strings"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
	"github.com/hueforge/hueforge/internal/util"
)

// Catalog is an immutable snapshot of palettes and themes. Accessors return
// copies.
type Catalog struct {
	palettes []Palette
	bySlug   map[string]int
	themes   []Theme
	byKey    map[string]int
}

// NewCatalog validates the entries and builds a snapshot. Palette slugs are
// derived from names when empty; theme keys are normalized the same way.
// Duplicate slugs or keys are rejected.
func NewCatalog(palettes []Palette, themes []Theme) (*Catalog, error) {
	c := &Catalog{
		palettes: make([]Palette, 0, len(palettes)),
		bySlug:   make(map[string]int, len(palettes)),
		themes:   make([]Theme, 0, len(themes)),
		byKey:    make(map[string]int, len(themes)),
	}

	for _, p := range palettes {
		p = p.clone()
		if strings.TrimSpace(p.Name) == "" {
			return nil, domainerrors.Validation("palette name is required")
		}
		p.Slug = slugFor(p)
		if p.Slug == "" {
			return nil, domainerrors.Validationf("palette %q has no usable slug", p.Name)
		}
		if p.Likes < 0 {
			return nil, domainerrors.Validationf("palette %q: likes must not be negative", p.Name)
		}
		if p.Source == "" {
			p.Source = SourceBuiltin
		}
		if err := validateColors("palette "+p.Slug, p.Colors); err != nil {
			return nil, err
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, domainerrors.Validationf("duplicate palette slug %q", p.Slug)
		}
		c.bySlug[p.Slug] = len(c.palettes)
		c.palettes = append(c.palettes, p)
	}

	for _, t := range themes {
		t = t.clone()
		t.Key = normalizeKey(t.Key)
		if t.Key == "" {
			return nil, domainerrors.Validation("theme key is required")
		}
		if strings.TrimSpace(t.Name) == "" {
			t.Name = util.DisplayName(strings.ReplaceAll(t.Key, "-", " "))
		}
		if t.Source == "" {
			t.Source = SourceBuiltin
		}
		if err := validateColors("theme "+t.Key, t.Colors); err != nil {
			return nil, err
		}
		if _, dup := c.byKey[t.Key]; dup {
			return nil, domainerrors.Validationf("duplicate theme key %q", t.Key)
		}
		c.byKey[t.Key] = len(c.themes)
		c.themes = append(c.themes, t)
	}

	return c, nil
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinPalettes, builtinThemes)
	if err != nil {
		panic("palette: invalid builtin catalog: " + err.Error())
	}
	return c
}

// Palettes returns all palettes in catalog order.
func (c *Catalog) Palettes() []Palette {
	out := make([]Palette, len(c.palettes))
	for i, p := range c.palettes {
		out[i] = p.clone()
	}
	return out
}

// Palette looks up a palette by slug. The slug is normalized first.
func (c *Catalog) Palette(slug string) (Palette, error) {
	i, ok := c.bySlug[util.NormalizeSlug(slug)]
	if !ok {
		return Palette{}, domainerrors.NotFoundf("palette %q not found", slug)
	}
	return c.palettes[i].clone(), nil
}

// Themes returns all theme presets in catalog order.
func (c *Catalog) Themes() []Theme {
	out := make([]Theme, len(c.themes))
	for i, t := range c.themes {
		out[i] = t.clone()
	}
	return out
}

// Theme looks up a theme preset by key.
func (c *Catalog) Theme(key string) (Theme, error) {
	i, ok := c.byKey[util.NormalizeSlug(key)]
	if !ok {
		return Theme{}, domainerrors.NotFoundf("theme %q not found", key)
	}
	return c.themes[i].clone(), nil
}

// Len returns the number of palettes and themes.
func (c *Catalog) Len() (palettes, themes int) {
	return len(c.palettes), len(c.themes)
}

// SortOrder selects the order of a palette listing.
type SortOrder string

const (
	SortCatalog SortOrder = "catalog"
	SortLikes   SortOrder = "likes"
	SortName    SortOrder = "name"
)

// Sorted returns palettes in the requested order. Ties keep catalog order.
func (c *Catalog) Sorted(order SortOrder) []Palette {
	out := c.Palettes()
	switch order {
	case SortLikes:
		slices.SortStableFunc(out, func(a, b Palette) int { return b.Likes - a.Likes })
	case SortName:
		slices.SortStableFunc(out, func(a, b Palette) int { return strings.Compare(a.Name, b.Name) })
	}
	return out
}

func slugFor(p Palette) string {
	if p.Slug != "" {
		return util.NormalizeSlug(p.Slug)
	}
	return util.NormalizeSlug(p.Name)
}

func normalizeKey(key string) string {
	return util.NormalizeSlug(key)
}
