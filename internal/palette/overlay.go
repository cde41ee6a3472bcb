package palette

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

// Overlay is the on-disk format for user palettes and themes:
//
//	palettes:
//	  - name: Midnight Harbor
//	    likes: 12
//	    colors: ["#0b132b", "#1c2541", "#3a506b"]
//	themes:
//	  - key: harbor
//	    colors: ["#0b132b", "#5bc0be"]
//
// Overlay entries replace builtin entries with the same slug or key and are
// otherwise appended.
type Overlay struct {
	Palettes []OverlayPalette `yaml:"palettes"`
	Themes   []OverlayTheme   `yaml:"themes"`
}

type OverlayPalette struct {
	Slug   string   `yaml:"slug"`
	Name   string   `yaml:"name"`
	Likes  int      `yaml:"likes"`
	Colors []string `yaml:"colors"`
}

type OverlayTheme struct {
	Key    string   `yaml:"key"`
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

// ParseOverlay decodes overlay YAML. Unknown fields are rejected.
func ParseOverlay(data []byte) (Overlay, error) {
	var o Overlay
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil {
		// An empty document is a valid, empty overlay.
		if errors.Is(err, io.EOF) {
			return Overlay{}, nil
		}
		return Overlay{}, domainerrors.Wrap(err, domainerrors.CodeValidation, "parse overlay")
	}
	return o, nil
}

// LoadOverlay reads and parses an overlay file. A missing file yields an
// empty overlay and ok=false.
func LoadOverlay(path string) (o Overlay, ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Overlay{}, false, nil
	}
	if err != nil {
		return Overlay{}, false, fmt.Errorf("read overlay %s: %w", path, err)
	}
	o, err = ParseOverlay(data)
	if err != nil {
		return Overlay{}, false, fmt.Errorf("overlay %s: %w", path, err)
	}
	return o, true, nil
}

// Merge layers o over base and validates the result as a new catalog.
func Merge(base *Catalog, o Overlay) (*Catalog, error) {
	palettes := base.Palettes()
	index := make(map[string]int, len(palettes))
	for i, p := range palettes {
		index[p.Slug] = i
	}
	for _, op := range o.Palettes {
		p := Palette{Slug: op.Slug, Name: op.Name, Likes: op.Likes, Colors: op.Colors, Source: SourceOverlay}
		slug := slugFor(p)
		if i, ok := index[slug]; ok {
			palettes[i] = p
			continue
		}
		index[slug] = len(palettes)
		palettes = append(palettes, p)
	}

	themes := base.Themes()
	keys := make(map[string]int, len(themes))
	for i, t := range themes {
		keys[t.Key] = i
	}
	for _, ot := range o.Themes {
		t := Theme{Key: ot.Key, Name: ot.Name, Colors: ot.Colors, Source: SourceOverlay}
		key := normalizeKey(t.Key)
		if i, ok := keys[key]; ok {
			themes[i] = t
			continue
		}
		keys[key] = len(themes)
		themes = append(themes, t)
	}

	return NewCatalog(palettes, themes)
}
