package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

const sampleOverlay = `
palettes:
  - name: Midnight Harbor
    likes: 12
    colors: ["#0b132b", "#1c2541", "#3a506b"]
  - name: Clay and Sea
    likes: 1000
    colors: ["#C84B31"]
themes:
  - key: harbor
    colors: ["#0b132b", "#5bc0be"]
  - key: ocean
    name: Ocean Night
    colors: ["#000080"]
`

func TestParseOverlay(t *testing.T) {
	o, err := ParseOverlay([]byte(sampleOverlay))
	require.NoError(t, err)

	require.Len(t, o.Palettes, 2)
	assert.Equal(t, "Midnight Harbor", o.Palettes[0].Name)
	assert.Equal(t, 12, o.Palettes[0].Likes)
	require.Len(t, o.Themes, 2)
	assert.Equal(t, "harbor", o.Themes[0].Key)
}

func TestParseOverlay_Empty(t *testing.T) {
	o, err := ParseOverlay(nil)
	require.NoError(t, err)
	assert.Empty(t, o.Palettes)
}

func TestParseOverlay_RejectsUnknownFields(t *testing.T) {
	_, err := ParseOverlay([]byte("palettes:\n  - name: X\n    colours: ['#000000']\n"))
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestMerge(t *testing.T) {
	o, err := ParseOverlay([]byte(sampleOverlay))
	require.NoError(t, err)

	c, err := Merge(Builtin(), o)
	require.NoError(t, err)

	palettes, themes := c.Len()
	assert.Equal(t, 19, palettes)
	assert.Equal(t, 9, themes)

	replaced, err := c.Palette("clay-and-sea")
	require.NoError(t, err)
	assert.Equal(t, 1000, replaced.Likes)
	assert.Equal(t, SourceOverlay, replaced.Source)
	assert.Equal(t, "clay-and-sea", c.Palettes()[0].Slug, "replacement keeps catalog position")

	added, err := c.Palette("midnight-harbor")
	require.NoError(t, err)
	assert.Equal(t, SourceOverlay, added.Source)

	harbor, err := c.Theme("harbor")
	require.NoError(t, err)
	assert.Equal(t, "Harbor", harbor.Name)

	ocean, err := c.Theme("ocean")
	require.NoError(t, err)
	assert.Equal(t, "Ocean Night", ocean.Name)
}

func TestMerge_InvalidColorRejectsOverlay(t *testing.T) {
	o := Overlay{Palettes: []OverlayPalette{{Name: "Bad", Colors: []string{"#zzzzzz"}}}}
	_, err := Merge(Builtin(), o)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidColorFormat)
}

func TestLoadOverlay_Missing(t *testing.T) {
	o, found, err := LoadOverlay(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, o.Palettes)
}

func TestLoadOverlay_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleOverlay), 0o644))

	o, found, err := LoadOverlay(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, o.Palettes, 2)
}
