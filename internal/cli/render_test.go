package cli

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueforge/hueforge/internal/color"
)

func colorOf(t *testing.T, hex string) color.RGB {
	t.Helper()
	c, err := color.ParseHex(hex)
	require.NoError(t, err)
	return c
}

func TestSwatch_Profiles(t *testing.T) {
	plain := &app{profile: termenv.Ascii}
	assert.Equal(t, swatchCell, plain.swatch("#336699"))

	colored := &app{profile: termenv.TrueColor}
	got := colored.swatch("#336699")
	assert.Contains(t, got, "48;2;51;102;153")
	assert.Contains(t, got, swatchCell)
}

func TestRamp_Width(t *testing.T) {
	a := &app{profile: termenv.Ascii}
	assert.Equal(t, "      ", a.ramp(colorOf(t, "#000000"), colorOf(t, "#ffffff"), 6))
}
