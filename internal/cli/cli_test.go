package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
	"github.com/hueforge/hueforge/internal/service"
)

type fakeSuggester struct {
	hex string
	err error
}

func (f *fakeSuggester) Suggest(_ context.Context, _ string) (string, error) {
	return f.hex, f.err
}

// run executes the CLI without color and returns stdout.
func run(t *testing.T, suggester service.Suggester, args ...string) (string, error) {
	t.Helper()

	if suggester == nil {
		suggester = &fakeSuggester{hex: "#336699"}
	}
	var out bytes.Buffer
	base := []string{"--no-color", "--env-file", filepath.Join(t.TempDir(), "missing.env")}
	err := Run(context.Background(), append(args, base...), Options{
		Out:       &out,
		Err:       io.Discard,
		Suggester: suggester,
	})
	return out.String(), err
}

func TestConvert(t *testing.T) {
	out, err := run(t, nil, "convert", "purple")
	require.NoError(t, err)

	assert.Contains(t, out, "#800080")
	assert.Contains(t, out, "128, 0, 128")
	assert.Contains(t, out, "hsl(300, 100%")
}

func TestConvert_JSON(t *testing.T) {
	out, err := run(t, nil, "convert", "#336699", "--json")
	require.NoError(t, err)

	var info service.ColorInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "#336699", info.Hex)
}

func TestConvert_InvalidColor(t *testing.T) {
	_, err := run(t, nil, "convert", "#12345")
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidColorFormat))
}

func TestAdjust(t *testing.T) {
	out, err := run(t, nil, "adjust", "gray", "--temperature", "100")
	require.NoError(t, err)

	assert.Contains(t, out, "#808080  base")
	assert.Contains(t, out, "#ff8000  result")
	assert.Contains(t, out, "temperature 100")
}

func TestShades(t *testing.T) {
	out, err := run(t, nil, "shades", "#ff8800")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "100")
	assert.Contains(t, lines[0], "#e37900")

	out, err = run(t, nil, "shades", "#ff8800", "--mode", "sweep", "--levels", "50,500")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	_, err = run(t, nil, "shades", "#ff8800", "--levels", "1,x")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))
}

func TestWheel(t *testing.T) {
	out, err := run(t, nil, "wheel", "--hue", "270")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "#8000ff")
}

func TestGradient(t *testing.T) {
	out, err := run(t, nil, "gradient")
	require.NoError(t, err)
	assert.Contains(t, out, "linear-gradient(90deg, #e5deff, #f6f6f7)")
	assert.Contains(t, out, "bg-gradient-to-b")

	out, err = run(t, nil, "gradient", "--radial", "--from", "#ffffff", "--to", "#000000")
	require.NoError(t, err)
	assert.Contains(t, out, "radial-gradient")

	_, err = run(t, nil, "gradient", "--from", "white")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrInvalidColorFormat))
}

func TestPalettes(t *testing.T) {
	out, err := run(t, nil, "palettes", "list", "--sort", "likes")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "Clay and Sea"), out)

	out, err = run(t, nil, "palettes", "show", "earthly")
	require.NoError(t, err)
	assert.Contains(t, out, "(earthly)")

	_, err = run(t, nil, "palettes", "show", "missing")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrNotFound))

	out, err = run(t, nil, "palettes", "search", "ocean")
	require.NoError(t, err)
	assert.Contains(t, out, "ocean-blues")
}

func TestPalettesSwatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "earthly.png")

	out, err := run(t, nil, "palettes", "swatch", "earthly", "-o", path, "--width", "40", "--height", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}

func TestThemes(t *testing.T) {
	out, err := run(t, nil, "themes")
	require.NoError(t, err)
	assert.Contains(t, out, "ocean")

	out, err = run(t, nil, "themes", "ocean")
	require.NoError(t, err)
	assert.Contains(t, out, "(ocean)")
}

func TestSuggest(t *testing.T) {
	out, err := run(t, &fakeSuggester{hex: "#ff8800"}, "suggest", "warm", "autumn")
	require.NoError(t, err)
	assert.Contains(t, out, `#ff8800  "warm autumn"`)
	assert.Contains(t, out, "#e37900")

	_, err = run(t, &fakeSuggester{err: domainerrors.UnexpectedResponse("no color in reply")}, "suggest", "x")
	assert.True(t, domainerrors.Is(err, domainerrors.ErrUnexpectedResponse))
}

func TestBlend(t *testing.T) {
	from := colorOf(t, "#000000")
	to := colorOf(t, "#ffffff")

	assert.Equal(t, "#000000", blend(from, to, 0).Hex())
	assert.Equal(t, "#808080", blend(from, to, 0.5).Hex())
	assert.Equal(t, "#ffffff", blend(from, to, 1).Hex())
}
