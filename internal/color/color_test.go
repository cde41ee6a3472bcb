package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "with hash", input: "#FF8800", want: RGB{255, 136, 0}},
		{name: "without hash", input: "ff8800", want: RGB{255, 136, 0}},
		{name: "mixed case", input: "#aBcDeF", want: RGB{171, 205, 239}},
		{name: "black", input: "#000000", want: RGB{0, 0, 0}},
		{name: "short form rejected", input: "#fff", wantErr: true},
		{name: "non hex digit", input: "#gg0000", wantErr: true},
		{name: "too long", input: "#ff88001", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "double hash", input: "##ff8800", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidFormat)
				assert.ErrorIs(t, err, domainerrors.ErrInvalidColorFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRGBToHex(t *testing.T) {
	assert.Equal(t, "#ff8800", RGBToHex(255, 136, 0))
	assert.Equal(t, "#000000", RGBToHex(0, 0, 0))

	// Out of range channels clamp, fractions round half up.
	assert.Equal(t, "#ff0080", RGBToHex(300, -3, 127.5))
	assert.Equal(t, "#000000", RGBToHex(math.NaN(), 0, 0))
}

func TestParseHex_RoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#8040bf", "#c84b31", "#e5deff"} {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, c.Hex())
	}
}

func TestHexRoundTrip_ChannelSweep(t *testing.T) {
	check := func(r, g, b int) {
		t.Helper()
		hex := RGBToHex(float64(r), float64(g), float64(b))
		c, err := ParseHex(hex)
		require.NoError(t, err, hex)
		require.Equal(t, RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, c, hex)
	}

	for v := 0; v <= 255; v++ {
		check(v, 0, 0)
		check(0, v, 0)
		check(0, 0, v)
		check(v, v, v)
		check(v, 255-v, v/2)
	}
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				check(r, g, b)
			}
		}
	}
}

func TestHSLToHex_ZeroSaturationIsGrayForEveryHue(t *testing.T) {
	for h := 0.0; h < 360; h += 0.25 {
		require.Equal(t, "#808080", HSLToHex(h, 0, 50), "hue %v", h)
	}
	for _, l := range []float64{0, 25, 75, 100} {
		want := HSLToHex(0, 0, l)
		for h := 0.0; h < 360; h += 7.5 {
			require.Equal(t, want, HSLToHex(h, 0, l), "hue %v lightness %v", h, l)
		}
	}
}

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{"violet", 270, 50, 50, "#8040bf"},
		{"red", 0, 100, 50, "#ff0000"},
		{"green", 120, 100, 50, "#00ff00"},
		{"blue", 240, 100, 50, "#0000ff"},
		{"orange", 30, 100, 50, "#ff8000"},
		{"zero saturation is gray", 200, 0, 50, "#808080"},
		{"white", 0, 0, 100, "#ffffff"},
		{"black", 0, 100, 0, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HSLToHex(tt.h, tt.s, tt.l))
		})
	}
}

func TestHSLToHex_NormalizesAndClamps(t *testing.T) {
	assert.Equal(t, HSLToHex(30, 100, 50), HSLToHex(390, 100, 50))
	assert.Equal(t, HSLToHex(270, 50, 50), HSLToHex(-90, 50, 50))
	assert.Equal(t, HSLToHex(0, 100, 50), HSLToHex(0, 250, 50))
	assert.Equal(t, "#000000", HSLToHex(0, 50, -10))
	assert.Equal(t, "#ffffff", HSLToHex(0, 50, 140))
}

func TestNormalizeHue(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{390, 30},
		{-30, 330},
		{-720, 0},
		{359.5, 359.5},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeHue(tt.in), 1e-9, "NormalizeHue(%v)", tt.in)
	}
}

func TestRGBToHSL(t *testing.T) {
	got := RGBToHSL(RGB{255, 0, 0})
	assert.Equal(t, HSL{H: 0, S: 100, L: 50}, got)

	gray := RGBToHSL(RGB{128, 128, 128})
	assert.Zero(t, gray.H)
	assert.Zero(t, gray.S)

	violet := MustParseHex("#8040bf").HSL()
	assert.InDelta(t, 270, violet.H, 0.5)
	assert.InDelta(t, 50, violet.S, 0.5)
	assert.InDelta(t, 50, violet.L, 0.5)
}

func TestHSL_RoundTripWithinOneStep(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 85 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				out := in.HSL().RGB()
				assert.InDelta(t, float64(in.R), float64(out.R), 1, "%s", in)
				assert.InDelta(t, float64(in.G), float64(out.G), 1, "%s", in)
				assert.InDelta(t, float64(in.B), float64(out.B), 1, "%s", in)
			}
		}
	}
}

func TestHSL_CSS(t *testing.T) {
	assert.Equal(t, "hsl(270, 60%, 45%)", HSL{H: 270, S: 60, L: 45}.CSS())
	assert.Equal(t, "hsl(12.5, 100%, 0%)", HSL{H: 12.5, S: 100, L: 0}.CSS())
}

func TestRGB_Luma(t *testing.T) {
	assert.InDelta(t, 76.2195, RGB{255, 0, 0}.Luma(), 1e-6)
	assert.InDelta(t, 255*(LumaR+LumaG+LumaB), RGB{255, 255, 255}.Luma(), 1e-6)
}

func TestParse(t *testing.T) {
	c, err := Parse("  Purple ")
	require.NoError(t, err)
	assert.Equal(t, "#800080", c.Hex())

	c, err = Parse("#E5DEFF")
	require.NoError(t, err)
	assert.Equal(t, "#e5deff", c.Hex())

	_, err = Parse("not-a-color")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestForKey(t *testing.T) {
	a := ForKey("clay-and-sea")
	assert.Equal(t, a, ForKey("clay-and-sea"))

	hsl := a.HSL()
	assert.InDelta(t, accentSaturation, hsl.S, 1.5)
	assert.InDelta(t, accentLightness, hsl.L, 1)
}
