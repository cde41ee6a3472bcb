// Package swatch renders color lists as images and BlurHash placeholders.
package swatch

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/bbrks/go-blurhash"
	"golang.org/x/image/draw"

	"github.com/hueforge/hueforge/internal/color"
	domainerrors "github.com/hueforge/hueforge/internal/errors"
)

// Size limits for rendered strips.
const (
	MaxDimension  = 4096
	DefaultWidth  = 500
	DefaultHeight = 100
)

// blurHash dimensions. BlurHash only needs a coarse image; 4x3 components
// keep the hash around 28 characters.
const (
	blurHashWidth  = 64
	blurHashHeight = 16
	blurHashX      = 4
	blurHashY      = 3
)

// ParseColors parses a list of hex colors.
func ParseColors(hexes []string) ([]color.RGB, error) {
	out := make([]color.RGB, 0, len(hexes))
	for i, h := range hexes {
		c, err := color.ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Strip renders colors as equal-width vertical bands filling a w x h image.
func Strip(colors []color.RGB, w, h int) (*image.NRGBA, error) {
	if len(colors) == 0 {
		return nil, domainerrors.Validation("swatch needs at least one color")
	}
	if w < 1 || h < 1 || w > MaxDimension || h > MaxDimension {
		return nil, domainerrors.Validationf("swatch size %dx%d out of range 1-%d", w, h, MaxDimension)
	}

	// One pixel per band, then scaled up. Nearest-neighbour keeps band
	// edges hard.
	src := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		src.SetNRGBA(x, 0, c.NRGBA())
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// WritePNG renders a strip and writes it as PNG.
func WritePNG(out io.Writer, colors []color.RGB, w, h int) error {
	img, err := Strip(colors, w, h)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNG renders a strip and returns the encoded bytes.
func PNG(colors []color.RGB, w, h int) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, colors, w, h); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BlurHash encodes a placeholder for the strip of colors.
func BlurHash(colors []color.RGB) (string, error) {
	img, err := Strip(colors, blurHashWidth, blurHashHeight)
	if err != nil {
		return "", err
	}
	hash, err := blurhash.Encode(blurHashX, blurHashY, img)
	if err != nil {
		return "", fmt.Errorf("encode blurhash: %w", err)
	}
	return hash, nil
}
