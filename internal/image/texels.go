// Package image holds CPU-resident texture texels and the sampling
// primitives softpaint builds its samplers from.
//
// Texels are linear premultiplied colors (color.ColorF32) stored row-major.
package image

import (
	"errors"

	"github.com/gogpu/softpaint/internal/color"
)

// Common errors for texel buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrOutOfBounds is returned when a region does not fit the buffer.
	ErrOutOfBounds = errors.New("image: region out of bounds")
)

// Texels is a width×height buffer of linear colors.
//
// Thread safety: Texels is safe for concurrent reads. Writes require
// external synchronization.
type Texels struct {
	width  int
	height int
	pix    []color.ColorF32
}

// NewTexels allocates a buffer with every texel set to fill.
func NewTexels(width, height int, fill color.ColorF32) (*Texels, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	t := &Texels{
		width:  width,
		height: height,
		pix:    make([]color.ColorF32, width*height),
	}
	t.Fill(fill)
	return t, nil
}

// Size returns (width, height).
func (t *Texels) Size() (int, int) { return t.width, t.height }

// At returns the texel at (x, y). The coordinates must be in bounds.
func (t *Texels) At(x, y int) color.ColorF32 {
	return t.pix[y*t.width+x]
}

// Set overwrites the texel at (x, y). Out-of-bounds writes are ignored.
func (t *Texels) Set(x, y int, c color.ColorF32) {
	if x < 0 || y < 0 || x >= t.width || y >= t.height {
		return
	}
	t.pix[y*t.width+x] = c
}

// Fill sets every texel to c.
func (t *Texels) Fill(c color.ColorF32) {
	for i := range t.pix {
		t.pix[i] = c
	}
}

// FitsRegion reports whether a w×h block at (x, y) lies inside the buffer.
func (t *Texels) FitsRegion(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && w >= 0 && h >= 0 &&
		x+w <= t.width && y+h <= t.height
}

// WriteRegion overwrites the w×h block at (x, y) with src, which holds
// w*h row-major texels. Nothing is blended.
func (t *Texels) WriteRegion(x, y, w, h int, src []color.ColorF32) error {
	if !t.FitsRegion(x, y, w, h) || len(src) < w*h {
		return ErrOutOfBounds
	}
	for row := 0; row < h; row++ {
		dst := t.pix[(y+row)*t.width+x:]
		copy(dst[:w], src[row*w:(row+1)*w])
	}
	return nil
}
