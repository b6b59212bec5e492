package image

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/softpaint/internal/color"
)

// clampIndex keeps huge or non-finite coordinates from overflowing int
// conversion; wrap functions then bring the index into range.
func clampIndex(f float32) int {
	const limit = 1 << 24
	switch {
	case f != f: // NaN
		return 0
	case f < -limit:
		return -limit
	case f > limit:
		return limit
	}
	return int(f)
}

// Nearest returns the texel containing the normalized coordinate (u, v),
// with the index wrapped by wrap. (0,0) is the top-left corner of the
// image and (1,1) the bottom-right.
func Nearest(t *Texels, wrap WrapFunc, u, v float32) color.ColorF32 {
	x := wrap(clampIndex(math32.Floor(u*float32(t.width))), t.width)
	y := wrap(clampIndex(math32.Floor(v*float32(t.height))), t.height)
	return t.pix[y*t.width+x]
}

// Bilinear interpolates the four texels surrounding (u, v), weighting them
// by the fractional offset from the texel centers. Each neighbor index is
// wrapped independently, so repeating textures blend across the seam.
func Bilinear(t *Texels, wrap WrapFunc, u, v float32) color.ColorF32 {
	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5

	flx := math32.Floor(fx)
	fly := math32.Floor(fy)
	tx := fx - flx
	ty := fy - fly
	if tx != tx {
		tx = 0
	}
	if ty != ty {
		ty = 0
	}

	ix := clampIndex(flx)
	iy := clampIndex(fly)
	x0 := wrap(ix, t.width)
	x1 := wrap(ix+1, t.width)
	y0 := wrap(iy, t.height)
	y1 := wrap(iy+1, t.height)

	c00 := t.pix[y0*t.width+x0]
	c10 := t.pix[y0*t.width+x1]
	c01 := t.pix[y1*t.width+x0]
	c11 := t.pix[y1*t.width+x1]

	top := lerp(c00, c10, tx)
	bottom := lerp(c01, c11, tx)
	return lerp(top, bottom, ty)
}

func lerp(a, b color.ColorF32, t float32) color.ColorF32 {
	return a.Scale(1 - t).Add(b.Scale(t))
}
