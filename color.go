package softpaint

import (
	stdcolor "image/color"

	"github.com/gogpu/softpaint/internal/color"
)

// Color32 is an sRGB color with premultiplied alpha, one byte per channel.
// This is the format GUI tessellators use for vertex colors and texture
// pixels.
type Color32 struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent32 = Color32{}
	Black32       = Color32{A: 255}
	White32       = Color32{R: 255, G: 255, B: 255, A: 255}
	Red32         = Color32{R: 255, A: 255}
	Green32       = Color32{G: 255, A: 255}
	Blue32        = Color32{B: 255, A: 255}
)

// RGBA32Premultiplied creates a color from already premultiplied sRGB bytes.
func RGBA32Premultiplied(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// RGBA32Unmultiplied creates a color from straight-alpha sRGB bytes.
// Premultiplication happens in linear space.
func RGBA32Unmultiplied(r, g, b, a uint8) Color32 {
	switch a {
	case 255:
		return Color32{R: r, G: g, B: b, A: 255}
	case 0:
		return Transparent32
	}
	straight := color.ColorU8{R: r, G: g, B: b, A: a}.ToLinear()
	c := color.FromLinear(straight.Premultiply())
	return Color32{R: c.R, G: c.G, B: c.B, A: a}
}

// RGB32 creates an opaque color.
func RGB32(r, g, b uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: 255}
}

// Gray32 creates an opaque gray.
func Gray32(l uint8) Color32 {
	return Color32{R: l, G: l, B: l, A: 255}
}

// RGBA implements image/color.Color. Go colors are premultiplied in
// encoded space, so the color is first unmultiplied in linear light.
func (c Color32) RGBA() (r, g, b, a uint32) {
	return c.nrgba().RGBA()
}

// nrgba returns the straight-alpha sRGB form of c.
func (c Color32) nrgba() stdcolor.NRGBA {
	switch c.A {
	case 255:
		return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
	case 0:
		return stdcolor.NRGBA{}
	}
	s := color.FromLinear(c.linear().Unpremultiply())
	return stdcolor.NRGBA{R: s.R, G: s.G, B: s.B, A: c.A}
}

// linear converts to the pipeline's linear premultiplied working color.
func (c Color32) linear() color.ColorF32 {
	return color.ColorU8{R: c.R, G: c.G, B: c.B, A: c.A}.ToLinear()
}

// color32FromLinear is the inverse of Color32.linear.
func color32FromLinear(l color.ColorF32) Color32 {
	c := color.FromLinear(l)
	return Color32{R: c.R, G: c.G, B: c.B, A: c.A}
}
