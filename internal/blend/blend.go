// Package blend composites linear premultiplied colors.
//
// Alpha is always linear. RGB is expected in linear light; callers decode
// sRGB before blending and encode after.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/softpaint/internal/color"

// SourceOver composites src over dst. Both are premultiplied.
//
//	rgb = Srgb + Drgb*(1-Sa)
//	a   = Da + Sa*(1-Da)
func SourceOver(src, dst color.ColorF32) color.ColorF32 {
	inv := 1 - src.A
	return color.ColorF32{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: dst.A + src.A*(1-dst.A),
	}
}

// SourceOverPacked composites src over a packed little-endian RGBA pixel
// with sRGB channels and straight alpha, returning the packed result in the
// same format.
func SourceOverPacked(dst uint32, src color.ColorF32) uint32 {
	if src == color.Transparent {
		return dst
	}
	if src.A >= 1 {
		return color.FromLinear(src.Unpremultiply()).PackLE()
	}
	d := color.UnpackLE(dst).ToLinear().Premultiply()
	return color.FromLinear(SourceOver(src, d).Unpremultiply()).PackLE()
}
