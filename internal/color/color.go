// Package color provides the linear working color and sRGB byte
// conversions used by the softpaint pipeline.
package color

// ColorF32 is a color with float32 components, normally in [0,1].
// RGB components are linear. Whether they are premultiplied by A is a
// property of the context; the mesh pipeline always works premultiplied.
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 is a color with uint8 components in [0,255].
// RGB components are sRGB-encoded; alpha is always linear.
type ColorU8 struct {
	R, G, B, A uint8
}

// Common linear colors.
var (
	Transparent = ColorF32{}
	White       = ColorF32{R: 1, G: 1, B: 1, A: 1}
	Red         = ColorF32{R: 1, A: 1}
)

// Add returns the channel-wise sum c + o.
func (c ColorF32) Add(o ColorF32) ColorF32 {
	return ColorF32{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Scale multiplies every channel, alpha included, by s.
func (c ColorF32) Scale(s float32) ColorF32 {
	return ColorF32{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Mul returns the channel-wise product c * o.
func (c ColorF32) Mul(o ColorF32) ColorF32 {
	return ColorF32{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Premultiply scales RGB by alpha.
func (c ColorF32) Premultiply() ColorF32 {
	return ColorF32{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply divides RGB by alpha. A zero alpha leaves RGB untouched,
// which keeps additive (alpha = 0) colors intact.
func (c ColorF32) Unpremultiply() ColorF32 {
	if c.A == 0 {
		return c
	}
	return ColorF32{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// ToLinear decodes an sRGB byte color to linear float components.
// Premultiplication is preserved: a premultiplied input yields a
// premultiplied output.
func (c ColorU8) ToLinear() ColorF32 {
	return ColorF32{
		R: SRGBToLinearFast(c.R),
		G: SRGBToLinearFast(c.G),
		B: SRGBToLinearFast(c.B),
		A: float32(c.A) / 255,
	}
}

// FromLinear encodes a linear color to sRGB bytes using the exact
// transfer function. Alpha is stored linearly.
func FromLinear(c ColorF32) ColorU8 {
	return ColorU8{
		R: LinearToSRGBByte(c.R),
		G: LinearToSRGBByte(c.G),
		B: LinearToSRGBByte(c.B),
		A: LinearToByte(c.A),
	}
}

// PackLE packs the color into a uint32 whose little-endian bytes are R, G, B, A.
func (c ColorU8) PackLE() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// UnpackLE is the inverse of PackLE.
func UnpackLE(v uint32) ColorU8 {
	return ColorU8{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}
