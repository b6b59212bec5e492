package color

import "math"

// sRGBToLinearLUT provides O(1) sRGB to linear conversion.
// Converts sRGB byte [0-255] → linear float32 [0.0-1.0].
var sRGBToLinearLUT [256]float32

func init() {
	for i := 0; i < 256; i++ {
		sRGBToLinearLUT[i] = float32(srgbToLinear64(float64(i) / 255.0))
	}
}

func srgbToLinear64(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// SRGBToLinearFast converts an sRGB byte to linear float32 using a lookup table.
//
// Example:
//
//	r := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBByte converts a linear component to an sRGB byte with the
// exact transfer function. Decoding a byte with SRGBToLinearFast and
// encoding it again returns the same byte.
func LinearToSRGBByte(l float32) uint8 {
	lf := float64(l)
	if !(lf > 0) {
		return 0
	}
	if lf >= 1 {
		return 255
	}
	var s float64
	if lf <= 0.0031308 {
		s = lf * 12.92
	} else {
		s = 1.055*math.Pow(lf, 1.0/2.4) - 0.055
	}
	return uint8(math.Floor(s*255.0 + 0.5)) //nolint:gosec // G115: s is in [0,1]
}

// LinearToByte maps a linear value in [0,1] to [0,255] with rounding.
// NaN and negative values map to 0.
func LinearToByte(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5) //nolint:gosec // G115: v is in (0,1)
}
