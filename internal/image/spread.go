package image

// SpreadMode determines how texel indices outside [0, n) are brought back
// into range.
type SpreadMode uint8

const (
	// SpreadPad clamps to the edge texel.
	SpreadPad SpreadMode = iota

	// SpreadRepeat tiles the image periodically.
	SpreadRepeat

	// SpreadReflect mirrors the image at every period boundary.
	SpreadReflect
)

// String returns a string representation of the spread mode.
func (s SpreadMode) String() string {
	switch s {
	case SpreadPad:
		return "Pad"
	case SpreadRepeat:
		return "Repeat"
	case SpreadReflect:
		return "Reflect"
	default:
		return "Unknown"
	}
}

// WrapFunc maps an arbitrary texel index into [0, n).
type WrapFunc func(i, n int) int

// Func returns the wrap function for the mode. Unknown modes pad.
func (s SpreadMode) Func() WrapFunc {
	switch s {
	case SpreadRepeat:
		return wrapRepeat
	case SpreadReflect:
		return wrapReflect
	default:
		return wrapPad
	}
}

func wrapPad(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func wrapRepeat(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// wrapReflect ping-pongs with period 2n: 0..n-1 then n-1..0.
func wrapReflect(i, n int) int {
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}
