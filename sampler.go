package softpaint

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/softpaint/internal/color"
	"github.com/gogpu/softpaint/internal/image"
)

// Sampler returns the linear premultiplied color of a texture at the
// normalized coordinate (u, v).
type Sampler func(u, v float32) color.ColorF32

// SelectSampler resolves the filter and wrap mode of tex once and returns
// the matching sampling function, so the per-pixel path does no mode
// dispatch. The magnification filter decides the strategy.
func SelectSampler(tex *Texture) Sampler {
	texels := tex.texels
	wrap := spreadMode(tex.options.WrapMode).Func()

	if tex.options.Magnification == gputypes.FilterModeNearest {
		return func(u, v float32) color.ColorF32 {
			return image.Nearest(texels, wrap, u, v)
		}
	}
	return func(u, v float32) color.ColorF32 {
		return image.Bilinear(texels, wrap, u, v)
	}
}

func spreadMode(m gputypes.AddressMode) image.SpreadMode {
	switch m {
	case gputypes.AddressModeRepeat:
		return image.SpreadRepeat
	case gputypes.AddressModeMirrorRepeat:
		return image.SpreadReflect
	default:
		return image.SpreadPad
	}
}
