package softpaint

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/gogpu/softpaint/internal/raster"
)

// Scissor wraps a render target and discards writes outside a pixel
// rectangle. Reads and Size pass through unchanged, so the rasterizer
// still maps NDC onto the full target.
type Scissor[P any, T raster.Target[P]] struct {
	target T
	rect   image.Rectangle
}

// NewScissor returns a view of target that only accepts writes inside
// rect. The rectangle is intersected with the target bounds.
func NewScissor[P any, T raster.Target[P]](target T, rect image.Rectangle) *Scissor[P, T] {
	w, h := target.Size()
	return &Scissor[P, T]{
		target: target,
		rect:   rect.Intersect(image.Rect(0, 0, w, h)),
	}
}

// ScissorFromClipRect converts clip (in points) to pixels and wraps target
// with the resulting rectangle.
func ScissorFromClipRect[P any, T raster.Target[P]](target T, sizePx [2]int, pixelsPerPoint float32, clip Rect) *Scissor[P, T] {
	return NewScissor[P](target, ScissorRect(sizePx, pixelsPerPoint, clip))
}

// ScissorRect scales clip by pixelsPerPoint, rounds each edge to the
// nearest pixel (halves away from zero) and clamps the result to the
// screen: min to [0, size], max to [min, size]. An empty result means
// nothing may be drawn.
func ScissorRect(sizePx [2]int, pixelsPerPoint float32, clip Rect) image.Rectangle {
	minX := clampRound(clip.Min[0]*pixelsPerPoint, 0, sizePx[0])
	minY := clampRound(clip.Min[1]*pixelsPerPoint, 0, sizePx[1])
	maxX := clampRound(clip.Max[0]*pixelsPerPoint, minX, sizePx[0])
	maxY := clampRound(clip.Max[1]*pixelsPerPoint, minY, sizePx[1])
	// Built directly: image.Rect would swap inverted corners.
	return image.Rectangle{Min: image.Point{X: minX, Y: minY}, Max: image.Point{X: maxX, Y: maxY}}
}

// clampRound rounds v and clamps it to [lo, hi]. NaN maps to lo.
func clampRound(v float32, lo, hi int) int {
	if math32.IsNaN(v) {
		return lo
	}
	r := math32.Round(v)
	if r <= float32(lo) {
		return lo
	}
	if r >= float32(hi) {
		return hi
	}
	return int(r)
}

// Rect returns the pixel rectangle writes are confined to.
func (s *Scissor[P, T]) Rect() image.Rectangle {
	return s.rect
}

// Bounds implements raster.Bounded.
func (s *Scissor[P, T]) Bounds() image.Rectangle {
	return s.rect
}

// Size returns the size of the wrapped target.
func (s *Scissor[P, T]) Size() (width, height int) {
	return s.target.Size()
}

// Read returns the wrapped target's pixel.
func (s *Scissor[P, T]) Read(x, y int) P {
	return s.target.Read(x, y)
}

// Write forwards p to the wrapped target if (x, y) is inside the rectangle.
func (s *Scissor[P, T]) Write(x, y int, p P) {
	if x < s.rect.Min.X || x >= s.rect.Max.X || y < s.rect.Min.Y || y >= s.rect.Max.Y {
		return
	}
	s.target.Write(x, y, p)
}
