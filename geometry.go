package softpaint

import "golang.org/x/image/math/f32"

// Pos2 returns a point (or UV) as an f32.Vec2.
func Pos2(x, y float32) f32.Vec2 {
	return f32.Vec2{x, y}
}

// Rect is an axis-aligned rectangle in points, from Min (inclusive) to
// Max. A rectangle with Max < Min on either axis is empty.
type Rect struct {
	Min, Max f32.Vec2
}

// NewRect creates a Rect from its corners.
func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{Min: f32.Vec2{minX, minY}, Max: f32.Vec2{maxX, maxY}}
}

// RectFromSize creates a Rect at the origin with the given size.
func RectFromSize(width, height float32) Rect {
	return NewRect(0, 0, width, height)
}

// Width returns Max.x - Min.x.
func (r Rect) Width() float32 { return r.Max[0] - r.Min[0] }

// Height returns Max.y - Min.y.
func (r Rect) Height() float32 { return r.Max[1] - r.Min[1] }

// IsPositive reports whether the rectangle has a positive area.
func (r Rect) IsPositive() bool {
	return r.Width() > 0 && r.Height() > 0
}


// Everything is a clip rectangle that never clips.
var Everything = NewRect(-1e30, -1e30, 1e30, 1e30)
