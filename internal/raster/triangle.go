package raster

import (
	"image"

	"github.com/chewxy/math32"
)

// screenVertex is a vertex after perspective divide and viewport mapping.
type screenVertex[D any] struct {
	x, y, z float32
	data    D
}

// Render draws vertices as a triangle list (every three vertices form one
// triangle; a trailing partial triangle is ignored) into target.
//
// depth may be nil, in which case no depth test is performed. When the
// target implements Bounded, pixels outside its bounds are not visited;
// this also keeps depth writes inside that region.
func Render[V any, D Interpolant[D], F any, P any](
	p Pipeline[V, D, F, P],
	vertices []V,
	target Target[P],
	depth *Buffer2D[float32],
) Stats {
	var stats Stats

	width, height := target.Size()
	area := image.Rect(0, 0, width, height)
	if b, ok := target.(Bounded); ok {
		area = area.Intersect(b.Bounds())
	}
	cfg := p.Config()
	if cfg.Depth == DepthNone {
		depth = nil
	}
	if depth != nil {
		dw, dh := depth.Size()
		area = area.Intersect(image.Rect(0, 0, dw, dh))
	}
	if area.Empty() {
		return stats
	}

	fw, fh := float32(width), float32(height)

	for i := 0; i+2 < len(vertices); i += 3 {
		stats.Triangles++

		var tri [3]screenVertex[D]
		visible := true
		for k := range 3 {
			pos, data := p.Vertex(vertices[i+k])
			if !(pos[3] > 0) {
				visible = false
				break
			}
			inv := 1 / pos[3]
			tri[k] = screenVertex[D]{
				x:    (pos[0]*inv + 1) * 0.5 * fw,
				y:    (1 - pos[1]*inv) * 0.5 * fh,
				z:    pos[2] * inv,
				data: data,
			}
		}
		if !visible {
			stats.Culled++
			continue
		}

		n, ok := drawTriangle(p, cfg, &tri, target, depth, area)
		if !ok {
			stats.Culled++
		}
		stats.Fragments += n
	}

	return stats
}

// Vertex positions are snapped to a 1/256 pixel grid so that edge
// functions are exact and shared edges are owned by exactly one triangle.
const (
	subpixelBits = 8
	subpixelOne  = 1 << subpixelBits
	subpixelHalf = subpixelOne / 2

	// maxCoord bounds snapped coordinates so edge products fit in int64.
	maxCoord = 1 << (20 + subpixelBits)
)

type fixedPoint struct {
	x, y int64
}

func snap(f float32) int64 {
	v := math32.Round(f * subpixelOne)
	if !(v > -maxCoord) {
		return -maxCoord
	}
	if v > maxCoord {
		return maxCoord
	}
	return int64(v)
}

// edgeFunction is twice the signed area of the triangle (a, b, c).
// With y pointing down it is positive when a, b, c run clockwise on screen,
// i.e. counter-clockwise in NDC.
func edgeFunction(a, b, c fixedPoint) int64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

// isTopLeft reports whether the edge a→b of a positively oriented triangle
// is a top edge (horizontal, interior below) or a left edge.
func isTopLeft(a, b fixedPoint) bool {
	return (a.y == b.y && b.x > a.x) || b.y < a.y
}

func covers(w int64, topLeft bool) bool {
	return w > 0 || (w == 0 && topLeft)
}

// drawTriangle rasterizes a single triangle. It returns the number of
// fragments written and false when the triangle was culled.
func drawTriangle[V any, D Interpolant[D], F any, P any](
	p Pipeline[V, D, F, P],
	cfg Config,
	tri *[3]screenVertex[D],
	target Target[P],
	depth *Buffer2D[float32],
	area image.Rectangle,
) (int, bool) {
	v0, v1, v2 := &tri[0], &tri[1], &tri[2]
	for _, v := range tri {
		if math32.IsNaN(v.x) || math32.IsNaN(v.y) {
			return 0, false
		}
	}

	f0 := fixedPoint{snap(v0.x), snap(v0.y)}
	f1 := fixedPoint{snap(v1.x), snap(v1.y)}
	f2 := fixedPoint{snap(v2.x), snap(v2.y)}

	signed := edgeFunction(f0, f1, f2)
	if signed == 0 {
		return 0, false
	}
	switch cfg.Cull {
	case CullBack:
		if signed < 0 {
			return 0, false
		}
	case CullFront:
		if signed > 0 {
			return 0, false
		}
	}
	if signed < 0 {
		v1, v2 = v2, v1
		f1, f2 = f2, f1
		signed = -signed
	}
	invArea := 1 / float32(signed)

	minX := clampInt(floorDiv(min(f0.x, f1.x, f2.x)), area.Min.X, area.Max.X)
	maxX := clampInt(ceilDiv(max(f0.x, f1.x, f2.x)), area.Min.X, area.Max.X)
	minY := clampInt(floorDiv(min(f0.y, f1.y, f2.y)), area.Min.Y, area.Max.Y)
	maxY := clampInt(ceilDiv(max(f0.y, f1.y, f2.y)), area.Min.Y, area.Max.Y)
	if minX >= maxX || minY >= maxY {
		return 0, true
	}

	tl0 := isTopLeft(f1, f2)
	tl1 := isTopLeft(f2, f0)
	tl2 := isTopLeft(f0, f1)

	fragments := 0
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			c := fixedPoint{
				x: int64(x)<<subpixelBits + subpixelHalf,
				y: int64(y)<<subpixelBits + subpixelHalf,
			}

			w0 := edgeFunction(f1, f2, c)
			if !covers(w0, tl0) {
				continue
			}
			w1 := edgeFunction(f2, f0, c)
			if !covers(w1, tl1) {
				continue
			}
			w2 := edgeFunction(f0, f1, c)
			if !covers(w2, tl2) {
				continue
			}

			b0 := float32(w0) * invArea
			b1 := float32(w1) * invArea
			b2 := float32(w2) * invArea

			if depth != nil {
				z := b0*v0.z + b1*v1.z + b2*v2.z
				if z > depth.At(x, y) {
					continue
				}
				depth.Set(x, y, z)
			}

			data := v0.data.Scale(b0).Add(v1.data.Scale(b1)).Add(v2.data.Scale(b2))
			frag := p.Fragment(data)
			target.Write(x, y, p.Blend(target.Read(x, y), frag))
			fragments++
		}
	}

	return fragments, true
}

// floorDiv converts a fixed-point coordinate to the pixel containing it.
func floorDiv(v int64) int64 {
	return v >> subpixelBits
}

// ceilDiv rounds a fixed-point coordinate up to a whole pixel.
func ceilDiv(v int64) int64 {
	return (v + subpixelOne - 1) >> subpixelBits
}

func clampInt(v int64, lo, hi int) int {
	if v < int64(lo) {
		return lo
	}
	if v > int64(hi) {
		return hi
	}
	return int(v)
}
