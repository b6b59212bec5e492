package softpaint

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softpaint/internal/blend"
	"github.com/gogpu/softpaint/internal/color"
	"github.com/gogpu/softpaint/internal/raster"
)

// ToNDC maps a position in points onto normalized device coordinates for
// a screen of sizePoints. (0, 0) becomes (-1, 1) and sizePoints becomes
// (1, -1): NDC is Y-up, screen points are Y-down.
func ToNDC(pos, sizePoints f32.Vec2) f32.Vec2 {
	return f32.Vec2{
		2*pos[0]/sizePoints[0] - 1,
		1 - 2*pos[1]/sizePoints[1],
	}
}

// vertexData is interpolated across each triangle.
type vertexData struct {
	uv    f32.Vec2
	color color.ColorF32
}

func (d vertexData) Add(o vertexData) vertexData {
	return vertexData{
		uv:    f32.Vec2{d.uv[0] + o.uv[0], d.uv[1] + o.uv[1]},
		color: d.color.Add(o.color),
	}
}

func (d vertexData) Scale(s float32) vertexData {
	return vertexData{
		uv:    f32.Vec2{d.uv[0] * s, d.uv[1] * s},
		color: d.color.Scale(s),
	}
}

// meshPipeline draws one mesh. Vertices are mesh indices; the target holds
// packed little-endian sRGB pixels.
type meshPipeline struct {
	vertices   []Vertex
	sizePoints f32.Vec2
	sample     Sampler
}

var _ raster.Pipeline[uint32, vertexData, color.ColorF32, uint32] = (*meshPipeline)(nil)

func (p *meshPipeline) Vertex(i uint32) ([4]float32, vertexData) {
	v := &p.vertices[i]
	ndc := ToNDC(v.Pos, p.sizePoints)
	return [4]float32{ndc[0], ndc[1], 0, 1}, vertexData{uv: v.UV, color: v.Color.linear()}
}

func (p *meshPipeline) Fragment(d vertexData) color.ColorF32 {
	return d.color.Mul(p.sample(d.uv[0], d.uv[1]))
}

func (p *meshPipeline) Blend(dst uint32, src color.ColorF32) uint32 {
	return BlendOver(dst, src)
}

// Config disables culling, since GUI meshes use either winding, and keeps
// a LessEqual depth test at z = 0 so draw order alone decides overlap.
func (p *meshPipeline) Config() raster.Config {
	return raster.Config{Cull: raster.CullNone, Depth: raster.DepthLessEqual}
}

// BlendOver composites the linear premultiplied color src over dst, a
// packed little-endian RGBA pixel with sRGB channels and straight alpha,
// and returns the packed result.
//
//	out.rgb = src.rgb + dst.rgb*(1 - src.a)
//	out.a   = dst.a + src.a*(1 - dst.a)
func BlendOver(dst uint32, src color.ColorF32) uint32 {
	return blend.SourceOverPacked(dst, src)
}
