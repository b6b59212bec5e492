package softpaint

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Vertex is one mesh vertex.
type Vertex struct {
	// Pos is the position in points.
	Pos f32.Vec2
	// UV is the texture coordinate, normally in [0, 1].
	UV f32.Vec2
	// Color tints the sampled texel.
	Color Color32
}

// Primitive is something a ClippedPrimitive can draw. Only Mesh is
// rendered; other kinds are skipped.
type Primitive interface {
	isPrimitive()
}

// Mesh is an indexed triangle list sharing one texture.
type Mesh struct {
	// Indices holds three entries per triangle, any winding.
	Indices   []uint32
	Vertices  []Vertex
	TextureID TextureID
}

func (Mesh) isPrimitive() {}

// Validate checks that the index list forms whole triangles and only
// references existing vertices.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	n := uint32(len(m.Vertices)) //nolint:gosec // G115: vertex counts fit in uint32
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at position %d out of range (%d vertices)",
				ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}

// AddTriangle appends a triangle of existing vertex indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// AddRectWithUV appends an axis-aligned quad mapping uv onto rect.
func (m *Mesh) AddRectWithUV(rect, uv Rect, c Color32) {
	base := uint32(len(m.Vertices)) //nolint:gosec // G115: vertex counts fit in uint32
	m.Vertices = append(m.Vertices,
		Vertex{Pos: rect.Min, UV: uv.Min, Color: c},
		Vertex{Pos: f32.Vec2{rect.Max[0], rect.Min[1]}, UV: f32.Vec2{uv.Max[0], uv.Min[1]}, Color: c},
		Vertex{Pos: rect.Max, UV: uv.Max, Color: c},
		Vertex{Pos: f32.Vec2{rect.Min[0], rect.Max[1]}, UV: f32.Vec2{uv.Min[0], uv.Max[1]}, Color: c},
	)
	m.AddTriangle(base, base+1, base+2)
	m.AddTriangle(base, base+2, base+3)
}

// Callback is a primitive painted by user code. The CPU backend cannot
// run it and skips it.
type Callback struct {
	Rect Rect
	Fn   any
}

func (Callback) isPrimitive() {}

// ClippedPrimitive is a primitive with the clip rectangle, in points,
// that its pixels are confined to.
type ClippedPrimitive struct {
	ClipRect  Rect
	Primitive Primitive
}
