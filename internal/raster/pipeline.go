package raster

import "image"

// Target is a pixel grid the rasterizer reads from and writes to.
type Target[P any] interface {
	Size() (width, height int)
	Read(x, y int) P
	Write(x, y int, p P)
}

// Bounded is implemented by targets that only accept writes inside a
// sub-rectangle. Render skips pixels outside it.
type Bounded interface {
	Bounds() image.Rectangle
}

// Interpolant is vertex data that can be combined linearly, which is all
// barycentric interpolation needs.
type Interpolant[D any] interface {
	Add(D) D
	Scale(float32) D
}

// CullMode selects which triangle facing is discarded.
type CullMode uint8

const (
	// CullNone draws both windings.
	CullNone CullMode = iota
	// CullBack discards clockwise (in NDC) triangles.
	CullBack
	// CullFront discards counter-clockwise (in NDC) triangles.
	CullFront
)

// DepthMode selects the depth test.
type DepthMode uint8

const (
	// DepthLessEqual passes fragments whose depth is <= the stored depth
	// and writes the new depth.
	DepthLessEqual DepthMode = iota
	// DepthNone disables both the depth test and depth writes.
	DepthNone
)

// Config holds the fixed-function state of a pipeline.
type Config struct {
	Cull  CullMode
	Depth DepthMode
}

// Pipeline describes how a primitive list becomes pixels.
//
//   - V is the input vertex (often an index into a caller-owned slice).
//   - D is the per-vertex data interpolated across each triangle.
//   - F is the fragment produced by shading.
//   - P is the target pixel type.
type Pipeline[V any, D Interpolant[D], F any, P any] interface {
	// Vertex returns the clip-space position [x, y, z, w] and vertex data.
	Vertex(v V) ([4]float32, D)
	// Fragment shades one pixel from interpolated vertex data.
	Fragment(d D) F
	// Blend combines a fragment with the pixel already in the target.
	Blend(old P, frag F) P
	// Config returns culling and depth state.
	Config() Config
}

// Stats reports what a Render call did.
type Stats struct {
	Triangles int // triangles submitted
	Culled    int // dropped by culling, degeneracy or w <= 0
	Fragments int // fragments blended into the target
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Triangles += o.Triangles
	s.Culled += o.Culled
	s.Fragments += o.Fragments
}
