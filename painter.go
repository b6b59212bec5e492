package softpaint

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/softpaint/internal/color"
	"github.com/gogpu/softpaint/internal/parallel"
	"github.com/gogpu/softpaint/internal/raster"
)

// Painter renders the output of an immediate-mode GUI frame (texture
// deltas plus clipped meshes) into a Frame on the CPU.
//
// A Painter owns its TextureStore, which persists between frames.
// Paint must not be called concurrently on the same Painter.
type Painter struct {
	store   *TextureStore
	workers *parallel.WorkerPool // nil when rendering sequentially
	depths  *raster.Pool[float32]
	log     *slog.Logger
}

// NewPainter creates a Painter with an empty texture store.
//
// Example:
//
//	p := softpaint.NewPainter(softpaint.WithWorkers(4))
//	defer p.Close()
//	frame, err := p.Paint(delta, primitives, 2, [2]int{1600, 1200})
func NewPainter(opts ...PainterOption) *Painter {
	o := defaultPainterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Painter{
		store:  newTextureStore(o.sentinel),
		depths: raster.NewPool[float32](2),
		log:    o.logger,
	}
	p.store.log = o.logger
	if o.workers > 1 {
		p.workers = parallel.NewWorkerPool(o.workers)
		p.logger().Debug("softpaint: worker pool started", "workers", p.workers.Workers())
	}
	return p
}

// Close releases the worker goroutines. The Painter remains usable and
// renders sequentially afterwards. Close is safe to call multiple times.
func (p *Painter) Close() {
	if p.workers != nil {
		p.workers.Close()
	}
}

// Textures returns the painter's texture store for inspection. Mutating
// it outside Paint is allowed but bypasses the frame protocol.
func (p *Painter) Textures() *TextureStore {
	return p.store
}

func (p *Painter) logger() *slog.Logger {
	if p.log != nil {
		return p.log
	}
	return Logger()
}

// drawItem is a primitive resolved for rendering.
type drawItem struct {
	mesh   *Mesh
	sample Sampler
	rect   image.Rectangle
}

// Paint renders one frame.
//
// It applies the creates and patches of delta, draws primitives in list
// order onto a transparent screenSize canvas (in physical pixels), then
// applies the frees of delta. Positions and clip rectangles are in points;
// pixelsPerPoint converts them to pixels.
//
// Every mesh's texture is resolved before anything is drawn: a mesh that
// names an absent texture fails the frame with ErrAbsentTexture. Meshes
// with malformed index lists and non-mesh primitives are skipped.
//
// The store's state on return depends on where Paint stopped:
//   - ErrInvalidScreenSize, ErrInvalidPixelsPerPoint: nothing of delta is
//     applied.
//   - ErrPatchAbsentTexture, ErrPatchOutOfBounds, ErrInvalidImage: the
//     store is unchanged and the frees are not applied, so the whole delta
//     can be sent again.
//   - ErrAbsentTexture: the creates and patches stay applied and the frees
//     are applied; nothing is drawn. Send only later deltas afterwards.
//   - nil: the creates, patches and frees are all applied.
func (p *Painter) Paint(delta TexturesDelta, primitives []ClippedPrimitive, pixelsPerPoint float32, screenSize [2]int) (*Frame, error) {
	if screenSize[0] <= 0 || screenSize[1] <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidScreenSize, screenSize[0], screenSize[1])
	}
	if !(pixelsPerPoint > 0) || math32.IsInf(pixelsPerPoint, 1) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPixelsPerPoint, pixelsPerPoint)
	}

	if err := p.store.ApplyCreatesAndPatches(delta); err != nil {
		return nil, err
	}
	defer p.store.ApplyFrees(delta)

	items, err := p.resolve(primitives, pixelsPerPoint, screenSize)
	if err != nil {
		return nil, err
	}

	frame, stats := p.render(items, pixelsPerPoint, screenSize)
	p.logger().Debug("softpaint: frame painted",
		"size", screenSize,
		"primitives", len(primitives),
		"drawn", len(items),
		"triangles", stats.Triangles,
		"culled", stats.Culled,
		"fragments", stats.Fragments)
	return frame, nil
}

// resolve turns primitives into draw items, selecting each mesh's sampler.
// It fails on the first mesh whose texture is absent.
func (p *Painter) resolve(primitives []ClippedPrimitive, pixelsPerPoint float32, screenSize [2]int) ([]drawItem, error) {
	items := make([]drawItem, 0, len(primitives))
	for i, cp := range primitives {
		var mesh *Mesh
		switch prim := cp.Primitive.(type) {
		case *Mesh:
			mesh = prim
		case Mesh:
			mesh = &prim
		}
		if mesh == nil {
			p.logger().Debug("softpaint: skipping non-mesh primitive",
				"index", i, "type", fmt.Sprintf("%T", cp.Primitive))
			continue
		}
		tex, ok := p.store.Texture(mesh.TextureID)
		if !ok {
			return nil, fmt.Errorf("%w: %s (primitive %d)", ErrAbsentTexture, mesh.TextureID, i)
		}
		if err := mesh.Validate(); err != nil {
			p.logger().Warn("softpaint: skipping mesh", "index", i, "err", err)
			continue
		}
		if !cp.ClipRect.IsPositive() || len(mesh.Indices) == 0 {
			continue
		}

		rect := ScissorRect(screenSize, pixelsPerPoint, cp.ClipRect)
		if rect.Empty() {
			continue
		}
		items = append(items, drawItem{mesh: mesh, sample: SelectSampler(tex), rect: rect})
	}
	return items, nil
}

// render draws items onto a fresh transparent canvas.
func (p *Painter) render(items []drawItem, pixelsPerPoint float32, screenSize [2]int) (*Frame, raster.Stats) {
	w, h := screenSize[0], screenSize[1]
	target := raster.NewBuffer2D[uint32](w, h, 0)
	depth := p.depths.Get(w, h, 1)
	defer p.depths.Put(depth)

	sizePoints := f32.Vec2{float32(w) / pixelsPerPoint, float32(h) / pixelsPerPoint}

	var stats raster.Stats
	if p.workers == nil || !p.workers.IsRunning() {
		for i := range items {
			stats.Add(drawMesh(&items[i], target, depth, sizePoints))
		}
	} else {
		for _, batch := range batchDisjoint(items) {
			results := make([]raster.Stats, len(batch))
			jobs := make([]func(), len(batch))
			for k := range batch {
				jobs[k] = func() {
					results[k] = drawMesh(&batch[k], target, depth, sizePoints)
				}
			}
			p.workers.ExecuteAll(jobs)
			for _, s := range results {
				stats.Add(s)
			}
		}
	}

	return &Frame{width: w, height: h, pix: target.Raw()}, stats
}

// drawMesh rasterizes one item through a scissored view of target.
func drawMesh(it *drawItem, target *raster.Buffer2D[uint32], depth *raster.Buffer2D[float32], sizePoints f32.Vec2) raster.Stats {
	pipeline := &meshPipeline{
		vertices:   it.mesh.Vertices,
		sizePoints: sizePoints,
		sample:     it.sample,
	}
	view := NewScissor[uint32](target, it.rect)
	return raster.Render[uint32, vertexData, color.ColorF32, uint32](pipeline, it.mesh.Indices, view, depth)
}

// batchDisjoint splits items into runs of consecutive items whose
// rectangles are pairwise disjoint. Items of one run touch different
// pixels, so they can be drawn in any order.
func batchDisjoint(items []drawItem) [][]drawItem {
	var batches [][]drawItem
	start := 0
	for i := range items {
		for j := start; j < i; j++ {
			if items[j].rect.Overlaps(items[i].rect) {
				batches = append(batches, items[start:i])
				start = i
				break
			}
		}
	}
	if start < len(items) {
		batches = append(batches, items[start:])
	}
	return batches
}
