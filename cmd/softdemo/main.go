// Command softdemo renders two synthetic GUI frames with softpaint and saves
// the result as PNG.
//
// The first frame uploads the textures and draws a gradient panel, a
// textured quad and translucent fans. The second frame patches part of the
// texture, draws again and frees it.
package main

import (
	"flag"
	"image"
	_ "image/jpeg" // register JPEG for -texture
	_ "image/png"  // register PNG for -texture
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gputypes"
	_ "golang.org/x/image/bmp"  // register BMP for -texture
	_ "golang.org/x/image/webp" // register WebP for -texture

	"github.com/gogpu/softpaint"
)

var (
	whiteTexel = softpaint.ManagedTexture(0)
	picture    = softpaint.ManagedTexture(1)
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width in pixels")
		height  = flag.Int("height", 600, "image height in pixels")
		ppp     = flag.Float64("ppp", 1, "pixels per point")
		workers = flag.Int("workers", 1, "render goroutines")
		texture = flag.String("texture", "", "image file to use as texture (png, jpeg, bmp, webp)")
		nearest = flag.Bool("nearest", false, "sample the texture with nearest filtering")
		output  = flag.String("output", "softdemo.png", "output file")
		verbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()

	if *verbose {
		softpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := loadTexture(*texture)
	if err != nil {
		log.Fatalf("Failed to load texture: %v", err)
	}
	opts := softpaint.TextureOptions{
		Magnification: gputypes.FilterModeLinear,
		Minification:  gputypes.FilterModeLinear,
		WrapMode:      gputypes.AddressModeRepeat,
	}
	if *nearest {
		opts.Magnification = gputypes.FilterModeNearest
		opts.Minification = gputypes.FilterModeNearest
	}

	p := softpaint.NewPainter(softpaint.WithWorkers(*workers))
	defer p.Close()

	screen := [2]int{*width, *height}
	scale := float32(*ppp)
	points := softpaint.RectFromSize(float32(*width)/scale, float32(*height)/scale)

	delta := softpaint.TexturesDelta{Set: []softpaint.TextureSet{
		{ID: whiteTexel, Delta: softpaint.FullDelta(softpaint.FilledColorImage(1, 1, softpaint.White32), softpaint.DefaultTextureOptions)},
		{ID: picture, Delta: softpaint.FullDelta(img, opts)},
	}}
	if _, err := p.Paint(delta, scene(points), scale, screen); err != nil {
		log.Fatalf("Failed to paint first frame: %v", err)
	}

	// Second frame: overwrite the top-left quarter of the picture, then
	// free it once the frame is drawn.
	patch := softpaint.FilledColorImage(max(img.Width/2, 1), max(img.Height/2, 1),
		softpaint.RGBA32Unmultiplied(255, 200, 0, 255))
	delta = softpaint.TexturesDelta{
		Set:  []softpaint.TextureSet{{ID: picture, Delta: softpaint.PartialDelta(0, 0, patch, opts)}},
		Free: []softpaint.TextureID{picture},
	}
	frame, err := p.Paint(delta, scene(points), scale, screen)
	if err != nil {
		log.Fatalf("Failed to paint second frame: %v", err)
	}

	if err := frame.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d, %d textures left)\n",
		*output, frame.Width(), frame.Height(), p.Textures().Len())
}

// loadTexture decodes path, or returns a generated checkerboard when path
// is empty.
func loadTexture(path string) (softpaint.ColorImage, error) {
	if path == "" {
		return checkerboard(64, 64, 8), nil
	}
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return softpaint.ColorImage{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	src, _, err := image.Decode(f)
	if err != nil {
		return softpaint.ColorImage{}, err
	}
	return softpaint.ColorImageFromImage(src), nil
}

func checkerboard(w, h, cell int) softpaint.ColorImage {
	img := softpaint.NewColorImage(w, h)
	for y := range h {
		for x := range w {
			c := softpaint.RGB32(40, 60, 90)
			if (x/cell+y/cell)%2 == 0 {
				c = softpaint.RGB32(230, 230, 240)
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// scene lays out the primitives of one frame inside screen (in points).
func scene(screen softpaint.Rect) []softpaint.ClippedPrimitive {
	w, h := screen.Width(), screen.Height()
	prims := []softpaint.ClippedPrimitive{
		{ClipRect: screen, Primitive: gradient(screen)},
	}

	// Textured panel, UVs beyond 1 to show the wrap mode.
	panel := softpaint.NewRect(w*0.1, h*0.1, w*0.55, h*0.6)
	textured := &softpaint.Mesh{TextureID: picture}
	textured.AddRectWithUV(panel, softpaint.NewRect(0, 0, 2, 2), softpaint.White32)
	prims = append(prims, softpaint.ClippedPrimitive{ClipRect: panel, Primitive: textured})

	// Translucent fans, the last one clipped to the right half.
	colors := []softpaint.Color32{
		softpaint.RGBA32Unmultiplied(255, 80, 80, 200),
		softpaint.RGBA32Unmultiplied(80, 255, 80, 200),
		softpaint.RGBA32Unmultiplied(80, 80, 255, 200),
	}
	for i, c := range colors {
		center := softpaint.Pos2(w*0.65+float32(i)*w*0.08, h*0.35+float32(i%2)*h*0.1)
		clip := screen
		if i == len(colors)-1 {
			clip = softpaint.NewRect(center[0], 0, w, h)
		}
		prims = append(prims, softpaint.ClippedPrimitive{
			ClipRect:  clip,
			Primitive: fan(center, h*0.15, 48, c),
		})
	}

	// The CPU backend skips callbacks.
	prims = append(prims, softpaint.ClippedPrimitive{
		ClipRect:  screen,
		Primitive: softpaint.Callback{Rect: softpaint.NewRect(0, 0, 10, 10)},
	})
	return prims
}

// gradient fills rect with a vertical two-color gradient.
func gradient(rect softpaint.Rect) *softpaint.Mesh {
	top := softpaint.RGB32(30, 40, 70)
	bottom := softpaint.RGB32(110, 90, 140)
	m := &softpaint.Mesh{TextureID: whiteTexel}
	m.Vertices = []softpaint.Vertex{
		{Pos: rect.Min, Color: top},
		{Pos: softpaint.Pos2(rect.Max[0], rect.Min[1]), Color: top},
		{Pos: rect.Max, Color: bottom},
		{Pos: softpaint.Pos2(rect.Min[0], rect.Max[1]), Color: bottom},
	}
	m.AddTriangle(0, 1, 2)
	m.AddTriangle(0, 2, 3)
	return m
}

// fan approximates a filled circle with a triangle fan.
func fan(center [2]float32, radius float32, segments int, c softpaint.Color32) *softpaint.Mesh {
	m := &softpaint.Mesh{TextureID: whiteTexel}
	m.Vertices = append(m.Vertices, softpaint.Vertex{Pos: center, UV: softpaint.Pos2(0.5, 0.5), Color: c})
	for i := range segments {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pos := softpaint.Pos2(
			center[0]+radius*float32(math.Cos(a)),
			center[1]+radius*float32(math.Sin(a)),
		)
		m.Vertices = append(m.Vertices, softpaint.Vertex{Pos: pos, UV: softpaint.Pos2(0.5, 0.5), Color: c})
	}
	for i := range segments {
		next := (i+1)%segments + 1
		m.AddTriangle(0, uint32(i+1), uint32(next)) //nolint:gosec // G115: segment counts are small
	}
	return m
}
