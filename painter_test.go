package softpaint

import (
	"errors"
	"image"
	stdcolor "image/color"
	"math"
	"slices"
	"testing"
)

const opaqueRed = 0xFF0000FF

func quadMesh(id TextureID, rect Rect, c Color32) *Mesh {
	m := &Mesh{TextureID: id}
	m.AddRectWithUV(rect, NewRect(0, 0, 1, 1), c)
	return m
}

func createDelta(id TextureID, img ColorImage) TexturesDelta {
	return TexturesDelta{Set: []TextureSet{{ID: id, Delta: FullDelta(img, DefaultTextureOptions)}}}
}

func TestPaintFullScreenRed(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	t0 := ManagedTexture(0)
	prims := []ClippedPrimitive{{ClipRect: Everything, Primitive: quadMesh(t0, RectFromSize(4, 4), White32)}}
	frame, err := p.Paint(createDelta(t0, FilledColorImage(2, 2, Red32)), prims, 1, [2]int{4, 4})
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	if frame.Width() != 4 || frame.Height() != 4 || len(frame.Pixels()) != 16 {
		t.Fatalf("frame is %dx%d with %d pixels, want 4x4 with 16", frame.Width(), frame.Height(), len(frame.Pixels()))
	}
	for i, px := range frame.Pixels() {
		if px != opaqueRed {
			t.Errorf("pixel %d = %#08x, want %#08x", i, px, uint32(opaqueRed))
		}
	}
}

func TestPaintLeftHalfClip(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	t0 := ManagedTexture(0)
	prims := []ClippedPrimitive{{ClipRect: NewRect(0, 0, 2, 4), Primitive: quadMesh(t0, RectFromSize(4, 4), White32)}}
	frame, err := p.Paint(createDelta(t0, FilledColorImage(2, 2, Red32)), prims, 1, [2]int{4, 4})
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	for y := range 4 {
		for x := range 4 {
			want := uint32(opaqueRed)
			if x >= 2 {
				want = 0
			}
			if got := frame.Pixel(x, y); got != want {
				t.Errorf("Pixel(%d, %d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestPaintPixelsPerPoint(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	t0 := ManagedTexture(0)
	// 2×2 points at 2 pixels per point fill the 4×4 pixel screen; the clip
	// keeps the top half.
	prims := []ClippedPrimitive{{ClipRect: NewRect(0, 0, 2, 1), Primitive: quadMesh(t0, RectFromSize(2, 2), White32)}}
	frame, err := p.Paint(createDelta(t0, FilledColorImage(1, 1, Red32)), prims, 2, [2]int{4, 4})
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	for y := range 4 {
		for x := range 4 {
			want := uint32(opaqueRed)
			if y >= 2 {
				want = 0
			}
			if got := frame.Pixel(x, y); got != want {
				t.Errorf("Pixel(%d, %d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestPaintDrawOrder(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	t0 := ManagedTexture(0)
	prims := []ClippedPrimitive{
		{ClipRect: Everything, Primitive: quadMesh(t0, RectFromSize(4, 4), Red32)},
		{ClipRect: Everything, Primitive: *quadMesh(t0, NewRect(1, 1, 3, 3), Blue32)},
	}
	frame, err := p.Paint(createDelta(t0, FilledColorImage(1, 1, White32)), prims, 1, [2]int{4, 4})
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	blue := pack(Blue32)
	for y := range 4 {
		for x := range 4 {
			want := uint32(opaqueRed)
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = blue
			}
			if got := frame.Pixel(x, y); got != want {
				t.Errorf("Pixel(%d, %d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestPaintAbsentTexture(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	t0, t1 := ManagedTexture(0), ManagedTexture(1)
	delta := createDelta(t0, FilledColorImage(1, 1, Red32))
	delta.Free = []TextureID{t0}
	prims := []ClippedPrimitive{
		{ClipRect: Everything, Primitive: quadMesh(t0, RectFromSize(2, 2), White32)},
		{ClipRect: Everything, Primitive: quadMesh(t1, RectFromSize(2, 2), White32)},
	}

	frame, err := p.Paint(delta, prims, 1, [2]int{2, 2})
	if !errors.Is(err, ErrAbsentTexture) {
		t.Fatalf("Paint() error = %v, want ErrAbsentTexture", err)
	}
	if frame != nil {
		t.Error("Paint() returned a frame on error")
	}
	if _, ok := p.Textures().Texture(t0); ok {
		t.Error("frees of a failed frame were not applied")
	}
}

func TestPaintTranslucentImageTexture(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, stdcolor.NRGBA{R: 255, A: 128})

	t0 := ManagedTexture(0)
	delta := TexturesDelta{Set: []TextureSet{{ID: t0, Delta: FullDelta(ColorImageFromImage(src), NearestTextureOptions)}}}
	prims := []ClippedPrimitive{{ClipRect: Everything, Primitive: quadMesh(t0, RectFromSize(1, 1), White32)}}

	frame, err := p.Paint(delta, prims, 1, [2]int{1, 1})
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	if got, want := frame.At(0, 0), (stdcolor.NRGBA{R: 255, A: 128}); got != want {
		t.Errorf("At(0, 0) = %v, want %v", got, want)
	}
}

func TestPaintAbsentTextureBeatsInvalidMesh(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	bad := quadMesh(UserTexture(9), RectFromSize(2, 2), White32)
	bad.Indices = bad.Indices[:4]
	prims := []ClippedPrimitive{{ClipRect: Everything, Primitive: bad}}

	if _, err := p.Paint(TexturesDelta{}, prims, 1, [2]int{2, 2}); !errors.Is(err, ErrAbsentTexture) {
		t.Errorf("Paint() error = %v, want ErrAbsentTexture", err)
	}
}

func TestPaintFreesAfterDrawing(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	t0 := ManagedTexture(0)
	delta := createDelta(t0, FilledColorImage(1, 1, Red32))
	delta.Free = []TextureID{t0}
	prims := []ClippedPrimitive{{ClipRect: Everything, Primitive: quadMesh(t0, RectFromSize(2, 2), White32)}}

	frame, err := p.Paint(delta, prims, 1, [2]int{2, 2})
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	if got := frame.Pixel(1, 1); got != opaqueRed {
		t.Errorf("Pixel(1, 1) = %#08x, want %#08x", got, uint32(opaqueRed))
	}
	if p.Textures().Len() != 0 {
		t.Errorf("Textures().Len() = %d after free, want 0", p.Textures().Len())
	}

	// The next frame no longer sees the texture.
	_, err = p.Paint(TexturesDelta{}, prims, 1, [2]int{2, 2})
	if !errors.Is(err, ErrAbsentTexture) {
		t.Errorf("Paint() after free error = %v, want ErrAbsentTexture", err)
	}
}

func TestPaintPatchFailureKeepsFrees(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	t0 := ManagedTexture(0)
	if _, err := p.Paint(createDelta(t0, FilledColorImage(2, 2, Red32)), nil, 1, [2]int{1, 1}); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	delta := TexturesDelta{
		Set:  []TextureSet{{ID: t0, Delta: PartialDelta(1, 1, FilledColorImage(2, 2, Blue32), DefaultTextureOptions)}},
		Free: []TextureID{t0},
	}
	if _, err := p.Paint(delta, nil, 1, [2]int{1, 1}); !errors.Is(err, ErrPatchOutOfBounds) {
		t.Fatalf("Paint() error = %v, want ErrPatchOutOfBounds", err)
	}
	tex, ok := p.Textures().Texture(t0)
	if !ok {
		t.Fatal("texture freed by a frame whose patches failed")
	}
	if got := tex.At(1, 1); got != Red32 {
		t.Errorf("At(1, 1) = %+v, want unchanged %+v", got, Red32)
	}
}

func TestPaintInvalidArguments(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	tests := []struct {
		name string
		ppp  float32
		size [2]int
		want error
	}{
		{"zero width", 1, [2]int{0, 4}, ErrInvalidScreenSize},
		{"negative height", 1, [2]int{4, -1}, ErrInvalidScreenSize},
		{"zero ppp", 0, [2]int{4, 4}, ErrInvalidPixelsPerPoint},
		{"negative ppp", -2, [2]int{4, 4}, ErrInvalidPixelsPerPoint},
		{"nan ppp", float32(math.NaN()), [2]int{4, 4}, ErrInvalidPixelsPerPoint},
		{"inf ppp", float32(math.Inf(1)), [2]int{4, 4}, ErrInvalidPixelsPerPoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Paint(TexturesDelta{}, nil, tt.ppp, tt.size); !errors.Is(err, tt.want) {
				t.Errorf("Paint(ppp=%v, size=%v) error = %v, want %v", tt.ppp, tt.size, err, tt.want)
			}
		})
	}
}

func TestPaintSkipsUnrenderablePrimitives(t *testing.T) {
	p := NewPainter()
	defer p.Close()

	t0 := ManagedTexture(0)
	bad := quadMesh(t0, RectFromSize(2, 2), White32)
	bad.Indices = append(bad.Indices, 99, 0, 1)
	short := quadMesh(t0, RectFromSize(2, 2), White32)
	short.Indices = short.Indices[:4]

	prims := []ClippedPrimitive{
		{ClipRect: Everything, Primitive: Callback{Rect: RectFromSize(2, 2)}},
		{ClipRect: Everything, Primitive: bad},
		{ClipRect: Everything, Primitive: short},
		{ClipRect: Everything, Primitive: (*Mesh)(nil)},
		{ClipRect: Everything, Primitive: nil},
		{ClipRect: NewRect(5, 5, 9, 9), Primitive: quadMesh(t0, RectFromSize(2, 2), White32)},
		{ClipRect: NewRect(2, 2, 0, 0), Primitive: quadMesh(t0, RectFromSize(2, 2), White32)},
	}
	frame, err := p.Paint(createDelta(t0, FilledColorImage(1, 1, Red32)), prims, 1, [2]int{2, 2})
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	for i, px := range frame.Pixels() {
		if px != 0 {
			t.Errorf("pixel %d = %#08x, want untouched background", i, px)
		}
	}
}

func TestPaintParallelMatchesSequential(t *testing.T) {
	t0 := ManagedTexture(0)
	delta := createDelta(t0, checker(8, 8))

	var prims []ClippedPrimitive
	for i := range 24 {
		x := float32(i%6) * 10
		y := float32(i/6) * 10
		c := RGBA32Unmultiplied(uint8(i*10), 255-uint8(i*10), 128, uint8(100+i*6))
		clip := NewRect(x, y, x+10, y+10)
		if i%5 == 0 {
			clip = NewRect(x-5, y-5, x+25, y+25) // overlaps neighbors
		}
		prims = append(prims, ClippedPrimitive{
			ClipRect:  clip,
			Primitive: quadMesh(t0, NewRect(x-3, y-3, x+17, y+13), c),
		})
	}

	seq := NewPainter()
	defer seq.Close()
	par := NewPainter(WithWorkers(4))
	defer par.Close()

	want, err := seq.Paint(delta, prims, 1.5, [2]int{96, 64})
	if err != nil {
		t.Fatalf("sequential Paint failed: %v", err)
	}
	for range 3 {
		got, err := par.Paint(delta, prims, 1.5, [2]int{96, 64})
		if err != nil {
			t.Fatalf("parallel Paint failed: %v", err)
		}
		if !slices.Equal(got.Pixels(), want.Pixels()) {
			t.Fatal("parallel output differs from sequential output")
		}
	}
}

func TestPainterReusableAfterClose(t *testing.T) {
	p := NewPainter(WithWorkers(2))
	p.Close()
	p.Close()

	t0 := ManagedTexture(0)
	prims := []ClippedPrimitive{
		{ClipRect: NewRect(0, 0, 1, 2), Primitive: quadMesh(t0, RectFromSize(2, 2), White32)},
		{ClipRect: NewRect(1, 0, 2, 2), Primitive: quadMesh(t0, RectFromSize(2, 2), White32)},
	}
	frame, err := p.Paint(createDelta(t0, FilledColorImage(1, 1, Red32)), prims, 1, [2]int{2, 2})
	if err != nil {
		t.Fatalf("Paint failed: %v", err)
	}
	for i, px := range frame.Pixels() {
		if px != opaqueRed {
			t.Errorf("pixel %d = %#08x, want %#08x", i, px, uint32(opaqueRed))
		}
	}
}

func TestWithSentinel(t *testing.T) {
	p := NewPainter(WithSentinel(Green32))
	defer p.Close()
	if got := color32FromLinear(p.Textures().sentinel); got != Green32 {
		t.Errorf("sentinel = %+v, want %+v", got, Green32)
	}
}

func TestBatchDisjoint(t *testing.T) {
	item := func(x0, y0, x1, y1 int) drawItem {
		return drawItem{rect: image.Rect(x0, y0, x1, y1)}
	}
	items := []drawItem{
		item(0, 0, 10, 10),
		item(10, 0, 20, 10),
		item(20, 0, 30, 10),
		item(5, 5, 15, 15), // overlaps the first two
		item(40, 40, 50, 50),
		item(45, 45, 46, 46), // overlaps the previous one
	}
	got := batchDisjoint(items)

	wantSizes := []int{3, 2, 1}
	if len(got) != len(wantSizes) {
		t.Fatalf("batchDisjoint() produced %d batches, want %d", len(got), len(wantSizes))
	}
	for i, b := range got {
		if len(b) != wantSizes[i] {
			t.Errorf("batch %d has %d items, want %d", i, len(b), wantSizes[i])
		}
	}
}

func BenchmarkPaint(b *testing.B) {
	p := NewPainter()
	defer p.Close()

	t0 := ManagedTexture(0)
	if _, err := p.Paint(createDelta(t0, checker(64, 64)), nil, 1, [2]int{1, 1}); err != nil {
		b.Fatalf("Paint failed: %v", err)
	}
	var prims []ClippedPrimitive
	for i := range 50 {
		x := float32(i%10) * 30
		y := float32(i/10) * 30
		prims = append(prims, ClippedPrimitive{
			ClipRect:  Everything,
			Primitive: quadMesh(t0, NewRect(x, y, x+40, y+40), RGBA32Unmultiplied(255, 255, 255, 200)),
		})
	}

	b.ResetTimer()
	for range b.N {
		if _, err := p.Paint(TexturesDelta{}, prims, 1, [2]int{320, 200}); err != nil {
			b.Fatal(err)
		}
	}
}
