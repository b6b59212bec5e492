package softpaint

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/softpaint/internal/color"
)

// Frame is a rendered image. Each pixel is a uint32 whose little-endian
// bytes are R, G, B, A: sRGB-encoded channels with straight alpha.
//
// Frame implements image.Image.
type Frame struct {
	width  int
	height int
	pix    []uint32
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// Pixels returns the packed pixels, row-major. The slice is shared.
func (f *Frame) Pixels() []uint32 { return f.pix }

// Pixel returns the packed pixel at (x, y), or 0 outside the frame.
func (f *Frame) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return f.pix[y*f.width+x]
}

// Bytes returns the pixels as straight-alpha RGBA8 bytes.
func (f *Frame) Bytes() []byte {
	out := make([]byte, len(f.pix)*4)
	for i, p := range f.pix {
		c := color.UnpackLE(p)
		out[i*4+0] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = c.A
	}
	return out
}

// ToImage returns a copy as *image.NRGBA.
func (f *Frame) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.Bytes())
	return img
}

// ToColorImage converts the frame to a premultiplied ColorImage, for
// instance to feed it back as a texture.
func (f *Frame) ToColorImage() ColorImage {
	img := ColorImage{Width: f.width, Height: f.height, Pixels: make([]Color32, len(f.pix))}
	for i, p := range f.pix {
		c := color.UnpackLE(p)
		img.Pixels[i] = RGBA32Unmultiplied(c.R, c.G, c.B, c.A)
	}
	return img
}

// EncodePNG writes the frame as PNG to w.
func (f *Frame) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.ToImage())
}

// SavePNG saves the frame to a PNG file.
func (f *Frame) SavePNG(path string) error {
	file, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := f.EncodePNG(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// ColorModel implements the image.Image interface.
func (f *Frame) ColorModel() stdcolor.Model {
	return stdcolor.NRGBAModel
}

// Bounds implements the image.Image interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements the image.Image interface.
func (f *Frame) At(x, y int) stdcolor.Color {
	c := color.UnpackLE(f.Pixel(x, y))
	return stdcolor.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
