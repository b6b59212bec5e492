package softpaint

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ColorImage is a row-major image of Color32 pixels.
type ColorImage struct {
	Width  int
	Height int
	Pixels []Color32
}

// NewColorImage allocates a transparent width×height image.
func NewColorImage(width, height int) ColorImage {
	return FilledColorImage(width, height, Transparent32)
}

// FilledColorImage allocates a width×height image filled with c.
func FilledColorImage(width, height int, c Color32) ColorImage {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	pix := make([]Color32, width*height)
	for i := range pix {
		pix[i] = c
	}
	return ColorImage{Width: width, Height: height, Pixels: pix}
}

// ColorImageFromRGBAUnmultiplied builds an image from straight-alpha RGBA8
// bytes, four per pixel.
func ColorImageFromRGBAUnmultiplied(width, height int, rgba []byte) (ColorImage, error) {
	if width <= 0 || height <= 0 || len(rgba) != width*height*4 {
		return ColorImage{}, fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidImage, width, height, len(rgba))
	}
	img := ColorImage{Width: width, Height: height, Pixels: make([]Color32, width*height)}
	for i := range img.Pixels {
		p := rgba[i*4 : i*4+4]
		img.Pixels[i] = RGBA32Unmultiplied(p[0], p[1], p[2], p[3])
	}
	return img, nil
}

// ColorImageFromImage converts any image. Pixels are unmultiplied to
// straight sRGB first, then premultiplied in linear light like
// RGBA32Unmultiplied.
func ColorImageFromImage(src image.Image) ColorImage {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	img := ColorImage{Width: b.Dx(), Height: b.Dy(), Pixels: make([]Color32, b.Dx()*b.Dy())}
	for i := range img.Pixels {
		p := dst.Pix[i*4 : i*4+4]
		img.Pixels[i] = RGBA32Unmultiplied(p[0], p[1], p[2], p[3])
	}
	return img
}

// Validate checks that the dimensions are positive and match the pixel count.
func (m ColorImage) Validate() error {
	if m.Width <= 0 || m.Height <= 0 || len(m.Pixels) != m.Width*m.Height {
		return fmt.Errorf("%w: %dx%d with %d pixels", ErrInvalidImage, m.Width, m.Height, len(m.Pixels))
	}
	return nil
}

// Size returns [width, height].
func (m ColorImage) Size() [2]int {
	return [2]int{m.Width, m.Height}
}

// At returns the pixel at (x, y), or Transparent32 when out of bounds.
func (m ColorImage) At(x, y int) Color32 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return Transparent32
	}
	return m.Pixels[y*m.Width+x]
}

// Set stores c at (x, y). Out-of-bounds writes are ignored.
func (m ColorImage) Set(x, y int, c Color32) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Pixels[y*m.Width+x] = c
}

// Region copies the w×h block at (x, y) into a new image. The block is
// clipped to the image.
func (m ColorImage) Region(x, y, w, h int) ColorImage {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, m.Width, m.Height))
	out := NewColorImage(r.Dx(), r.Dy())
	for row := 0; row < r.Dy(); row++ {
		src := m.Pixels[(r.Min.Y+row)*m.Width+r.Min.X:]
		copy(out.Pixels[row*out.Width:(row+1)*out.Width], src[:out.Width])
	}
	return out
}

// ToImage converts to a straight-alpha *image.NRGBA, unmultiplying each
// pixel in linear light.
func (m ColorImage) ToImage() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i, c := range m.Pixels {
		s := c.nrgba()
		copy(dst.Pix[i*4:i*4+4], []uint8{s.R, s.G, s.B, s.A})
	}
	return dst
}
