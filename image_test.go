package softpaint

import (
	"errors"
	"image"
	stdcolor "image/color"
	"testing"
)

func TestColorImageValidate(t *testing.T) {
	tests := []struct {
		name string
		img  ColorImage
		ok   bool
	}{
		{"valid", NewColorImage(3, 2), true},
		{"zero width", ColorImage{Width: 0, Height: 1}, false},
		{"short pixels", ColorImage{Width: 2, Height: 2, Pixels: make([]Color32, 3)}, false},
		{"long pixels", ColorImage{Width: 1, Height: 1, Pixels: make([]Color32, 2)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.img.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidImage) {
				t.Errorf("Validate() = %v, want ErrInvalidImage", err)
			}
		})
	}
}

func TestColorImageRegion(t *testing.T) {
	img := checker(4, 3)
	sub := img.Region(1, 1, 2, 5)
	if sub.Width != 2 || sub.Height != 2 {
		t.Fatalf("Region(1, 1, 2, 5) is %dx%d, want 2x2 after clipping", sub.Width, sub.Height)
	}
	for y := range 2 {
		for x := range 2 {
			if got, want := sub.At(x, y), img.At(x+1, y+1); got != want {
				t.Errorf("sub.At(%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestColorImageFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 12, 11))
	src.SetNRGBA(10, 10, stdcolor.NRGBA{R: 255, A: 255})
	src.SetNRGBA(11, 10, stdcolor.NRGBA{G: 255, A: 0})

	img := ColorImageFromImage(src)
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("ColorImageFromImage is %dx%d, want 2x1", img.Width, img.Height)
	}
	if img.At(0, 0) != Red32 {
		t.Errorf("At(0, 0) = %+v, want %+v", img.At(0, 0), Red32)
	}
	if img.At(1, 0) != Transparent32 {
		t.Errorf("At(1, 0) = %+v, want transparent", img.At(1, 0))
	}

	back := img.ToImage()
	if got := back.NRGBAAt(0, 0); got != (stdcolor.NRGBA{R: 255, A: 255}) {
		t.Errorf("ToImage().NRGBAAt(0, 0) = %v, want opaque red", got)
	}
}

func TestColorImageFromRGBAUnmultiplied(t *testing.T) {
	img, err := ColorImageFromRGBAUnmultiplied(1, 2, []byte{255, 255, 255, 128, 0, 0, 255, 255})
	if err != nil {
		t.Fatalf("ColorImageFromRGBAUnmultiplied failed: %v", err)
	}
	if img.At(0, 0) != (Color32{188, 188, 188, 128}) || img.At(0, 1) != Blue32 {
		t.Errorf("pixels = %+v, want [{188 188 188 128} %+v]", img.Pixels, Blue32)
	}

	if _, err := ColorImageFromRGBAUnmultiplied(2, 2, make([]byte, 12)); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("short input error = %v, want ErrInvalidImage", err)
	}
}

func TestColorImageFromImageTranslucent(t *testing.T) {
	want := RGBA32Unmultiplied(255, 0, 0, 128)

	straight := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	straight.SetNRGBA(0, 0, stdcolor.NRGBA{R: 255, A: 128})
	premul := image.NewRGBA(image.Rect(0, 0, 1, 1))
	premul.SetRGBA(0, 0, stdcolor.RGBA{R: 128, A: 128})

	for name, src := range map[string]image.Image{"nrgba": straight, "rgba": premul} {
		t.Run(name, func(t *testing.T) {
			img := ColorImageFromImage(src)
			if got := img.At(0, 0); got != want {
				t.Errorf("ColorImageFromImage().At(0, 0) = %+v, want %+v", got, want)
			}
			if got := img.ToImage().NRGBAAt(0, 0); got != (stdcolor.NRGBA{R: 255, A: 128}) {
				t.Errorf("ToImage().NRGBAAt(0, 0) = %v, want {255 0 0 128}", got)
			}
		})
	}
}
