package raster

import "testing"

func TestBuffer2D(t *testing.T) {
	b := NewBuffer2D[uint32](3, 2, 7)
	if w, h := b.Size(); w != 3 || h != 2 {
		t.Fatalf("Size() = (%d, %d), want (3, 2)", w, h)
	}
	for i, v := range b.Raw() {
		if v != 7 {
			t.Fatalf("Raw()[%d] = %d, want 7", i, v)
		}
	}

	b.Set(2, 1, 9)
	if got := b.At(2, 1); got != 9 {
		t.Errorf("At(2, 1) = %d, want 9", got)
	}
	if got := b.Raw()[5]; got != 9 {
		t.Errorf("Raw()[5] = %d, want 9 (row-major)", got)
	}

	// Out of bounds is silent.
	b.Set(3, 0, 1)
	b.Set(-1, 0, 1)
	if got := b.At(5, 5); got != 0 {
		t.Errorf("At(5, 5) = %d, want zero value", got)
	}
}

func TestBuffer2DNegativeSize(t *testing.T) {
	b := NewBuffer2D[float32](-2, 4, 1)
	if w, h := b.Size(); w != 0 || h != 4 {
		t.Errorf("Size() = (%d, %d), want (0, 4)", w, h)
	}
	if len(b.Raw()) != 0 {
		t.Errorf("len(Raw()) = %d, want 0", len(b.Raw()))
	}
}
