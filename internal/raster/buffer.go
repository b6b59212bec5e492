package raster

// Buffer2D is a row-major width×height grid of T. It implements Target[T].
type Buffer2D[T any] struct {
	width  int
	height int
	data   []T
}

// NewBuffer2D allocates a buffer with every element set to fill.
// Non-positive dimensions yield an empty buffer.
func NewBuffer2D[T any](width, height int, fill T) *Buffer2D[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer2D[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}
	b.Fill(fill)
	return b
}

// Size returns (width, height).
func (b *Buffer2D[T]) Size() (int, int) {
	return b.width, b.height
}

// Raw returns the backing slice.
func (b *Buffer2D[T]) Raw() []T {
	return b.data
}

// Fill sets every element to v.
func (b *Buffer2D[T]) Fill(v T) {
	for i := range b.data {
		b.data[i] = v
	}
}

// At returns the element at (x, y), or the zero value when out of bounds.
func (b *Buffer2D[T]) At(x, y int) T {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		var zero T
		return zero
	}
	return b.data[y*b.width+x]
}

// Set stores v at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer2D[T]) Set(x, y int, v T) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.data[y*b.width+x] = v
}

// Read implements Target.
func (b *Buffer2D[T]) Read(x, y int) T {
	return b.At(x, y)
}

// Write implements Target.
func (b *Buffer2D[T]) Write(x, y int, v T) {
	b.Set(x, y, v)
}
