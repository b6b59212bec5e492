package raster

import "sync"

// Pool is a thread-safe pool of Buffer2D values grouped by size.
//
// Thread safety: All methods are safe for concurrent use.
type Pool[T any] struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer2D[T]
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// size. A maxPerBucket of 0 means unlimited.
func NewPool[T any](maxPerBucket int) *Pool[T] {
	return &Pool[T]{
		buckets: make(map[poolKey][]*Buffer2D[T]),
		maxSize: maxPerBucket,
	}
}

// Get returns a width×height buffer with every element set to fill,
// reusing a pooled buffer when one is available.
func (p *Pool[T]) Get(width, height int, fill T) *Buffer2D[T] {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		buf.Fill(fill)
		return buf
	}
	p.mu.Unlock()

	return NewBuffer2D(width, height, fill)
}

// Put returns a buffer for reuse. Buffers beyond the bucket limit are
// dropped for the GC.
func (p *Pool[T]) Put(buf *Buffer2D[T]) {
	if buf == nil {
		return
	}
	key := poolKey{width: buf.width, height: buf.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}
