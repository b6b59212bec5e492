package softpaint

import "log/slog"

// PainterOption configures a Painter during creation.
//
// Example:
//
//	// Sequential rendering, package logger
//	p := softpaint.NewPainter()
//
//	// Render disjoint clip regions on four goroutines
//	p := softpaint.NewPainter(softpaint.WithWorkers(4))
type PainterOption func(*painterOptions)

// painterOptions holds optional configuration for Painter creation.
type painterOptions struct {
	workers  int
	sentinel Color32
	logger   *slog.Logger
}

// defaultPainterOptions returns the default painter options.
func defaultPainterOptions() painterOptions {
	return painterOptions{
		workers:  1,
		sentinel: Red32,
	}
}

// WithWorkers sets how many goroutines render a frame. With n > 1,
// consecutive primitives whose clip rectangles do not overlap are drawn
// concurrently; the output is identical to sequential rendering.
// Values below 1 are treated as 1.
func WithWorkers(n int) PainterOption {
	return func(o *painterOptions) {
		o.workers = max(n, 1)
	}
}

// WithSentinel sets the color newly created textures are filled with
// before their image is written. The default is opaque red.
func WithSentinel(c Color32) PainterOption {
	return func(o *painterOptions) {
		o.sentinel = c
	}
}

// WithLogger sets the logger of one Painter, overriding the package
// logger configured by SetLogger.
func WithLogger(l *slog.Logger) PainterOption {
	return func(o *painterOptions) {
		o.logger = l
	}
}
