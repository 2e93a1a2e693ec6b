package engine

import (
	"io"

	"ebiten-korin/loop"
	"ebiten-korin/systems"
)

type options struct {
	input      systems.InputSource
	renderer   systems.Renderer
	clock      loop.Clock
	logWriters []io.Writer
	bindings   *systems.ActionMap
}

// Option configures an Engine
type Option func(*options)

// WithInputSource sets the device polled at the start of each iteration
func WithInputSource(source systems.InputSource) Option {
	return func(o *options) {
		o.input = source
	}
}

// WithRenderer sets the output of the render pass. Without one, sprites are
// logged at debug level.
func WithRenderer(renderer systems.Renderer) Option {
	return func(o *options) {
		o.renderer = renderer
	}
}

// WithClock sets the loop's time source
func WithClock(clock loop.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogWriter adds a destination for log output
func WithLogWriter(w io.Writer) Option {
	return func(o *options) {
		o.logWriters = append(o.logWriters, w)
	}
}

// WithActionMap replaces the key bindings
func WithActionMap(bindings *systems.ActionMap) Option {
	return func(o *options) {
		o.bindings = bindings
	}
}
