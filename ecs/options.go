package ecs

import "github.com/rs/zerolog"

type Option func(w *World)

// WithLogger sets the logger used for diagnostics. The default discards output.
func WithLogger(logger zerolog.Logger) Option {
	return func(w *World) {
		w.logger = logger
	}
}

// WithMaxEntities bounds the number of live entities.
func WithMaxEntities(n int) Option {
	return func(w *World) {
		if n > 0 {
			w.maxEntities = n
		}
	}
}

// WithResourceValidator installs an extra check on resource handles passed
// to CreateEntity. Empty handles are always rejected.
func WithResourceValidator(validate func(resourceHandle string) error) Option {
	return func(w *World) {
		w.validateResource = validate
	}
}

// WithTypeRegistry makes the world tag components with an existing registry.
func WithTypeRegistry(types *TypeRegistry) Option {
	return func(w *World) {
		if types != nil {
			w.types = types
		}
	}
}
