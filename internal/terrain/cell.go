// Package terrain implements the destructible pixel field: procedural
// generation, surface smoothing, height queries, radial destruction and the
// coarse collision mesh derived from the mask.
//
// The package is UI-agnostic and deterministic for a given seed.
package terrain

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Cell is the state of one mask pixel.
type Cell uint8

const (
	Air Cell = iota
	Solid
)

// String returns the string representation of a cell.
func (c Cell) String() string {
	switch c {
	case Air:
		return "Air"
	case Solid:
		return "Solid"
	default:
		return "Unknown"
	}
}

var (
	// ErrInvalidSize is returned for non-positive field dimensions or a
	// height profile that does not match the field width.
	ErrInvalidSize = errors.New("invalid field size")

	// ErrInvalidRadius is returned when an explosion radius is not positive.
	ErrInvalidRadius = errors.New("invalid blast radius")
)

// Option customizes a Field at construction.
type Option func(*Field)

// WithNoise replaces the height profile parameters used by Generate.
func WithNoise(p NoiseParams) Option {
	return func(f *Field) { f.noise = p }
}

// WithSmoothing replaces the surface smoothing parameters.
func WithSmoothing(p SmoothParams) Option {
	return func(f *Field) { f.smooth = p }
}

// WithMeshBuilder replaces the collision mesh builder.
func WithMeshBuilder(b MeshBuilder) Option {
	return func(f *Field) { f.builder = b }
}

// WithFalloff replaces the per-cell destroy chance used by Explode.
func WithFalloff(fn Falloff) Option {
	return func(f *Field) {
		if fn != nil {
			f.falloff = fn
		}
	}
}

// WithRand sets the random source used by generation jitter and explosions.
// Generate reseeds it.
func WithRand(r *rand.Rand) Option {
	return func(f *Field) {
		if r != nil {
			f.rng = r
		}
	}
}

// WithLogger routes debug output to the given logger.
func WithLogger(l *log.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
