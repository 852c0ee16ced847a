package pathenum

import (
	"errors"
)

// Sentinel errors for path enumeration.
var (
	// ErrEnumerationExplosion is returned when enumerate would yield more
	// than max_paths distinct paths.
	ErrEnumerationExplosion = errors.New("pathenum: enumeration explosion")

	// ErrEdgeNotFound is returned when the candidate transaction edge's
	// endpoint is absent from the DAG.
	ErrEdgeNotFound = errors.New("pathenum: edge endpoint not found")
)

// Path is an ordered sequence of node_ids from a source to the sink of the
// candidate transaction, in traversal order (source -> sink).
type Path struct {
	Nodes []string
	hash  [32]byte
}

// ContentHash returns the path's deduplication digest, a SHA-256 over its
// ordered node_id sequence.
func (p Path) ContentHash() [32]byte { return p.hash }

// Options configures Enumerate and EstimateCount.
type Options struct {
	// MaxPaths bounds the number of distinct paths Enumerate will yield
	// before failing with ErrEnumerationExplosion. 0 makes the first path
	// found an explosion.
	MaxPaths int

	// EstimateDepthCap bounds EstimateCount's traversal depth.
	EstimateDepthCap int
}

// DefaultOptions returns the spec's default bounds: 10,000 paths, a depth
// cap of 64 hops for the cheap estimator.
func DefaultOptions() Options {
	return Options{
		MaxPaths:         10_000,
		EstimateDepthCap: 64,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithMaxPaths overrides the enumeration cap. n == 0 is honored (spec.md §8
// boundary behavior: max_paths = 0 makes any non-trivial transaction explode)
// — only a negative n is rejected as meaningless.
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxPaths = n
		}
	}
}

// WithEstimateDepthCap overrides EstimateCount's depth bound.
func WithEstimateDepthCap(d int) Option {
	return func(o *Options) {
		if d > 0 {
			o.EstimateDepthCap = d
		}
	}
}
