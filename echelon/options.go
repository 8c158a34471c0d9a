// SPDX-License-Identifier: MIT
// Package echelon: functional options for Diagonalize.
//
// Design:
//   - WithX constructors validate eagerly and panic on nonsensical values
//     (programmer error); Diagonalize itself never panics on user input.
//   - The zero Options value is never used directly; DefaultOptions seeds it.

package echelon

// DefaultMaxRepairs bounds the total number of pivot swaps performed by the
// repair loop across all recursion levels.
const DefaultMaxRepairs = 4096

const panicMaxRepairsInvalid = "echelon: WithMaxRepairs: n must be positive"

// Option mutates Options.
type Option func(*Options)

// Options configures Diagonalize.
type Options struct {
	// MaxRepairs caps repair iterations; exceeding it yields ErrNotConverged.
	MaxRepairs int
	// MonicDiagonal scales every diagonal entry to leading coefficient 1.
	MonicDiagonal bool
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{MaxRepairs: DefaultMaxRepairs, MonicDiagonal: true}
}

// WithMaxRepairs sets the repair iteration cap. Panics if n <= 0.
func WithMaxRepairs(n int) Option {
	if n <= 0 {
		panic(panicMaxRepairsInvalid)
	}

	return func(o *Options) { o.MaxRepairs = n }
}

// WithMonicDiagonal toggles the final normalization of the diagonal.
// When off, pivots keep whatever unit coefficient the reduction produced.
func WithMonicDiagonal(on bool) Option {
	return func(o *Options) { o.MonicDiagonal = on }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
