// SPDX-License-Identifier: MIT
// Package: lvlsort/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on nil or meaningless inputs; constructors
//     themselves return errors.
//   • WithRange does not panic: bounds often come from user input, so an
//     inverted range surfaces as ErrBadRange from the constructor.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig before
// the sequence is generated.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG shared across calls. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG for this call; the same seed gives the same
// sequence.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRange sets the inclusive value range [lo, hi].
func WithRange(lo, hi int64) BuilderOption {
	return func(c *builderConfig) {
		c.min = lo
		c.max = hi
	}
}

// WithPeriod sets the ramp length of BuildSawtooth. Panics on p < 1.
func WithPeriod(p int) BuilderOption {
	if p < 1 {
		panic("builder: WithPeriod(p<1)")
	}
	return func(c *builderConfig) {
		c.period = p
	}
}
