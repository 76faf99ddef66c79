// SPDX-License-Identifier: MIT
// Package: lvlsort/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil   (resolved to rand.NewSource(DefaultSeed) per call)
//   • min    = 0
//   • max    = 99
//   • period = 10

package builder

import (
	"math"
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultSeed   = int64(1) // seed used when no RNG option is given
	DefaultMin    = int64(0) // lower bound of generated values
	DefaultMax    = int64(99)
	DefaultPeriod = 10 // sawtooth ramp length
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value.
type builderConfig struct {
	rng    *rand.Rand // nil means "seed with DefaultSeed"
	min    int64      // inclusive lower bound
	max    int64      // inclusive upper bound
	period int        // sawtooth ramp length, ≥ 1
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		min:    DefaultMin,
		max:    DefaultMax,
		period: DefaultPeriod,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// random returns cfg.rng, or a fresh RNG seeded with DefaultSeed.
func (c builderConfig) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(DefaultSeed))
}

// span returns max - min computed in uint64, where it is exact.
func (c builderConfig) span() uint64 {
	return uint64(c.max) - uint64(c.min)
}

// draw returns a value in [min, max]. The modulo reduction has a small bias
// for spans that do not divide 2^64; fixtures do not need uniformity.
func (c builderConfig) draw(r *rand.Rand) int64 {
	s := c.span()
	if s == math.MaxUint64 {
		return int64(r.Uint64())
	}

	return int64(uint64(c.min) + r.Uint64()%(s+1))
}

// validate checks the parameters shared by every constructor.
func (c builderConfig) validate(method string, n int) error {
	if n < 0 {
		return builderErrorf(method, ErrBadSize, "n must be ≥ 0, got %d", n)
	}
	if c.min > c.max {
		return builderErrorf(method, ErrBadRange, "min %d > max %d", c.min, c.max)
	}

	return nil
}
