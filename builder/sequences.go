// SPDX-License-Identifier: MIT
// Package: lvlsort/builder
//
// sequences.go — deterministic integer-sequence constructors.
//
// Contract:
//   • BuildX(n, opts...) returns a slice of length n, or an error wrapping
//     ErrBadSize / ErrBadRange. n == 0 yields an empty, non-nil slice.
//   • Same (n, options) ⇒ same output. No global state.
//   • All values lie in [min, max], except BuildMixedSign, which negates
//     odd positions after drawing (math.MinInt64 stays as is).

package builder

import (
	"math"
	"slices"
)

// Method names used as error prefixes.
const (
	MethodRandom     = "Random"
	MethodAscending  = "Ascending"
	MethodDescending = "Descending"
	MethodConstant   = "Constant"
	MethodSawtooth   = "Sawtooth"
	MethodMixedSign  = "MixedSign"
)

// BuildRandom returns n values drawn from [min, max].
// Complexity: O(n).
func BuildRandom(n int, opts ...BuilderOption) ([]int64, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodRandom, n); err != nil {
		return nil, err
	}

	return randomFill(cfg, n), nil
}

// BuildAscending returns n random values sorted non-decreasing.
// Complexity: O(n log n).
func BuildAscending(n int, opts ...BuilderOption) ([]int64, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodAscending, n); err != nil {
		return nil, err
	}
	out := randomFill(cfg, n)
	slices.Sort(out)

	return out, nil
}

// BuildDescending returns n random values sorted non-increasing.
// Complexity: O(n log n).
func BuildDescending(n int, opts ...BuilderOption) ([]int64, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodDescending, n); err != nil {
		return nil, err
	}
	out := randomFill(cfg, n)
	slices.Sort(out)
	slices.Reverse(out)

	return out, nil
}

// BuildConstant returns n copies of min.
// Complexity: O(n).
func BuildConstant(n int, opts ...BuilderOption) ([]int64, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodConstant, n); err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = cfg.min
	}

	return out, nil
}

// BuildSawtooth returns repeating ramps min, min+1, …, min+period-1. When
// the range is narrower than the period, each ramp wraps inside [min, max].
// Complexity: O(n).
func BuildSawtooth(n int, opts ...BuilderOption) ([]int64, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodSawtooth, n); err != nil {
		return nil, err
	}

	s := cfg.span()
	out := make([]int64, n)
	var off uint64
	for i := range out {
		off = uint64(i % cfg.period)
		if off > s {
			off %= s + 1
		}
		out[i] = int64(uint64(cfg.min) + off)
	}

	return out, nil
}

// BuildMixedSign returns n random draws from [min, max] with every odd
// index negated, so a non-negative range produces interleaved signs.
// math.MinInt64 has no int64 negation and is left as drawn.
// Complexity: O(n).
func BuildMixedSign(n int, opts ...BuilderOption) ([]int64, error) {
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(MethodMixedSign, n); err != nil {
		return nil, err
	}
	out := randomFill(cfg, n)
	for i := 1; i < n; i += 2 {
		if out[i] != math.MinInt64 {
			out[i] = -out[i]
		}
	}

	return out, nil
}

// randomFill draws n values from cfg's range. cfg must be validated.
func randomFill(cfg builderConfig, n int) []int64 {
	r := cfg.random()
	out := make([]int64, n)
	for i := range out {
		out[i] = cfg.draw(r)
	}

	return out
}
