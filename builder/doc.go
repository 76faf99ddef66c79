// Package builder provides deterministic integer-sequence fixtures for
// sorting tests, benchmarks, examples and the radixsort CLI.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, value range and sawtooth period.
//   - Sequence constructors (all O(n) except the sorted ones, O(n log n)):
//     – BuildRandom:     uniform draws in [min, max].
//     – BuildAscending:  random draws sorted non-decreasing.
//     – BuildDescending: random draws sorted non-increasing.
//     – BuildConstant:   n copies of min.
//     – BuildSawtooth:   repeating ramps min, min+1, … of a fixed period.
//     – BuildMixedSign:  random draws with every odd index negated.
//     – Build:           dispatch on a Kind (used by the CLI).
//   - Validation:
//     – ErrBadSize:      n < 0.
//     – ErrBadRange:     min > max.
//     – ErrUnknownKind:  ParseKind received an unsupported name.
//
// Guarantees:
//
//   - Identical (n, options) always produce identical sequences.
//   - Constructors never panic; option constructors panic on nil or
//     meaningless arguments (WithRand(nil), WithPeriod(p<1)).
//   - Range arithmetic is done in uint64, so [math.MinInt64, math.MaxInt64]
//     is a valid range.
package builder
