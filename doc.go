// Package lvlsort is a small, dependency-light home for a non-comparison
// integer sort: least-significant-digit radix sort with a configurable base.
//
// What is inside?
//
//	radix/          — Sort (driver), Pass (one stable counting-sort pass),
//	                  Digit and Passes helpers, functional options
//	builder/        — deterministic integer fixtures (random, ascending,
//	                  descending, constant, sawtooth, mixed-sign)
//	cmd/radixsort/  — CLI: "sort" comma-separated integers, "gen" fixtures
//
// Quick example:
//
//	sorted, err := radix.Sort([]int64{55, 1, 4, 23}, radix.WithRadix(10))
//	// sorted == [1 4 23 55]
//
// Why radix sort?
//
//   - O(k·n) time, where k is the number of base-r digits of max-min.
//   - Stable by construction: every pass places equal digits in input order.
//   - Negative values are handled by normalizing against the minimum.
//
//	go get github.com/katalvlaran/lvlsort/radix
package lvlsort
