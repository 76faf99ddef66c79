// Package radix provides a least-significant-digit (LSD) radix sort for
// signed 64-bit integers with a configurable base.
//
// Overview:
//
//   - Sort orders a sequence by running one stable counting-sort pass per
//     digit, starting at the least significant digit (weight 1) and moving
//     up by a factor of radix each time (1, r, r², …).
//   - Values are normalized against the sequence minimum before digits are
//     extracted, so negative and mixed-sign inputs need no special casing.
//   - Every pass is exposed on its own as Pass, which makes the per-digit
//     stability guarantee directly testable.
//
// How a pass works:
//
//  1. Count:      counts[d] = number of elements whose digit equals d.
//  2. Cumulate:   counts[d] += counts[d-1]; counts[d] is now the exclusive
//     upper bound of digit d's block in the output.
//  3. Place:      walk the input back to front, decrement counts[d] and write
//     the element at that slot. Walking backwards while filling each block
//     from its end keeps equal digits in input order.
//
// Digit extraction uses integer arithmetic only:
//
//	digit(v) = ((uint64(v) - uint64(lo)) / exp) % radix
//
// where lo is the sequence minimum. The subtraction is done in uint64, where
// it is exact for any pair of int64 values, so even
// [math.MinInt64, math.MaxInt64] sorts correctly.
//
// Complexity:
//
//   - Time:  O(k·(n + r)) with k = floor(log_r(max-min)) + 1 passes.
//   - Space: O(n + r) per pass; with WithScratchReuse, O(n + r) per sort.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidRadix: radix < 2 or radix > MaxRadix; reported by Sort
//     before any pass runs.
//   - ErrHookAborted:  the WithOnPass hook returned an error; no partial
//     result is returned.
//
// API reference:
//
//	func Sort(seq []int64, opts ...Option) ([]int64, error)
//	func SortInts(seq []int, opts ...Option) ([]int, error)
//	func Pass(seq []int64, radix int, exp uint64, lo int64) []int64
//	func Digit(v, lo int64, exp uint64, radix int) int
//	func Passes(lo, hi int64, radix int) int
//
// Thread safety:
//
//   - Sort never writes to the caller's slice, so concurrent calls on the
//     same input are safe.
package radix
