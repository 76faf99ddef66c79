package radix

// Digit returns the digit of v at weight exp in base radix, after shifting
// v by lo so that lo maps to zero.
//
// Preconditions: lo ≤ v, exp ≥ 1, radix ≥ 2.
//
// Complexity: O(1).
func Digit(v, lo int64, exp uint64, radix int) int {
	// uint64 subtraction is exact for any int64 pair with v ≥ lo.
	key := uint64(v) - uint64(lo)

	return int((key / exp) % uint64(radix))
}

// Pass performs one stable counting-sort pass over seq on the digit at
// weight exp and returns a new slice. seq is left untouched.
//
// Preconditions (caller's responsibility, not checked):
//   - 2 ≤ radix ≤ MaxRadix
//   - exp is a positive power of radix
//   - lo ≤ every element of seq
//
// Output: a permutation of seq grouped by ascending digit; elements with
// the same digit keep their relative input order.
//
// Complexity:
//   - Time:  O(n + radix)
//   - Space: O(n + radix)
func Pass(seq []int64, radix int, exp uint64, lo int64) []int64 {
	out := make([]int64, len(seq))
	if len(seq) == 0 {
		return out
	}
	counts := make([]int, radix)
	passInto(seq, out, counts, exp, lo)

	return out
}

// passInto runs the three pass stages from src into dst using counts as the
// bucket table. len(counts) is the radix. counts is zeroed first so a
// single table can serve every pass of a sort.
func passInto(src, dst []int64, counts []int, exp uint64, lo int64) {
	radix := len(counts)

	// 1) Count digit occurrences.
	clear(counts)
	for _, v := range src {
		counts[Digit(v, lo, exp, radix)]++
	}

	// 2) Prefix sums: counts[d] becomes one past the last slot of block d.
	for d := 1; d < radix; d++ {
		counts[d] += counts[d-1]
	}

	// 3) Place back to front so equal digits keep input order.
	var d int
	for i := len(src) - 1; i >= 0; i-- {
		d = Digit(src[i], lo, exp, radix)
		counts[d]--
		dst[counts[d]] = src[i]
	}
}
