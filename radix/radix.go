// Package radix implements the LSD radix sort driver.
//
// The driver computes the value range once, then applies Pass for the
// digit weights 1, r, r², … until the weight exceeds the range. Each pass
// result becomes the input of the next one.
//
// Notes on implementation choices:
//
//   - Radix is validated before the length fast path, so an invalid radix
//     fails even for empty input. The upper bound MaxRadix keeps the bucket
//     table allocation bounded.
//   - The loop condition is the integer form span ≥ exp of (max-min)/exp ≥ 1.
//   - exp never overflows: the loop stops once exp·radix would exceed the span.
package radix

import (
	"fmt"
)

// Sort returns seq sorted in non-decreasing order.
//
// Returns:
//
//   - sorted: a new slice when at least one pass ran. When no pass is needed
//     (len ≤ 1 or all elements equal) seq itself is returned.
//   - err:    ErrInvalidRadix or ErrHookAborted (wrapped), nil on success.
//
// Preconditions and validation (in order):
//  1. Radix must be in [2, MaxRadix] (ErrInvalidRadix).
//
// Options customization:
//
//   - WithRadix(r): number base, default 10.
//   - WithOnPass(fn): observe every pass.
//   - WithScratchReuse(): reuse two buffers across passes.
//
// Complexity:
//
//   - Time:  O(k·(n + r)), k = Passes(lo, hi, r)
//   - Space: O(n + r)
func Sort(seq []int64, opts ...Option) ([]int64, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate radix before anything else runs.
	if !validRadix(cfg.Radix) {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidRadix, cfg.Radix, minRadix, MaxRadix)
	}

	// 3) Zero or one element is already sorted.
	if len(seq) <= 1 {
		return seq, nil
	}

	// 4) Range of normalized keys.
	lo, hi := bounds(seq)

	r := &runner{
		options: cfg,
		seq:     seq,
		lo:      lo,
		span:    uint64(hi) - uint64(lo),
	}

	return r.run()
}

// SortInts is Sort for []int. The input is converted to int64 and the result
// converted back, so the returned slice is always freshly allocated.
func SortInts(seq []int, opts ...Option) ([]int, error) {
	wide := make([]int64, len(seq))
	for i, v := range seq {
		wide[i] = int64(v)
	}

	sorted, err := Sort(wide, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(sorted))
	for i, v := range sorted {
		out[i] = int(v)
	}

	return out, nil
}

// Passes reports how many counting-sort passes Sort performs for a sequence
// whose extremes are lo and hi: floor(log_radix(hi-lo)) + 1 when hi > lo,
// and 0 otherwise. A radix outside [2, MaxRadix] yields 0.
func Passes(lo, hi int64, radix int) int {
	if !validRadix(radix) || hi <= lo {
		return 0
	}

	span := uint64(hi) - uint64(lo)
	n := 0
	exp := uint64(1)
	more := true
	for more && span >= exp {
		n++
		exp, more = nextExp(exp, span, radix)
	}

	return n
}

// runner holds the state of a single Sort call.
type runner struct {
	options Options // Resolved configuration
	seq     []int64 // Current working sequence, rebound after every pass
	lo      int64   // Minimum of the original input
	span    uint64  // max - lo, exact in uint64

	bufs   [2][]int64 // Ping-pong buffers when ReuseScratch is set
	counts []int      // Shared bucket table when ReuseScratch is set
}

// run executes passes until the digit weight exceeds the span.
func (r *runner) run() ([]int64, error) {
	radix := r.options.Radix
	if r.options.ReuseScratch {
		r.bufs[0] = make([]int64, len(r.seq))
		r.bufs[1] = make([]int64, len(r.seq))
		r.counts = make([]int, radix)
	}

	exp := uint64(1)
	more := true
	for pass := 1; more && r.span >= exp; pass++ {
		r.step(pass, exp)

		if r.options.OnPass != nil {
			if err := r.options.OnPass(pass, exp, r.seq); err != nil {
				return nil, fmt.Errorf("%w: pass %d: %w", ErrHookAborted, pass, err)
			}
		}

		exp, more = nextExp(exp, r.span, radix)
	}

	return r.seq, nil
}

// step runs one pass at weight exp and rebinds r.seq to its output.
// The caller's slice is only ever read: with scratch reuse the first pass
// reads it into bufs[0] and later passes alternate between the two buffers.
func (r *runner) step(pass int, exp uint64) {
	if !r.options.ReuseScratch {
		r.seq = Pass(r.seq, r.options.Radix, exp, r.lo)
		return
	}

	dst := r.bufs[(pass-1)%2]
	passInto(r.seq, dst, r.counts, exp, r.lo)
	r.seq = dst
}

// nextExp advances exp by one digit. more is false when the next weight
// would exceed span, which also covers the case where exp·radix overflows.
func nextExp(exp, span uint64, radix int) (uint64, bool) {
	r := uint64(radix)
	if exp > span/r {
		return exp, false
	}

	return exp * r, true
}

// bounds returns the smallest and largest element of a non-empty seq.
func bounds(seq []int64) (lo, hi int64) {
	lo, hi = seq[0], seq[0]
	for _, v := range seq[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
