package radix_test

import (
	"slices"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvlsort/builder"
	"github.com/katalvlaran/lvlsort/radix"
)

// BenchmarkSort measures Sort on random input across sizes and bases, with
// and without scratch reuse, against slices.Sort as a baseline.
// Fixtures are built once per case so only sorting is timed.
func BenchmarkSort(b *testing.B) {
	cases := []struct {
		name string
		n    int
		hi   int64
	}{
		{"Small", 1_000, 1_000},
		{"Medium", 100_000, 1_000_000},
		{"WideRange", 100_000, 1 << 62},
	}

	for _, tc := range cases {
		seq, err := builder.BuildMixedSign(tc.n, builder.WithSeed(42), builder.WithRange(0, tc.hi))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(tc.name, func(b *testing.B) {
			for _, r := range []int{10, 256, 1 << 16} {
				b.Run("radix"+strconv.Itoa(r), func(b *testing.B) {
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						_, _ = radix.Sort(seq, radix.WithRadix(r))
					}
				})
				b.Run("radix"+strconv.Itoa(r)+"Scratch", func(b *testing.B) {
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						_, _ = radix.Sort(seq, radix.WithRadix(r), radix.WithScratchReuse())
					}
				})
			}

			b.Run("slices.Sort", func(b *testing.B) {
				buf := make([]int64, len(seq))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					copy(buf, seq)
					slices.Sort(buf)
				}
			})
		})
	}
}

// BenchmarkPass measures a single counting-sort pass.
func BenchmarkPass(b *testing.B) {
	seq, err := builder.BuildRandom(100_000, builder.WithSeed(1), builder.WithRange(0, 1_000_000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = radix.Pass(seq, 256, 1, 0)
	}
}
