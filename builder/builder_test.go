package builder_test

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/builder"
)

type ctor func(int, ...builder.BuilderOption) ([]int64, error)

var ctors = map[string]ctor{
	builder.MethodRandom:     builder.BuildRandom,
	builder.MethodAscending:  builder.BuildAscending,
	builder.MethodDescending: builder.BuildDescending,
	builder.MethodConstant:   builder.BuildConstant,
	builder.MethodSawtooth:   builder.BuildSawtooth,
	builder.MethodMixedSign:  builder.BuildMixedSign,
}

func TestConstructors_Validation(t *testing.T) {
	for name, fn := range ctors {
		t.Run(name, func(t *testing.T) {
			_, err := fn(-1)
			assert.ErrorIs(t, err, builder.ErrBadSize)
			assert.True(t, strings.HasPrefix(err.Error(), name+":"), "error %q lacks method prefix", err)

			_, err = fn(3, builder.WithRange(5, 4))
			assert.ErrorIs(t, err, builder.ErrBadRange)

			out, err := fn(0)
			require.NoError(t, err)
			assert.NotNil(t, out)
			assert.Empty(t, out)
		})
	}
}

func TestConstructors_Deterministic(t *testing.T) {
	for name, fn := range ctors {
		t.Run(name, func(t *testing.T) {
			a, err := fn(64, builder.WithSeed(42), builder.WithRange(-50, 50))
			require.NoError(t, err)
			b, err := fn(64, builder.WithSeed(42), builder.WithRange(-50, 50))
			require.NoError(t, err)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("same seed produced different output (-first, +second):\n%s", diff)
			}
		})
	}
}

func TestBuildRandom_InRange(t *testing.T) {
	out, err := builder.BuildRandom(500, builder.WithSeed(9), builder.WithRange(-7, 7))
	require.NoError(t, err)
	require.Len(t, out, 500)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, int64(-7))
		assert.LessOrEqual(t, v, int64(7))
	}
}

func TestBuildAscendingDescending(t *testing.T) {
	asc, err := builder.BuildAscending(100, builder.WithSeed(5))
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(asc))

	desc, err := builder.BuildDescending(100, builder.WithSeed(5))
	require.NoError(t, err)
	slices.Reverse(desc)
	if diff := cmp.Diff(asc, desc); diff != "" {
		t.Errorf("descending is not the reverse of ascending (-asc, +reversed desc):\n%s", diff)
	}
}

func TestBuildConstant(t *testing.T) {
	out, err := builder.BuildConstant(4, builder.WithRange(-3, 10))
	require.NoError(t, err)
	assert.Equal(t, []int64{-3, -3, -3, -3}, out)
}

func TestBuildSawtooth(t *testing.T) {
	out, err := builder.BuildSawtooth(7, builder.WithPeriod(3))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 0, 1, 2, 0}, out)

	// Range narrower than the period wraps inside [min, max].
	out, err = builder.BuildSawtooth(4, builder.WithPeriod(4), builder.WithRange(5, 6))
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 5, 6}, out)
}

func TestBuildMixedSign(t *testing.T) {
	out, err := builder.BuildMixedSign(10, builder.WithSeed(1), builder.WithRange(1, 5))
	require.NoError(t, err)
	for i, v := range out {
		if i%2 == 0 {
			assert.Positive(t, v, "index %d", i)
		} else {
			assert.Negative(t, v, "index %d", i)
		}
	}
}

func TestBuildMixedSign_MinInt64NotNegated(t *testing.T) {
	out, err := builder.BuildMixedSign(4, builder.WithRange(math.MinInt64, math.MinInt64))
	require.NoError(t, err)
	assert.Equal(t, []int64{math.MinInt64, math.MinInt64, math.MinInt64, math.MinInt64}, out)

	// Next to MinInt64, odd positions are still negated.
	out, err = builder.BuildMixedSign(200, builder.WithSeed(4), builder.WithRange(math.MinInt64, math.MinInt64+1))
	require.NoError(t, err)
	for i, v := range out {
		switch {
		case i%2 == 0, v == math.MinInt64:
			assert.Contains(t, []int64{math.MinInt64, math.MinInt64 + 1}, v, "index %d", i)
		default:
			assert.Equal(t, int64(math.MaxInt64), v, "index %d", i)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, name := range builder.Kinds() {
		k, err := builder.ParseKind(strings.ToUpper(name))
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}

	_, err := builder.ParseKind("zigzag")
	assert.True(t, errors.Is(err, builder.ErrUnknownKind))
	assert.Equal(t, "unknown", builder.Kind(99).String())
}

func TestBuildDispatch(t *testing.T) {
	got, err := builder.Build(builder.KindSawtooth, 5, builder.WithPeriod(2))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 0, 1, 0}, got)

	_, err = builder.Build(builder.Kind(-1), 5)
	assert.ErrorIs(t, err, builder.ErrUnknownKind)
}
